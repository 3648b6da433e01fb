package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		args      []string
		wantMode  Mode
		wantScene PlayState
	}{
		{nil, ModeDefault, PlaySelecting},
		{[]string{"default"}, ModeDefault, PlaySelecting},
		{[]string{"whatever"}, ModeDefault, PlaySelecting},
		{[]string{"full"}, ModeFull, PlaySelecting},
		{[]string{"debug"}, ModeDebug, PlaySelecting},
		{[]string{"debug", "farm"}, ModeDebug, PlayFarm},
		{[]string{"DEBUG", "Shop"}, ModeDebug, PlayShop},
		{[]string{"debug", "home"}, ModeDebug, PlayHome},
		{[]string{"debug", "moon"}, ModeDebug, PlaySelecting},
	}

	for _, tt := range tests {
		mode, scene := ParseMode(tt.args)
		assert.Equal(t, tt.wantMode, mode, "%v", tt.args)
		assert.Equal(t, tt.wantScene, scene, "%v", tt.args)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "MENU", SceneMenu.String())
	assert.Equal(t, "QUIT", SceneQuit.String())
	assert.Equal(t, "UNKNOWN", Scene(42).String())
	assert.Equal(t, "FARM", PlayFarm.String())
	assert.Equal(t, "GAMEOVER", DialogGameOver.String())
	assert.Equal(t, "full", ModeFull.String())
	assert.True(t, ModeDefault.Minified())
	assert.False(t, ModeDebug.Minified())
}

func TestCanProceed(t *testing.T) {
	assert.True(t, CanProceed(128, 38, false))
	assert.False(t, CanProceed(127, 38, false))
	assert.False(t, CanProceed(128, 37, false))
	assert.True(t, CanProceed(80, 32, true))
	assert.False(t, CanProceed(79, 40, true))

	w, h := MinConsoleSize(true)
	assert.Equal(t, 80, w)
	assert.Equal(t, 32, h)
}
