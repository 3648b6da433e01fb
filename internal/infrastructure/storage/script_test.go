package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"harvest-sun/internal/domain"
	"harvest-sun/internal/engine"
	"harvest-sun/pkg/api"
	"harvest-sun/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const sample = `
# меню -> игра
ENTER
>  Ann
xc enter
40 BACKSPACE
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sample))
	require.NoError(t, err)

	want := []engine.Input{
		engine.KeyInput('\n'),
		engine.TextInput("Ann"),
		engine.KeyInput('X'),
		engine.KeyInput('C'),
		engine.KeyInput('\n'),
		engine.KeyInput('4'),
		engine.KeyInput('0'),
		engine.KeyInput('\b'),
	}
	require.Equal(t, len(want), s.Len())

	ctx := context.Background()
	for i, w := range want {
		got, err := s.Next(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, w, got, "input #%d", i)
	}

	_, err = s.Next(ctx, false)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, s.Remaining())
}

func TestScript_ContextCancelled(t *testing.T) {
	s, err := ParseScript(strings.NewReader("ENTER"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Next(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.Remaining())
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quit.keys")
	require.NoError(t, os.WriteFile(path, []byte("x\nENTER\n"), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.keys"))
	assert.Error(t, err)
}

// Сценарий целиком проводит игру: покупка семян и выход в меню
func TestScript_DrivesGame(t *testing.T) {
	script := `
ENTER
>Ann
# лавка
cc ENTER
ENTER c ENTER
4 ENTER
q x ENTER
`
	s, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)

	cfg := engine.NewConfig()
	cfg.Mode = engine.ModeFull
	cfg.SkipTutorial = true
	g := engine.NewGame(cfg, nil)

	require.NoError(t, engine.Run(context.Background(), g, s, discard{}))

	assert.Equal(t, engine.SceneMenu, g.Scene())
	assert.Equal(t, 30, g.Player.Gold())
	assert.Equal(t, 4, g.Player.Seeds.Get(domain.ProductCorn).Amount)
}

type discard struct{}

func (discard) Render(*api.Snapshot) error { return nil }

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want []engine.Input
	}{
		{"", nil},
		{"e", []engine.Input{engine.KeyInput('E')}},
		{"ww  d", []engine.Input{engine.KeyInput('W'), engine.KeyInput('W'), engine.KeyInput('D')}},
		{"space Enter", []engine.Input{engine.KeyInput(' '), engine.KeyInput('\n')}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
