package engine

import (
	"os"
	"path/filepath"
	"testing"

	"harvest-sun/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, ModeDefault, cfg.Mode)
	assert.Equal(t, 10, cfg.FarmWidth)
	assert.Equal(t, 3, cfg.FarmHeight)
	assert.Equal(t, domain.DefaultPlayerConfig(), cfg.PlayerConfig())
	assert.NotEmpty(t, cfg.Tutorial)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "crops.yaml", "products:\n  - {code: P, name: Potato, buy: 2, sell: 3, water: 2}\n")
	path := writeFile(t, dir, "game.yaml", `
farm_width: 5
starting_gold: 100
catalog: crops.yaml
skip_tutorial: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.FarmWidth)
	assert.Equal(t, 3, cfg.FarmHeight, "unset keys keep defaults")
	assert.Equal(t, 100, cfg.StartingGold)
	assert.Equal(t, 30, cfg.StartingEnergy)
	assert.True(t, cfg.SkipTutorial)
	assert.Equal(t, filepath.Join(dir, "crops.yaml"), cfg.CatalogPath)

	catalog, err := cfg.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, "Potato", catalog.Get(1).Name)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "bad.yaml", "farm_width: [1"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "big.yaml", "farm_width: 17"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "neg.yaml", "breakfast_cost: -1"))
	assert.Error(t, err)
}

func TestConfig_DefaultCatalog(t *testing.T) {
	catalog, err := NewConfig().LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.Size())

	cfg := NewConfig()
	cfg.CatalogPath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err = cfg.LoadCatalog()
	assert.Error(t, err)
}
