package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"harvest-sun/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска игры
type Config struct {
	Mode       Mode      `yaml:"-"`
	DebugScene PlayState `yaml:"-"`

	FarmWidth  int `yaml:"farm_width"`
	FarmHeight int `yaml:"farm_height"`

	StartingGold   int `yaml:"starting_gold"`
	StartingEnergy int `yaml:"starting_energy"`
	BreakfastCost  int `yaml:"breakfast_cost"`
	MaxStarvedDays int `yaml:"max_starved_days"`

	// CatalogPath - YAML с таблицей товаров. Пусто - встроенный каталог.
	CatalogPath string `yaml:"catalog"`

	Tutorial     []string `yaml:"tutorial"`
	SkipTutorial bool     `yaml:"skip_tutorial"`
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Mode:           ModeDefault,
		DebugScene:     PlaySelecting,
		FarmWidth:      domain.DefaultFarmWidth,
		FarmHeight:     domain.DefaultFarmHeight,
		StartingGold:   domain.DefaultStartingGold,
		StartingEnergy: domain.DefaultStartingEnergy,
		BreakfastCost:  domain.DefaultBreakfastCost,
		MaxStarvedDays: domain.DefaultMaxStarvedDays,
		Tutorial:       defaultTutorial(),
	}
}

func defaultTutorial() []string {
	return []string{
		"Welcome to Harvest Sun! Your grandfather left you a small plot of land.",
		"Every action on the farm costs one energy per plot. Rest at home to recover it.",
		"Going home starts a new day, and breakfast costs gold. Skip too many meals and you starve.",
		"Buy seeds at the shop, grow them, then sell the harvest for a profit. Good luck!",
	}
}

// LoadConfig читает YAML и накладывает его поверх значений по умолчанию.
// Относительный путь каталога считается от каталога конфига.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.CatalogPath != "" && !filepath.IsAbs(cfg.CatalogPath) {
		cfg.CatalogPath = filepath.Join(filepath.Dir(path), cfg.CatalogPath)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить молча
func (c Config) Validate() error {
	if c.StartingGold < 0 || c.StartingEnergy < 0 || c.BreakfastCost < 0 {
		return fmt.Errorf("gold, energy and breakfast cost must not be negative")
	}
	if c.MaxStarvedDays < 0 {
		return fmt.Errorf("max_starved_days must not be negative")
	}
	if c.FarmWidth < 1 || c.FarmWidth > domain.MaxFarmWidth ||
		c.FarmHeight < 1 || c.FarmHeight > domain.MaxFarmHeight {
		return fmt.Errorf("farm size %dx%d out of range (max %dx%d)",
			c.FarmWidth, c.FarmHeight, domain.MaxFarmWidth, domain.MaxFarmHeight)
	}
	return nil
}

// PlayerConfig - экономические параметры игрока
func (c Config) PlayerConfig() domain.PlayerConfig {
	return domain.PlayerConfig{
		StartingGold:   c.StartingGold,
		StartingEnergy: c.StartingEnergy,
		BreakfastCost:  c.BreakfastCost,
		MaxStarvedDays: c.MaxStarvedDays,
	}
}

// LoadCatalog возвращает каталог из CatalogPath или встроенный
func (c Config) LoadCatalog() (*domain.Catalog, error) {
	if c.CatalogPath == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return domain.LoadCatalog(data)
}
