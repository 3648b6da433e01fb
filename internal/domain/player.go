package domain

import "strings"

// PlayerConfig - стартовые параметры экономики
type PlayerConfig struct {
	StartingGold   int
	StartingEnergy int
	BreakfastCost  int
	MaxStarvedDays int
}

// DefaultPlayerConfig возвращает стандартные параметры
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		StartingGold:   DefaultStartingGold,
		StartingEnergy: DefaultStartingEnergy,
		BreakfastCost:  DefaultBreakfastCost,
		MaxStarvedDays: DefaultMaxStarvedDays,
	}
}

// Player - экономическое состояние игрока.
// Gold и Energy меняются только через UpdateGold/UpdateEnergy и никогда не уходят в минус.
type Player struct {
	Name           string
	Day            int
	StarvedDays    int // подряд без завтрака
	StarvingToday  bool
	DefaultEnergy  int
	BreakfastCost  int
	MaxStarvedDays int

	gold   int
	energy int

	Seeds Inventory
	Crops Inventory

	catalog *Catalog
}

// NewPlayer создает игрока с пустыми запасами
func NewPlayer(name string, catalog *Catalog, cfg PlayerConfig) *Player {
	return &Player{
		Name:           name,
		DefaultEnergy:  cfg.StartingEnergy,
		BreakfastCost:  cfg.BreakfastCost,
		MaxStarvedDays: cfg.MaxStarvedDays,
		gold:           max(cfg.StartingGold, 0),
		energy:         max(cfg.StartingEnergy, 0),
		Seeds:          NewInventory(catalog),
		Crops:          NewInventory(catalog),
		catalog:        catalog,
	}
}

func (p *Player) Gold() int   { return p.gold }
func (p *Player) Energy() int { return p.energy }

// Catalog возвращает каталог, по которому заведены запасы игрока
func (p *Player) Catalog() *Catalog { return p.catalog }

// SetName задаёт имя. Пустые и слишком длинные имена отклоняются.
func (p *Player) SetName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return false
	}
	p.Name = name
	return true
}

// UpdateGold применяет delta, если золото не уйдёт в минус
func (p *Player) UpdateGold(delta int) bool {
	if p.gold+delta < 0 {
		return false
	}
	p.gold += delta
	return true
}

// UpdateEnergy применяет delta, если энергия не уйдёт в минус
func (p *Player) UpdateEnergy(delta int) bool {
	if p.energy+delta < 0 {
		return false
	}
	p.energy += delta
	return true
}

// SpendEnergy тратит по единице энергии на каждую из n клеток
func (p *Player) SpendEnergy(n int) bool {
	if n < 0 {
		return false
	}
	return p.UpdateEnergy(-n)
}

// SowSeeds резервирует n семян и n энергии. Семена списываются только после энергии.
func (p *Player) SowSeeds(t ProductType, n int) bool {
	seeds := p.Seeds.Get(t)
	if n < 0 || !seeds.Has(n) {
		return false
	}
	if !p.SpendEnergy(n) {
		return false
	}
	seeds.Update(-n)
	return true
}

// HarvestCrop зачисляет одну единицу урожая
func (p *Player) HarvestCrop(t ProductType) {
	p.Crops.Get(t).Update(1)
}

// BuySeeds списывает cost золота и зачисляет n семян. Без золота ничего не меняется.
func (p *Player) BuySeeds(t ProductType, n, cost int) bool {
	if n <= 0 || cost < 0 {
		return false
	}
	if !p.UpdateGold(-cost) {
		return false
	}
	p.Seeds.Get(t).Update(n)
	return true
}

// SellCrops списывает n единиц урожая и зачисляет value золота
func (p *Player) SellCrops(t ProductType, n, value int) bool {
	if n <= 0 || value < 0 {
		return false
	}
	if !p.Crops.Get(t).Update(-n) {
		return false
	}
	p.UpdateGold(value)
	return true
}

// GoHome - переход к следующему дню. Возвращает true, если игрок позавтракал.
// Сначала проверяется смерть от голода, потом оплачивается завтрак.
func (p *Player) GoHome() bool {
	p.Day++
	p.StarvedDays++
	p.StarvingToday = true
	p.energy = p.DefaultEnergy

	if p.StarvedDays <= p.MaxStarvedDays && p.UpdateGold(-p.BreakfastCost) {
		p.StarvedDays = 0
		p.StarvingToday = false
		return true
	}
	return false
}

// IsDead - игрок не смог позавтракать больше MaxStarvedDays дней подряд
func (p *Player) IsDead() bool {
	return p.StarvedDays > p.MaxStarvedDays
}
