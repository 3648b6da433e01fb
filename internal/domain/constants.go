package domain

// Экономика игрока по умолчанию
const (
	DefaultStartingGold   = 50
	DefaultStartingEnergy = 30
	DefaultBreakfastCost  = 10
	DefaultMaxStarvedDays = 3
	MaxNameLength         = 32
)

// Размеры фермы
const (
	DefaultFarmWidth  = 10
	DefaultFarmHeight = 3
	MaxFarmWidth      = 16
	MaxFarmHeight     = 16
)

// ShopStockAmount - запас лавки. Формально конечный, но покупку не ограничивает.
const ShopStockAmount = 1 << 24

// Стадии роста культуры
const (
	StageSeedling = 0
	StageGrowing  = 1
	StageRipe     = 2
)

// NeverWatered - значение DayLastWatered для культуры, которую ещё не поливали
const NeverWatered = -1
