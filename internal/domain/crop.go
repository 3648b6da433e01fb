package domain

// Crop - посаженная культура. Параметры товара читаются из общего каталога.
type Crop struct {
	Type           ProductType
	WaterGiven     int
	DayPlanted     int
	DayLastWatered int

	catalog *Catalog
}

// NewCrop создает культуру, посаженную в день day
func NewCrop(t ProductType, catalog *Catalog, day int) *Crop {
	return &Crop{
		Type:           t,
		DayPlanted:     day,
		DayLastWatered: NeverWatered,
		catalog:        catalog,
	}
}

// Product возвращает запись каталога для этой культуры
func (c *Crop) Product() Product {
	return c.catalog.Get(c.Type)
}

// WaterRequirement - сколько поливов нужно до созревания
func (c *Crop) WaterRequirement() int {
	return c.Product().WaterRequirement
}

// Stage возвращает стадию роста: 0, 1 или 2 (созрела)
func (c *Crop) Stage() int {
	req := c.WaterRequirement()
	if req <= 0 {
		return StageRipe
	}
	stage := 2 * c.WaterGiven / req
	if stage > StageRipe {
		stage = StageRipe
	}
	return stage
}

// IsRipe - можно собирать
func (c *Crop) IsRipe() bool {
	return c.Stage() == StageRipe
}

// WateredOn - поливали ли культуру в этот день (или позже)
func (c *Crop) WateredOn(day int) bool {
	return c.DayLastWatered >= day
}

// NeedsWater - можно ли полить культуру в день day
func (c *Crop) NeedsWater(day int) bool {
	return !c.WateredOn(day) && c.WaterGiven < c.WaterRequirement()
}

// Water поливает культуру. Не больше одного раза в день и не сверх нормы.
func (c *Crop) Water(day int) bool {
	if !c.NeedsWater(day) {
		return false
	}
	c.WaterGiven++
	c.DayLastWatered = day
	return true
}
