package domain

// Stock - счётчик товара с ценами покупки и продажи
type Stock struct {
	Type      ProductType
	BuyPrice  int
	SellPrice int
	Amount    int
}

// NewStock создает пустой запас товара по записи каталога
func NewStock(t ProductType, p Product) *Stock {
	return &Stock{
		Type:      t,
		BuyPrice:  p.BuyPrice,
		SellPrice: p.SellPrice,
	}
}

// Has - хватает ли n единиц
func (s *Stock) Has(n int) bool {
	return n >= 0 && s.Amount >= n
}

// Update меняет количество. Отказывает, если результат уйдёт в минус.
func (s *Stock) Update(delta int) bool {
	if s.Amount+delta < 0 {
		return false
	}
	s.Amount += delta
	return true
}

// BuyCost - цена покупки n единиц
func (s *Stock) BuyCost(n int) int {
	return n * s.BuyPrice
}

// SellValue - выручка за n единиц
func (s *Stock) SellValue(n int) int {
	return n * s.SellPrice
}

// Inventory - запасы по всем типам каталога. Индекс = ProductType.
type Inventory []*Stock

// NewInventory создает запасы для каждого товара каталога (включая ProductNone)
func NewInventory(c *Catalog) Inventory {
	inv := make(Inventory, c.Size())
	for i := range inv {
		t := ProductType(i)
		inv[i] = NewStock(t, c.Get(t))
	}
	return inv
}

// Get возвращает запас по типу. Выход за границы заворачивается по модулю.
func (inv Inventory) Get(t ProductType) *Stock {
	return inv[int(t)%len(inv)]
}

// Total - суммарное количество по всем товарам
func (inv Inventory) Total() int {
	total := 0
	for _, s := range inv {
		total += s.Amount
	}
	return total
}
