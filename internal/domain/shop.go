package domain

// Shop - лавка с бесконечным запасом семян
type Shop struct {
	Stock    Inventory
	Action   ShopAction
	CropType ProductType
}

// NewShop создает лавку с полным запасом каждого товара
func NewShop(c *Catalog) *Shop {
	stock := NewInventory(c)
	for _, t := range c.Types() {
		stock.Get(t).Amount = ShopStockAmount
	}
	return &Shop{Stock: stock}
}

// Reset сбрасывает текущее действие и товар
func (s *Shop) Reset() {
	s.Action = ShopNone
	s.CropType = ProductNone
}

// Buy продаёт игроку n семян. Возвращает стоимость сделки.
// Запас лавки косметический и покупку не ограничивает.
func (s *Shop) Buy(p *Player, t ProductType, n int) (int, bool) {
	if t == ProductNone || n <= 0 {
		return 0, false
	}
	stock := s.Stock.Get(t)
	cost := stock.BuyCost(n)
	if !p.BuySeeds(t, n, cost) {
		return cost, false
	}
	stock.Update(-n)
	return cost, true
}

// Sell покупает у игрока n единиц урожая. Возвращает выручку.
func (s *Shop) Sell(p *Player, t ProductType, n int) (int, bool) {
	if t == ProductNone || n <= 0 {
		return 0, false
	}
	stock := s.Stock.Get(t)
	value := stock.SellValue(n)
	if !p.SellCrops(t, n, value) {
		return value, false
	}
	stock.Update(n)
	return value, true
}

// Affordable - сколько единиц товара игрок может купить на своё золото
func (s *Shop) Affordable(p *Player, t ProductType) int {
	price := s.Stock.Get(t).BuyPrice
	if price <= 0 {
		return ShopStockAmount
	}
	return p.Gold() / price
}
