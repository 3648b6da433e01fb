package engine

import (
	"errors"

	"harvest-sun/internal/domain"
	"harvest-sun/internal/systems"
)

// shopStep - вложенное состояние лавки
type shopStep uint8

const (
	shopChoose shopStep = iota
	shopCrop
	shopAmount
)

var shopStepToString = map[shopStep]string{
	shopChoose: "CHOOSE",
	shopCrop:   "CROP",
	shopAmount: "AMOUNT",
}

func (s shopStep) String() string {
	if val, ok := shopStepToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func (g *Game) resetShop() {
	g.Shop.Reset()
	g.shopStep = shopChoose
	g.amount.Clear()
}

func (g *Game) handleShop(in Input) {
	if in.IsText {
		return
	}
	switch g.shopStep {
	case shopChoose:
		g.shopChooseAction(in)
	case shopCrop:
		g.shopChooseCrop(in)
	case shopAmount:
		g.shopEnterAmount(in)
	}
}

func (g *Game) shopChooseAction(in Input) {
	if g.shopActions.Cycle(in) || in.Key != KeyEnter {
		return
	}

	action := domain.ShopAction(g.shopActions.Current().Value)
	switch action {
	case domain.ShopBuy:
		g.crops = g.cropSelector(func(t domain.ProductType) bool {
			return g.Shop.Affordable(g.Player, t) > 0
		})
		if !hasProduct(g.crops) {
			g.message = "You cannot afford any seeds."
			return
		}
	case domain.ShopSell:
		g.crops = g.cropSelector(func(t domain.ProductType) bool {
			return g.Player.Crops.Get(t).Amount > 0
		})
		if !hasProduct(g.crops) {
			g.message = "You have no crops to sell."
			return
		}
	default:
		g.leavePlace()
		return
	}

	g.Shop.Action = action
	g.shopStep = shopCrop
}

// hasProduct - в селекторе доступен хотя бы один товар, кроме "go back"
func hasProduct(s *Selector) bool {
	for _, o := range s.Options() {
		if o.Enabled && o.Value != int(domain.ProductNone) {
			return true
		}
	}
	return false
}

func (g *Game) shopChooseCrop(in Input) {
	if g.crops.Cycle(in) || in.Key != KeyEnter {
		return
	}

	opt := g.crops.Current()
	if opt.Value == int(domain.ProductNone) {
		g.resetShop()
		return
	}
	if !opt.Enabled {
		return
	}
	g.Shop.CropType = domain.ProductType(opt.Value)
	g.amount.Clear()
	g.shopStep = shopAmount
}

func (g *Game) shopEnterAmount(in Input) {
	switch {
	case in.IsDigit():
		g.amount.Append(in.Key)
	case in.Key == KeyBackspace:
		g.amount.Backspace()
	case in.Key == KeyEnter:
		n, err := g.amount.Value()
		g.amount.Clear()
		if err != nil {
			g.message = "Please enter a valid number."
			return
		}
		if n == 0 {
			g.resetShop()
			return
		}

		var msg string
		if g.Shop.Action == domain.ShopBuy {
			msg, err = systems.Buy(g.Shop, g.Player, g.Shop.CropType, n)
		} else {
			msg, err = systems.Sell(g.Shop, g.Player, g.Shop.CropType, n)
		}
		if err != nil {
			g.message = shopFeedback(msg, err)
			return
		}
		g.resetShop()
		g.message = msg
	}
}

func shopFeedback(msg string, err error) string {
	if msg != "" {
		return msg
	}
	if errors.Is(err, systems.ErrNoCropChosen) {
		return "Choose a product first."
	}
	return "That amount is not valid."
}
