package systems

import (
	"fmt"

	"harvest-sun/internal/domain"
	"harvest-sun/pkg/logger"

	"github.com/sirupsen/logrus"
)

// --- BUY ---

func Buy(shop *domain.Shop, p *domain.Player, t domain.ProductType, n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidAmount
	}
	if t == domain.ProductNone {
		return "", ErrNoCropChosen
	}

	cost, ok := shop.Buy(p, t, n)
	if !ok {
		err := fmt.Errorf("%w: need %d, have %d", ErrNotEnoughGold, cost, p.Gold())
		logTrade(p, "BUY", t, n).WithError(err).Debug("purchase rejected")
		return "You do not have enough gold.", err
	}

	logTrade(p, "BUY", t, n).WithField("cost", cost).Info("seeds bought")
	return fmt.Sprintf("You bought %d %s seed/s for %d gold.", n, productName(p, t), cost), nil
}

// --- SELL ---

func Sell(shop *domain.Shop, p *domain.Player, t domain.ProductType, n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidAmount
	}
	if t == domain.ProductNone {
		return "", ErrNoCropChosen
	}

	have := p.Crops.Get(t).Amount
	value, ok := shop.Sell(p, t, n)
	if !ok {
		err := fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCrops, n, have)
		logTrade(p, "SELL", t, n).WithError(err).Debug("sale rejected")
		return "You do not have enough crops.", err
	}

	logTrade(p, "SELL", t, n).WithField("value", value).Info("crops sold")
	return fmt.Sprintf("You sold %d %s for %d gold.", n, productName(p, t), value), nil
}

// --- HOME ---

// Sleep переводит игрока в следующий день и сообщает, удалось ли позавтракать
func Sleep(p *domain.Player) string {
	ate := p.GoHome()

	entry := logger.Log.WithFields(logrus.Fields{
		"component": "home",
		"player":    p.Name,
		"day":       p.Day,
		"gold":      p.Gold(),
		"starved":   p.StarvedDays,
	})

	switch {
	case p.IsDead():
		entry.Warn("player starved to death")
		return fmt.Sprintf("%s could not afford breakfast for too long and starved.", p.Name)
	case ate:
		entry.Info("new day")
		return fmt.Sprintf("Day %d. You paid %d gold for breakfast.", p.Day, p.BreakfastCost)
	default:
		entry.Warn("no breakfast")
		return fmt.Sprintf("Day %d. You could not afford breakfast (%d day/s starving).", p.Day, p.StarvedDays)
	}
}

func productName(p *domain.Player, t domain.ProductType) string {
	return p.Catalog().Get(t).Name
}

func logTrade(p *domain.Player, action string, t domain.ProductType, n int) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"action":    action,
		"product":   productName(p, t),
		"amount":    n,
		"gold":      p.Gold(),
	})
}
