package systems

import (
	"fmt"

	"harvest-sun/internal/domain"
	"harvest-sun/pkg/logger"

	"github.com/sirupsen/logrus"
)

// --- COMMIT ---

// CommitSelection применяет текущее действие фермы ко всей очереди выделения.
// При ошибке ни одна клетка не меняется, а выделение остаётся активным.
func CommitSelection(g *domain.Grid, p *domain.Player, day int) (string, error) {
	n := g.PendingCount()
	if n == 0 {
		return "", ErrNothingSelected
	}
	if err := checkCrop(g); err != nil {
		return "", err
	}

	if !g.Commit(p, day) {
		err := reservationError(g, p, n)
		logFarm(g, p).WithError(err).WithField("plots", n).Debug("commit rejected")
		return g.Warning, err
	}

	logFarm(g, p).WithField("plots", g.Modified).Info("selection committed")
	return resultMessage(g), nil
}

// ApplyToFirst применяет текущее действие к первым n подходящим клеткам
func ApplyToFirst(g *domain.Grid, p *domain.Player, n, day int) (string, error) {
	if n < 0 {
		return "", ErrInvalidAmount
	}
	if n == 0 {
		return "", ErrNothingSelected
	}
	if err := checkCrop(g); err != nil {
		return "", err
	}

	available := g.AvailableCrop(g.Action, scope(g), day)
	if available == 0 {
		return "", ErrNoPlotsAvailable
	}

	if !g.ApplyFirst(p, n, day) {
		var err error
		if n > available {
			err = fmt.Errorf("%w: only %d", ErrNoPlotsAvailable, available)
		} else {
			err = reservationError(g, p, n)
		}
		logFarm(g, p).WithError(err).WithField("plots", n).Debug("apply rejected")
		return g.Warning, err
	}

	logFarm(g, p).WithField("plots", g.Modified).Info("action applied")
	return resultMessage(g), nil
}

// Available - сколько клеток доступно для текущего действия с учётом выбранной культуры
func Available(g *domain.Grid, day int) int {
	return g.AvailableCrop(g.Action, scope(g), day)
}

func scope(g *domain.Grid) domain.ProductType {
	if g.Action == domain.FarmWater || g.Action == domain.FarmHarvest {
		return g.CropType
	}
	return domain.ProductNone
}

func checkCrop(g *domain.Grid) error {
	if g.Action == domain.FarmSow && !g.Catalog().Valid(g.CropType) {
		return ErrNoCropChosen
	}
	return nil
}

func reservationError(g *domain.Grid, p *domain.Player, n int) error {
	if g.Action == domain.FarmSow && !p.Seeds.Get(g.CropType).Has(n) {
		return fmt.Errorf("%w: need %d, have %d", ErrNotEnoughSeeds, n, p.Seeds.Get(g.CropType).Amount)
	}
	return fmt.Errorf("%w: need %d, have %d", ErrNotEnoughEnergy, n, p.Energy())
}

func resultMessage(g *domain.Grid) string {
	return fmt.Sprintf("You've %s a total of %d plot/s.", g.Action.PastTense(), g.Modified)
}

func logFarm(g *domain.Grid, p *domain.Player) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"component": "farm",
		"action":    g.Action.String(),
		"crop":      g.Catalog().Get(g.CropType).Name,
		"day":       p.Day,
		"energy":    p.Energy(),
	})
}
