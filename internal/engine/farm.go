package engine

import (
	"errors"
	"fmt"
	"strings"

	"harvest-sun/internal/domain"
	"harvest-sun/internal/systems"
)

// farmStep - вложенное состояние фермы
type farmStep uint8

const (
	farmChoose farmStep = iota // выбор действия
	farmCrop                   // выбор культуры
	farmQueue                  // выделение клеток курсором
	farmAmount                 // ввод количества (упрощённый режим)
	farmResult                 // итог последнего действия
)

var farmStepToString = map[farmStep]string{
	farmChoose: "CHOOSE",
	farmCrop:   "CROP",
	farmQueue:  "QUEUE",
	farmAmount: "AMOUNT",
	farmResult: "RESULT",
}

func (s farmStep) String() string {
	if val, ok := farmStepToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func (g *Game) resetFarm() {
	g.Grid.ResetContext()
	g.farmStep = farmChoose
	g.amount.Clear()
}

func (g *Game) handleFarm(in Input) {
	switch g.farmStep {
	case farmChoose:
		g.farmChooseAction(in)
	case farmCrop:
		g.farmChooseCrop(in)
	case farmQueue:
		g.farmSelectPlots(in)
	case farmAmount:
		g.farmEnterAmount(in)
	case farmResult:
		if !in.IsText && in.Key == KeyEnter {
			g.resetFarm()
		}
	}
}

func (g *Game) farmChooseAction(in Input) {
	if g.farmActions.Cycle(in) || in.IsText || in.Key != KeyEnter {
		return
	}

	action := domain.FarmAction(g.farmActions.Current().Value)
	if action == domain.FarmNone {
		g.leavePlace()
		return
	}
	if action.Mutates() && g.Player.Energy() <= 0 {
		g.message = "You are too tired to keep working. Go home and get some rest."
		g.leavePlace()
		return
	}

	day := g.Player.Day
	switch action {
	case domain.FarmInspect:
		g.Grid.SetContext(domain.FarmInspect, domain.ProductNone)
		g.Grid.StartSelecting()
		g.farmStep = farmQueue

	case domain.FarmSow:
		if g.Grid.Available(domain.FarmSow, day) == 0 {
			g.message = "There are no tilled plots to sow."
			return
		}
		g.crops = g.cropSelector(func(t domain.ProductType) bool {
			return g.Player.Seeds.Get(t).Amount > 0
		})
		if !hasProduct(g.crops) {
			g.message = "You do not have any seeds. Buy some at the shop."
			return
		}
		g.Grid.SetContext(domain.FarmSow, domain.ProductNone)
		g.farmStep = farmCrop

	default:
		if g.Grid.Available(action, day) == 0 {
			g.message = fmt.Sprintf("There are no plots you can %s right now.", strings.ToLower(action.String()))
			return
		}
		g.Grid.SetContext(action, domain.ProductNone)
		if g.cfg.Mode.Minified() && action != domain.FarmTill {
			g.crops = g.cropSelector(func(t domain.ProductType) bool {
				return g.Grid.AvailableCrop(action, t, day) > 0
			})
			g.farmStep = farmCrop
			return
		}
		g.beginTargeting()
	}
}

// beginTargeting переходит к выбору клеток: курсором или вводом количества
func (g *Game) beginTargeting() {
	if g.cfg.Mode.Minified() {
		g.amount.Clear()
		g.farmStep = farmAmount
		return
	}
	g.Grid.StartSelecting()
	g.farmStep = farmQueue
}

func (g *Game) farmChooseCrop(in Input) {
	if g.crops.Cycle(in) || in.IsText || in.Key != KeyEnter {
		return
	}

	opt := g.crops.Current()
	if opt.Value == int(domain.ProductNone) {
		g.resetFarm()
		return
	}
	if !opt.Enabled {
		return
	}
	g.Grid.CropType = domain.ProductType(opt.Value)
	g.beginTargeting()
}

func (g *Game) farmSelectPlots(in Input) {
	if in.IsText {
		return
	}

	switch in.Key {
	case 'W':
		g.Grid.MoveUp()
	case 'A':
		g.Grid.MoveLeft()
	case 'S':
		g.Grid.MoveDown()
	case 'D':
		g.Grid.MoveRight()
	case 'E':
		if !g.Grid.Toggle(g.Player.Day) && g.Grid.Action.Mutates() {
			g.message = fmt.Sprintf("You cannot %s this plot.", strings.ToLower(g.Grid.Action.String()))
		}
	case KeyEnter:
		g.farmCommit()
	}
}

func (g *Game) farmCommit() {
	if g.Grid.Action == domain.FarmInspect {
		g.resetFarm()
		return
	}
	if g.Grid.PendingCount() == 0 {
		// Ноль выбранных клеток - отмена
		g.resetFarm()
		g.message = "No plots were selected."
		return
	}

	msg, err := systems.CommitSelection(g.Grid, g.Player, g.Player.Day)
	if err != nil {
		g.message = farmFeedback(msg, err)
		return
	}
	g.message = msg
	g.farmStep = farmResult
}

func (g *Game) farmEnterAmount(in Input) {
	if in.IsText {
		return
	}

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
			g.resetFarm()
			return
		}
		msg, err := systems.ApplyToFirst(g.Grid, g.Player, n, g.Player.Day)
		if err != nil {
			g.message = farmFeedback(msg, err)
			return
		}
		g.message = msg
		g.farmStep = farmResult
	}
}

func farmFeedback(msg string, err error) string {
	if msg != "" {
		return msg
	}
	switch {
	case errors.Is(err, systems.ErrNothingSelected):
		return "No plots were selected."
	case errors.Is(err, systems.ErrNoPlotsAvailable):
		return "There are not that many plots available."
	case errors.Is(err, systems.ErrNoCropChosen):
		return "Choose a crop first."
	case errors.Is(err, systems.ErrNotEnoughSeeds):
		return "You do not have enough seeds."
	default:
		return "You do not have enough energy."
	}
}

// cropSelector строит селектор товаров каталога с пунктом "go back" в конце
func (g *Game) cropSelector(enabled func(domain.ProductType) bool) *Selector {
	opts := make([]Option, 0, g.catalog.Size())
	for _, t := range g.catalog.Types() {
		opts = append(opts, Option{Label: g.catalog.Get(t).Name, Value: int(t)})
	}
	opts = append(opts, Option{Label: "go back", Value: int(domain.ProductNone)})

	s := NewSelector(opts...)
	for i, t := range g.catalog.Types() {
		s.SetEnabled(i, enabled(t))
	}
	s.Reset()
	return s
}
