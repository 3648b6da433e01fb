package engine

import (
	"fmt"

	"harvest-sun/internal/domain"
	"harvest-sun/internal/systems"
)

// handlePlay - игровая сцена. Q, H и I открывают модальные окна из любого подсостояния.
func (g *Game) handlePlay(in Input) {
	if g.naming {
		g.handleName(in)
		return
	}

	if !in.IsText {
		switch in.Key {
		case 'Q':
			g.pushDialog(DialogPaused, "Are you sure you want to exit to the main menu?")
			return
		case 'H':
			g.pushDialog(DialogHelp, "")
			return
		case 'I':
			g.pushDialog(DialogInventory, "")
			return
		}
	}

	switch g.play {
	case PlaySelecting:
		g.handleSelecting(in)
	case PlayHome:
		g.handleHome(in)
	case PlayFarm:
		g.handleFarm(in)
	case PlayShop:
		g.handleShop(in)
	}
}

// handleName принимает имя игрока строкой целиком
func (g *Game) handleName(in Input) {
	if !in.IsText {
		return
	}
	if !g.Player.SetName(in.Text) {
		g.message = fmt.Sprintf("Your name must be between 1 and %d characters long.", domain.MaxNameLength)
		return
	}
	g.naming = false
	g.message = fmt.Sprintf("Welcome to the farm, %s!", g.Player.Name)
	g.log.WithField("player", g.Player.Name).Info("player named")
}

// handleSelecting - выбор места: дом, ферма или лавка. Сначала нужно пройти обучение.
func (g *Game) handleSelecting(in Input) {
	if in.IsText {
		return
	}

	if g.tutorialActive() {
		switch in.Key {
		case KeySpace:
			g.tutorial++
		case 'Z':
			g.tutorial = len(g.cfg.Tutorial)
		}
		return
	}

	if g.place.Cycle(in) || in.Key != KeyEnter {
		return
	}

	switch PlayState(g.place.Current().Value) {
	case PlayHome:
		g.goHome()
	case PlayFarm:
		if g.Player.Energy() <= 0 {
			g.message = "You are too tired to work on the farm. Go home and get some rest."
			return
		}
		g.resetFarm()
		g.play = PlayFarm
	case PlayShop:
		g.resetShop()
		g.play = PlayShop
	}
}

// goHome - сон и завтрак. Смерть от голода сбрасывает сессию и показывает окно Game Over.
func (g *Game) goHome() {
	g.play = PlayHome
	g.message = systems.Sleep(g.Player)

	if !g.Player.IsDead() {
		return
	}

	name := g.Player.Name
	g.log.WithField("player", name).Warn("session reset after starvation")
	g.newSession(name)
	g.pushDialog(DialogGameOver, g.starvedMessage())
}

// handleHome - экран утра. Enter или пробел возвращают к выбору места.
func (g *Game) handleHome(in Input) {
	if in.IsText {
		return
	}
	if in.Key == KeyEnter || in.Key == KeySpace {
		g.play = PlaySelecting
	}
}

// leavePlace возвращает к выбору места
func (g *Game) leavePlace() {
	g.resetFarm()
	g.resetShop()
	g.play = PlaySelecting
}
