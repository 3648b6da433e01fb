package engine

// handleMenu - главное меню: X/C выбор, Enter переход
func (g *Game) handleMenu(in Input) {
	if g.menu.Cycle(in) || in.IsText || in.Key != KeyEnter {
		return
	}

	next := Scene(g.menu.Current().Value)
	switch next {
	case ScenePlay:
		g.enterPlay()
	case SceneQuit:
		g.log.Info("player quit")
		g.setScene(SceneQuit)
	default:
		g.setScene(next)
	}
}

// handleInfo - экраны справки, управления и об авторе. Q возвращает в меню.
func (g *Game) handleInfo(in Input) {
	if !in.IsText && in.Key == 'Q' {
		g.setScene(SceneMenu)
	}
}

func (g *Game) enterPlay() {
	g.setScene(ScenePlay)
	if g.Player.Name == "" {
		g.naming = true
	}
}
