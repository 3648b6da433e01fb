package engine

// handleDialog - модальные окна. Пока окно открыто, игра не получает ввод.
func (g *Game) handleDialog(in Input) {
	if in.IsText {
		return
	}

	switch g.dialog {
	case DialogPaused:
		if g.confirm.Cycle(in) || in.Key != KeyEnter {
			return
		}
		if g.confirm.Current().Value == 1 {
			g.leavePlace()
			g.popDialog(SceneMenu)
			return
		}
		g.popDialog(g.prevScene)

	case DialogHelp, DialogInventory:
		if in.Key == 'Q' {
			g.popDialog(g.prevScene)
		}

	case DialogGameOver:
		// Сессия уже пересоздана, остаётся только подтвердить
		if in.Key == KeyEnter {
			g.popDialog(SceneMenu)
		}

	default:
		g.popDialog(g.prevScene)
	}
}
