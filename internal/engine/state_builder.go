package engine

import (
	"harvest-sun/internal/domain"
	"harvest-sun/pkg/api"
)

// BuildSnapshot создает снимок игры для рендерера. Состояние игры не меняется.
func (g *Game) BuildSnapshot() *api.Snapshot {
	snap := &api.Snapshot{
		Scene:         g.scene.String(),
		Play:          g.play.String(),
		Dialog:        g.dialog.String(),
		Mode:          g.cfg.Mode.String(),
		Minified:      g.cfg.Mode.Minified(),
		Message:       g.message,
		DialogMessage: g.dialogMessage,
		Player:        g.buildPlayerView(),
		Farm:          g.buildFarmView(),
		Shop:          g.buildShopView(),
	}

	if g.scene == ScenePlay && g.play == PlaySelecting && !g.naming {
		snap.Tutorial = g.TutorialLine()
	}

	switch {
	case g.WantsText():
		snap.Prompt = "NAME"
	case g.amountActive():
		snap.Prompt = "AMOUNT"
		snap.Input = g.amount.String()
	}

	if name, sel := g.activeSelector(); sel != nil {
		snap.Selector = buildSelectorView(name, sel)
	}

	return snap
}

func (g *Game) amountActive() bool {
	if g.scene != ScenePlay {
		return false
	}
	return (g.play == PlayFarm && g.farmStep == farmAmount) ||
		(g.play == PlayShop && g.shopStep == shopAmount)
}

// activeSelector возвращает селектор, который сейчас принимает X/C
func (g *Game) activeSelector() (string, *Selector) {
	switch g.scene {
	case SceneMenu:
		return "menu", g.menu
	case SceneDialog:
		if g.dialog == DialogPaused {
			return "confirm", g.confirm
		}
		return "", nil
	case ScenePlay:
		if g.naming {
			return "", nil
		}
	default:
		return "", nil
	}

	switch g.play {
	case PlaySelecting:
		if g.tutorialActive() {
			return "", nil
		}
		return "place", g.place
	case PlayFarm:
		switch g.farmStep {
		case farmChoose:
			return "farm", g.farmActions
		case farmCrop:
			return "crop", g.crops
		}
	case PlayShop:
		switch g.shopStep {
		case shopChoose:
			return "shop", g.shopActions
		case shopCrop:
			return "crop", g.crops
		}
	}
	return "", nil
}

func buildSelectorView(name string, s *Selector) *api.SelectorView {
	view := &api.SelectorView{Name: name, Index: s.Index()}
	for _, o := range s.Options() {
		view.Options = append(view.Options, api.OptionView{Label: o.Label, Enabled: o.Enabled})
	}
	return view
}

func (g *Game) buildPlayerView() api.PlayerView {
	p := g.Player
	return api.PlayerView{
		Name:          p.Name,
		Day:           p.Day,
		Gold:          p.Gold(),
		Energy:        p.Energy(),
		MaxEnergy:     p.DefaultEnergy,
		StarvedDays:   p.StarvedDays,
		StarvingToday: p.StarvingToday,
		IsDead:        p.IsDead(),
		Seeds:         g.buildStockViews(p.Seeds),
		Crops:         g.buildStockViews(p.Crops),
	}
}

func (g *Game) buildStockViews(inv domain.Inventory) []api.StockView {
	views := make([]api.StockView, 0, g.catalog.Size()-1)
	for _, t := range g.catalog.Types() {
		product := g.catalog.Get(t)
		stock := inv.Get(t)
		views = append(views, api.StockView{
			Code:      product.Code,
			Name:      product.Name,
			Amount:    stock.Amount,
			BuyPrice:  stock.BuyPrice,
			SellPrice: stock.SellPrice,
		})
	}
	return views
}

func (g *Game) buildFarmView() api.FarmView {
	grid := g.Grid
	day := g.Player.Day

	view := api.FarmView{
		Width:     grid.Width,
		Height:    grid.Height,
		CursorX:   grid.CursorX,
		CursorY:   grid.CursorY,
		Selecting: grid.IsSelecting(),
		Action:    grid.Action.String(),
		Pending:   grid.PendingCount(),
		Modified:  grid.Modified,
		Warning:   grid.Warning,
		Available: map[string]int{
			domain.FarmTill.String():    grid.Available(domain.FarmTill, day),
			domain.FarmSow.String():     grid.Available(domain.FarmSow, day),
			domain.FarmWater.String():   grid.Available(domain.FarmWater, day),
			domain.FarmHarvest.String(): grid.Available(domain.FarmHarvest, day),
		},
		Cells: make([]api.CellView, 0, grid.Len()),
	}
	if grid.CropType != domain.ProductNone {
		view.Crop = g.catalog.Get(grid.CropType).Name
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			i := grid.Index(x, y)
			plot := grid.PlotAt(i)
			cell := api.CellView{
				X:       x,
				Y:       y,
				State:   plot.State.String(),
				Stage:   plot.Stage(),
				Pending: grid.IsPending(i),
			}
			if plot.Crop != nil {
				cell.Code = plot.Crop.Product().Code
				cell.WaterGiven = plot.Crop.WaterGiven
				cell.WaterRequired = plot.Crop.WaterRequirement()
				cell.WateredToday = plot.Crop.WateredOn(day)
			}
			view.Cells = append(view.Cells, cell)
		}
	}
	return view
}

func (g *Game) buildShopView() api.ShopView {
	view := api.ShopView{
		Action: g.Shop.Action.String(),
		Stock:  g.buildStockViews(g.Shop.Stock),
	}
	if g.Shop.CropType != domain.ProductNone {
		view.Crop = g.catalog.Get(g.Shop.CropType).Name
	}
	return view
}
