package engine

import (
	"fmt"

	"harvest-sun/internal/domain"
	"harvest-sun/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DebugPlayerName - имя игрока в отладочном режиме
const DebugPlayerName = "DEBUG MODE"

// debugStockAmount - стартовый запас семян и урожая в отладочном режиме
const debugStockAmount = 100

// sceneHandler обрабатывает одно событие ввода в своей сцене
type sceneHandler func(in Input)

// Game - контроллер сцен. Единственный владелец Player, Grid и Shop:
// принимает одно событие ввода, выполняет ровно один переход и возвращает управление.
type Game struct {
	cfg     Config
	catalog *domain.Catalog

	Player *domain.Player
	Grid   *domain.Grid
	Shop   *domain.Shop

	scene     Scene
	prevScene Scene
	play      PlayState
	dialog    DialogState

	naming   bool
	tutorial int

	menu        *Selector
	place       *Selector
	farmActions *Selector
	shopActions *Selector
	crops       *Selector
	confirm     *Selector

	farmStep farmStep
	shopStep shopStep
	amount   NumericInput

	message       string
	dialogMessage string

	handlers map[Scene]sceneHandler
	log      *logrus.Entry
}

// NewGame создает игру. При catalog == nil используется встроенный каталог.
func NewGame(cfg Config, catalog *domain.Catalog) *Game {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}

	g := &Game{
		cfg:     cfg,
		catalog: catalog,
		scene:   SceneMenu,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"mode":      cfg.Mode.String(),
		}),
	}

	g.menu = NewSelector(
		Option{Label: "begin", Value: int(ScenePlay)},
		Option{Label: "how to play", Value: int(SceneGuide)},
		Option{Label: "controls", Value: int(SceneControls)},
		Option{Label: "author", Value: int(SceneAuthor)},
		Option{Label: "quit", Value: int(SceneQuit)},
	)
	g.place = NewSelector(
		Option{Label: "go home", Value: int(PlayHome)},
		Option{Label: "visit farm", Value: int(PlayFarm)},
		Option{Label: "visit shop", Value: int(PlayShop)},
	)
	g.farmActions = NewSelector(
		Option{Label: "inspect", Value: int(domain.FarmInspect)},
		Option{Label: "till", Value: int(domain.FarmTill)},
		Option{Label: "sow", Value: int(domain.FarmSow)},
		Option{Label: "water", Value: int(domain.FarmWater)},
		Option{Label: "harvest", Value: int(domain.FarmHarvest)},
		Option{Label: "do nothing", Value: int(domain.FarmNone)},
	)
	g.shopActions = NewSelector(
		Option{Label: "buy", Value: int(domain.ShopBuy)},
		Option{Label: "sell", Value: int(domain.ShopSell)},
		Option{Label: "do nothing", Value: int(domain.ShopNone)},
	)
	g.confirm = NewSelector(
		Option{Label: "Okay", Value: 1},
		Option{Label: "No", Value: 0},
	)
	g.crops = g.cropSelector(func(domain.ProductType) bool { return true })

	g.newSession("")
	g.registerHandlers()

	if cfg.SkipTutorial {
		g.tutorial = len(cfg.Tutorial)
	}
	if cfg.Mode == ModeDebug {
		g.seedDebug()
	}

	return g
}

func (g *Game) registerHandlers() {
	g.handlers = map[Scene]sceneHandler{
		SceneMenu:     g.handleMenu,
		ScenePlay:     g.handlePlay,
		SceneGuide:    g.handleInfo,
		SceneControls: g.handleInfo,
		SceneAuthor:   g.handleInfo,
		SceneDialog:   g.handleDialog,
	}
}

// Step обрабатывает одно событие ввода
func (g *Game) Step(in Input) {
	if g.scene == SceneQuit {
		return
	}
	g.message = ""

	handler, ok := g.handlers[g.scene]
	if !ok {
		g.log.WithField("scene", g.scene.String()).Warn("no handler for scene")
		return
	}
	handler(in)
}

// newSession создает свежие Player, Grid и Shop, сохраняя только имя
func (g *Game) newSession(name string) {
	g.Player = domain.NewPlayer(name, g.catalog, g.cfg.PlayerConfig())
	g.Grid = domain.NewGrid(g.cfg.FarmWidth, g.cfg.FarmHeight, g.catalog)
	g.Shop = domain.NewShop(g.catalog)
	g.play = PlaySelecting
	g.farmStep = farmChoose
	g.shopStep = shopChoose
	g.amount.Clear()
}

// seedDebug заполняет ферму и запасы для отладки и сразу открывает нужную сцену
func (g *Game) seedDebug() {
	g.Player.Name = DebugPlayerName
	for _, t := range g.catalog.Types() {
		g.Player.Seeds.Get(t).Update(debugStockAmount)
		g.Player.Crops.Get(t).Update(debugStockAmount)
	}

	products := g.catalog.Size() - 1
	for i := 0; i < g.Grid.Len(); i++ {
		plot := g.Grid.PlotAt(i)
		plot.State = domain.PlotState(i % 3)
		if plot.State != domain.PlotPlanted {
			continue
		}
		t := domain.ProductType(i%products + 1)
		crop := domain.NewCrop(t, g.catalog, 0)
		req := crop.WaterRequirement()
		if i%2 == 1 {
			crop.WaterGiven = i % req
		} else {
			crop.WaterGiven = req
		}
		crop.DayLastWatered = 0
		plot.Crop = crop
	}

	g.tutorial = len(g.cfg.Tutorial)
	g.scene = ScenePlay
	g.play = g.cfg.DebugScene

	g.log.WithField("play", g.play.String()).Info("debug session seeded")
}

// --- СЦЕНЫ ---

func (g *Game) setScene(s Scene) {
	if g.scene != s {
		g.log.WithFields(logrus.Fields{"from": g.scene.String(), "to": s.String()}).Debug("scene changed")
	}
	g.scene = s
}

func (g *Game) pushDialog(d DialogState, msg string) {
	g.prevScene = g.scene
	g.dialog = d
	g.dialogMessage = msg
	if d == DialogPaused {
		g.confirm.Set(1)
	}
	g.setScene(SceneDialog)
}

func (g *Game) popDialog(next Scene) {
	g.dialog = DialogNone
	g.dialogMessage = ""
	g.setScene(next)
}

// --- ДОСТУП ДЛЯ РЕНДЕРА ---

func (g *Game) Scene() Scene             { return g.scene }
func (g *Game) PlayState() PlayState     { return g.play }
func (g *Game) Dialog() DialogState      { return g.dialog }
func (g *Game) Message() string          { return g.message }
func (g *Game) Config() Config           { return g.cfg }
func (g *Game) Catalog() *domain.Catalog { return g.catalog }

// Done - игрок вышел из игры
func (g *Game) Done() bool {
	return g.scene == SceneQuit
}

// WantsText - ожидается ввод строки (имя игрока), а не отдельных клавиш
func (g *Game) WantsText() bool {
	return g.scene == ScenePlay && g.naming
}

// TutorialLine возвращает текущую строку обучения или пустую строку
func (g *Game) TutorialLine() string {
	if !g.tutorialActive() {
		return ""
	}
	return g.cfg.Tutorial[g.tutorial]
}

func (g *Game) tutorialActive() bool {
	return g.tutorial < len(g.cfg.Tutorial)
}

func (g *Game) starvedMessage() string {
	return fmt.Sprintf("You could not afford breakfast for %d consecutive days!", g.cfg.MaxStarvedDays+1)
}
