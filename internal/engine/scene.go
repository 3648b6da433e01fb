package engine

import "strings"

// Scene - верхнеуровневая сцена игры
type Scene uint8

const (
	SceneMenu Scene = iota
	ScenePlay
	SceneGuide
	SceneControls
	SceneAuthor
	SceneDialog
	SceneQuit
)

var sceneToString = map[Scene]string{
	SceneMenu:     "MENU",
	ScenePlay:     "PLAY",
	SceneGuide:    "GUIDE",
	SceneControls: "CONTROLS",
	SceneAuthor:   "AUTHOR",
	SceneDialog:   "DIALOG",
	SceneQuit:     "QUIT",
}

func (s Scene) String() string {
	if val, ok := sceneToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// PlayState - подсостояние сцены Play
type PlayState uint8

const (
	PlaySelecting PlayState = iota
	PlayHome
	PlayFarm
	PlayShop
)

var playStringToState = map[string]PlayState{
	"PLAY": PlaySelecting,
	"HOME": PlayHome,
	"FARM": PlayFarm,
	"SHOP": PlayShop,
}

var playStateToString = map[PlayState]string{
	PlaySelecting: "SELECTING",
	PlayHome:      "HOME",
	PlayFarm:      "FARM",
	PlayShop:      "SHOP",
}

// ParsePlayState конвертирует имя сцены из аргументов запуска ("play", "home", "farm", "shop")
func ParsePlayState(s string) (PlayState, bool) {
	val, ok := playStringToState[strings.ToUpper(s)]
	return val, ok
}

func (p PlayState) String() string {
	if val, ok := playStateToString[p]; ok {
		return val
	}
	return "UNKNOWN"
}

// DialogState - модальное окно поверх игры
type DialogState uint8

const (
	DialogNone DialogState = iota
	DialogPaused
	DialogHelp
	DialogInventory
	DialogGameOver
)

var dialogToString = map[DialogState]string{
	DialogNone:      "NONE",
	DialogPaused:    "PAUSED",
	DialogHelp:      "HELP",
	DialogInventory: "INVENTORY",
	DialogGameOver:  "GAMEOVER",
}

func (d DialogState) String() string {
	if val, ok := dialogToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Mode - режим запуска
type Mode uint8

const (
	// ModeDefault - упрощённый интерфейс: на ферме вводится количество клеток
	ModeDefault Mode = iota
	// ModeDebug - полный интерфейс, заполненная ферма и запасы
	ModeDebug
	// ModeFull - полный интерфейс с выделением клеток курсором
	ModeFull
)

var modeToString = map[Mode]string{
	ModeDefault: "default",
	ModeDebug:   "debug",
	ModeFull:    "full",
}

func (m Mode) String() string {
	if val, ok := modeToString[m]; ok {
		return val
	}
	return "unknown"
}

// Minified - режим с вводом количества вместо выделения
func (m Mode) Minified() bool {
	return m == ModeDefault
}

// ParseMode разбирает позиционные аргументы: "default", "full", "debug [play|home|farm|shop]".
// Неизвестный режим считается "default", неизвестная сцена отладки - "play".
func ParseMode(args []string) (Mode, PlayState) {
	if len(args) == 0 {
		return ModeDefault, PlaySelecting
	}
	switch strings.ToLower(args[0]) {
	case "debug":
		if len(args) > 1 {
			if scene, ok := ParsePlayState(args[1]); ok {
				return ModeDebug, scene
			}
		}
		return ModeDebug, PlaySelecting
	case "full":
		return ModeFull, PlaySelecting
	default:
		return ModeDefault, PlaySelecting
	}
}
