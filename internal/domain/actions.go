package domain

import "strings"

// FarmAction - действие над клетками фермы
type FarmAction uint8

const (
	FarmNone FarmAction = iota
	FarmTill
	FarmSow
	FarmWater
	FarmHarvest
	FarmInspect
)

var farmActionStringToCmd = map[string]FarmAction{
	"TILL":    FarmTill,
	"SOW":     FarmSow,
	"WATER":   FarmWater,
	"HARVEST": FarmHarvest,
	"INSPECT": FarmInspect,
}

var farmActionCmdToString = map[FarmAction]string{
	FarmNone:    "NONE",
	FarmTill:    "TILL",
	FarmSow:     "SOW",
	FarmWater:   "WATER",
	FarmHarvest: "HARVEST",
	FarmInspect: "INSPECT",
}

// Причастия для итоговых сообщений ("You've TILLED ...")
var farmActionPastTense = map[FarmAction]string{
	FarmTill:    "TILLED",
	FarmSow:     "SOWED",
	FarmWater:   "WATERED",
	FarmHarvest: "HARVESTED",
}

// ParseFarmAction конвертирует строку в FarmAction (без учёта регистра)
func ParseFarmAction(s string) FarmAction {
	if val, ok := farmActionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return FarmNone
}

func (a FarmAction) String() string {
	if val, ok := farmActionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// PastTense возвращает форму для итогового сообщения
func (a FarmAction) PastTense() string {
	if val, ok := farmActionPastTense[a]; ok {
		return val
	}
	return a.String()
}

// Mutates - действие меняет клетки и стоит энергии
func (a FarmAction) Mutates() bool {
	return a == FarmTill || a == FarmSow || a == FarmWater || a == FarmHarvest
}

// ShopAction - действие в лавке
type ShopAction uint8

const (
	ShopNone ShopAction = iota
	ShopBuy
	ShopSell
)

var shopActionStringToCmd = map[string]ShopAction{
	"BUY":  ShopBuy,
	"SELL": ShopSell,
}

var shopActionCmdToString = map[ShopAction]string{
	ShopNone: "NONE",
	ShopBuy:  "BUY",
	ShopSell: "SELL",
}

// ParseShopAction конвертирует строку в ShopAction (без учёта регистра)
func ParseShopAction(s string) ShopAction {
	if val, ok := shopActionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ShopNone
}

func (a ShopAction) String() string {
	if val, ok := shopActionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
