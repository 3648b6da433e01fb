package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE", "ERROR" или "QUIT".
	Type string `json:"type"`

	// SessionID идентификатор игровой сессии клиента.
	SessionID string `json:"sessionId,omitempty"`

	// State полный снимок игры после обработки последней команды.
	State *Snapshot `json:"state,omitempty"`

	// Error текст ошибки для Type == "ERROR".
	Error string `json:"error,omitempty"`
}

// Snapshot - всё, что нужно рендереру для отрисовки одного кадра.
type Snapshot struct {
	Scene  string `json:"scene"`  // MENU, PLAY, GUIDE, CONTROLS, AUTHOR, DIALOG, QUIT
	Play   string `json:"play"`   // SELECTING, HOME, FARM, SHOP
	Dialog string `json:"dialog"` // NONE, PAUSED, HELP, INVENTORY, GAMEOVER
	Mode   string `json:"mode"`

	// Minified true, если ферма управляется вводом количества, а не курсором.
	Minified bool `json:"minified"`

	// Prompt что сейчас ожидается от игрока: "NAME", "AMOUNT" или пусто.
	Prompt string `json:"prompt,omitempty"`
	// Input текущее содержимое буфера числового ввода.
	Input string `json:"input,omitempty"`

	// Message последнее сообщение для игрока (результат или предупреждение).
	Message string `json:"message,omitempty"`
	// DialogMessage текст модального окна.
	DialogMessage string `json:"dialogMessage,omitempty"`
	// Tutorial текущая строка обучения (пусто, если обучение пройдено).
	Tutorial string `json:"tutorial,omitempty"`

	// Selector активный селектор (меню, место, действие, товар или диалог).
	Selector *SelectorView `json:"selector,omitempty"`

	Player PlayerView `json:"player"`
	Farm   FarmView   `json:"farm"`
	Shop   ShopView   `json:"shop"`
}

// SelectorView - пункты селектора и текущий индекс.
type SelectorView struct {
	Name    string       `json:"name"`
	Index   int          `json:"index"`
	Options []OptionView `json:"options"`
}

// OptionView - один пункт селектора.
type OptionView struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// PlayerView - экономика игрока.
type PlayerView struct {
	Name          string      `json:"name"`
	Day           int         `json:"day"`
	Gold          int         `json:"gold"`
	Energy        int         `json:"energy"`
	MaxEnergy     int         `json:"maxEnergy"`
	StarvedDays   int         `json:"starvedDays"`
	StarvingToday bool        `json:"starvingToday"`
	IsDead        bool        `json:"isDead"`
	Seeds         []StockView `json:"seeds"`
	Crops         []StockView `json:"crops"`
}

// StockView - запас одного товара.
type StockView struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    int    `json:"amount"`
	BuyPrice  int    `json:"buyPrice"`
	SellPrice int    `json:"sellPrice"`
}

// FarmView - состояние фермы.
type FarmView struct {
	Width     int  `json:"w"`
	Height    int  `json:"h"`
	CursorX   int  `json:"cursorX"`
	CursorY   int  `json:"cursorY"`
	Selecting bool `json:"selecting"`

	Action   string `json:"action"`
	Crop     string `json:"crop,omitempty"`
	Pending  int    `json:"pending"`
	Modified int    `json:"modified"`
	Warning  string `json:"warning,omitempty"`

	// Available количество клеток, доступных для каждого действия (TILL, SOW, WATER, HARVEST).
	Available map[string]int `json:"available"`

	Cells []CellView `json:"cells"`
}

// CellView - одна клетка фермы.
type CellView struct {
	X             int    `json:"x"`
	Y             int    `json:"y"`
	State         string `json:"state"` // EMPTY, TILLED, PLANTED
	Code          string `json:"code,omitempty"`
	Stage         int    `json:"stage"` // -1 для незасаженных клеток
	WaterGiven    int    `json:"waterGiven,omitempty"`
	WaterRequired int    `json:"waterRequired,omitempty"`
	WateredToday  bool   `json:"wateredToday,omitempty"`
	Pending       bool   `json:"pending,omitempty"`
}

// ShopView - лавка.
type ShopView struct {
	Action string      `json:"action"`
	Crop   string      `json:"crop,omitempty"`
	Stock  []StockView `json:"stock"`
}

// SessionSummary - краткое описание сессии для отладочных эндпоинтов.
type SessionSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Scene  string `json:"scene"`
	Play   string `json:"play"`
	Day    int    `json:"day"`
	Gold   int    `json:"gold"`
	Energy int    `json:"energy"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: "INIT", "KEY" или "TEXT".
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// KeyPayload одно нажатие клавиши: символ ("W", "e", "3") или имя ("ENTER", "SPACE", "BACKSPACE").
type KeyPayload struct {
	Key string `json:"key"`
}

// TextPayload готовая строка (имя игрока).
type TextPayload struct {
	Text string `json:"text"`
}
