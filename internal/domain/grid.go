package domain

import (
	"fmt"
	"strings"
)

// Grid - ферма: клетки, курсор, очередь выделения и текущий контекст действия.
// Клетки хранятся построчно: индекс = y*Width + x.
type Grid struct {
	Width  int
	Height int

	CursorX int
	CursorY int

	Action   FarmAction
	CropType ProductType

	// Warning - последнее предупреждение (например, не хватило энергии)
	Warning string
	// Modified - сколько клеток изменил последний успешный коммит
	Modified int

	plots     []Plot
	pending   []bool
	selecting bool
	catalog   *Catalog
}

// NewGrid создает пустую ферму. Размеры ограничены 1..MaxFarmWidth и 1..MaxFarmHeight.
func NewGrid(width, height int, catalog *Catalog) *Grid {
	width = clamp(width, 1, MaxFarmWidth)
	height = clamp(height, 1, MaxFarmHeight)
	return &Grid{
		Width:   width,
		Height:  height,
		plots:   make([]Plot, width*height),
		pending: make([]bool, width*height),
		catalog: catalog,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Len - количество клеток
func (g *Grid) Len() int {
	return len(g.plots)
}

// Index переводит координаты в индекс клетки (с заворачиванием)
func (g *Grid) Index(x, y int) int {
	x = wrap(x, g.Width)
	y = wrap(y, g.Height)
	return y*g.Width + x
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Plot возвращает клетку по координатам
func (g *Grid) Plot(x, y int) *Plot {
	return &g.plots[g.Index(x, y)]
}

// PlotAt возвращает клетку по индексу
func (g *Grid) PlotAt(i int) *Plot {
	return &g.plots[wrap(i, len(g.plots))]
}

// Cursor - индекс клетки под курсором
func (g *Grid) Cursor() int {
	return g.Index(g.CursorX, g.CursorY)
}

// --- КУРСОР ---

// Move сдвигает курсор с заворачиванием. Вне режима выделения ничего не делает.
func (g *Grid) Move(dx, dy int) bool {
	if !g.selecting {
		return false
	}
	g.CursorX = wrap(g.CursorX+dx, g.Width)
	g.CursorY = wrap(g.CursorY+dy, g.Height)
	return true
}

func (g *Grid) MoveLeft() bool  { return g.Move(-1, 0) }
func (g *Grid) MoveRight() bool { return g.Move(1, 0) }
func (g *Grid) MoveUp() bool    { return g.Move(0, -1) }
func (g *Grid) MoveDown() bool  { return g.Move(0, 1) }

// --- ДОСТУПНОСТЬ ---

// Eligible проверяет, подходит ли клетка для действия в день day.
// Для полива и сбора при cropType != ProductNone учитывается только эта культура.
func (g *Grid) Eligible(action FarmAction, cropType ProductType, i, day int) bool {
	p := g.PlotAt(i)
	switch action {
	case FarmTill:
		return p.State == PlotEmpty
	case FarmSow:
		return p.State == PlotTilled
	case FarmWater:
		return p.State == PlotPlanted && p.Crop != nil &&
			matchesCrop(p, cropType) && !p.Crop.IsRipe() && p.Crop.NeedsWater(day)
	case FarmHarvest:
		return p.State == PlotPlanted && p.Crop != nil &&
			matchesCrop(p, cropType) && p.Crop.IsRipe()
	default:
		return false
	}
}

func matchesCrop(p *Plot, cropType ProductType) bool {
	return cropType == ProductNone || p.CropType() == cropType
}

// Available - сколько клеток подходит для действия
func (g *Grid) Available(action FarmAction, day int) int {
	return g.AvailableCrop(action, ProductNone, day)
}

// AvailableCrop - то же, что Available, но только по клеткам с культурой cropType
func (g *Grid) AvailableCrop(action FarmAction, cropType ProductType, day int) int {
	count := 0
	for i := range g.plots {
		if g.Eligible(action, cropType, i, day) {
			count++
		}
	}
	return count
}

// CountState - сколько клеток в состоянии s
func (g *Grid) CountState(s PlotState) int {
	count := 0
	for i := range g.plots {
		if g.plots[i].State == s {
			count++
		}
	}
	return count
}

// scopedCrop - культура, которой ограничено текущее действие
func (g *Grid) scopedCrop() ProductType {
	if g.Action == FarmWater || g.Action == FarmHarvest {
		return g.CropType
	}
	return ProductNone
}

// --- ВЫДЕЛЕНИЕ ---

// SetContext задаёт текущее действие и культуру
func (g *Grid) SetContext(action FarmAction, cropType ProductType) {
	g.Action = action
	g.CropType = cropType
}

// ResetContext сбрасывает действие, культуру и выделение
func (g *Grid) ResetContext() {
	g.StopSelecting()
	g.Action = FarmNone
	g.CropType = ProductNone
	g.Warning = ""
}

// StartSelecting очищает очередь и включает режим выделения
func (g *Grid) StartSelecting() {
	g.clearPending()
	g.selecting = true
	g.Warning = ""
	g.Modified = 0
}

// StopSelecting выключает режим выделения и очищает очередь
func (g *Grid) StopSelecting() {
	g.clearPending()
	g.selecting = false
}

func (g *Grid) clearPending() {
	for i := range g.pending {
		g.pending[i] = false
	}
}

// IsSelecting - включён ли режим выделения
func (g *Grid) IsSelecting() bool {
	return g.selecting
}

// IsPending - стоит ли клетка в очереди
func (g *Grid) IsPending(i int) bool {
	return g.pending[wrap(i, len(g.pending))]
}

// PendingCount - размер очереди
func (g *Grid) PendingCount() int {
	n := 0
	for _, p := range g.pending {
		if p {
			n++
		}
	}
	return n
}

// Toggle переключает клетку под курсором
func (g *Grid) Toggle(day int) bool {
	return g.ToggleAt(g.Cursor(), day)
}

// ToggleAt убирает клетку из очереди, либо добавляет её, если она сейчас подходит
// для текущего действия. Возвращает true, если очередь изменилась.
func (g *Grid) ToggleAt(i, day int) bool {
	if !g.selecting || !g.Action.Mutates() {
		return false
	}
	i = wrap(i, len(g.pending))
	if g.pending[i] {
		g.pending[i] = false
		return true
	}
	if !g.Eligible(g.Action, g.scopedCrop(), i, day) {
		return false
	}
	g.pending[i] = true
	return true
}

// Commit применяет текущее действие ко всей очереди.
// Энергия (и семена для посева) резервируются на всю очередь сразу: либо меняются все
// клетки, либо ни одна. При отказе режим выделения остаётся включённым.
func (g *Grid) Commit(p *Player, day int) bool {
	cells := make([]int, 0, len(g.pending))
	for i, sel := range g.pending {
		if sel {
			cells = append(cells, i)
		}
	}
	if len(cells) == 0 {
		g.Warning = "No plots selected."
		return false
	}
	if !g.apply(p, cells, day) {
		return false
	}
	g.StopSelecting()
	return true
}

// ApplyFirst применяет текущее действие к первым n подходящим клеткам (по порядку обхода).
// Используется в упрощённом режиме, где игрок вводит только количество.
func (g *Grid) ApplyFirst(p *Player, n, day int) bool {
	if n <= 0 {
		g.Warning = "No plots selected."
		return false
	}
	crop := g.scopedCrop()
	cells := make([]int, 0, n)
	for i := range g.plots {
		if len(cells) == n {
			break
		}
		if g.Eligible(g.Action, crop, i, day) {
			cells = append(cells, i)
		}
	}
	if len(cells) < n {
		g.Warning = fmt.Sprintf("Only %d plot/s can be %s.", len(cells), strings.ToLower(g.Action.PastTense()))
		return false
	}
	return g.apply(p, cells, day)
}

func (g *Grid) apply(p *Player, cells []int, day int) bool {
	n := len(cells)

	switch g.Action {
	case FarmSow:
		if !g.catalog.Valid(g.CropType) || !p.SowSeeds(g.CropType, n) {
			g.Warning = "You do not have enough seeds or energy to sow those plots."
			return false
		}
	case FarmTill, FarmWater, FarmHarvest:
		if !p.SpendEnergy(n) {
			g.Warning = fmt.Sprintf("You do not have enough energy to %s those plots.", g.actionVerb())
			return false
		}
	default:
		g.Warning = "Nothing to do."
		return false
	}

	modified := 0
	for _, i := range cells {
		plot := &g.plots[i]
		var ok bool
		switch g.Action {
		case FarmTill:
			ok = plot.Till()
		case FarmSow:
			ok = plot.Sow(NewCrop(g.CropType, g.catalog, day))
		case FarmWater:
			ok = plot.Water(day)
		case FarmHarvest:
			var t ProductType
			t, ok = plot.Harvest()
			if ok {
				p.HarvestCrop(t)
			}
		}
		if ok {
			modified++
		}
	}

	g.Modified = modified
	g.Warning = ""
	return true
}

func (g *Grid) actionVerb() string {
	switch g.Action {
	case FarmTill:
		return "till"
	case FarmSow:
		return "sow"
	case FarmWater:
		return "water"
	case FarmHarvest:
		return "harvest"
	}
	return "use"
}

// Catalog возвращает каталог, с которым создана ферма
func (g *Grid) Catalog() *Catalog {
	return g.catalog
}
