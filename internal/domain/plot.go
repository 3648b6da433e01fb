package domain

// PlotState - состояние клетки фермы
type PlotState uint8

const (
	PlotEmpty PlotState = iota
	PlotTilled
	PlotPlanted
)

var plotStateToString = map[PlotState]string{
	PlotEmpty:   "EMPTY",
	PlotTilled:  "TILLED",
	PlotPlanted: "PLANTED",
}

func (s PlotState) String() string {
	if val, ok := plotStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// Plot - одна клетка фермы. Crop != nil тогда и только тогда, когда State == PlotPlanted.
type Plot struct {
	State PlotState
	Crop  *Crop
}

// Till вспахивает пустую клетку
func (p *Plot) Till() bool {
	if p.State != PlotEmpty {
		return false
	}
	p.State = PlotTilled
	return true
}

// Sow сажает культуру во вспаханную клетку
func (p *Plot) Sow(crop *Crop) bool {
	if p.State != PlotTilled || crop == nil {
		return false
	}
	p.Crop = crop
	p.State = PlotPlanted
	return true
}

// Water поливает посаженную культуру
func (p *Plot) Water(day int) bool {
	if p.State != PlotPlanted || p.Crop == nil {
		return false
	}
	return p.Crop.Water(day)
}

// Harvest собирает созревшую культуру и возвращает её тип.
// Незрелую культуру собрать нельзя.
func (p *Plot) Harvest() (ProductType, bool) {
	if p.State != PlotPlanted || p.Crop == nil || !p.Crop.IsRipe() {
		return ProductNone, false
	}
	t := p.Crop.Type
	p.Crop = nil
	p.State = PlotEmpty
	return t, true
}

// CropType возвращает тип посаженной культуры или ProductNone
func (p *Plot) CropType() ProductType {
	if p.Crop == nil {
		return ProductNone
	}
	return p.Crop.Type
}

// Stage возвращает стадию роста или -1, если клетка не засажена
func (p *Plot) Stage() int {
	if p.Crop == nil {
		return -1
	}
	return p.Crop.Stage()
}
