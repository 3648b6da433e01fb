package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid() (*Grid, *Player) {
	c := DefaultCatalog()
	return NewGrid(3, 2, c), NewPlayer("Farmer", c, DefaultPlayerConfig())
}

func selectAll(t *testing.T, g *Grid, day int, cells ...int) {
	t.Helper()
	for _, i := range cells {
		require.True(t, g.ToggleAt(i, day), "cell %d", i)
	}
}

func TestNewGrid_Clamps(t *testing.T) {
	g := NewGrid(40, 0, DefaultCatalog())
	assert.Equal(t, MaxFarmWidth, g.Width)
	assert.Equal(t, 1, g.Height)
	assert.Equal(t, MaxFarmWidth, g.Len())
}

func TestGrid_CursorWrapsOnlyWhenSelecting(t *testing.T) {
	g, _ := newTestGrid()

	assert.False(t, g.MoveLeft())
	assert.Equal(t, 0, g.CursorX)

	g.SetContext(FarmTill, ProductNone)
	g.StartSelecting()

	g.MoveLeft()
	assert.Equal(t, 2, g.CursorX)
	g.MoveRight()
	assert.Equal(t, 0, g.CursorX)
	g.MoveUp()
	assert.Equal(t, 1, g.CursorY)
	g.MoveDown()
	g.MoveDown()
	assert.Equal(t, 1, g.CursorY)
	assert.Equal(t, 3, g.Cursor())
}

func TestGrid_ToggleRevalidates(t *testing.T) {
	g, _ := newTestGrid()
	g.PlotAt(1).Till()

	g.SetContext(FarmTill, ProductNone)
	// Вне режима выделения переключать нельзя
	assert.False(t, g.ToggleAt(0, 0))

	g.StartSelecting()
	assert.True(t, g.ToggleAt(0, 0))
	assert.False(t, g.ToggleAt(1, 0), "tilled plot cannot be queued for tilling")
	assert.Equal(t, 1, g.PendingCount())

	assert.True(t, g.ToggleAt(0, 0))
	assert.False(t, g.IsPending(0))
	assert.Equal(t, 0, g.PendingCount())

	g.CursorX = 2
	assert.True(t, g.Toggle(0))
	assert.True(t, g.IsPending(2))
}

func TestGrid_CommitTill(t *testing.T) {
	g, p := newTestGrid()
	g.SetContext(FarmTill, ProductNone)
	g.StartSelecting()
	selectAll(t, g, 0, 0, 2, 4)

	require.True(t, g.Commit(p, 0))

	assert.Equal(t, 3, g.Modified)
	assert.Equal(t, 27, p.Energy())
	assert.False(t, g.IsSelecting())
	assert.Equal(t, 0, g.PendingCount())
	assert.Equal(t, 3, g.CountState(PlotTilled))
	assert.Equal(t, PlotTilled, g.PlotAt(4).State)
	assert.Equal(t, PlotEmpty, g.PlotAt(1).State)
}

func TestGrid_CommitNotEnoughEnergy(t *testing.T) {
	g, p := newTestGrid()
	require.True(t, p.SpendEnergy(28))

	g.SetContext(FarmTill, ProductNone)
	g.StartSelecting()
	selectAll(t, g, 0, 0, 1, 2)

	assert.False(t, g.Commit(p, 0))
	assert.Equal(t, "You do not have enough energy to till those plots.", g.Warning)
	assert.True(t, g.IsSelecting())
	assert.Equal(t, 3, g.PendingCount())
	assert.Equal(t, 2, p.Energy())
	assert.Equal(t, 0, g.CountState(PlotTilled))
}

func TestGrid_CommitSowNotEnoughSeeds(t *testing.T) {
	g, p := newTestGrid()
	for i := 0; i < 3; i++ {
		g.PlotAt(i).Till()
	}
	p.Seeds.Get(ProductBanana).Update(2)

	g.SetContext(FarmSow, ProductBanana)
	g.StartSelecting()
	selectAll(t, g, 0, 0, 1, 2)

	assert.False(t, g.Commit(p, 0))
	assert.Equal(t, "You do not have enough seeds or energy to sow those plots.", g.Warning)
	for i := 0; i < 3; i++ {
		assert.Equal(t, PlotTilled, g.PlotAt(i).State)
	}
	assert.Equal(t, 2, p.Seeds.Get(ProductBanana).Amount)
	assert.Equal(t, 30, p.Energy())
	assert.True(t, g.IsSelecting())
}

func TestGrid_SowWaterHarvest(t *testing.T) {
	g, p := newTestGrid()
	g.PlotAt(0).Till()
	g.PlotAt(1).Till()
	p.Seeds.Get(ProductBanana).Update(2)

	g.SetContext(FarmSow, ProductBanana)
	g.StartSelecting()
	selectAll(t, g, 0, 0, 1)
	require.True(t, g.Commit(p, 0))
	assert.Equal(t, 0, p.Seeds.Get(ProductBanana).Amount)
	assert.Equal(t, ProductBanana, g.PlotAt(0).CropType())
	assert.Equal(t, 0, g.PlotAt(0).Crop.DayPlanted)

	assert.Equal(t, 2, g.Available(FarmWater, 0))
	assert.Equal(t, 0, g.AvailableCrop(FarmWater, ProductCorn, 0))
	assert.Equal(t, 0, g.Available(FarmHarvest, 0))

	for day := 0; day < 4; day++ {
		g.SetContext(FarmWater, ProductBanana)
		g.StartSelecting()
		selectAll(t, g, day, 0, 1)
		// Повторно в тот же день полить нельзя
		require.True(t, g.Commit(p, day))
		assert.Equal(t, 0, g.Available(FarmWater, day))
	}

	assert.Equal(t, 2, g.AvailableCrop(FarmHarvest, ProductBanana, 4))
	assert.Equal(t, 0, g.Available(FarmWater, 4), "ripe crops need no water")

	g.SetContext(FarmHarvest, ProductBanana)
	g.StartSelecting()
	selectAll(t, g, 4, 0, 1)
	require.True(t, g.Commit(p, 4))

	assert.Equal(t, 2, g.Modified)
	assert.Equal(t, 2, p.Crops.Get(ProductBanana).Amount)
	assert.Equal(t, 2+4*2+2, 30-p.Energy())
	assert.Equal(t, 6, g.CountState(PlotEmpty))
}

func TestGrid_CommitEmptyQueue(t *testing.T) {
	g, p := newTestGrid()
	g.SetContext(FarmTill, ProductNone)
	g.StartSelecting()

	assert.False(t, g.Commit(p, 0))
	assert.Equal(t, 30, p.Energy())
}

func TestGrid_ApplyFirst(t *testing.T) {
	g, p := newTestGrid()
	g.PlotAt(0).Till()

	g.SetContext(FarmTill, ProductNone)
	assert.False(t, g.ApplyFirst(p, 6, 0))
	assert.Equal(t, "Only 5 plot/s can be tilled.", g.Warning)
	assert.Equal(t, 30, p.Energy())

	require.True(t, g.ApplyFirst(p, 2, 0))
	assert.Equal(t, 2, g.Modified)
	assert.Equal(t, PlotTilled, g.PlotAt(1).State)
	assert.Equal(t, PlotTilled, g.PlotAt(2).State)
	assert.Equal(t, PlotEmpty, g.PlotAt(3).State)
	assert.Equal(t, 28, p.Energy())

	assert.False(t, g.ApplyFirst(p, 0, 0))
}

func TestGrid_ResetContext(t *testing.T) {
	g, _ := newTestGrid()
	g.SetContext(FarmTill, ProductCorn)
	g.StartSelecting()
	g.ToggleAt(0, 0)
	g.Warning = "x"

	g.ResetContext()

	assert.Equal(t, FarmNone, g.Action)
	assert.Equal(t, ProductNone, g.CropType)
	assert.False(t, g.IsSelecting())
	assert.Equal(t, 0, g.PendingCount())
	assert.Empty(t, g.Warning)
}
