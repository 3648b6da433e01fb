package systems

import (
	"testing"

	"harvest-sun/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFarm() (*domain.Grid, *domain.Player) {
	c := domain.DefaultCatalog()
	return domain.NewGrid(4, 2, c), domain.NewPlayer("Farmer", c, domain.DefaultPlayerConfig())
}

func TestCommitSelection_Till(t *testing.T) {
	g, p := newFarm()
	g.SetContext(domain.FarmTill, domain.ProductNone)
	g.StartSelecting()
	g.ToggleAt(0, 0)
	g.ToggleAt(5, 0)

	msg, err := CommitSelection(g, p, 0)

	require.NoError(t, err)
	assert.Equal(t, "You've TILLED a total of 2 plot/s.", msg)
	assert.Equal(t, 28, p.Energy())
}

func TestCommitSelection_Errors(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		g, p := newFarm()
		g.SetContext(domain.FarmTill, domain.ProductNone)
		g.StartSelecting()

		_, err := CommitSelection(g, p, 0)
		assert.ErrorIs(t, err, ErrNothingSelected)
	})

	t.Run("not enough energy", func(t *testing.T) {
		g, p := newFarm()
		p.SpendEnergy(30)
		g.SetContext(domain.FarmTill, domain.ProductNone)
		g.StartSelecting()
		g.ToggleAt(0, 0)

		msg, err := CommitSelection(g, p, 0)
		assert.ErrorIs(t, err, ErrNotEnoughEnergy)
		assert.Equal(t, "You do not have enough energy to till those plots.", msg)
		assert.True(t, g.IsSelecting())
	})

	t.Run("not enough seeds", func(t *testing.T) {
		g, p := newFarm()
		for i := 0; i < 3; i++ {
			g.PlotAt(i).Till()
		}
		p.Seeds.Get(domain.ProductBanana).Update(2)
		g.SetContext(domain.FarmSow, domain.ProductBanana)
		g.StartSelecting()
		for i := 0; i < 3; i++ {
			g.ToggleAt(i, 0)
		}

		_, err := CommitSelection(g, p, 0)
		assert.ErrorIs(t, err, ErrNotEnoughSeeds)
		assert.Equal(t, 3, g.CountState(domain.PlotTilled))
		assert.Equal(t, 2, p.Seeds.Get(domain.ProductBanana).Amount)
	})

	t.Run("no crop chosen", func(t *testing.T) {
		g, p := newFarm()
		g.PlotAt(0).Till()
		g.SetContext(domain.FarmSow, domain.ProductNone)
		g.StartSelecting()
		g.ToggleAt(0, 0)

		_, err := CommitSelection(g, p, 0)
		assert.ErrorIs(t, err, ErrNoCropChosen)
	})
}

func TestApplyToFirst(t *testing.T) {
	g, p := newFarm()
	g.SetContext(domain.FarmTill, domain.ProductNone)

	_, err := ApplyToFirst(g, p, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ApplyToFirst(g, p, 0, 0)
	assert.ErrorIs(t, err, ErrNothingSelected)

	_, err = ApplyToFirst(g, p, 9, 0)
	assert.ErrorIs(t, err, ErrNoPlotsAvailable)

	msg, err := ApplyToFirst(g, p, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, "You've TILLED a total of 3 plot/s.", msg)
	assert.Equal(t, 5, Available(g, 0))

	g.SetContext(domain.FarmHarvest, domain.ProductCorn)
	_, err = ApplyToFirst(g, p, 1, 0)
	assert.ErrorIs(t, err, ErrNoPlotsAvailable)
}

func TestApplyToFirst_WaterScopedToCrop(t *testing.T) {
	g, p := newFarm()
	c := g.Catalog()
	for i := 0; i < 4; i++ {
		g.PlotAt(i).Till()
	}
	g.PlotAt(0).Sow(domain.NewCrop(domain.ProductCorn, c, 0))
	g.PlotAt(1).Sow(domain.NewCrop(domain.ProductBanana, c, 0))
	g.PlotAt(2).Sow(domain.NewCrop(domain.ProductBanana, c, 0))

	g.SetContext(domain.FarmWater, domain.ProductBanana)
	assert.Equal(t, 2, Available(g, 0))

	_, err := ApplyToFirst(g, p, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.PlotAt(1).Crop.WaterGiven)
	assert.Equal(t, 1, g.PlotAt(2).Crop.WaterGiven)
	assert.Equal(t, 0, g.PlotAt(0).Crop.WaterGiven)
	assert.Equal(t, 0, Available(g, 0))
}
