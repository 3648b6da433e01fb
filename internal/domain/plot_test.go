package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlot_Lifecycle(t *testing.T) {
	var p Plot
	catalog, err := LoadCatalog([]byte("products:\n  - {code: B, name: Banana, buy: 3, sell: 4, water: 2}\n"))
	require.NoError(t, err)

	// Из пустой клетки нельзя ни сажать, ни поливать, ни собирать
	assert.False(t, p.Sow(NewCrop(ProductBanana, catalog, 0)))
	assert.False(t, p.Water(0))
	_, ok := p.Harvest()
	assert.False(t, ok)
	assert.Equal(t, PlotEmpty, p.State)

	require.True(t, p.Till())
	assert.False(t, p.Till())
	assert.Equal(t, PlotTilled, p.State)

	assert.False(t, p.Sow(nil))
	require.True(t, p.Sow(NewCrop(ProductBanana, catalog, 0)))
	assert.Equal(t, PlotPlanted, p.State)
	assert.NotNil(t, p.Crop)
	assert.False(t, p.Till())
	assert.False(t, p.Sow(NewCrop(ProductBanana, catalog, 0)))

	// Незрелое не собирается
	require.True(t, p.Water(0))
	_, ok = p.Harvest()
	assert.False(t, ok)
	assert.Equal(t, PlotPlanted, p.State)

	require.True(t, p.Water(1))
	assert.Equal(t, StageRipe, p.Stage())

	got, ok := p.Harvest()
	require.True(t, ok)
	assert.Equal(t, ProductBanana, got)
	assert.Equal(t, PlotEmpty, p.State)
	assert.Nil(t, p.Crop)
	assert.Equal(t, -1, p.Stage())
	assert.Equal(t, ProductNone, p.CropType())
}

func TestPlotState_String(t *testing.T) {
	assert.Equal(t, "EMPTY", PlotEmpty.String())
	assert.Equal(t, "TILLED", PlotTilled.String())
	assert.Equal(t, "PLANTED", PlotPlanted.String())
	assert.Equal(t, "UNKNOWN", PlotState(9).String())
}
