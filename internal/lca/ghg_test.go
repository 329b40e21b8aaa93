package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGHGFlows(t *testing.T) {
	flows := []LCIFlow{
		{FlowName: "Carbon dioxide, fossil", Category: "air", Amount: 1.0, Unit: "kg"},
		{FlowName: "Phosphate", Category: "water", Amount: 0.2, Unit: "kg"},
		{FlowName: "Methane, biogenic", Category: "air", Amount: 0.01, Unit: "kg"},
		{FlowName: "Some Unlisted Gas", Category: "air", Amount: 0.5, Unit: "kg"},
		{FlowName: "Carbon dioxide, to soil", Category: "soil", Amount: 0.3, Unit: "kg"},
		{FlowName: "Dinitrogen monoxide", Category: "air", Amount: 0.002, Unit: "kg"},
	}

	got := ExtractGHGFlows(flows)

	require.Len(t, got, 3)
	// Input order preserved.
	assert.Equal(t, "Carbon dioxide, fossil", got[0].FlowName)
	assert.Equal(t, "Methane, biogenic", got[1].FlowName)
	assert.Equal(t, "Dinitrogen monoxide", got[2].FlowName)
}

func TestExtractGHGFlows_EmptyInput(t *testing.T) {
	assert.Empty(t, ExtractGHGFlows(nil))
	assert.Empty(t, ExtractGHGFlows([]LCIFlow{}))
}

func TestCalculateCO2e_TotalMatchesBreakdown(t *testing.T) {
	flows := []LCIFlow{
		{FlowName: "Carbon dioxide, fossil", Category: "air", Amount: 89.0, Unit: "kg"},
		{FlowName: "Methane, biogenic", Category: "air", Amount: 0.25, Unit: "kg"},
		{FlowName: "Dinitrogen monoxide", Category: "air", Amount: 0.08, Unit: "kg"},
		{FlowName: "Sulfur hexafluoride", Category: "air", Amount: 0.00001, Unit: "kg"},
	}

	total, breakdown := CalculateCO2e(flows)

	require.Len(t, breakdown, 4)

	var sum float64
	for _, b := range breakdown {
		assert.InDelta(t, b.MassKg*b.GWPFactor, b.CO2e, 1e-9)
		sum += b.MassKg * b.GWPFactor
	}
	assert.InDelta(t, sum, total, 1e-9, "total must equal the sum of breakdown entries")
}

func TestCalculateCO2e_UnknownGasDropped(t *testing.T) {
	flows := []LCIFlow{
		{FlowName: "Carbon dioxide, fossil", Category: "air", Amount: 1.0, Unit: "kg"},
		{FlowName: "Some Unlisted Gas", Category: "air", Amount: 100.0, Unit: "kg"},
	}

	total, breakdown := CalculateCO2e(flows)

	// Excluded from both the breakdown and the total, not zero-filled.
	require.Len(t, breakdown, 1)
	assert.Equal(t, "CO2", breakdown[0].Gas)
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestCalculateCO2e_Empty(t *testing.T) {
	total, breakdown := CalculateCO2e(nil)
	assert.Zero(t, total)
	assert.Empty(t, breakdown)
}

func TestCalculateCO2e_SubsetInvariant(t *testing.T) {
	// The invariant holds for any subset of recognized gases.
	all := []LCIFlow{
		{FlowName: "Carbon dioxide, fossil", Category: "air", Amount: 2.0},
		{FlowName: "Methane, biogenic", Category: "air", Amount: 0.1},
		{FlowName: "Nitrogen trifluoride", Category: "air", Amount: 0.0001},
		{FlowName: "Tetrafluoromethane", Category: "air", Amount: 0.001},
	}

	for i := range all {
		subset := all[:i+1]
		total, breakdown := CalculateCO2e(subset)
		var sum float64
		for _, b := range breakdown {
			sum += b.MassKg * b.GWPFactor
		}
		assert.InDelta(t, sum, total, 1e-9)
		assert.Len(t, breakdown, len(subset))
	}
}
