package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollyschr/StitchMatch/internal/weights"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

func TestAggregateSumsPerClass(t *testing.T) {
	n := weights.NewNormalizer(nil)

	entries := []types.StashEntry{
		{WeightLabel: "Worsted (9 wpi)", Yardage: 100},
		{WeightLabel: "worsted", Yardage: 50},
		{WeightLabel: "DK (11 wpi)", Yardage: 200},
	}

	totals := Aggregate(n, entries)
	assert.Equal(t, 150.0, totals[types.WeightWorsted])
	assert.Equal(t, 200.0, totals[types.WeightDK])
}

// Totals are invariant under input reordering.
func TestAggregateOrderIndependent(t *testing.T) {
	n := weights.NewNormalizer(nil)

	entries := []types.StashEntry{
		{WeightLabel: "Fingering (14 wpi)", Yardage: 120},
		{WeightLabel: "Sport", Yardage: 80},
		{WeightLabel: "fingering", Yardage: 30},
		{WeightLabel: "Aran (8 wpi)", Yardage: 400},
	}
	reversed := make([]types.StashEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	assert.Equal(t, Aggregate(n, entries), Aggregate(n, reversed))
}

func TestAggregateDropsUnknown(t *testing.T) {
	n := weights.NewNormalizer(nil)

	entries := []types.StashEntry{
		{WeightLabel: "mystery fiber", Yardage: 500},
		{WeightLabel: "Aran / Worsted", Yardage: 300},
		{WeightLabel: "dk", Yardage: 10},
	}

	totals := Aggregate(n, entries)
	assert.Len(t, totals, 1)
	assert.Equal(t, 10.0, totals[types.WeightDK])
	assert.NotContains(t, totals, types.WeightUnknown)
}

func TestAggregateEmpty(t *testing.T) {
	n := weights.NewNormalizer(nil)
	assert.Empty(t, Aggregate(n, nil))
}
