// Package match implements the stash-matching engine: stash aggregation,
// per-pattern match decisions, result assembly, and pagination over
// read-only snapshots supplied by storage providers.
package match

import (
	"github.com/hollyschr/StitchMatch/internal/weights"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

// StashTotals maps each canonical weight class to the user's total owned
// yardage in that class.
type StashTotals map[types.WeightClass]float64

// Aggregate sums stash yardage per canonical class. Entries normalizing to
// Unknown contribute nothing. The result is independent of input order.
func Aggregate(n *weights.Normalizer, entries []types.StashEntry) StashTotals {
	totals := make(StashTotals)
	for _, e := range entries {
		class := n.Normalize(e.WeightLabel)
		if class == types.WeightUnknown {
			continue
		}
		totals[class] += e.Yardage
	}
	return totals
}
