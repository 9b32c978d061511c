package types

// StashEntry is one lot of yarn a user owns. WeightLabel is the free-form
// label as entered or imported; normalization happens at match time, never
// on write. Yardage is never negative.
type StashEntry struct {
	WeightLabel string  `json:"weight_label"`
	Yardage     float64 `json:"yardage"`
}
