package types

// Pattern is one catalog record with its primary yarn requirement and
// display metadata. Source catalogs allow several suggested yarns per
// pattern; only the first/primary one is carried here and evaluated.
//
// String fields use "" for absent. YardageMin/YardageMax use nil for absent
// because zero is a meaningful bound.
type Pattern struct {
	PatternID   string   `json:"pattern_id"`
	Name        string   `json:"name"`
	Designer    string   `json:"designer"`
	WeightLabel string   `json:"weight_label,omitempty"`
	YardageMin  *float64 `json:"yardage_min,omitempty"`
	YardageMax  *float64 `json:"yardage_max,omitempty"`
	ProjectType string   `json:"project_type,omitempty"`
	CraftType   string   `json:"craft_type,omitempty"`
	URL         string   `json:"url,omitempty"`
	Price       string   `json:"price,omitempty"`
	ImageRef    string   `json:"image_ref,omitempty"`
	DocRef      string   `json:"doc_ref,omitempty"`
}
