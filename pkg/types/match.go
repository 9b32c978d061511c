package types

// MatchFilters narrows the catalog before yardage matching. Zero values mean
// "no filter"; the literal value "any" is also treated as unset for the
// string fields.
type MatchFilters struct {
	// ProjectType filters by project type. Accepts either the catalog
	// display name ("Shawl/Wrap") or the frontend slug ("shawl-wrap").
	ProjectType string `json:"project_type,omitempty"`

	// CraftType filters by craft type (e.g. "Knitting", "Crochet").
	CraftType string `json:"craft_type,omitempty"`

	// Weight is an explicit weight override. When set, matching considers
	// only stash of that single class instead of the full compatibility set.
	Weight string `json:"weight,omitempty"`

	// Designer filters by case-insensitive substring on the designer name.
	Designer string `json:"designer,omitempty"`

	// FreeOnly keeps only patterns with a free or zero price.
	FreeOnly bool `json:"free_only,omitempty"`
}

// MatchedPattern is one pattern the user can make from stash alone.
type MatchedPattern struct {
	PatternID   string   `json:"pattern_id"`
	Name        string   `json:"name"`
	Designer    string   `json:"designer"`
	WeightLabel string   `json:"weight_label"`
	YardageMin  *float64 `json:"yardage_min,omitempty"`
	YardageMax  *float64 `json:"yardage_max,omitempty"`
	ProjectType string   `json:"project_type,omitempty"`
	CraftType   string   `json:"craft_type,omitempty"`
	URL         string   `json:"url,omitempty"`
	Price       string   `json:"price,omitempty"`
	ImageRef    string   `json:"image_ref,omitempty"`
	DocRef      string   `json:"doc_ref,omitempty"`

	// HeldYarnDescription explains the held-together derivation when the
	// match relies on holding strands of a lighter class, e.g.
	// "2 strands of Worsted = Chunky". Empty for direct and substitution
	// matches. When several held edges could apply, the first in
	// declaration order is reported; callers must not depend on which.
	HeldYarnDescription string `json:"held_yarn_description,omitempty"`
}

// Pagination describes one page of a matched result set. Totals reflect the
// deduplicated matched set, not the full catalog.
type Pagination struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
	Pages    int  `json:"pages"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
}

// MatchResponse is the full result of a match request: one page of matched
// patterns plus pagination metadata.
type MatchResponse struct {
	Patterns   []MatchedPattern `json:"patterns"`
	Pagination Pagination       `json:"pagination"`
}
