package match

import (
	"strconv"
	"strings"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

// Pagination defaults. Invalid caller inputs are coerced into these ranges,
// never rejected.
const (
	DefaultPageSize = 30
	MaxPageSize     = 100000
)

// projectTypeSlugs maps frontend project-type slugs to catalog display
// names. Unknown slugs pass through unchanged.
var projectTypeSlugs = map[string]string{
	"mittens-gloves": "Mittens/Gloves",
	"shawl-wrap":     "Shawl/Wrap",
	"tank-camisole":  "Tank/Camisole",
	"dress-suit":     "Dress/Suit",
	"child":          "Child",
	"hat":            "Hat",
	"baby":           "Baby",
	"socks":          "Socks",
	"scarf":          "Scarf",
	"home":           "Home",
	"pullover":       "Pullover",
	"toys":           "Toys",
	"pet":            "Pet",
	"other":          "Other",
	"shrug":          "Shrug",
	"blanket":        "Blanket",
	"cardigan":       "Cardigan",
	"vest":           "Vest",
	"tee":            "Tee",
	"jacket":         "Jacket",
	"bag":            "Bag",
	"skirt":          "Skirt",
	"dishcloth":      "Dishcloth",
}

// MapProjectType resolves a frontend slug to its catalog display name.
func MapProjectType(value string) string {
	if mapped, ok := projectTypeSlugs[value]; ok {
		return mapped
	}
	return value
}

// filterSet reports whether a string filter value is active. The literal
// "any" means unset, matching the query convention of the original API.
func filterSet(value string) bool {
	return value != "" && value != "any"
}

// ApplyFilters returns the catalog records passing every active filter.
// Filters run before yardage matching so pagination totals reflect only the
// filtered, matched set. The weight override is handled by the matcher, not
// here.
func ApplyFilters(patterns []types.Pattern, f types.MatchFilters) []types.Pattern {
	out := make([]types.Pattern, 0, len(patterns))

	projectType := MapProjectType(f.ProjectType)
	designer := strings.ToLower(strings.TrimSpace(f.Designer))

	for _, p := range patterns {
		if filterSet(f.ProjectType) && p.ProjectType != projectType {
			continue
		}
		if filterSet(f.CraftType) && !strings.EqualFold(p.CraftType, f.CraftType) {
			continue
		}
		if designer != "" && !strings.Contains(strings.ToLower(p.Designer), designer) {
			continue
		}
		if f.FreeOnly && !IsFreePrice(p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsFreePrice reports whether a price string denotes a free pattern: the
// word "free" or a zero amount in any currency notation ("0", "0.0",
// "$0.00", "0.0 GBP").
func IsFreePrice(price string) bool {
	s := strings.ToLower(strings.TrimSpace(price))
	if s == "" {
		return false
	}
	if s == "free" {
		return true
	}

	// Strip a leading currency symbol and a trailing currency code.
	s = strings.TrimLeft(s, "$£€")
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return amount == 0
}

// Dedupe keeps the first occurrence of each pattern ID, preserving order. A
// pattern reachable through multiple compatible stash classes appears
// exactly once in the assembled result.
func Dedupe(patterns []types.MatchedPattern) []types.MatchedPattern {
	seen := make(map[string]bool, len(patterns))
	out := make([]types.MatchedPattern, 0, len(patterns))
	for _, p := range patterns {
		if seen[p.PatternID] {
			continue
		}
		seen[p.PatternID] = true
		out = append(out, p)
	}
	return out
}

// Paginate applies stable offset/limit pagination over the deduplicated
// matched list. page and pageSize are clamped into valid ranges; totals
// reflect the matched-set size.
func Paginate(patterns []types.MatchedPattern, page, pageSize int) ([]types.MatchedPattern, types.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(patterns)
	pages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return patterns[start:end], types.Pagination{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pages,
		HasNext:  page < pages,
		HasPrev:  page > 1,
	}
}
