package match

import (
	"fmt"
	"log/slog"

	"github.com/hollyschr/StitchMatch/internal/weights"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

// Engine runs complete match requests over snapshots from the stash and
// catalog providers. It holds no per-request state and is safe for
// concurrent use; the compatibility tables are built once in NewEngine and
// never recomputed.
type Engine struct {
	stash   types.StashProvider
	catalog types.CatalogProvider
	norm    *weights.Normalizer
	res     *weights.Resolver
	matcher *Matcher
	log     *slog.Logger
}

// NewEngine creates an Engine over the given providers. A nil logger falls
// back to slog.Default().
func NewEngine(stash types.StashProvider, catalog types.CatalogProvider, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	norm := weights.NewNormalizer(log)
	res := weights.NewResolver()
	return &Engine{
		stash:   stash,
		catalog: catalog,
		norm:    norm,
		res:     res,
		matcher: NewMatcher(norm, res),
		log:     log,
	}
}

// MatchPatterns determines which catalog patterns are craftable from the
// user's stash alone and returns one page of the deduplicated, filtered
// result. A failed snapshot fetch aborts the whole operation: the error
// propagates instead of an empty result, because an empty result is
// indistinguishable from "no matches".
func (e *Engine) MatchPatterns(userID string, filters types.MatchFilters, page, pageSize int) (*types.MatchResponse, error) {
	if userID == "" {
		return nil, types.ErrUserIDEmpty
	}

	entries, err := e.stash.FetchStash(userID)
	if err != nil {
		return nil, fmt.Errorf("fetch stash: %w", err)
	}

	catalog, err := e.catalog.FetchPatternCatalog(types.CatalogFilter{
		ProjectType: filters.ProjectType,
		CraftType:   filters.CraftType,
		Weight:      filters.Weight,
		Designer:    filters.Designer,
		FreeOnly:    filters.FreeOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch pattern catalog: %w", err)
	}

	totals := Aggregate(e.norm, entries)
	candidates := ApplyFilters(catalog, filters)

	// An unset or unrecognized weight override means no narrowing.
	override := types.WeightUnknown
	if filterSet(filters.Weight) {
		override = e.norm.Normalize(filters.Weight)
		if override == types.WeightUnknown {
			e.log.Warn("ignoring unrecognized weight override", "weight", filters.Weight)
		}
	}

	matched := make([]types.MatchedPattern, 0)
	for _, p := range candidates {
		d := e.matcher.Evaluate(p, totals, override)
		if !d.Matches {
			continue
		}
		matched = append(matched, assembleMatch(p, d))
	}

	unique := Dedupe(matched)
	pageItems, pagination := Paginate(unique, page, pageSize)

	return &types.MatchResponse{
		Patterns:   pageItems,
		Pagination: pagination,
	}, nil
}

// assembleMatch joins a matched pattern with its display metadata.
func assembleMatch(p types.Pattern, d Decision) types.MatchedPattern {
	return types.MatchedPattern{
		PatternID:           p.PatternID,
		Name:                p.Name,
		Designer:            p.Designer,
		WeightLabel:         p.WeightLabel,
		YardageMin:          p.YardageMin,
		YardageMax:          p.YardageMax,
		ProjectType:         p.ProjectType,
		CraftType:           p.CraftType,
		URL:                 p.URL,
		Price:               p.Price,
		ImageRef:            p.ImageRef,
		DocRef:              p.DocRef,
		HeldYarnDescription: d.HeldDescription,
	}
}
