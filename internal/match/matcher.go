package match

import (
	"github.com/hollyschr/StitchMatch/internal/weights"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

// Decision is the outcome of evaluating one pattern against aggregated
// stash.
type Decision struct {
	Matches bool

	// HeldDescription is set only when the match relies on a source class
	// that reaches the target exclusively through a held-together edge.
	HeldDescription string
}

// Matcher decides pattern-by-pattern whether aggregated stash can satisfy a
// pattern's primary yarn requirement. It holds only immutable collaborators
// and is safe for concurrent use.
type Matcher struct {
	norm *weights.Normalizer
	res  *weights.Resolver
}

// NewMatcher creates a Matcher over the shared normalizer and resolver.
func NewMatcher(norm *weights.Normalizer, res *weights.Resolver) *Matcher {
	return &Matcher{norm: norm, res: res}
}

// Evaluate decides whether the pattern is craftable from the given stash
// totals. override narrows the usable stash to a single class when not
// Unknown.
//
// Sufficiency uses plain >= with no tolerance band: when a max bound is
// present stash must cover it; with only a min bound stash must cover that;
// with no bound at all the pattern can never match.
func (m *Matcher) Evaluate(p types.Pattern, totals StashTotals, override types.WeightClass) Decision {
	target := m.norm.Normalize(p.WeightLabel)
	if target == types.WeightUnknown {
		return Decision{}
	}

	if p.YardageMin == nil && p.YardageMax == nil {
		return Decision{}
	}

	sources := m.res.CompatibleSources(target)
	if override != types.WeightUnknown {
		sources = narrowTo(sources, override)
	}

	var available float64
	for _, c := range sources {
		available += totals[c]
	}
	if available == 0 {
		return Decision{}
	}

	var required float64
	switch {
	case p.YardageMax != nil:
		required = *p.YardageMax
	default:
		required = *p.YardageMin
	}
	if available < required {
		return Decision{}
	}

	return Decision{
		Matches:         true,
		HeldDescription: m.heldDescription(target, totals, sources),
	}
}

// heldDescription returns the display string for the first held-together
// edge, in declaration order, whose source actually contributes stash and
// reaches the target only through that edge. Identity and substitution take
// precedence: a class that also substitutes for the target reports no
// held-yarn derivation.
func (m *Matcher) heldDescription(target types.WeightClass, totals StashTotals, sources []types.WeightClass) string {
	usable := make(map[types.WeightClass]bool, len(sources))
	for _, c := range sources {
		usable[c] = true
	}

	for _, h := range m.res.HeldSourcesFor(target) {
		if !usable[h.Class] || totals[h.Class] == 0 {
			continue
		}
		if h.Class == target || m.res.SubstitutesFor(h.Class, target) {
			continue
		}
		return h.Description
	}
	return ""
}

// narrowTo intersects the compatible source list with a single class.
func narrowTo(sources []types.WeightClass, class types.WeightClass) []types.WeightClass {
	for _, c := range sources {
		if c == class {
			return []types.WeightClass{class}
		}
	}
	return nil
}
