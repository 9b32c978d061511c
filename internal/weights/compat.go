package weights

import "github.com/hollyschr/StitchMatch/pkg/types"

// substitution declares, per class, which classes that yarn may stand in
// for at pattern gauge. Declared per class and not assumed symmetric.
type substitution struct {
	class types.WeightClass
	subs  []types.WeightClass
}

var substitutionTable = []substitution{
	{types.WeightLightFingering, []types.WeightClass{types.WeightFingering}},
	{types.WeightFingering, []types.WeightClass{types.WeightLightFingering, types.WeightSport}},
	{types.WeightSport, []types.WeightClass{types.WeightDK}},
	{types.WeightDK, []types.WeightClass{types.WeightSport, types.WeightWorsted}},
	{types.WeightWorsted, []types.WeightClass{types.WeightSport, types.WeightDK, types.WeightAran}},
	{types.WeightAran, []types.WeightClass{types.WeightWorsted, types.WeightBulky}},
	{types.WeightBulky, []types.WeightClass{types.WeightAran, types.WeightSuperBulky}},
	{types.WeightSuperBulky, []types.WeightClass{types.WeightBulky}},
}

// HeldEdge is one directional held-together derivation: holding two or more
// strands of Source approximates Target. Description is the display string
// surfaced on matches that rely on the edge.
type HeldEdge struct {
	Source      types.WeightClass
	Target      types.WeightClass
	Description string
}

// heldTable lists every held-together edge, lighter source to heavier
// target, in declaration order. Declaration order decides which description
// is reported when several edges apply.
var heldTable = []HeldEdge{
	{types.WeightThread, types.WeightLace, "2 strands of thread = Lace weight"},
	{types.WeightLace, types.WeightFingering, "2 strands of lace = Fingering to Sport weight"},
	{types.WeightLace, types.WeightSport, "2 strands of lace = Fingering to Sport weight"},
	{types.WeightFingering, types.WeightDK, "2 strands of fingering = DK weight"},
	{types.WeightSport, types.WeightDK, "2 strands of sport = DK or Light Worsted"},
	{types.WeightSport, types.WeightWorsted, "2 strands of sport = DK or Light Worsted"},
	{types.WeightDK, types.WeightWorsted, "2 strands of DK = Worsted or Aran"},
	{types.WeightDK, types.WeightAran, "2 strands of DK = Worsted or Aran"},
	{types.WeightWorsted, types.WeightBulky, "2 strands of Worsted = Chunky"},
	{types.WeightAran, types.WeightBulky, "2 strands of Aran = Chunky to Super Bulky"},
	{types.WeightAran, types.WeightSuperBulky, "2 strands of Aran = Chunky to Super Bulky"},
	{types.WeightBulky, types.WeightSuperBulky, "2 strands of Chunky = Super Bulky to Jumbo"},
	{types.WeightBulky, types.WeightJumbo, "2 strands of Chunky = Super Bulky to Jumbo"},
}

// HeldSource is a held-together edge viewed from its target.
type HeldSource struct {
	Class       types.WeightClass
	Description string
}

// Resolver answers which stash classes can satisfy a pattern requiring a
// given class. Both declared tables are inverted exactly once in
// NewResolver; the resulting indexes are immutable and safe for
// unsynchronized concurrent reads across any number of match requests.
type Resolver struct {
	// compatible maps target -> ordered source classes: the target itself,
	// then substitution sources, then held-together sources, deduplicated.
	compatible map[types.WeightClass][]types.WeightClass

	// subSources maps target -> set of classes whose substitution entry
	// includes the target.
	subSources map[types.WeightClass]map[types.WeightClass]bool

	// heldSources maps target -> held edges reaching it, in declaration
	// order.
	heldSources map[types.WeightClass][]HeldSource
}

// NewResolver builds the compatibility indexes from the declared tables.
// Build it once at process start and share it.
func NewResolver() *Resolver {
	r := &Resolver{
		compatible:  make(map[types.WeightClass][]types.WeightClass),
		subSources:  make(map[types.WeightClass]map[types.WeightClass]bool),
		heldSources: make(map[types.WeightClass][]HeldSource),
	}

	for _, s := range substitutionTable {
		for _, target := range s.subs {
			if r.subSources[target] == nil {
				r.subSources[target] = make(map[types.WeightClass]bool)
			}
			r.subSources[target][s.class] = true
		}
	}

	for _, e := range heldTable {
		r.heldSources[e.Target] = append(r.heldSources[e.Target], HeldSource{
			Class:       e.Source,
			Description: e.Description,
		})
	}

	for _, target := range types.WeightClasses {
		seen := map[types.WeightClass]bool{target: true}
		sources := []types.WeightClass{target}
		for _, s := range substitutionTable {
			if r.subSources[target][s.class] && !seen[s.class] {
				seen[s.class] = true
				sources = append(sources, s.class)
			}
		}
		for _, h := range r.heldSources[target] {
			if !seen[h.Class] {
				seen[h.Class] = true
				sources = append(sources, h.Class)
			}
		}
		r.compatible[target] = sources
	}

	return r
}

// CompatibleSources returns the stash classes that can satisfy a pattern
// requiring target: the target itself, every class whose substitution entry
// includes target, and every class with a held-together edge to target. The
// returned slice is ordered deterministically and must not be modified.
// Unknown has no compatible sources.
func (r *Resolver) CompatibleSources(target types.WeightClass) []types.WeightClass {
	return r.compatible[target]
}

// SubstitutesFor reports whether source's substitution entry declares it a
// stand-in for target.
func (r *Resolver) SubstitutesFor(source, target types.WeightClass) bool {
	return r.subSources[target][source]
}

// HeldSourcesFor returns the held-together edges reaching target, in
// declaration order. The returned slice must not be modified.
func (r *Resolver) HeldSourcesFor(target types.WeightClass) []HeldSource {
	return r.heldSources[target]
}
