// Package weights canonicalizes free-form yarn weight labels and resolves
// which thickness classes can stand in for which, either by direct
// substitution or by holding multiple strands of a lighter yarn together.
package weights

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

// wpiAnnotation matches a parenthetical wraps-per-inch annotation, including
// range forms: "(14 wpi)", "(5-6 wpi)", "( 0 - 4 wpi )".
var wpiAnnotation = regexp.MustCompile(`\s*\(\s*\d+(?:\s*-\s*\d+)?\s*wpi\s*\)`)

// canonical maps exact stripped labels to classes. Hyphenated slug forms are
// included because imported catalogs carry both.
var canonical = map[string]types.WeightClass{
	"cobweb":          types.WeightCobweb,
	"thread":          types.WeightThread,
	"lace":            types.WeightLace,
	"light fingering": types.WeightLightFingering,
	"light-fingering": types.WeightLightFingering,
	"fingering":       types.WeightFingering,
	"sport":           types.WeightSport,
	"dk":              types.WeightDK,
	"worsted":         types.WeightWorsted,
	"aran":            types.WeightAran,
	"bulky":           types.WeightBulky,
	"super bulky":     types.WeightSuperBulky,
	"super-bulky":     types.WeightSuperBulky,
	"jumbo":           types.WeightJumbo,
}

// override is a declared substring rule checked before the generic substring
// fallback. Order matters: longer, more specific phrases come first so that
// "light fingering" never resolves through the bare "fingering" rule below.
type override struct {
	substr string
	class  types.WeightClass
}

var overrides = []override{
	{"light fingering", types.WeightLightFingering},
	{"light-fingering", types.WeightLightFingering},
	{"super bulky", types.WeightSuperBulky},
	{"super chunky", types.WeightSuperBulky},
	{"double knitting", types.WeightDK},
	{"chunky", types.WeightBulky},
	{"sock", types.WeightFingering},
}

// fallbackOrder fixes the class order for the substring fallback. Longer
// names precede their substrings (light fingering before fingering, super
// bulky before bulky) so containment checks stay unambiguous.
var fallbackOrder = []types.WeightClass{
	types.WeightLightFingering,
	types.WeightSuperBulky,
	types.WeightCobweb,
	types.WeightThread,
	types.WeightLace,
	types.WeightFingering,
	types.WeightSport,
	types.WeightDK,
	types.WeightWorsted,
	types.WeightAran,
	types.WeightBulky,
	types.WeightJumbo,
}

// Normalizer canonicalizes raw weight labels into WeightClass values.
// Unrecognized labels normalize to Unknown; that is an observability event,
// never an error.
type Normalizer struct {
	log *slog.Logger
}

// NewNormalizer creates a Normalizer. A nil logger falls back to
// slog.Default().
func NewNormalizer(log *slog.Logger) *Normalizer {
	if log == nil {
		log = slog.Default()
	}
	return &Normalizer{log: log}
}

// Normalize resolves a raw label to exactly one WeightClass, possibly
// Unknown. Lookup order: exact match on the lower-cased, wpi-stripped label;
// declared overrides; substring containment against canonical names.
//
// Multi-token descriptors joined by "/" or "," (e.g. "Aran / Worsted") are
// ambiguous in the source data and normalize to Unknown rather than silently
// picking a token. Logged for curation.
func (n *Normalizer) Normalize(raw string) types.WeightClass {
	label := Strip(raw)
	if label == "" {
		return types.WeightUnknown
	}

	if class, ok := canonical[label]; ok {
		return class
	}

	if strings.ContainsAny(label, "/,") {
		n.log.Warn("ambiguous multi-token weight label", "label", raw)
		return types.WeightUnknown
	}

	for _, o := range overrides {
		if strings.Contains(label, o.substr) {
			return o.class
		}
	}

	for _, class := range fallbackOrder {
		name := string(class)
		if strings.Contains(label, name) || strings.Contains(name, label) {
			return class
		}
	}

	n.log.Info("unrecognized weight label", "label", raw)
	return types.WeightUnknown
}

// Strip lower-cases a label and removes any parenthetical wpi annotation and
// surrounding whitespace. "Fingering (14 wpi)" becomes "fingering".
func Strip(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = wpiAnnotation.ReplaceAllString(label, "")
	return strings.TrimSpace(label)
}
