package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

func TestNormalizeExactAndCase(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		label string
		want  types.WeightClass
	}{
		{"fingering", types.WeightFingering},
		{"FINGERING", types.WeightFingering},
		{"Fingering (14 wpi)", types.WeightFingering},
		{"Worsted (9 wpi)", types.WeightWorsted},
		{"Super Bulky (5-6 wpi)", types.WeightSuperBulky},
		{"Jumbo (0-4 wpi)", types.WeightJumbo},
		{"super-bulky", types.WeightSuperBulky},
		{"light-fingering", types.WeightLightFingering},
		{"  DK (11 wpi)  ", types.WeightDK},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.label))
		})
	}
}

// All spellings of the same class must collapse to one value.
func TestNormalizeEquivalentSpellings(t *testing.T) {
	n := NewNormalizer(nil)

	a := n.Normalize("Fingering (14 wpi)")
	b := n.Normalize("fingering")
	c := n.Normalize("FINGERING")
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
	assert.Equal(t, types.WeightFingering, a)
}

func TestNormalizeOverrides(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		label string
		want  types.WeightClass
	}{
		// "light fingering" contains "fingering" but must not resolve to it.
		{"Light Fingering", types.WeightLightFingering},
		{"light fingering yarn", types.WeightLightFingering},
		{"double knitting", types.WeightDK},
		{"super chunky", types.WeightSuperBulky},
		{"chunky", types.WeightBulky},
		{"sock yarn", types.WeightFingering},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.label))
		})
	}
}

func TestNormalizeSubstringFallback(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, types.WeightWorsted, n.Normalize("worsted weight"))
	assert.Equal(t, types.WeightAran, n.Normalize("aran weight yarn"))
}

func TestNormalizeUnknown(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, types.WeightUnknown, n.Normalize(""))
	assert.Equal(t, types.WeightUnknown, n.Normalize("   "))
	assert.Equal(t, types.WeightUnknown, n.Normalize("mystery fiber"))
}

// Multi-token descriptors are ambiguous; the normalizer must not pick a
// token.
func TestNormalizeAmbiguousMultiToken(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, types.WeightUnknown, n.Normalize("Aran / Worsted"))
	assert.Equal(t, types.WeightUnknown, n.Normalize("fingering, sport"))
}

func TestStrip(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Fingering (14 wpi)", "fingering"},
		{"Super Bulky (5-6 wpi)", "super bulky"},
		{"Jumbo (0-4 wpi)", "jumbo"},
		{"Lace", "lace"},
		{"  Worsted ( 9 wpi ) ", "worsted"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Strip(tt.raw), "Strip(%q)", tt.raw)
	}
}
