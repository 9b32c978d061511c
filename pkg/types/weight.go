package types

// WeightClass is a categorical yarn-thickness bucket. The parenthetical
// wraps-per-inch figures in the display labels are nominal midpoints used to
// anchor class boundaries; nothing computes with them at runtime.
type WeightClass string

// Weight classes, lightest to heaviest.
const (
	WeightCobweb         WeightClass = "cobweb"
	WeightThread         WeightClass = "thread"
	WeightLace           WeightClass = "lace"
	WeightLightFingering WeightClass = "light fingering"
	WeightFingering      WeightClass = "fingering"
	WeightSport          WeightClass = "sport"
	WeightDK             WeightClass = "dk"
	WeightWorsted        WeightClass = "worsted"
	WeightAran           WeightClass = "aran"
	WeightBulky          WeightClass = "bulky"
	WeightSuperBulky     WeightClass = "super bulky"
	WeightJumbo          WeightClass = "jumbo"

	// WeightUnknown is the normalization result for unrecognized or
	// ambiguous labels. It never participates in matching.
	WeightUnknown WeightClass = "unknown"
)

// WeightClasses lists every non-Unknown class, lightest to heaviest.
var WeightClasses = []WeightClass{
	WeightCobweb,
	WeightThread,
	WeightLace,
	WeightLightFingering,
	WeightFingering,
	WeightSport,
	WeightDK,
	WeightWorsted,
	WeightAran,
	WeightBulky,
	WeightSuperBulky,
	WeightJumbo,
}

// displayLabels maps each class to its canonical catalog label.
var displayLabels = map[WeightClass]string{
	WeightCobweb:         "Cobweb",
	WeightThread:         "Thread",
	WeightLace:           "Lace",
	WeightLightFingering: "Light Fingering",
	WeightFingering:      "Fingering (14 wpi)",
	WeightSport:          "Sport (12 wpi)",
	WeightDK:             "DK (11 wpi)",
	WeightWorsted:        "Worsted (9 wpi)",
	WeightAran:           "Aran (8 wpi)",
	WeightBulky:          "Bulky (7 wpi)",
	WeightSuperBulky:     "Super Bulky (5-6 wpi)",
	WeightJumbo:          "Jumbo (0-4 wpi)",
}

// Display returns the canonical catalog label for the class, e.g.
// "Worsted (9 wpi)". Unknown displays as "Unknown".
func (w WeightClass) Display() string {
	if label, ok := displayLabels[w]; ok {
		return label
	}
	return "Unknown"
}

// Known reports whether the class is a real thickness bucket (not Unknown).
func (w WeightClass) Known() bool {
	_, ok := displayLabels[w]
	return ok
}
