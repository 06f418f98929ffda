package distribution

// WingType is a fulfillment category. Validation treats the
// enumeration as closed.
type WingType string

const (
	Boneless    WingType = "boneless"
	BoneIn      WingType = "boneIn"
	Cauliflower WingType = "cauliflower"
)

// CanonicalOrder is the fixed wing-type order used by the
// one-per-type preset and by whole-order validation.
var CanonicalOrder = []WingType{Boneless, BoneIn, Cauliflower}

// Bone-in styles.
const (
	StyleMixed    = "mixed"
	StyleAllDrums = "allDrums"
	StyleAllFlats = "allFlats"
)

// How the distribution was produced.
const (
	SourceManual        = "manual"
	SourceWizard        = "conversational-wizard"
	SourceSmartDefaults = "smart-defaults"
)

// WingDistribution is the per-type wing quantity split. The sum
// of the three counts is the authoritative total for allocation.
type WingDistribution struct {
	Boneless           int    `json:"boneless"`
	BoneIn             int    `json:"boneIn"`
	Cauliflower        int    `json:"cauliflower"`
	BoneInStyle        string `json:"boneInStyle"`
	DistributionSource string `json:"distributionSource"`
}

func (d WingDistribution) Total() int {
	return d.Boneless + d.BoneIn + d.Cauliflower
}

// CountFor returns the quantity for one wing type.
func (d WingDistribution) CountFor(wt WingType) int {
	switch wt {
	case Boneless:
		return d.Boneless
	case BoneIn:
		return d.BoneIn
	case Cauliflower:
		return d.Cauliflower
	}
	return 0
}

// Preference is a named traditional/plant-based split.
type Preference struct {
	ID             string
	TraditionalPct int
	PlantBasedPct  int
	Reasoning      string
}

// The preference table is a pure lookup; percentages always sum
// to 100 so Apply can derive one side from the other.
var preferences = map[string]Preference{
	"all-traditional": {
		ID:             "all-traditional",
		TraditionalPct: 100,
		PlantBasedPct:  0,
		Reasoning:      "Everyone gets classic chicken wings.",
	},
	"few-vegetarian": {
		ID:             "few-vegetarian",
		TraditionalPct: 85,
		PlantBasedPct:  15,
		Reasoning:      "A small cauliflower batch covers the handful of vegetarian guests.",
	},
	"half-vegetarian": {
		ID:             "half-vegetarian",
		TraditionalPct: 50,
		PlantBasedPct:  50,
		Reasoning:      "An even split keeps both sides of the table covered.",
	},
	"mostly-vegetarian": {
		ID:             "mostly-vegetarian",
		TraditionalPct: 25,
		PlantBasedPct:  75,
		Reasoning:      "Cauliflower leads, with a smaller traditional batch for the holdouts.",
	},
	"all-vegetarian": {
		ID:             "all-vegetarian",
		TraditionalPct: 0,
		PlantBasedPct:  100,
		Reasoning:      "The whole order is plant-based cauliflower wings.",
	},
}
