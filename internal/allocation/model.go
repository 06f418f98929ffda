package allocation

import (
	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// Application methods.
const (
	MethodTossed    = "tossed"
	MethodOnTheSide = "on-the-side"
)

// Preset is a named sauce-allocation strategy.
type Preset string

const (
	PresetNone       Preset = ""
	PresetAllSame    Preset = "all-same"
	PresetEvenMix    Preset = "even-mix"
	PresetOnePerType Preset = "one-per-type"
	PresetCustom     Preset = "custom"
)

// SauceAssignment is one sauce applied to part of a wing type.
// Unassigned wings are implicit; no sentinel entries.
type SauceAssignment struct {
	SauceID           string `json:"sauceId"`
	SauceName         string `json:"sauceName"`
	SauceCategory     string `json:"sauceCategory"`
	WingCount         int    `json:"wingCount"`
	ApplicationMethod string `json:"applicationMethod"`
}

// AssignmentsByWingType maps each wing type to its assignment list.
type AssignmentsByWingType map[distribution.WingType][]SauceAssignment

// EmptyAssignments returns the all-empty shape with every wing
// type present, so consumers never have to nil-check a key.
func EmptyAssignments() AssignmentsByWingType {
	out := make(AssignmentsByWingType, len(distribution.CanonicalOrder))
	for _, wt := range distribution.CanonicalOrder {
		out[wt] = []SauceAssignment{}
	}
	return out
}

// Clone deep-copies the assignment map.
func (a AssignmentsByWingType) Clone() AssignmentsByWingType {
	out := make(AssignmentsByWingType, len(a))
	for wt, list := range a {
		copied := make([]SauceAssignment, len(list))
		copy(copied, list)
		out[wt] = copied
	}
	return out
}

// WingTypeValidation is the per-type validation report.
type WingTypeValidation struct {
	Valid           bool     `json:"valid"`
	AssignedTotal   int      `json:"assignedTotal"`
	PercentComplete int      `json:"percentComplete"`
	Errors          []string `json:"errors"`
}

// OrderValidation is the whole-order roll-up.
type OrderValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type MethodTotals struct {
	Tossed    int `json:"tossed"`
	OnTheSide int `json:"onTheSide"`
}

type SummaryValidations struct {
	Boneless    WingTypeValidation `json:"boneless"`
	BoneIn      WingTypeValidation `json:"boneIn"`
	Cauliflower WingTypeValidation `json:"cauliflower"`
	Overall     OrderValidation    `json:"overall"`
}

// Summary holds the operational totals derived from a full
// assignment map. Always recomputed, never hand-edited.
type Summary struct {
	TotalWingsAssigned  int                `json:"totalWingsAssigned"`
	ByApplicationMethod MethodTotals       `json:"byApplicationMethod"`
	ContainersNeeded    int                `json:"containersNeeded"`
	Validations         SummaryValidations `json:"validations"`
}

// SauceConfig is the sauce-assignment subtree of a draft:
// the user's selection, the preset that produced the current
// assignments, and the derived summary.
type SauceConfig struct {
	SelectedSauces []catalog.Sauce       `json:"selectedSauces"`
	AppliedPreset  Preset                `json:"appliedPreset"`
	Assignments    AssignmentsByWingType `json:"assignments"`
	Summary        Summary               `json:"summary"`
}
