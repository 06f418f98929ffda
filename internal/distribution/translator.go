package distribution

import (
	"errors"
	"fmt"
	"math"
)

// MinCategoryWings is the smallest non-zero quantity the kitchen
// will prepare for a category. Zero stays zero; anything between
// is bumped up to this.
const MinCategoryWings = 6

// Share of traditional wings that defaults to boneless.
const bonelessSharePct = 60

const ErrMinimumViolation = "minimum-violation"

// TranslateResult is the informational half of the wizard step:
// percentages plus display copy. Guest counts here are rounded
// for display only; wing counts come from Apply.
type TranslateResult struct {
	TraditionalPct    int    `json:"traditionalPct"`
	PlantBasedPct     int    `json:"plantBasedPct"`
	TraditionalGuests int    `json:"traditionalGuests"`
	PlantBasedGuests  int    `json:"plantBasedGuests"`
	Reasoning         string `json:"reasoning"`
	DisplayText       string `json:"displayText"`
}

// ApplyResult is the outcome of turning percentages into wing
// quantities. A minimum-violation comes back as Valid=false with
// a typed Error; the engine never clamps a category below the
// minimum on its own.
type ApplyResult struct {
	Valid        bool              `json:"valid"`
	Error        string            `json:"error,omitempty"`
	Message      string            `json:"message,omitempty"`
	Distribution *WingDistribution `json:"distribution,omitempty"`
}

// Translate looks up a named preference and weights the guest
// count across the two categories.
func Translate(preferenceID string, guestCount int) (TranslateResult, error) {
	pref, ok := preferences[preferenceID]
	if !ok {
		return TranslateResult{}, errors.New("unknown distribution preference: " + preferenceID)
	}
	if guestCount < 0 {
		return TranslateResult{}, errors.New("guest count cannot be negative")
	}

	tradGuests := int(math.Round(float64(guestCount) * float64(pref.TraditionalPct) / 100))
	plantGuests := guestCount - tradGuests

	return TranslateResult{
		TraditionalPct:    pref.TraditionalPct,
		PlantBasedPct:     pref.PlantBasedPct,
		TraditionalGuests: tradGuests,
		PlantBasedGuests:  plantGuests,
		Reasoning:         pref.Reasoning,
		DisplayText: fmt.Sprintf(
			"About %d of your %d guests get traditional wings, %d get cauliflower.",
			tradGuests, guestCount, plantGuests,
		),
	}, nil
}

// Apply converts a percentage split into absolute wing counts.
//
// The plant-based count is derived from the traditional count so
// the pair always sums to totalWings regardless of rounding.
func Apply(res TranslateResult, totalWings int) ApplyResult {
	if totalWings <= 0 {
		return ApplyResult{
			Valid:   false,
			Error:   ErrMinimumViolation,
			Message: "Pick a package before choosing a wing split.",
		}
	}

	traditional := int(math.Round(float64(totalWings) * float64(res.TraditionalPct) / 100))
	plantBased := totalWings - traditional

	traditional = bumpToMinimum(traditional)
	plantBased = bumpToMinimum(plantBased)

	if traditional+plantBased > totalWings {
		return ApplyResult{
			Valid: false,
			Error: ErrMinimumViolation,
			Message: fmt.Sprintf(
				"This split needs at least %d wings to honor the %d-wing minimum per style. Pick a larger package or a different preference.",
				traditional+plantBased, MinCategoryWings,
			),
		}
	}

	// Floor the boneless share and give bone-in the remainder so
	// the traditional pair can never drift.
	boneless := traditional * bonelessSharePct / 100
	boneIn := traditional - boneless

	dist := WingDistribution{
		Boneless:           boneless,
		BoneIn:             boneIn,
		Cauliflower:        plantBased,
		BoneInStyle:        StyleMixed,
		DistributionSource: SourceWizard,
	}

	reconcile(&dist, totalWings)

	return ApplyResult{Valid: true, Distribution: &dist}
}

func bumpToMinimum(count int) int {
	if count > 0 && count < MinCategoryWings {
		return MinCategoryWings
	}
	return count
}

// reconcile absorbs any residual rounding drift into the largest
// category, ties broken boneless > boneIn > cauliflower.
func reconcile(d *WingDistribution, totalWings int) {
	diff := totalWings - d.Total()
	if diff == 0 {
		return
	}

	switch {
	case d.Boneless >= d.BoneIn && d.Boneless >= d.Cauliflower:
		d.Boneless += diff
	case d.BoneIn >= d.Cauliflower:
		d.BoneIn += diff
	default:
		d.Cauliflower += diff
	}
}
