package allocation

import (
	"fmt"
	"math"

	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// ValidateWingType checks one wing type's assignment list against
// its total. Errors accumulate; they are not mutually exclusive.
// Validity requires both zero errors and an exact total.
func ValidateWingType(
	wt distribution.WingType,
	assignments []SauceAssignment,
	totalWings int,
) WingTypeValidation {

	assignedTotal := 0
	for _, a := range assignments {
		// Negative counts still contribute so the overage/shortfall
		// message reflects what the user actually typed.
		assignedTotal += a.WingCount
	}

	if totalWings == 0 {
		return WingTypeValidation{
			Valid:           true,
			AssignedTotal:   assignedTotal,
			PercentComplete: 100,
			Errors:          []string{},
		}
	}

	errs := []string{}

	for _, a := range assignments {
		if a.WingCount < 0 {
			errs = append(errs, "Wing count cannot be negative")
			break
		}
	}

	for _, a := range assignments {
		if a.SauceCategory == catalog.CategoryDryRub && a.ApplicationMethod == MethodOnTheSide {
			errs = append(errs, "Dry rubs cannot be served on-the-side")
			break
		}
	}

	if assignedTotal < totalWings {
		errs = append(errs, fmt.Sprintf("Assign %d more wings", totalWings-assignedTotal))
	}
	if assignedTotal > totalWings {
		errs = append(errs, fmt.Sprintf("Remove %d wings", assignedTotal-totalWings))
	}

	return WingTypeValidation{
		Valid:           len(errs) == 0 && assignedTotal == totalWings,
		AssignedTotal:   assignedTotal,
		PercentComplete: int(math.Round(float64(assignedTotal) / float64(totalWings) * 100)),
		Errors:          errs,
	}
}

// ValidateAll runs the per-type check for every wing type and
// rolls the results up, prefixing each error with its wing type.
func ValidateAll(
	assignments AssignmentsByWingType,
	dist distribution.WingDistribution,
) OrderValidation {

	out := OrderValidation{Valid: true, Errors: []string{}}

	for _, wt := range distribution.CanonicalOrder {
		result := ValidateWingType(wt, assignments[wt], dist.CountFor(wt))
		if result.Valid {
			continue
		}
		out.Valid = false
		for _, e := range result.Errors {
			out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", wt, e))
		}
	}

	return out
}
