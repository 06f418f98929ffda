package allocation

import (
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// Two wings share one on-the-side container; each assignment
// rounds up on its own, never pooled with its neighbors.
const wingsPerContainer = 2

// CalculateSummary reduces a full assignment map into operational
// totals. Pure and idempotent: no mutation of the input, same
// output on every call.
func CalculateSummary(
	assignments AssignmentsByWingType,
	dist distribution.WingDistribution,
) Summary {

	s := Summary{}

	for _, wt := range distribution.CanonicalOrder {
		for _, a := range assignments[wt] {
			s.TotalWingsAssigned += a.WingCount

			switch a.ApplicationMethod {
			case MethodOnTheSide:
				s.ByApplicationMethod.OnTheSide += a.WingCount
				s.ContainersNeeded += (a.WingCount + wingsPerContainer - 1) / wingsPerContainer
			default:
				s.ByApplicationMethod.Tossed += a.WingCount
			}
		}
	}

	s.Validations = SummaryValidations{
		Boneless:    ValidateWingType(distribution.Boneless, assignments[distribution.Boneless], dist.Boneless),
		BoneIn:      ValidateWingType(distribution.BoneIn, assignments[distribution.BoneIn], dist.BoneIn),
		Cauliflower: ValidateWingType(distribution.Cauliflower, assignments[distribution.Cauliflower], dist.Cauliflower),
		Overall:     ValidateAll(assignments, dist),
	}

	return s
}
