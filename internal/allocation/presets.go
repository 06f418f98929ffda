package allocation

import (
	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// ApplyPreset distributes the selected sauces over the wing-type
// totals. Wing types with a zero count always get an empty list.
// An unrecognized preset behaves like custom: this sits under an
// interactive editor, and an empty result beats a crash.
func ApplyPreset(
	preset Preset,
	sauces []catalog.Sauce,
	dist distribution.WingDistribution,
) AssignmentsByWingType {

	switch preset {
	case PresetAllSame:
		return applyAllSame(sauces, dist)
	case PresetEvenMix:
		return applyEvenMix(sauces, dist)
	case PresetOnePerType:
		return applyOnePerType(sauces, dist)
	default:
		return EmptyAssignments()
	}
}

func newAssignment(s catalog.Sauce, wingCount int) SauceAssignment {
	return SauceAssignment{
		SauceID:           s.ID,
		SauceName:         s.Name,
		SauceCategory:     s.Category,
		WingCount:         wingCount,
		ApplicationMethod: MethodTossed,
	}
}

// --------------------------------------------------
// all-same: the first sauce owns every wing type
// --------------------------------------------------
func applyAllSame(
	sauces []catalog.Sauce,
	dist distribution.WingDistribution,
) AssignmentsByWingType {

	out := EmptyAssignments()
	if len(sauces) == 0 {
		return out
	}

	for _, wt := range distribution.CanonicalOrder {
		total := dist.CountFor(wt)
		if total == 0 {
			continue
		}
		out[wt] = []SauceAssignment{newAssignment(sauces[0], total)}
	}
	return out
}

// --------------------------------------------------
// even-mix: floor split, first remainder sauces get +1
// --------------------------------------------------
func applyEvenMix(
	sauces []catalog.Sauce,
	dist distribution.WingDistribution,
) AssignmentsByWingType {

	out := EmptyAssignments()
	n := len(sauces)
	if n == 0 {
		return out
	}

	for _, wt := range distribution.CanonicalOrder {
		total := dist.CountFor(wt)
		if total == 0 {
			continue
		}

		base := total / n
		remainder := total % n

		list := make([]SauceAssignment, 0, n)
		for i, s := range sauces {
			count := base
			// Selection order decides who gets the extras; the
			// editor's reference behavior depends on this.
			if i < remainder {
				count++
			}
			list = append(list, newAssignment(s, count))
		}
		out[wt] = list
	}
	return out
}

// --------------------------------------------------
// one-per-type: sauce index wraps over active wing types
// --------------------------------------------------
func applyOnePerType(
	sauces []catalog.Sauce,
	dist distribution.WingDistribution,
) AssignmentsByWingType {

	out := EmptyAssignments()
	n := len(sauces)
	if n == 0 {
		return out
	}

	var active []distribution.WingType
	for _, wt := range distribution.CanonicalOrder {
		if dist.CountFor(wt) > 0 {
			active = append(active, wt)
		}
	}

	for i, wt := range active {
		sauce := sauces[i%n]
		out[wt] = []SauceAssignment{newAssignment(sauce, dist.CountFor(wt))}
	}
	return out
}
