package allocation

import (
	"reflect"
	"testing"

	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

func TestSummary_ContainerMath(t *testing.T) {
	dist := distribution.WingDistribution{Boneless: 40}
	assignments := EmptyAssignments()
	assignments[distribution.Boneless] = []SauceAssignment{
		assignment("buffalo", 30, MethodOnTheSide),
		assignment("bbq", 10, MethodOnTheSide),
	}

	summary := CalculateSummary(assignments, dist)

	if summary.ContainersNeeded != 20 {
		t.Errorf("expected 20 containers, got %d", summary.ContainersNeeded)
	}
	if summary.ByApplicationMethod.OnTheSide != 40 {
		t.Errorf("expected 40 on-the-side wings, got %d", summary.ByApplicationMethod.OnTheSide)
	}
}

func TestSummary_ContainersNotPooled(t *testing.T) {
	// Two 1-wing on-the-side assignments need 2 containers, not 1.
	dist := distribution.WingDistribution{Boneless: 2}
	assignments := EmptyAssignments()
	assignments[distribution.Boneless] = []SauceAssignment{
		assignment("buffalo", 1, MethodOnTheSide),
		assignment("bbq", 1, MethodOnTheSide),
	}

	summary := CalculateSummary(assignments, dist)

	if summary.ContainersNeeded != 2 {
		t.Errorf("expected 2 containers, got %d", summary.ContainersNeeded)
	}
}

func TestSummary_MixedMethods(t *testing.T) {
	dist := distribution.WingDistribution{Boneless: 50}
	assignments := EmptyAssignments()
	assignments[distribution.Boneless] = []SauceAssignment{
		assignment("buffalo", 25, MethodTossed),
		assignment("bbq", 25, MethodOnTheSide),
	}

	summary := CalculateSummary(assignments, dist)

	if summary.ByApplicationMethod.Tossed != 25 {
		t.Errorf("expected 25 tossed, got %d", summary.ByApplicationMethod.Tossed)
	}
	if summary.ByApplicationMethod.OnTheSide != 25 {
		t.Errorf("expected 25 on the side, got %d", summary.ByApplicationMethod.OnTheSide)
	}
	if summary.ContainersNeeded != 13 {
		t.Errorf("expected 13 containers, got %d", summary.ContainersNeeded)
	}
	if summary.TotalWingsAssigned != 50 {
		t.Errorf("expected 50 wings assigned, got %d", summary.TotalWingsAssigned)
	}
}

func TestSummary_TossedNeedsNoContainers(t *testing.T) {
	dist := distribution.WingDistribution{Boneless: 50, BoneIn: 30}
	assignments := ApplyPreset(PresetEvenMix, testSauces(), dist)

	summary := CalculateSummary(assignments, dist)

	if summary.ContainersNeeded != 0 {
		t.Errorf("tossed-only order needs no containers, got %d", summary.ContainersNeeded)
	}
	if !summary.Validations.Overall.Valid {
		t.Errorf("expected valid order, got %v", summary.Validations.Overall.Errors)
	}
}

func TestSummary_Idempotent(t *testing.T) {
	dist := distribution.WingDistribution{Boneless: 50, BoneIn: 30, Cauliflower: 20}
	assignments := ApplyPreset(PresetOnePerType, testSauces(), dist)
	assignments[distribution.Boneless][0].ApplicationMethod = MethodOnTheSide

	before := assignments.Clone()

	first := CalculateSummary(assignments, dist)
	second := CalculateSummary(assignments, dist)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated summaries must be identical")
	}
	if !reflect.DeepEqual(assignments, before) {
		t.Error("summary must not mutate its input")
	}
}
