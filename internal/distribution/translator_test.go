package distribution

import "testing"

func TestTranslate_UnknownPreference(t *testing.T) {
	_, err := Translate("no-such-preference", 20)
	if err == nil {
		t.Fatal("expected error for unknown preference")
	}
}

func TestTranslate_GuestWeighting(t *testing.T) {
	res, err := Translate("few-vegetarian", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TraditionalPct != 85 || res.PlantBasedPct != 15 {
		t.Errorf("expected 85/15 split, got %d/%d", res.TraditionalPct, res.PlantBasedPct)
	}
	if res.TraditionalGuests != 17 {
		t.Errorf("expected 17 traditional guests, got %d", res.TraditionalGuests)
	}
	if res.PlantBasedGuests != 3 {
		t.Errorf("expected 3 plant-based guests, got %d", res.PlantBasedGuests)
	}
	if res.DisplayText == "" || res.Reasoning == "" {
		t.Error("expected display text and reasoning to be set")
	}
}

func TestApply_HalfVegetarian(t *testing.T) {
	res, _ := Translate("half-vegetarian", 20)

	result := Apply(res, 100)
	if !result.Valid {
		t.Fatalf("expected valid result, got %+v", result)
	}

	d := result.Distribution
	if d.Boneless != 30 || d.BoneIn != 20 || d.Cauliflower != 50 {
		t.Errorf("expected 30/20/50, got %d/%d/%d", d.Boneless, d.BoneIn, d.Cauliflower)
	}
	if d.Total() != 100 {
		t.Errorf("expected total 100, got %d", d.Total())
	}
	if d.BoneInStyle != StyleMixed {
		t.Errorf("expected mixed bone-in style, got %s", d.BoneInStyle)
	}
	if d.DistributionSource != SourceWizard {
		t.Errorf("expected wizard source, got %s", d.DistributionSource)
	}
}

func TestApply_AllTraditional_ZeroStaysZero(t *testing.T) {
	res, _ := Translate("all-traditional", 10)

	result := Apply(res, 50)
	if !result.Valid {
		t.Fatalf("expected valid result, got %+v", result)
	}

	d := result.Distribution
	if d.Cauliflower != 0 {
		t.Errorf("zero plant-based must stay zero, got %d", d.Cauliflower)
	}
	if d.Boneless != 30 || d.BoneIn != 20 {
		t.Errorf("expected 30/20 traditional split, got %d/%d", d.Boneless, d.BoneIn)
	}
}

func TestApply_MinimumBump(t *testing.T) {
	// 15% of 40 rounds to 6 wings; no bump needed, exact fit.
	res, _ := Translate("few-vegetarian", 10)

	result := Apply(res, 40)
	if !result.Valid {
		t.Fatalf("expected valid result, got %+v", result)
	}
	if result.Distribution.Cauliflower != 6 {
		t.Errorf("expected 6 cauliflower wings, got %d", result.Distribution.Cauliflower)
	}
	if result.Distribution.Total() != 40 {
		t.Errorf("expected total 40, got %d", result.Distribution.Total())
	}
}

func TestApply_MinimumViolation(t *testing.T) {
	// 15% of 30 is 4.5 -> rounds to 5, bumps to 6; 26+6 > 30.
	res, _ := Translate("few-vegetarian", 10)

	result := Apply(res, 30)
	if result.Valid {
		t.Fatal("expected minimum violation")
	}
	if result.Error != ErrMinimumViolation {
		t.Errorf("expected error %q, got %q", ErrMinimumViolation, result.Error)
	}
	if result.Message == "" {
		t.Error("expected a user-facing message")
	}
	if result.Distribution != nil {
		t.Error("a failed apply must not produce a distribution")
	}
}

func TestApply_ZeroTotal(t *testing.T) {
	res, _ := Translate("half-vegetarian", 10)

	result := Apply(res, 0)
	if result.Valid {
		t.Fatal("expected failure for zero total")
	}
}

func TestApply_SumInvariant(t *testing.T) {
	prefs := []string{
		"all-traditional",
		"few-vegetarian",
		"half-vegetarian",
		"mostly-vegetarian",
		"all-vegetarian",
	}

	for _, pref := range prefs {
		for _, total := range []int{50, 75, 80, 100, 150, 200} {
			res, err := Translate(pref, 25)
			if err != nil {
				t.Fatalf("%s: %v", pref, err)
			}
			result := Apply(res, total)
			if !result.Valid {
				continue
			}
			if got := result.Distribution.Total(); got != total {
				t.Errorf("%s @ %d wings: distribution sums to %d", pref, total, got)
			}
		}
	}
}
