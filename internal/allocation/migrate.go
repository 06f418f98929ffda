package allocation

import (
	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// LegacySauce is the old flat draft shape: one quantity per sauce,
// no wing-type key. The dry-rub flag may be absent entirely, hence
// the pointer.
type LegacySauce struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	WingCount int    `json:"wingCount"`
	Category  string `json:"category,omitempty"`
	IsDryRub  *bool  `json:"isDryRub,omitempty"`
	HeatLevel int    `json:"heatLevel,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// MigrateSauceData upgrades a flat sauce list into the current
// per-wing-type shape using one-per-type as the compatibility
// default. The old per-sauce wing counts are discarded: the flat
// shape could not express partial per-type allocation, so
// migration coarsens to "one sauce owns the whole type".
func MigrateSauceData(
	old []LegacySauce,
	dist distribution.WingDistribution,
) SauceConfig {

	selected := []catalog.Sauce{}
	for _, entry := range old {
		if entry.WingCount <= 0 {
			continue
		}

		s := catalog.Sauce{
			ID:        entry.ID,
			Name:      entry.Name,
			Category:  entry.Category,
			HeatLevel: entry.HeatLevel,
			ImageURL:  entry.ImageURL,
		}
		if entry.IsDryRub != nil {
			s.IsDryRub = *entry.IsDryRub
		}
		selected = append(selected, catalog.Normalize(s))
	}

	if len(selected) == 0 {
		empty := EmptyAssignments()
		return SauceConfig{
			SelectedSauces: selected,
			AppliedPreset:  PresetNone,
			Assignments:    empty,
			Summary:        CalculateSummary(empty, dist),
		}
	}

	assignments := ApplyPreset(PresetOnePerType, selected, dist)

	return SauceConfig{
		SelectedSauces: selected,
		AppliedPreset:  PresetOnePerType,
		Assignments:    assignments,
		Summary:        CalculateSummary(assignments, dist),
	}
}
