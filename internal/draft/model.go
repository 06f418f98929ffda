package draft

import (
	"time"

	"github.com/tomcat65/philly-wings-sub000/internal/allocation"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
)

// DraftTTL is the validity window for a persisted draft. Anything
// older is ignored on load and the flow starts fresh.
const DraftTTL = 24 * time.Hour

// EventDetails is what the guided flow collects up front.
type EventDetails struct {
	EventDate    string `json:"eventDate,omitempty"`
	EventType    string `json:"eventType,omitempty"`
	GuestCount   int    `json:"guestCount,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CurrentConfig is the in-progress order configuration. The
// sauce-assignment subtree is what the checkout boundary
// eventually receives.
type CurrentConfig struct {
	SauceAssignments allocation.SauceConfig `json:"sauceAssignments"`
}

// Snapshot is the full draft state. Reads always get a structural
// copy; the only mutation path is Store.Update.
type Snapshot struct {
	EventDetails     EventDetails                   `json:"eventDetails"`
	WingDistribution *distribution.WingDistribution `json:"wingDistribution,omitempty"`
	CurrentConfig    CurrentConfig                  `json:"currentConfig"`
}

// NewSnapshot returns the fresh-draft shape: no distribution yet,
// empty selection, all-empty assignments.
func NewSnapshot() Snapshot {
	empty := allocation.EmptyAssignments()
	return Snapshot{
		CurrentConfig: CurrentConfig{
			SauceAssignments: allocation.SauceConfig{
				SelectedSauces: nil,
				AppliedPreset:  allocation.PresetNone,
				Assignments:    empty,
				Summary:        allocation.CalculateSummary(empty, distribution.WingDistribution{}),
			},
		},
	}
}

// Clone deep-copies a snapshot so callers can never reach live
// store state through a returned value.
func (s Snapshot) Clone() Snapshot {
	out := s

	if s.WingDistribution != nil {
		d := *s.WingDistribution
		out.WingDistribution = &d
	}

	cfg := &out.CurrentConfig.SauceAssignments
	cfg.SelectedSauces = append(cfg.SelectedSauces[:0:0], s.CurrentConfig.SauceAssignments.SelectedSauces...)
	cfg.Assignments = s.CurrentConfig.SauceAssignments.Assignments.Clone()
	cfg.Summary = cloneSummary(s.CurrentConfig.SauceAssignments.Summary)

	return out
}

func cloneSummary(sum allocation.Summary) allocation.Summary {
	out := sum
	out.Validations.Boneless = cloneValidation(sum.Validations.Boneless)
	out.Validations.BoneIn = cloneValidation(sum.Validations.BoneIn)
	out.Validations.Cauliflower = cloneValidation(sum.Validations.Cauliflower)
	out.Validations.Overall.Errors = append(
		sum.Validations.Overall.Errors[:0:0],
		sum.Validations.Overall.Errors...,
	)
	return out
}

func cloneValidation(v allocation.WingTypeValidation) allocation.WingTypeValidation {
	out := v
	out.Errors = append(v.Errors[:0:0], v.Errors...)
	return out
}

// storedDraft is the persisted envelope. The legacy shape kept a
// flat sauce list under currentConfig.sauces; both fields stay so
// old drafts still decode and can be migrated on load.
type storedDraft struct {
	EventDetails     EventDetails                   `json:"eventDetails"`
	WingDistribution *distribution.WingDistribution `json:"wingDistribution,omitempty"`
	CurrentConfig    storedConfig                   `json:"currentConfig"`
	SavedAt          time.Time                      `json:"savedAt"`
}

type storedConfig struct {
	SauceAssignments *allocation.SauceConfig  `json:"sauceAssignments,omitempty"`
	Sauces           []allocation.LegacySauce `json:"sauces,omitempty"`
}
