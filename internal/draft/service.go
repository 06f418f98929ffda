package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomcat65/philly-wings-sub000/internal/allocation"
	"github.com/tomcat65/philly-wings-sub000/internal/catalog"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
	"github.com/tomcat65/philly-wings-sub000/internal/kv"
)

var ErrDraftNotFound = errors.New("draft not found")

// SauceResolver maps selected sauce ids to normalized catalog
// records, in selection order.
type SauceResolver interface {
	ResolveSauces(ctx context.Context, ids []string) ([]catalog.Sauce, error)
}

// Service orchestrates the draft flow: one Store per draft id,
// the translator, the preset engine and the aggregator.
type Service struct {
	resolver SauceResolver
	persist  kv.Store
	now      func() time.Time

	mu     sync.Mutex
	stores map[string]*Store
	notify func(draftID string, snap Snapshot)
}

func NewService(resolver SauceResolver, persist kv.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		resolver: resolver,
		persist:  persist,
		now:      now,
		stores:   make(map[string]*Store),
	}
}

// SetNotifier wires an outbound change listener (the websocket
// hub). Must be called before drafts are created.
func (s *Service) SetNotifier(fn func(draftID string, snap Snapshot)) {
	s.notify = fn
}

func draftKey(id string) string {
	return "draft:" + id
}

// storeFor returns the store for a draft, restoring it from
// persistence if this instance has not seen it yet.
func (s *Service) storeFor(id string, create bool) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[id]; ok {
		return st, nil
	}

	if !create {
		if _, ok := s.persist.Get(context.Background(), draftKey(id)); !ok {
			return nil, ErrDraftNotFound
		}
	}

	st := NewStore(s.persist, draftKey(id), s.now)
	if s.notify != nil {
		st.Subscribe(func(snap Snapshot) {
			s.notify(id, snap)
		})
	}
	s.stores[id] = st
	return st, nil
}

// --------------------------------------------------
// Lifecycle
// --------------------------------------------------

// Start creates a draft and persists its initial snapshot.
func (s *Service) Start(details *EventDetails) (string, Snapshot) {
	id := uuid.New().String()
	st, _ := s.storeFor(id, true)

	snap := st.Update(func(sn *Snapshot) {
		if details != nil {
			sn.EventDetails = *details
		}
	})
	return id, snap
}

func (s *Service) Get(id string) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}
	return st.GetState(), nil
}

// StartOver discards the draft entirely.
func (s *Service) StartOver(id string) error {
	st, err := s.storeFor(id, false)
	if err != nil {
		return err
	}
	st.Destroy()

	s.mu.Lock()
	delete(s.stores, id)
	s.mu.Unlock()
	return nil
}

// --------------------------------------------------
// Event details
// --------------------------------------------------

func (s *Service) SetEventDetails(id string, details EventDetails) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}
	return st.Update(func(sn *Snapshot) {
		sn.EventDetails = details
	}), nil
}

// --------------------------------------------------
// Wing distribution
// --------------------------------------------------

// ApplyPreference runs the quantity translator and, when the
// split is feasible, stores the resulting distribution. An
// infeasible split comes back as the typed minimum-violation
// result without touching the draft.
func (s *Service) ApplyPreference(
	id string,
	preferenceID string,
	guestCount int,
	totalWings int,
) (distribution.ApplyResult, error) {

	st, err := s.storeFor(id, false)
	if err != nil {
		return distribution.ApplyResult{}, err
	}

	translated, err := distribution.Translate(preferenceID, guestCount)
	if err != nil {
		return distribution.ApplyResult{}, err
	}

	result := distribution.Apply(translated, totalWings)
	if !result.Valid {
		return result, nil
	}

	st.Update(func(sn *Snapshot) {
		sn.WingDistribution = result.Distribution
		reapplyPreset(sn)
		recompute(sn)
	})
	return result, nil
}

// SetDistribution stores a manually edited per-type split.
func (s *Service) SetDistribution(
	id string,
	dist distribution.WingDistribution,
) (Snapshot, error) {

	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}

	if dist.Boneless < 0 || dist.BoneIn < 0 || dist.Cauliflower < 0 {
		return Snapshot{}, errors.New("wing counts cannot be negative")
	}
	if dist.BoneInStyle == "" {
		dist.BoneInStyle = distribution.StyleMixed
	}
	dist.DistributionSource = distribution.SourceManual

	return st.Update(func(sn *Snapshot) {
		sn.WingDistribution = &dist
		reapplyPreset(sn)
		recompute(sn)
	}), nil
}

// --------------------------------------------------
// Sauce selection + presets
// --------------------------------------------------

// SelectSauces replaces the selection. Assignments for sauces no
// longer selected are dropped; a generative preset is re-run over
// the new selection.
func (s *Service) SelectSauces(ctx context.Context, id string, sauceIDs []string) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}

	sauces, err := s.resolver.ResolveSauces(ctx, sauceIDs)
	if err != nil {
		return Snapshot{}, err
	}

	return st.Update(func(sn *Snapshot) {
		cfg := &sn.CurrentConfig.SauceAssignments
		cfg.SelectedSauces = sauces

		selected := make(map[string]bool, len(sauces))
		for _, sauce := range sauces {
			selected[sauce.ID] = true
		}
		for wt, list := range cfg.Assignments {
			kept := list[:0]
			for _, a := range list {
				if selected[a.SauceID] {
					kept = append(kept, a)
				}
			}
			cfg.Assignments[wt] = kept
		}

		reapplyPreset(sn)
		recompute(sn)
	}), nil
}

// ApplyAllocationPreset runs the preset engine over the current
// selection and distribution.
func (s *Service) ApplyAllocationPreset(id string, preset allocation.Preset) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}

	if !knownPreset(preset) {
		// The engine treats anything unknown as custom; record it
		// that way instead of persisting a garbage identifier.
		preset = allocation.PresetCustom
	}

	return st.Update(func(sn *Snapshot) {
		cfg := &sn.CurrentConfig.SauceAssignments
		cfg.AppliedPreset = preset
		cfg.Assignments = allocation.ApplyPreset(
			preset,
			cfg.SelectedSauces,
			currentDistribution(sn),
		)
		recompute(sn)
	}), nil
}

// ResetAssignments clears the board for manual editing.
func (s *Service) ResetAssignments(id string) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}
	return st.Update(func(sn *Snapshot) {
		cfg := &sn.CurrentConfig.SauceAssignments
		cfg.AppliedPreset = allocation.PresetCustom
		cfg.Assignments = allocation.EmptyAssignments()
		recompute(sn)
	}), nil
}

// --------------------------------------------------
// Per-assignment edits
// --------------------------------------------------

// AssignmentEdit is one editor action: change a quantity, toggle
// the application method, or both.
type AssignmentEdit struct {
	WingType          distribution.WingType
	SauceID           string
	WingCount         *int
	ApplicationMethod *string
}

// EditAssignment applies an editor action. Constraint violations
// (negative counts, dry-rub on the side, over-assignment) are not
// rejected here; they surface through the recomputed validations
// so the editor can show them inline.
func (s *Service) EditAssignment(id string, edit AssignmentEdit) (Snapshot, error) {
	st, err := s.storeFor(id, false)
	if err != nil {
		return Snapshot{}, err
	}

	if !knownWingType(edit.WingType) {
		return Snapshot{}, fmt.Errorf("unknown wing type %q", edit.WingType)
	}
	if edit.ApplicationMethod != nil {
		m := *edit.ApplicationMethod
		if m != allocation.MethodTossed && m != allocation.MethodOnTheSide {
			return Snapshot{}, fmt.Errorf("unknown application method %q", m)
		}
	}

	var editErr error
	snap := st.Update(func(sn *Snapshot) {
		cfg := &sn.CurrentConfig.SauceAssignments
		list := cfg.Assignments[edit.WingType]

		idx := -1
		for i, a := range list {
			if a.SauceID == edit.SauceID {
				idx = i
				break
			}
		}

		if idx == -1 {
			sauce, ok := findSelected(cfg.SelectedSauces, edit.SauceID)
			if !ok {
				editErr = fmt.Errorf("sauce %q is not in the selection", edit.SauceID)
				return
			}
			list = append(list, allocation.SauceAssignment{
				SauceID:           sauce.ID,
				SauceName:         sauce.Name,
				SauceCategory:     sauce.Category,
				ApplicationMethod: allocation.MethodTossed,
			})
			idx = len(list) - 1
		}

		if edit.WingCount != nil {
			list[idx].WingCount = *edit.WingCount
		}
		if edit.ApplicationMethod != nil {
			list[idx].ApplicationMethod = *edit.ApplicationMethod
		}

		cfg.Assignments[edit.WingType] = list
		recompute(sn)
	})

	if editErr != nil {
		return Snapshot{}, editErr
	}
	return snap, nil
}

// Summary returns the current derived totals.
func (s *Service) Summary(id string) (allocation.Summary, error) {
	snap, err := s.Get(id)
	if err != nil {
		return allocation.Summary{}, err
	}
	return snap.CurrentConfig.SauceAssignments.Summary, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func currentDistribution(sn *Snapshot) distribution.WingDistribution {
	if sn.WingDistribution == nil {
		return distribution.WingDistribution{}
	}
	return *sn.WingDistribution
}

// reapplyPreset re-runs a generative preset after the selection
// or distribution changed underneath it. Custom stays untouched:
// the user built it by hand.
func reapplyPreset(sn *Snapshot) {
	cfg := &sn.CurrentConfig.SauceAssignments
	switch cfg.AppliedPreset {
	case allocation.PresetAllSame, allocation.PresetEvenMix, allocation.PresetOnePerType:
		cfg.Assignments = allocation.ApplyPreset(
			cfg.AppliedPreset,
			cfg.SelectedSauces,
			currentDistribution(sn),
		)
	}
}

func recompute(sn *Snapshot) {
	cfg := &sn.CurrentConfig.SauceAssignments
	cfg.Summary = allocation.CalculateSummary(cfg.Assignments, currentDistribution(sn))
}

func knownPreset(p allocation.Preset) bool {
	switch p {
	case allocation.PresetAllSame, allocation.PresetEvenMix,
		allocation.PresetOnePerType, allocation.PresetCustom:
		return true
	}
	return false
}

func knownWingType(wt distribution.WingType) bool {
	for _, known := range distribution.CanonicalOrder {
		if wt == known {
			return true
		}
	}
	return false
}

func findSelected(sauces []catalog.Sauce, id string) (catalog.Sauce, bool) {
	for _, s := range sauces {
		if s.ID == id {
			return s, true
		}
	}
	return catalog.Sauce{}, false
}
