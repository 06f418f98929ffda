package draft

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tomcat65/philly-wings-sub000/internal/allocation"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
	"github.com/tomcat65/philly-wings-sub000/internal/kv"
)

// Store holds one draft. Persistence and the clock are injected
// so tests run against isolated instances with fake time.
//
// Update serializes the whole read-merge-write-notify sequence
// under one mutex; subscribers run synchronously inside that
// window and must not call back into the store.
type Store struct {
	mu      sync.Mutex
	persist kv.Store
	key     string
	now     func() time.Time

	state   Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore restores the persisted draft under key, or starts
// fresh when there is none, it is expired, or it fails to decode.
// A legacy flat sauce list is migrated as part of the restore.
func NewStore(persist kv.Store, key string, now func() time.Time) *Store {
	s := &Store{
		persist: persist,
		key:     key,
		now:     now,
		subs:    make(map[int]func(Snapshot)),
	}
	s.state = s.load()
	return s
}

// GetState returns a structural copy of the draft.
func (s *Store) GetState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies a typed partial update, persists the result and
// notifies subscribers before returning.
func (s *Store) Update(apply func(*Snapshot)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	apply(&next)
	s.state = next

	s.save()

	result := s.state.Clone()
	for _, fn := range s.subs {
		fn(result.Clone())
	}
	return result
}

// Subscribe registers a change listener and returns its id.
func (s *Store) Subscribe(fn func(Snapshot)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Destroy drops the persisted copy ("start over" or a submitted
// order).
func (s *Store) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewSnapshot()
	s.persist.Delete(context.Background(), s.key)
}

// --------------------------------------------------
// Persistence (failures are never fatal)
// --------------------------------------------------

func (s *Store) save() {
	stored := storedDraft{
		EventDetails:     s.state.EventDetails,
		WingDistribution: s.state.WingDistribution,
		CurrentConfig: storedConfig{
			SauceAssignments: &s.state.CurrentConfig.SauceAssignments,
		},
		SavedAt: s.now(),
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return
	}
	s.persist.Set(context.Background(), s.key, string(raw))
}

func (s *Store) load() Snapshot {
	raw, ok := s.persist.Get(context.Background(), s.key)
	if !ok {
		return NewSnapshot()
	}

	var stored storedDraft
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return NewSnapshot()
	}

	if s.now().Sub(stored.SavedAt) > DraftTTL {
		return NewSnapshot()
	}

	snap := Snapshot{
		EventDetails:     stored.EventDetails,
		WingDistribution: stored.WingDistribution,
	}

	dist := distribution.WingDistribution{}
	if stored.WingDistribution != nil {
		dist = *stored.WingDistribution
	}

	switch {
	case stored.CurrentConfig.SauceAssignments != nil:
		snap.CurrentConfig.SauceAssignments = *stored.CurrentConfig.SauceAssignments
		if snap.CurrentConfig.SauceAssignments.Assignments == nil {
			snap.CurrentConfig.SauceAssignments.Assignments = allocation.EmptyAssignments()
		}
	case len(stored.CurrentConfig.Sauces) > 0:
		// Pre-wing-type draft shape.
		snap.CurrentConfig.SauceAssignments = allocation.MigrateSauceData(
			stored.CurrentConfig.Sauces,
			dist,
		)
	default:
		snap.CurrentConfig = NewSnapshot().CurrentConfig
	}

	return snap
}
