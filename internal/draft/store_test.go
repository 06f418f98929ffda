package draft

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tomcat65/philly-wings-sub000/internal/allocation"
	"github.com/tomcat65/philly-wings-sub000/internal/distribution"
	"github.com/tomcat65/philly-wings-sub000/internal/kv"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func testDistribution() *distribution.WingDistribution {
	return &distribution.WingDistribution{
		Boneless:           50,
		BoneIn:             30,
		BoneInStyle:        distribution.StyleMixed,
		DistributionSource: distribution.SourceManual,
	}
}

func TestStore_GetStateIsCopy(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(kv.NewMemoryStore(), "draft:test", clock.Now)

	store.Update(func(sn *Snapshot) {
		sn.WingDistribution = testDistribution()
	})

	snap := store.GetState()
	snap.WingDistribution.Boneless = 9999
	snap.CurrentConfig.SauceAssignments.Assignments[distribution.Boneless] = []allocation.SauceAssignment{
		{SauceID: "rogue", WingCount: 1},
	}

	fresh := store.GetState()
	if fresh.WingDistribution.Boneless != 50 {
		t.Error("mutating a returned snapshot must not touch store state")
	}
	if len(fresh.CurrentConfig.SauceAssignments.Assignments[distribution.Boneless]) != 0 {
		t.Error("mutating a returned assignment map must not touch store state")
	}
}

func TestStore_UpdateNotifiesSubscribers(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(kv.NewMemoryStore(), "draft:test", clock.Now)

	var seen []int
	store.Subscribe(func(sn Snapshot) {
		seen = append(seen, sn.EventDetails.GuestCount)
	})

	store.Update(func(sn *Snapshot) {
		sn.EventDetails.GuestCount = 25
	})

	if len(seen) != 1 || seen[0] != 25 {
		t.Errorf("expected synchronous delivery of the new state, got %v", seen)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(kv.NewMemoryStore(), "draft:test", clock.Now)

	calls := 0
	id := store.Subscribe(func(Snapshot) { calls++ })
	store.Unsubscribe(id)

	store.Update(func(sn *Snapshot) {
		sn.EventDetails.GuestCount = 25
	})

	if calls != 0 {
		t.Errorf("unsubscribed listener must not fire, got %d calls", calls)
	}
}

func TestStore_PersistAndRestore(t *testing.T) {
	clock := newFakeClock()
	mem := kv.NewMemoryStore()

	first := NewStore(mem, "draft:test", clock.Now)
	first.Update(func(sn *Snapshot) {
		sn.EventDetails.GuestCount = 40
		sn.WingDistribution = testDistribution()
	})

	clock.Advance(2 * time.Hour)

	second := NewStore(mem, "draft:test", clock.Now)
	snap := second.GetState()

	if snap.EventDetails.GuestCount != 40 {
		t.Errorf("expected restored guest count 40, got %d", snap.EventDetails.GuestCount)
	}
	if snap.WingDistribution == nil || snap.WingDistribution.Boneless != 50 {
		t.Error("expected restored wing distribution")
	}
}

func TestStore_ExpiredDraftStartsFresh(t *testing.T) {
	clock := newFakeClock()
	mem := kv.NewMemoryStore()

	first := NewStore(mem, "draft:test", clock.Now)
	first.Update(func(sn *Snapshot) {
		sn.EventDetails.GuestCount = 40
	})

	clock.Advance(DraftTTL + time.Minute)

	second := NewStore(mem, "draft:test", clock.Now)
	if second.GetState().EventDetails.GuestCount != 0 {
		t.Error("a draft past its validity window must not restore")
	}
}

func TestStore_CorruptDraftStartsFresh(t *testing.T) {
	clock := newFakeClock()
	mem := kv.NewMemoryStore()
	mem.Set(context.Background(), "draft:test", "{not json")

	store := NewStore(mem, "draft:test", clock.Now)
	if store.GetState().EventDetails.GuestCount != 0 {
		t.Error("an undecodable draft must initialize fresh")
	}
}

func TestStore_LegacyShapeMigratesOnLoad(t *testing.T) {
	clock := newFakeClock()
	mem := kv.NewMemoryStore()

	legacy := map[string]interface{}{
		"eventDetails": map[string]interface{}{"guestCount": 20},
		"wingDistribution": map[string]interface{}{
			"boneless": 50,
			"boneIn":   30,
		},
		"currentConfig": map[string]interface{}{
			"sauces": []map[string]interface{}{
				{"id": "buffalo", "name": "Buffalo", "wingCount": 50},
				{"id": "bbq", "name": "BBQ", "wingCount": 30},
			},
		},
		"savedAt": clock.Now(),
	}
	raw, err := json.Marshal(legacy)
	if err != nil {
		t.Fatal(err)
	}
	mem.Set(context.Background(), "draft:test", string(raw))

	store := NewStore(mem, "draft:test", clock.Now)
	cfg := store.GetState().CurrentConfig.SauceAssignments

	if cfg.AppliedPreset != allocation.PresetOnePerType {
		t.Errorf("expected one-per-type after migration, got %q", cfg.AppliedPreset)
	}

	boneless := cfg.Assignments[distribution.Boneless]
	if len(boneless) != 1 || boneless[0].SauceID != "buffalo" || boneless[0].WingCount != 50 {
		t.Errorf("expected boneless buffalo@50, got %+v", boneless)
	}
	if cfg.Summary.TotalWingsAssigned != 80 {
		t.Errorf("expected 80 wings assigned after migration, got %d", cfg.Summary.TotalWingsAssigned)
	}
}

func TestStore_Destroy(t *testing.T) {
	clock := newFakeClock()
	mem := kv.NewMemoryStore()

	store := NewStore(mem, "draft:test", clock.Now)
	store.Update(func(sn *Snapshot) {
		sn.EventDetails.GuestCount = 40
	})

	store.Destroy()

	if _, ok := mem.Get(context.Background(), "draft:test"); ok {
		t.Error("destroy must drop the persisted draft")
	}
	if store.GetState().EventDetails.GuestCount != 0 {
		t.Error("destroy must reset in-memory state")
	}
}
