package game

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/biteback/biteback/internal/i18n"
)

// scriptSource feeds rand.Rand a fixed sequence of Int63 values, cycling
// when it runs out. Int31-based draws see the top 32 bits, so a desired
// Int31 value v is scripted as v<<32.
type scriptSource struct {
	vals []int64
	i    int
}

func (s *scriptSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func (s *scriptSource) Seed(int64) {}

func newScriptedStore(t *testing.T, vals ...int64) *Store {
	t.Helper()

	n := 0
	return NewStore(Options{
		Translator: i18n.New(nil),
		Now:        func() time.Time { return time.UnixMilli(1_700_000_000_000) },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Rand:   rand.New(&scriptSource{vals: vals}),
		NoSeed: true,
	})
}

func TestSpawnEventNearCurrentCity(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.SpawnEvent()
	events := s.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if ev.ID != id {
		t.Errorf("event id = %s, want %s", ev.ID, id)
	}
	if len(ev.Options) == 0 {
		t.Fatal("event has no options")
	}
	if ev.TimeLeft != eventCountdownSeconds {
		t.Errorf("timeLeft = %d, want %d", ev.TimeLeft, eventCountdownSeconds)
	}

	city := s.CurrentCity()
	if math.Abs(ev.Position[0]-city.Position[0]) > 0.025+1e-9 ||
		math.Abs(ev.Position[1]-city.Position[1]) > 0.025+1e-9 {
		t.Errorf("event at %v, too far from %s %v", ev.Position, city.Name, city.Position)
	}
}

func TestResolveEventGrantsReward(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.SpawnEvent()
	ev := s.Events()[0]

	// Every event type has a risk-free first option
	opt := ev.Options[0]
	if opt.Risk != 0 {
		t.Fatalf("first option should be risk-free, got %d", opt.Risk)
	}

	before := s.State().Exp
	beforeMarkers := len(s.Markers())

	s.ResolveEvent(id, opt.ID)

	if got := len(s.Events()); got != 0 {
		t.Fatalf("event not removed, %d left", got)
	}

	gained := s.State().Exp - before
	if gained < opt.ExpReward {
		t.Errorf("exp gained = %d, want at least the option reward %d", gained, opt.ExpReward)
	}

	// The zombie-horde mark option drops a marker as a side effect
	if ev.Type == EventZombieHorde && opt.ID == "mark" {
		if len(s.Markers()) != beforeMarkers+1 {
			t.Errorf("mark option should add a zombie marker")
		}
	}
}

func TestResolveEventFailedRollGrantsConsolation(t *testing.T) {
	// All-zero draws: event type lands on zombieHorde and the risk roll
	// comes up 0, under the approach option's 40
	s := newScriptedStore(t, 0)

	id := s.SpawnEvent()
	ev := s.Events()[0]
	if ev.Type != EventZombieHorde {
		t.Fatalf("scripted event type = %s, want zombieHorde", ev.Type)
	}

	before := s.State().Exp
	beforeMarkers := len(s.Markers())

	s.ResolveEvent(id, "approach")

	if got := s.State().Exp - before; got != 10 {
		t.Errorf("exp gained on failed approach = %d, want consolation 10", got)
	}
	if got := len(s.Markers()); got != beforeMarkers {
		t.Errorf("failed approach added a marker (%d -> %d)", beforeMarkers, got)
	}
	if got := len(s.Events()); got != 0 {
		t.Errorf("failed event not removed, %d left", got)
	}

	failed := false
	for _, n := range s.Notifications() {
		if n.Type == NotifyError {
			failed = true
		}
	}
	if !failed {
		t.Error("failed roll should enqueue an error notification")
	}
}

func TestResolveEventApproachSuccessMarksHorde(t *testing.T) {
	// Zero draws through the spawn, then a risk roll of 40 which clears the
	// approach option's 40% threshold
	s := newScriptedStore(t, 0, 0, 0, 0, 40<<32)

	id := s.SpawnEvent()
	ev := s.Events()[0]
	if ev.Type != EventZombieHorde {
		t.Fatalf("scripted event type = %s, want zombieHorde", ev.Type)
	}

	before := s.State().Exp
	s.ResolveEvent(id, "approach")

	markers := s.Markers()
	if len(markers) != 1 || markers[0].Type != MarkerZombie {
		t.Fatalf("successful approach should mark the horde, markers = %v", markers)
	}
	// 70 for the option plus the sighting reward
	if got := s.State().Exp - before; got != 70+ExpAddZombie {
		t.Errorf("exp gained = %d, want %d", got, 70+ExpAddZombie)
	}
}

func TestEventsSnapshotCopiesOptions(t *testing.T) {
	s, _ := newTestStore(t)
	s.SpawnEvent()

	snap := s.Events()
	snap[0].Options[0].Text = "tampered"

	if s.Events()[0].Options[0].Text == "tampered" {
		t.Error("event snapshot shares its options with the store")
	}
}

func TestMaybeSpawnEventChanceAndCap(t *testing.T) {
	// A draw of 1<<62 reads as Float64 0.5, over the 15% spawn chance
	quiet := newScriptedStore(t, 1<<62)
	quiet.maybeSpawnEvent()
	if got := len(quiet.Events()); got != 0 {
		t.Fatalf("spawn fired on a losing roll, %d events", got)
	}

	// All-zero draws always win the roll; the pending cap still holds
	s := newScriptedStore(t, 0)
	for i := 0; i < 5; i++ {
		s.maybeSpawnEvent()
	}
	if got := len(s.Events()); got != maxPendingEvents {
		t.Errorf("pending events = %d, want cap %d", got, maxPendingEvents)
	}
}

func TestResolveEventUnknownIDsAreNoOps(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.SpawnEvent()
	before := s.State().Exp

	s.ResolveEvent("nope", "mark")
	if got := len(s.Events()); got != 1 {
		t.Fatalf("unknown event id removed an event, %d left", got)
	}

	s.ResolveEvent(id, "nope")
	if got := len(s.Events()); got != 1 {
		t.Fatalf("unknown option id removed the event, %d left", got)
	}

	if got := s.State().Exp; got != before {
		t.Errorf("exp = %d after no-op resolves, want %d", got, before)
	}
}

func TestTickEventsExpiry(t *testing.T) {
	s, _ := newTestStore(t)
	s.SpawnEvent()

	s.tickEvents(eventCountdownSeconds - 1)
	if got := len(s.Events()); got != 1 {
		t.Fatalf("event expired early, %d left", got)
	}
	if got := s.Events()[0].TimeLeft; got != 1 {
		t.Errorf("timeLeft = %d, want 1", got)
	}

	s.tickEvents(1)
	if got := len(s.Events()); got != 0 {
		t.Errorf("event survived its countdown, %d left", got)
	}
}
