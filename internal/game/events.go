package game

import (
	"log"
)

// eventTypes is the spawn pool for random encounters.
var eventTypes = []EventType{
	EventZombieHorde,
	EventSurvivorFound,
	EventContaminatedArea,
	EventSuppliesDrop,
	EventRadioMessage,
}

const eventCountdownSeconds = 120

// SpawnEvent creates a random encounter near the current city and returns
// its id. Titles and option texts come from the locale tables.
func (s *Store) SpawnEvent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawnEvent()
}

// spawnEvent assumes the write lock is held.
func (s *Store) spawnEvent() string {
	typ := eventTypes[s.rng.Intn(len(eventTypes))]
	city := s.state.CurrentCity

	ev := GameEvent{
		ID:          s.newID(),
		Type:        typ,
		Title:       s.tr.T("events."+string(typ)+".title", nil),
		Description: s.tr.T("events."+string(typ)+".description", nil),
		Position: [2]float64{
			city.Position[0] + (s.rng.Float64()-0.5)*0.05,
			city.Position[1] + (s.rng.Float64()-0.5)*0.05,
		},
		TimeLeft: eventCountdownSeconds,
		Options:  s.eventOptions(typ),
	}

	next := make([]GameEvent, len(s.events), len(s.events)+1)
	copy(next, s.events)
	s.events = append(next, ev)

	return ev.ID
}

func (s *Store) eventOptions(typ EventType) []EventOption {
	switch typ {
	case EventZombieHorde:
		return []EventOption{
			{ID: "mark", Text: s.tr.T("events.zombieHorde.options.mark", nil), ExpReward: 30},
			{ID: "approach", Text: s.tr.T("events.zombieHorde.options.approach", nil), ExpReward: 70, Risk: 40, FailReward: 10},
		}

	case EventSurvivorFound:
		return []EventOption{
			{ID: "help", Text: s.tr.T("events.survivorFound.options.help", nil), ExpReward: 25},
			{ID: "rescue", Text: s.tr.T("events.survivorFound.options.rescue", nil), ExpReward: 50, Risk: 30, FailReward: 5},
		}

	default:
		return []EventOption{
			{ID: "investigate", Text: s.tr.T("events.options.investigate", nil), ExpReward: 15},
		}
	}
}

// ResolveEvent applies the chosen option: on a successful risk roll the
// player earns the option's EXP (plus any marker side effect), on a failed
// roll only the consolation EXP and an error notification. The event is
// removed either way. Unknown event or option ids are a no-op.
func (s *Store) ResolveEvent(eventID, optionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, ev := range s.events {
		if ev.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	ev := s.events[idx]

	var opt *EventOption
	for i := range ev.Options {
		if ev.Options[i].ID == optionID {
			opt = &ev.Options[i]
			break
		}
	}
	if opt == nil {
		return
	}

	next := make([]GameEvent, 0, len(s.events)-1)
	next = append(next, s.events[:idx]...)
	next = append(next, s.events[idx+1:]...)
	s.events = next

	if opt.Risk > 0 && s.rng.Intn(100) < opt.Risk {
		log.Printf("Event %s option %s failed the risk roll", ev.Type, opt.ID)
		s.appendNotification(NotificationInput{
			Type:     NotifyError,
			Title:    s.tr.T("notifications.error", nil),
			Message:  ev.Title,
			Duration: 5000,
		})
		if opt.FailReward > 0 {
			s.applyExp(opt.FailReward)
		}
		return
	}

	// Marker side effects mirror what the encounter was about. A horde gets
	// marked whether the player kept their distance or went in
	switch {
	case ev.Type == EventZombieHorde && (opt.ID == "mark" || opt.ID == "approach"):
		s.appendMarker(MarkerInput{
			Type:     MarkerZombie,
			Position: ev.Position,
			Details:  ev.Description,
		})

	case ev.Type == EventSurvivorFound && opt.ID == "rescue":
		s.appendMarker(MarkerInput{
			Type:     MarkerCamp,
			Position: ev.Position,
			Details:  ev.Title,
		})
	}

	s.applyExp(opt.ExpReward)
}

// Events returns a snapshot of the pending encounters.
func (s *Store) Events() []GameEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GameEvent, len(s.events))
	copy(out, s.events)
	for i := range out {
		opts := make([]EventOption, len(out[i].Options))
		copy(opts, out[i].Options)
		out[i].Options = opts
	}
	return out
}

// tickEvents decrements every countdown by the elapsed seconds and drops
// the ones that ran out.
func (s *Store) tickEvents(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]GameEvent, 0, len(s.events))
	for _, ev := range s.events {
		ev.TimeLeft -= seconds
		if ev.TimeLeft > 0 {
			next = append(next, ev)
		}
	}
	s.events = next
}
