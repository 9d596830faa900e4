package game

import (
	"fmt"
	"log"
	"time"
)

// Sweep intervals. Expiry is checked on these coarse timers rather than one
// precise timer per item.
const (
	zoneSweepInterval   = 30 * time.Second
	notifySweepInterval = 5 * time.Second
	eventTickInterval   = 1 * time.Second
	spawnInterval       = 30 * time.Second
	spawnChance         = 0.10
	eventSpawnInterval  = 60 * time.Second
	eventSpawnChance    = 0.15
	maxPendingEvents    = 3
)

// StartSweeps launches the store's background loop: expired chemical zones
// every 30s, elapsed notifications every 5s, event countdowns every second,
// a random encounter roll every 60s, and (development mode only) the demo
// zombie spawner. The loop belongs to the store, call Close to stop it.
func (s *Store) StartSweeps() {
	go s.runSweeps()
}

// Close stops the background loop. Safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *Store) runSweeps() {
	zoneTicker := time.NewTicker(zoneSweepInterval)
	notifyTicker := time.NewTicker(notifySweepInterval)
	eventTicker := time.NewTicker(eventTickInterval)
	spawnTicker := time.NewTicker(spawnInterval)
	encounterTicker := time.NewTicker(eventSpawnInterval)
	defer func() {
		zoneTicker.Stop()
		notifyTicker.Stop()
		eventTicker.Stop()
		spawnTicker.Stop()
		encounterTicker.Stop()
	}()

	for {
		select {
		case <-s.done:
			return

		case <-zoneTicker.C:
			s.SweepChemicalZones()

		case <-notifyTicker.C:
			s.SweepNotifications()

		case <-eventTicker.C:
			s.tickEvents(1)

		case <-spawnTicker.C:
			if s.devMode {
				s.maybeSpawnZombie()
			}

		case <-encounterTicker.C:
			s.maybeSpawnEvent()
		}
	}
}

// maybeSpawnEvent rolls for a random encounter: 15% chance per tick, capped
// at three pending events.
func (s *Store) maybeSpawnEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) >= maxPendingEvents {
		return
	}
	if s.rng.Float64() >= eventSpawnChance {
		return
	}

	id := s.spawnEvent()
	log.Printf("Random encounter spawned (%s)", id)
}

// SweepChemicalZones drops every zone whose expiry has passed.
func (s *Store) SweepChemicalZones() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowMs()
	next := make([]ChemicalZone, 0, len(s.zones))
	for _, z := range s.zones {
		if z.ExpiresAt > now {
			next = append(next, z)
		}
	}
	s.zones = next
}

// SweepNotifications drops every notification whose duration has elapsed.
func (s *Store) SweepNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowMs()
	next := make([]GameNotification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if now-n.CreatedAt < n.Duration {
			next = append(next, n)
		}
	}
	s.notifications = next
}

// maybeSpawnZombie is the demo behavior: 10% chance per tick to drop a
// random zombie sighting near the current city.
func (s *Store) maybeSpawnZombie() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() >= spawnChance {
		return
	}

	city := s.state.CurrentCity
	lat := city.Position[0] + (s.rng.Float64()-0.5)*0.05
	lng := city.Position[1] + (s.rng.Float64()-0.5)*0.05

	id := s.appendMarker(MarkerInput{
		Type:     MarkerZombie,
		Position: [2]float64{lat, lng},
		Details:  fmt.Sprintf("Random zombie swarm spotted at %s!", s.now().Format("15:04:05")),
	})
	log.Printf("Random zombie spawned near %s (%s)", city.Name, id)
}
