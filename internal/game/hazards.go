package game

import (
	"math"
	"time"
)

// kmPerDegree is the flat-earth degree-to-km approximation used everywhere
// in the sim. Good enough at city scale.
const kmPerDegree = 111.0

// outbreakEpoch anchors the simulated day counter (ms).
const outbreakEpoch = int64(1645000000000)

// distanceKm is planar degree distance scaled to km, not great-circle.
func distanceKm(from, to [2]float64) float64 {
	dy := to[0] - from[0]
	dx := to[1] - from[1]
	return math.Sqrt(dx*dx+dy*dy) * kmPerDegree
}

// ChemicalLevelsAt projects every active zone onto a point and accumulates
// per-type exposure: intensity falls off linearly with distance inside the
// radius and linearly with elapsed lifetime, and each type's total is
// clamped to [0,100]. A point outside every radius reads exactly zero.
func ChemicalLevelsAt(zones []ChemicalZone, pos [2]float64, now time.Time) ChemicalLevel {
	nowMs := now.UnixMilli()
	var levels ChemicalLevel

	for _, z := range zones {
		if z.ExpiresAt <= nowMs || z.Radius <= 0 {
			continue
		}

		dist := distanceKm(pos, z.Position)
		if dist > z.Radius {
			continue
		}

		distanceFactor := 1 - dist/z.Radius
		lifetime := z.ExpiresAt - z.CreatedAt
		timeFactor := 0.0
		if lifetime > 0 {
			timeFactor = float64(z.ExpiresAt-nowMs) / float64(lifetime)
		}

		contribution := z.Intensity * distanceFactor * timeFactor

		switch z.Type {
		case ChemTearGas:
			levels.TearGas += contribution
		case ChemToxin:
			levels.Toxin += contribution
		case ChemSmokeScreen:
			levels.SmokeScreen += contribution
		case ChemRadiation:
			levels.Radiation += contribution
		}
	}

	levels.TearGas = clamp01to100(levels.TearGas)
	levels.Toxin = clamp01to100(levels.Toxin)
	levels.SmokeScreen = clamp01to100(levels.SmokeScreen)
	levels.Radiation = clamp01to100(levels.Radiation)

	return levels
}

func clamp01to100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// RadarContacts computes distance and bearing from the city center to every
// zombie marker seen in the last 24 hours. Threat bands: high under 2km,
// medium under 5km, low beyond.
func RadarContacts(markers []Marker, center [2]float64, now time.Time) []RadarContact {
	cutoff := now.UnixMilli() - 24*int64(time.Hour/time.Millisecond)

	contacts := []RadarContact{}
	for _, m := range markers {
		if m.Type != MarkerZombie || m.CreatedAt <= cutoff {
			continue
		}

		dy := m.Position[0] - center[0]
		dx := m.Position[1] - center[1]
		dist := math.Sqrt(dx*dx+dy*dy) * kmPerDegree

		angle := math.Atan2(dy, dx) * 180 / math.Pi
		angle = math.Mod(angle+360, 360)

		threat := ThreatLow
		if dist < 2 {
			threat = ThreatHigh
		} else if dist < 5 {
			threat = ThreatMedium
		}

		contacts = append(contacts, RadarContact{
			MarkerID: m.ID,
			Distance: dist,
			Angle:    angle,
			Threat:   threat,
		})
	}

	return contacts
}

// SurvivalRate is the HUD heuristic: 100 with no zombies around, 10 when
// there are zombies but no approved camp, otherwise a base of 50 adjusted
// by camp bonus and zombie penalty, clamped to [5,100].
func SurvivalRate(markers []Marker) int {
	zombies := 0
	approvedCamps := 0
	for _, m := range markers {
		switch {
		case m.Type == MarkerZombie:
			zombies++
		case m.Type == MarkerCamp && m.Approved:
			approvedCamps++
		}
	}

	if zombies == 0 {
		return 100
	}
	if approvedCamps == 0 {
		return 10
	}

	rate := 50 + approvedCamps*5 - zombies*2
	if rate < 5 {
		rate = 5
	}
	if rate > 100 {
		rate = 100
	}
	return rate
}

// Stats rolls up the marker list for the stats panel.
func Stats(markers []Marker, now time.Time) GameStatsSnapshot {
	snap := GameStatsSnapshot{
		SurvivalRate: SurvivalRate(markers),
		GameDays:     int((now.UnixMilli() - outbreakEpoch) / (24 * int64(time.Hour/time.Millisecond))),
	}

	for _, m := range markers {
		switch m.Type {
		case MarkerZombie:
			snap.ZombieCount++
		case MarkerTraffic:
			snap.TrafficPoints++
		case MarkerCamp:
			if m.Approved {
				snap.SafeZones++
			} else {
				snap.PendingCamps++
			}
		}
	}

	return snap
}
