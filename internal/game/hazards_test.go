package game

import (
	"math"
	"testing"
	"time"
)

func TestChemicalLevelsOutsideEveryRadiusIsZero(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	zones := []ChemicalZone{
		{
			ID:        "z1",
			Type:      ChemToxin,
			Position:  [2]float64{41.0, 29.0},
			Radius:    2,
			Intensity: 80,
			CreatedAt: now.UnixMilli(),
			ExpiresAt: now.Add(time.Hour).UnixMilli(),
		},
	}

	// ~0.1 degrees is ~11km away, far outside the 2km radius
	far := [2]float64{41.1, 29.0}
	levels := ChemicalLevelsAt(zones, far, now)
	if levels.TearGas != 0 || levels.Toxin != 0 || levels.SmokeScreen != 0 || levels.Radiation != 0 {
		t.Fatalf("exposure outside every radius should be exactly zero, got %+v", levels)
	}
}

func TestChemicalLevelsAtCenterBeforeDecay(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	center := [2]float64{41.0, 29.0}
	zones := []ChemicalZone{
		{
			ID:        "z1",
			Type:      ChemTearGas,
			Position:  center,
			Radius:    2,
			Intensity: 50,
			CreatedAt: now.UnixMilli(),
			ExpiresAt: now.Add(30 * time.Minute).UnixMilli(),
		},
	}

	levels := ChemicalLevelsAt(zones, center, now)
	if math.Abs(levels.TearGas-50) > 1e-9 {
		t.Errorf("tearGas at center, zero elapsed = %v, want 50", levels.TearGas)
	}
	if levels.Toxin != 0 {
		t.Errorf("toxin picked up tearGas contribution: %v", levels.Toxin)
	}
}

func TestChemicalLevelsDecayMonotonically(t *testing.T) {
	created := time.UnixMilli(1_700_000_000_000)
	center := [2]float64{41.0, 29.0}
	zones := []ChemicalZone{
		{
			ID:        "z1",
			Type:      ChemRadiation,
			Position:  center,
			Radius:    3,
			Intensity: 90,
			CreatedAt: created.UnixMilli(),
			ExpiresAt: created.Add(time.Hour).UnixMilli(),
		},
	}

	prev := math.Inf(1)
	for _, elapsed := range []time.Duration{0, 10 * time.Minute, 30 * time.Minute, 50 * time.Minute, time.Hour, 2 * time.Hour} {
		got := ChemicalLevelsAt(zones, center, created.Add(elapsed)).Radiation
		if got > prev {
			t.Fatalf("exposure rose over time: %v after %v (was %v)", got, elapsed, prev)
		}
		prev = got
	}

	// At and after expiry the zone contributes nothing
	if got := ChemicalLevelsAt(zones, center, created.Add(time.Hour)).Radiation; got != 0 {
		t.Errorf("exposure at expiry = %v, want 0", got)
	}
}

func TestChemicalLevelsClampAt100(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	center := [2]float64{41.0, 29.0}

	// Three stacked full-strength zones would sum to 300 unclamped
	var zones []ChemicalZone
	for i := 0; i < 3; i++ {
		zones = append(zones, ChemicalZone{
			Type:      ChemSmokeScreen,
			Position:  center,
			Radius:    5,
			Intensity: 100,
			CreatedAt: now.UnixMilli(),
			ExpiresAt: now.Add(time.Hour).UnixMilli(),
		})
	}

	if got := ChemicalLevelsAt(zones, center, now).SmokeScreen; got != 100 {
		t.Errorf("aggregate = %v, want clamp at 100", got)
	}
}

func TestRadarContacts(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	center := [2]float64{41.0, 29.0}

	markers := []Marker{
		// ~1.11km due north: high threat, bearing 90 (atan2(dlat, dlng))
		{ID: "near", Type: MarkerZombie, Position: [2]float64{41.01, 29.0}, CreatedAt: now.UnixMilli() - 1000},
		// ~3.33km due east: medium threat, bearing 0
		{ID: "mid", Type: MarkerZombie, Position: [2]float64{41.0, 29.03}, CreatedAt: now.UnixMilli() - 1000},
		// ~11km: low threat
		{ID: "far", Type: MarkerZombie, Position: [2]float64{41.1, 29.0}, CreatedAt: now.UnixMilli() - 1000},
		// Stale sighting, out of the 24h window
		{ID: "old", Type: MarkerZombie, Position: [2]float64{41.01, 29.0}, CreatedAt: now.UnixMilli() - 25*3600*1000},
		// Not a zombie
		{ID: "camp", Type: MarkerCamp, Position: [2]float64{41.01, 29.0}, CreatedAt: now.UnixMilli() - 1000},
	}

	contacts := RadarContacts(markers, center, now)
	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(contacts))
	}

	byID := map[string]RadarContact{}
	for _, c := range contacts {
		byID[c.MarkerID] = c
	}

	near := byID["near"]
	if near.Threat != ThreatHigh {
		t.Errorf("near threat = %s, want high", near.Threat)
	}
	if math.Abs(near.Distance-1.11) > 0.01 {
		t.Errorf("near distance = %v, want ~1.11", near.Distance)
	}
	if math.Abs(near.Angle-90) > 1e-9 {
		t.Errorf("near angle = %v, want 90", near.Angle)
	}

	mid := byID["mid"]
	if mid.Threat != ThreatMedium {
		t.Errorf("mid threat = %s, want medium", mid.Threat)
	}
	if math.Abs(mid.Angle-0) > 1e-9 {
		t.Errorf("mid angle = %v, want 0", mid.Angle)
	}

	if byID["far"].Threat != ThreatLow {
		t.Errorf("far threat = %s, want low", byID["far"].Threat)
	}
}

func TestRadarAngleNormalized(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	center := [2]float64{41.0, 29.0}

	// Due south: atan2(-dy, 0) = -90, normalized to 270
	markers := []Marker{
		{ID: "south", Type: MarkerZombie, Position: [2]float64{40.99, 29.0}, CreatedAt: now.UnixMilli()},
	}

	contacts := RadarContacts(markers, center, now)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if a := contacts[0].Angle; a < 0 || a >= 360 || math.Abs(a-270) > 1e-9 {
		t.Errorf("south angle = %v, want 270", a)
	}
}

func TestSurvivalRate(t *testing.T) {
	camp := func(approved bool) Marker {
		return Marker{Type: MarkerCamp, MaxVotes: 10, Approved: approved}
	}
	zombie := Marker{Type: MarkerZombie}

	tests := []struct {
		name    string
		markers []Marker
		want    int
	}{
		{"no zombies", []Marker{camp(true), camp(false)}, 100},
		{"empty map", nil, 100},
		{"zombies, no approved camps", []Marker{zombie, camp(false)}, 10},
		{"balanced", []Marker{zombie, zombie, camp(true)}, 50 + 5 - 4},
		{"overrun clamps low", append(make([]Marker, 0), repeat(zombie, 40)...), 10},
		{"fortified clamps high", append(repeat(camp(true), 20), zombie), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurvivalRate(tt.markers); got != tt.want {
				t.Errorf("SurvivalRate = %d, want %d", got, tt.want)
			}
		})
	}
}

func repeat(m Marker, n int) []Marker {
	out := make([]Marker, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func TestStatsRollup(t *testing.T) {
	now := time.UnixMilli(outbreakEpoch + 10*24*3600*1000)
	markers := []Marker{
		{Type: MarkerZombie},
		{Type: MarkerZombie},
		{Type: MarkerCamp, Approved: true},
		{Type: MarkerCamp},
		{Type: MarkerTraffic},
	}

	snap := Stats(markers, now)
	if snap.ZombieCount != 2 || snap.SafeZones != 1 || snap.PendingCamps != 1 || snap.TrafficPoints != 1 {
		t.Errorf("rollup = %+v", snap)
	}
	if snap.GameDays != 10 {
		t.Errorf("gameDays = %d, want 10", snap.GameDays)
	}
	if snap.SurvivalRate != SurvivalRate(markers) {
		t.Errorf("survivalRate mismatch: %d", snap.SurvivalRate)
	}
}
