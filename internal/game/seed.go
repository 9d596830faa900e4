package game

import (
	"fmt"
	"math/rand"
)

// InitialExp is the EXP every fresh session starts with.
const InitialExp = 100

// Cities returns the playable Turkish cities. Istanbul is the default.
func Cities() []City {
	return []City{
		{Name: "Istanbul", Position: [2]float64{41.0082, 28.9784}, Zoom: 10},
		{Name: "Ankara", Position: [2]float64{39.9334, 32.8597}, Zoom: 10},
		{Name: "Izmir", Position: [2]float64{38.4237, 27.1428}, Zoom: 10},
		{Name: "Antalya", Position: [2]float64{36.8969, 30.7133}, Zoom: 10},
		{Name: "Bursa", Position: [2]float64{40.1885, 29.061}, Zoom: 10},
	}
}

func initialInventory() map[ItemType]int {
	return map[ItemType]int{
		ItemMedkit:     2,
		ItemSerum:      1,
		ItemPainkiller: 3,
		ItemFood:       5,
	}
}

// GenerateSurvivorID makes the session's anonymous pseudonym, Survivor1 to
// Survivor999.
func GenerateSurvivorID(rng *rand.Rand) string {
	return fmt.Sprintf("Survivor%d", rng.Intn(999)+1)
}

// seedMarkers is the initial mock map state, aged relative to now (ms).
func seedMarkers(newID func() string, now int64) []Marker {
	const minute = int64(60 * 1000)

	return []Marker{
		{
			ID:        newID(),
			Type:      MarkerZombie,
			Position:  [2]float64{41.033, 28.9773},
			Details:   "Large group of zombies near Taksim Square",
			CreatedAt: now - 60*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerZombie,
			Position:  [2]float64{41.0111, 28.9684},
			Details:   "Two zombies spotted near Grand Bazaar",
			CreatedAt: now - 120*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerCamp,
			Position:  [2]float64{41.0418, 29.0089},
			Details:   "Safe zone with food and medicine",
			Votes:     8,
			MaxVotes:  10,
			Approved:  true,
			CreatedAt: now - 180*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerCamp,
			Position:  [2]float64{41.0105, 29.057},
			Details:   "Small camp with limited supplies",
			Votes:     4,
			MaxVotes:  10,
			CreatedAt: now - 240*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerTraffic,
			Position:  [2]float64{41.0213, 28.9944},
			Details:   "Group of survivors moving east",
			CreatedAt: now - 30*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerTraffic,
			Position:  [2]float64{40.9862, 29.0274},
			Details:   "Survivor caravan with supplies",
			CreatedAt: now - 15*minute,
		},
		{
			ID:        newID(),
			Type:      MarkerCamp,
			Position:  [2]float64{41.0165, 28.952},
			Details:   "Vefa'da güvenli kamp, su ve gıda mevcut",
			Votes:     6,
			MaxVotes:  10,
			CreatedAt: now - 90*minute,
		},
	}
}

// seedMessages is the initial chat log. The camp message links back to the
// pending seed camp so the vote mirroring has something to chew on from the
// first render.
func seedMessages(newID func() string, now int64, markers []Marker) []ChatMessage {
	const minute = int64(60 * 1000)

	var pendingCampID string
	var pendingCampPos [2]float64
	for _, m := range markers {
		if m.Type == MarkerCamp && !m.Approved {
			pendingCampID = m.ID
			pendingCampPos = m.Position
			break
		}
	}

	msgs := []ChatMessage{
		{
			ID:        newID(),
			Room:      "Istanbul",
			Sender:    "Survivor752",
			Content:   "Meet at Taksim safe zone at 5 PM. Bringing medical supplies.",
			Timestamp: now - 60*minute,
			Type:      MessageNormal,
		},
		{
			ID:        newID(),
			Room:      "Istanbul",
			Sender:    "Survivor224",
			Content:   "!help Zombies near Galata Tower! Need backup immediately!",
			Timestamp: now - 45*minute,
			Type:      MessageEmergency,
		},
		{
			ID:        newID(),
			Room:      "Istanbul",
			Sender:    "Survivor365",
			Content:   "!need medkit Found an injured survivor near Beşiktaş",
			Timestamp: now - 30*minute,
			Type:      MessageRequest,
		},
		{
			ID:        newID(),
			Room:      "Ankara",
			Sender:    "Survivor187",
			Content:   "Kızılay is overrun. Avoid central areas.",
			Timestamp: now - 90*minute,
			Type:      MessageNormal,
		},
		{
			ID:        newID(),
			Room:      "Izmir",
			Sender:    "Survivor599",
			Content:   "Found clean water source at Konak. Safe for now.",
			Timestamp: now - 180*minute,
			Type:      MessageNormal,
		},
	}

	if pendingCampID != "" {
		msgs = append(msgs, ChatMessage{
			ID:        newID(),
			Room:      "Istanbul",
			Sender:    "Survivor118",
			Content:   fmt.Sprintf("Safe camp proposed at [%.4f, %.4f]. Vote now!", pendingCampPos[0], pendingCampPos[1]),
			Timestamp: now - 120*minute,
			Type:      MessageCamp,
			Votes:     4,
			MaxVotes:  10,
			Position:  pendingCampPos,
			CampID:    pendingCampID,
		})
	}

	return msgs
}
