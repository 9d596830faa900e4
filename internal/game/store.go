package game

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EXP rewards for player actions
const (
	ExpAddZombie   = 20
	ExpProposeCamp = 30
	ExpVote        = 10
	ExpSOSCall     = 50
	ExpRequestItem = 10
)

const (
	DefaultMaxVotes   = 10
	campApprovalRatio = 0.7
)

// Translator is the string lookup the store needs for localized
// notifications. Kept as an interface so tests can stub it.
type Translator interface {
	T(key string, params map[string]string) string
}

// keyTranslator echoes the key back, same as a missing-table lookup.
type keyTranslator struct{}

func (keyTranslator) T(key string, _ map[string]string) string { return key }

// Options configures a Store. Zero values get sensible defaults; Now, NewID
// and Rand exist so tests can pin the clock, the IDs and the dice.
type Options struct {
	Translator Translator
	Now        func() time.Time
	NewID      func() string
	Rand       *rand.Rand
	DevMode    bool // gates the demo zombie spawner
	NoSeed     bool // skip the initial mock markers/messages
}

// Store is the single source of truth for the whole session: markers, chat
// messages, chemical zones, notifications, random events and player
// progression. Every mutator replaces the affected slice wholesale under the
// write lock, and every getter hands out a copy, so consumers never observe
// a partially applied update.
type Store struct {
	mu sync.RWMutex

	tr    Translator
	now   func() time.Time
	newID func() string
	rng   *rand.Rand

	markers       []Marker
	messages      []ChatMessage
	zones         []ChemicalZone
	notifications []GameNotification
	events        []GameEvent

	state         GameState
	cities        []City
	safeCampsOnly bool
	devMode       bool

	done      chan struct{}
	closeOnce sync.Once
}

func NewStore(opts Options) *Store {
	if opts.Translator == nil {
		opts.Translator = keyTranslator{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Store{
		tr:      opts.Translator,
		now:     opts.Now,
		newID:   opts.NewID,
		rng:     opts.Rand,
		cities:  Cities(),
		devMode: opts.DevMode,
		done:    make(chan struct{}),
	}

	defaultCity := s.cities[0]
	s.state = GameState{
		Exp:         InitialExp,
		Inventory:   initialInventory(),
		CurrentRoom: defaultCity.Name,
		PlayerID:    GenerateSurvivorID(s.rng),
		CurrentCity: defaultCity,
		Rank:        CalculateRank(InitialExp),
	}

	if !opts.NoSeed {
		s.markers = seedMarkers(s.newID, s.nowMs())
		s.messages = seedMessages(s.newID, s.nowMs(), s.markers)
	}

	return s
}

func (s *Store) nowMs() int64 {
	return s.now().UnixMilli()
}

// AddMarker assigns ID and timestamp, appends the marker and applies the
// kind-specific side effects: zombie sightings and camp proposals both earn
// EXP, and a camp proposal also announces itself in the current city's room
// with a linked vote message. Never rejects.
func (s *Store) AddMarker(in MarkerInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendMarker(in)
}

// appendMarker assumes the write lock is held.
func (s *Store) appendMarker(in MarkerInput) string {
	m := Marker{
		ID:        s.newID(),
		Type:      in.Type,
		Position:  in.Position,
		Details:   in.Details,
		Votes:     in.Votes,
		MaxVotes:  in.MaxVotes,
		CreatedAt: s.nowMs(),
	}

	if m.Type == MarkerCamp && m.MaxVotes == 0 {
		m.MaxVotes = DefaultMaxVotes
	}

	next := make([]Marker, len(s.markers), len(s.markers)+1)
	copy(next, s.markers)
	s.markers = append(next, m)

	switch m.Type {
	case MarkerZombie:
		s.applyExp(ExpAddZombie)

	case MarkerCamp:
		s.applyExp(ExpProposeCamp)

		s.appendMessage(MessageInput{
			Room:     s.state.CurrentCity.Name,
			Content:  fmt.Sprintf("Safe camp proposed at [%.4f, %.4f]. Vote now!", m.Position[0], m.Position[1]),
			Type:     MessageCamp,
			MaxVotes: m.MaxVotes,
			Position: m.Position,
			CampID:   m.ID,
		})
	}

	return m.ID
}

// AddChatMessage stamps the message with ID, current time and the session's
// player ID as sender, then appends it to the room log.
func (s *Store) AddChatMessage(in MessageInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendMessage(in)
}

func (s *Store) appendMessage(in MessageInput) string {
	msg := ChatMessage{
		ID:        s.newID(),
		Room:      in.Room,
		Sender:    s.state.PlayerID,
		Content:   in.Content,
		Timestamp: s.nowMs(),
		Type:      in.Type,
		Votes:     in.Votes,
		MaxVotes:  in.MaxVotes,
		Position:  in.Position,
		CampID:    in.CampID,
	}

	next := make([]ChatMessage, len(s.messages), len(s.messages)+1)
	copy(next, s.messages)
	s.messages = append(next, msg)

	return msg.ID
}

// VoteForCamp increments the vote tally on the matching camp marker and on
// every chat message linked to it, then recomputes approval against the 70%
// threshold. An unknown or non-camp id leaves both lists untouched, but the
// voter's EXP reward is granted either way.
func (s *Store) VoteForCamp(campID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.markers {
		if s.markers[i].ID == campID && s.markers[i].Type == MarkerCamp {
			next := make([]Marker, len(s.markers))
			copy(next, s.markers)

			m := &next[i]
			m.Votes++
			if float64(m.Votes) >= campApprovalRatio*float64(m.MaxVotes) {
				m.Approved = true
			}
			s.markers = next

			log.Printf("Voted for camp %s, votes: %d, approved: %v", campID, m.Votes, m.Approved)
			break
		}
	}

	// Plain messages carry an empty CampID, so an empty vote id must never
	// reach the mirror loop
	if campID == "" {
		s.applyExp(ExpVote)
		return
	}

	mirrored := false
	for i := range s.messages {
		if s.messages[i].CampID == campID {
			if !mirrored {
				next := make([]ChatMessage, len(s.messages))
				copy(next, s.messages)
				s.messages = next
				mirrored = true
			}
			s.messages[i].Votes++
		}
	}

	s.applyExp(ExpVote)
}

// RequestItem broadcasts a supply request in the current room. The request
// is a social signal only, inventory counts are not touched.
func (s *Store) RequestItem(item ItemType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessage(MessageInput{
		Room:    s.state.CurrentRoom,
		Content: fmt.Sprintf("!need %s Can anyone spare this?", item),
		Type:    MessageRequest,
	})
	s.applyExp(ExpRequestItem)
}

// SendSOS posts an emergency broadcast in the current room. Empty text is
// the caller's problem to filter, the store takes what it gets.
func (s *Store) SendSOS(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendMessage(MessageInput{
		Room:    s.state.CurrentRoom,
		Content: "!help " + content,
		Type:    MessageEmergency,
	})
	s.applyExp(ExpSOSCall)
}

// UseItem consumes one unit from the inventory. Returns false when the item
// is already exhausted.
func (s *Store) UseItem(item ItemType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Inventory[item] <= 0 {
		return false
	}

	inv := make(map[ItemType]int, len(s.state.Inventory))
	for k, v := range s.state.Inventory {
		inv[k] = v
	}
	inv[item]--
	s.state.Inventory = inv

	return true
}

func (s *Store) ChangeRoom(room string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentRoom = room
}

// ChangeCity switches the active city; the chat room follows it.
func (s *Store) ChangeCity(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cities {
		if c.Name == name {
			s.state.CurrentCity = c
			s.state.CurrentRoom = c.Name
			return
		}
	}
	log.Printf("Unknown city '%s', keeping %s", name, s.state.CurrentCity.Name)
}

func (s *Store) ToggleSafeCampsOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.safeCampsOnly = !s.safeCampsOnly
	return s.safeCampsOnly
}

// UpdateExp adds delta to the experience counter, floored at zero, and
// recomputes the rank. Climbing into a new tier enqueues a localized
// rank-up notification.
func (s *Store) UpdateExp(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyExp(delta)
}

func (s *Store) applyExp(delta int) {
	oldRank := CalculateRank(s.state.Exp)

	exp := s.state.Exp + delta
	if exp < 0 {
		exp = 0
	}
	s.state.Exp = exp

	newRank := CalculateRank(exp)
	s.state.Rank = newRank

	if delta > 0 && newRank.Tier() > oldRank.Tier() {
		s.appendNotification(NotificationInput{
			Type:  NotifySuccess,
			Title: s.tr.T("notifications.levelUp", nil),
			Message: s.tr.T("notifications.rankChanged", map[string]string{
				"rank": s.tr.T("ranks."+string(newRank), nil),
			}),
			Duration: 5000,
		})
	}
}

// AddChemicalZone appends the zone and warns the player about it.
func (s *Store) AddChemicalZone(in ZoneInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	z := ChemicalZone{
		ID:        s.newID(),
		Type:      in.Type,
		Position:  in.Position,
		Radius:    in.Radius,
		Intensity: in.Intensity,
		CreatedAt: s.nowMs(),
		ExpiresAt: in.ExpiresAt,
	}

	next := make([]ChemicalZone, len(s.zones), len(s.zones)+1)
	copy(next, s.zones)
	s.zones = append(next, z)

	name := s.tr.T("chemicals."+string(z.Type), nil)
	s.appendNotification(NotificationInput{
		Type:     NotifyWarning,
		Title:    s.tr.T("notifications.chemicalDetected", nil),
		Message:  name + " - " + s.tr.T("chemicals.warning", nil),
		Duration: 5000,
	})

	return z.ID
}

// ClearChemicalZone removes the zone; unknown ids are a no-op.
func (s *Store) ClearChemicalZone(zoneID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]ChemicalZone, 0, len(s.zones))
	for _, z := range s.zones {
		if z.ID != zoneID {
			next = append(next, z)
		}
	}
	s.zones = next
}

func (s *Store) AddNotification(in NotificationInput) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendNotification(in)
}

func (s *Store) appendNotification(in NotificationInput) string {
	n := GameNotification{
		ID:        s.newID(),
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Duration:  in.Duration,
		CreatedAt: s.nowMs(),
	}

	next := make([]GameNotification, len(s.notifications), len(s.notifications)+1)
	copy(next, s.notifications)
	s.notifications = append(next, n)

	return n.ID
}

func (s *Store) ClearNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]GameNotification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if n.ID != id {
			next = append(next, n)
		}
	}
	s.notifications = next
}

// --- snapshot getters, all return copies ---

func (s *Store) State() GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	inv := make(map[ItemType]int, len(st.Inventory))
	for k, v := range st.Inventory {
		inv[k] = v
	}
	st.Inventory = inv
	return st
}

func (s *Store) Markers() []Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

func (s *Store) ChatMessages() []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// RoomMessages returns the ordered log for one city room.
func (s *Store) RoomMessages(room string) []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []ChatMessage{}
	for _, m := range s.messages {
		if m.Room == room {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) ChemicalZones() []ChemicalZone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ChemicalZone, len(s.zones))
	copy(out, s.zones)
	return out
}

func (s *Store) Notifications() []GameNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GameNotification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) Cities() []City {
	out := make([]City, len(s.cities))
	copy(out, s.cities)
	return out
}

func (s *Store) SafeCampsOnly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.safeCampsOnly
}

// CurrentCity is a convenience for the derived calculators.
func (s *Store) CurrentCity() City {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentCity
}
