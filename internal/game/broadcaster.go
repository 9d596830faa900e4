package game

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Broadcaster pushes state snapshots to every connected browser. One
// goroutine owns the client set; writers take a per-connection lock because
// gorilla connections allow a single concurrent writer.
type Broadcaster struct {
	store      *Store
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	pushChan   chan struct{} // on-demand broadcast after mutations
	mu         sync.RWMutex
	WriteMu    map[*websocket.Conn]*sync.Mutex
}

// Snapshot is the wire shape of one full-state push.
type Snapshot struct {
	State          GameState          `json:"state"`
	Markers        []Marker           `json:"markers"`
	Messages       []ChatMessage      `json:"messages"`
	ChemicalZones  []ChemicalZone     `json:"chemicalZones"`
	ChemicalLevels ChemicalLevel      `json:"chemicalLevels"`
	Notifications  []GameNotification `json:"notifications"`
	Events         []GameEvent        `json:"events"`
	Radar          []RadarContact     `json:"radar"`
	Stats          GameStatsSnapshot  `json:"stats"`
	SafeCampsOnly  bool               `json:"safeCampsOnly"`
}

func NewBroadcaster(store *Store) *Broadcaster {
	return &Broadcaster{
		store:      store,
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		pushChan:   make(chan struct{}, 1), // buffered to avoid blocking mutators
		WriteMu:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// BuildSnapshot assembles the full derived view the widgets render from:
// raw collections plus the hazard projections for the current city.
func (b *Broadcaster) BuildSnapshot() Snapshot {
	now := b.store.now()
	markers := b.store.Markers()
	city := b.store.CurrentCity()

	return Snapshot{
		State:          b.store.State(),
		Markers:        markers,
		Messages:       b.store.ChatMessages(),
		ChemicalZones:  b.store.ChemicalZones(),
		ChemicalLevels: ChemicalLevelsAt(b.store.ChemicalZones(), city.Position, now),
		Notifications:  b.store.Notifications(),
		Events:         b.store.Events(),
		Radar:          RadarContacts(markers, city.Position, now),
		Stats:          Stats(markers, now),
		SafeCampsOnly:  b.store.SafeCampsOnly(),
	}
}

func (b *Broadcaster) Run() {
	// Hazard levels are time-decaying, so push on a timer even when nothing
	// was mutated
	pushTicker := time.NewTicker(2 * time.Second)
	defer pushTicker.Stop()

	for {
		select {
		case conn := <-b.register:
			b.mu.Lock()
			b.clients[conn] = true
			b.WriteMu[conn] = &sync.Mutex{}
			b.mu.Unlock()

			// Send initial state right away
			b.sendSnapshotTo(conn)

		case conn := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[conn]; ok {
				delete(b.clients, conn)
				delete(b.WriteMu, conn)
				conn.Close()
			}
			b.mu.Unlock()

		case <-pushTicker.C:
			b.broadcastSnapshot()

		case <-b.pushChan:
			b.broadcastSnapshot()
		}
	}
}

func (b *Broadcaster) Register(conn *websocket.Conn) {
	b.register <- conn
}

func (b *Broadcaster) Unregister(conn *websocket.Conn) {
	b.unregister <- conn
}

// Push requests an out-of-band broadcast, typically right after a mutation.
// Collapses when one is already pending.
func (b *Broadcaster) Push() {
	select {
	case b.pushChan <- struct{}{}:

	default:
		// Already pending, skip
	}
}

func (b *Broadcaster) sendSnapshotTo(conn *websocket.Conn) {
	data, err := json.Marshal(b.BuildSnapshot())
	if err != nil {
		log.Println("Snapshot marshal error:", err)
		return
	}

	b.mu.RLock()
	mu, ok := b.WriteMu[conn]
	b.mu.RUnlock()
	if !ok {
		return
	}

	mu.Lock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println("Initial send error:", err)
	}
	mu.Unlock()
}

func (b *Broadcaster) broadcastSnapshot() {
	data, err := json.Marshal(b.BuildSnapshot())
	if err != nil {
		log.Println("Snapshot marshal error:", err)
		return
	}

	b.mu.RLock()
	for conn := range b.clients {
		if mu, ok := b.WriteMu[conn]; ok {
			mu.Lock()
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Println("Broadcast error:", err)
				mu.Unlock()
				// Defer full cleanup to the unregister channel
				go func(c *websocket.Conn) {
					b.unregister <- c
				}(conn)
				continue
			}
			mu.Unlock()
		}
	}
	b.mu.RUnlock()
}
