package game

type MarkerType string

const (
	MarkerZombie   MarkerType = "zombie"
	MarkerCamp     MarkerType = "camp"
	MarkerTraffic  MarkerType = "traffic"
	MarkerChemical MarkerType = "chemical"
)

// Marker is a point annotation on the map. Camp markers carry the vote
// tally; everything else leaves those fields zeroed.
type Marker struct {
	ID        string     `json:"id"`
	Type      MarkerType `json:"type"`
	Position  [2]float64 `json:"position"` // [lat, lng]
	Details   string     `json:"details,omitempty"`
	Votes     int        `json:"votes,omitempty"`
	MaxVotes  int        `json:"maxVotes,omitempty"`
	Approved  bool       `json:"approved,omitempty"`
	CreatedAt int64      `json:"createdAt"` // unix ms
}

// MarkerInput is a Marker before the store assigns ID and CreatedAt.
type MarkerInput struct {
	Type     MarkerType
	Position [2]float64
	Details  string
	Votes    int
	MaxVotes int
}

type MessageType string

const (
	MessageNormal       MessageType = "normal"
	MessageEmergency    MessageType = "emergency"
	MessageRequest      MessageType = "request"
	MessageCamp         MessageType = "camp"
	MessageCampProposal MessageType = "campProposal"
	MessageItemRequest  MessageType = "itemRequest"
)

// ChatMessage lives in a per-city room. Camp messages can link back to the
// proposed camp marker through CampID, in which case their vote count tracks
// the marker's.
type ChatMessage struct {
	ID        string      `json:"id"`
	Room      string      `json:"room"`
	Sender    string      `json:"sender"` // anonymous id like "Survivor123"
	Content   string      `json:"content"`
	Timestamp int64       `json:"timestamp"` // unix ms
	Type      MessageType `json:"type"`
	Votes     int         `json:"votes,omitempty"`
	MaxVotes  int         `json:"maxVotes,omitempty"`
	Position  [2]float64  `json:"position,omitempty"`
	CampID    string      `json:"campId,omitempty"`
}

// MessageInput is a ChatMessage before ID, Timestamp and Sender are assigned.
type MessageInput struct {
	Room     string
	Content  string
	Type     MessageType
	Votes    int
	MaxVotes int
	Position [2]float64
	CampID   string
}

type ChemicalType string

const (
	ChemTearGas     ChemicalType = "tearGas"
	ChemToxin       ChemicalType = "toxin"
	ChemSmokeScreen ChemicalType = "smokeScreen"
	ChemRadiation   ChemicalType = "radiation"
)

// ChemicalZone is a circular hazard that decays over its lifetime and is
// swept once ExpiresAt passes.
type ChemicalZone struct {
	ID        string       `json:"id"`
	Type      ChemicalType `json:"type"`
	Position  [2]float64   `json:"position"`
	Radius    float64      `json:"radius"`    // km
	Intensity float64      `json:"intensity"` // 0-100
	CreatedAt int64        `json:"createdAt"` // unix ms
	ExpiresAt int64        `json:"expiresAt"` // unix ms
}

type ZoneInput struct {
	Type      ChemicalType
	Position  [2]float64
	Radius    float64
	Intensity float64
	ExpiresAt int64
}

// ChemicalLevel is the aggregate exposure at a point, per chemical type.
type ChemicalLevel struct {
	TearGas     float64 `json:"tearGas"`
	Toxin       float64 `json:"toxin"`
	SmokeScreen float64 `json:"smokeScreen"`
	Radiation   float64 `json:"radiation"`
}

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

type GameNotification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Duration  int64            `json:"duration"`  // ms
	CreatedAt int64            `json:"createdAt"` // unix ms
}

type NotificationInput struct {
	Type     NotificationType
	Title    string
	Message  string
	Duration int64
}

type City struct {
	Name     string     `json:"name"`
	Position [2]float64 `json:"position"`
	Zoom     int        `json:"zoom"`
}

type ItemType string

const (
	ItemMedkit     ItemType = "medkit"
	ItemSerum      ItemType = "serum"
	ItemPainkiller ItemType = "painkiller"
	ItemFood       ItemType = "food"
)

// GameState is the player's session-scoped aggregate.
type GameState struct {
	Exp         int              `json:"exp"`
	Inventory   map[ItemType]int `json:"inventory"`
	CurrentRoom string           `json:"currentRoom"`
	PlayerID    string           `json:"playerId"`
	CurrentCity City             `json:"currentCity"`
	Rank        Rank             `json:"rank"`
}

type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// RadarContact is one zombie marker projected onto the radar display.
type RadarContact struct {
	MarkerID string      `json:"markerId"`
	Distance float64     `json:"distance"` // km from city center
	Angle    float64     `json:"angle"`    // degrees, [0,360)
	Threat   ThreatLevel `json:"threat"`
}

type EventType string

const (
	EventZombieHorde      EventType = "zombieHorde"
	EventSurvivorFound    EventType = "survivorFound"
	EventContaminatedArea EventType = "contaminatedArea"
	EventSuppliesDrop     EventType = "suppliesDrop"
	EventRadioMessage     EventType = "radioMessage"
)

// GameEvent is a transient random encounter near the current city. Picking
// an option resolves it; ignoring it lets the countdown run out.
type GameEvent struct {
	ID          string        `json:"id"`
	Type        EventType     `json:"type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Position    [2]float64    `json:"position"`
	TimeLeft    int           `json:"timeLeft"` // seconds
	Options     []EventOption `json:"options"`
}

type EventOption struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	ExpReward  int    `json:"expReward"`
	Risk       int    `json:"risk"` // percent chance the attempt fails
	FailReward int    `json:"-"`    // consolation EXP on a failed attempt
}

// GameStatsSnapshot summarizes marker activity for the HUD.
type GameStatsSnapshot struct {
	ZombieCount   int `json:"zombieCount"`
	SafeZones     int `json:"safeZones"`
	PendingCamps  int `json:"pendingCamps"`
	TrafficPoints int `json:"trafficPoints"`
	SurvivalRate  int `json:"survivalRate"`
	GameDays      int `json:"gameDays"`
}
