package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/biteback/biteback/internal/game"
	"github.com/biteback/biteback/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type AddMarkerAction struct {
	Action   string     `json:"action"`
	Type     string     `json:"type"`
	Position [2]float64 `json:"position"`
	Details  string     `json:"details"`
}

type ChatAction struct {
	Action  string `json:"action"`
	Room    string `json:"room"`
	Content string `json:"content"`
}

type VoteAction struct {
	Action string `json:"action"`
	CampID string `json:"campId"`
}

type ItemAction struct {
	Action string `json:"action"`
	Item   string `json:"item"`
}

type SOSAction struct {
	Action  string `json:"action"`
	Content string `json:"content"`
}

type CityAction struct {
	Action string `json:"action"`
	City   string `json:"city"`
}

type RoomAction struct {
	Action string `json:"action"`
	Room   string `json:"room"`
}

type ZoneAction struct {
	Action    string     `json:"action"`
	Type      string     `json:"type"`
	Position  [2]float64 `json:"position"`
	Radius    float64    `json:"radius"`
	Intensity float64    `json:"intensity"`
	ExpiresAt int64      `json:"expiresAt"`
}

type ClearAction struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

type EventAction struct {
	Action   string `json:"action"`
	EventID  string `json:"eventId"`
	OptionID string `json:"optionId"`
}

type LocaleAction struct {
	Action string `json:"action"`
	Locale string `json:"locale"`
}

// HandleWebsocket is the browser's mutation surface: every user interaction
// arrives as a small JSON action, gets applied to the store, and triggers a
// snapshot push. Malformed actions are logged and skipped, never fatal.
func HandleWebsocket(broadcaster *game.Broadcaster, store *game.Store, tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WS upgrade error:", err)
			return
		}

		broadcaster.Register(conn)

		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				broadcaster.Unregister(conn)
				break
			}

			if msgType != websocket.TextMessage {
				continue
			}

			var baseAction map[string]interface{}
			if err := json.Unmarshal(msg, &baseAction); err != nil {
				log.Println("JSON parse error:", err)
				continue
			}

			action, ok := baseAction["action"].(string)
			if !ok {
				continue
			}

			switch action {
			case "add_marker":
				var a AddMarkerAction
				json.Unmarshal(msg, &a)
				store.AddMarker(game.MarkerInput{
					Type:     game.MarkerType(a.Type),
					Position: a.Position,
					Details:  a.Details,
				})
				broadcaster.Push()

			case "chat":
				var a ChatAction
				json.Unmarshal(msg, &a)
				if strings.TrimSpace(a.Content) == "" {
					continue
				}
				room := a.Room
				if room == "" {
					room = store.State().CurrentRoom
				}
				store.AddChatMessage(game.MessageInput{
					Room:    room,
					Content: a.Content,
					Type:    game.MessageNormal,
				})
				broadcaster.Push()

			case "vote_camp":
				var a VoteAction
				json.Unmarshal(msg, &a)
				store.VoteForCamp(a.CampID)
				broadcaster.Push()

			case "request_item":
				var a ItemAction
				json.Unmarshal(msg, &a)
				if a.Item == "" {
					continue
				}
				store.RequestItem(game.ItemType(a.Item))
				broadcaster.Push()

			case "use_item":
				var a ItemAction
				json.Unmarshal(msg, &a)
				if store.UseItem(game.ItemType(a.Item)) {
					broadcaster.Push()
				}

			case "sos":
				var a SOSAction
				json.Unmarshal(msg, &a)
				// Empty SOS is dropped here, the store accepts whatever the
				// caller lets through
				content := strings.TrimSpace(a.Content)
				if content == "" {
					continue
				}
				store.SendSOS(content)
				broadcaster.Push()

			case "change_city":
				var a CityAction
				json.Unmarshal(msg, &a)
				store.ChangeCity(a.City)
				broadcaster.Push()

			case "change_room":
				var a RoomAction
				json.Unmarshal(msg, &a)
				store.ChangeRoom(a.Room)
				broadcaster.Push()

			case "toggle_safe_camps":
				store.ToggleSafeCampsOnly()
				broadcaster.Push()

			case "add_chemical_zone":
				var a ZoneAction
				json.Unmarshal(msg, &a)
				store.AddChemicalZone(game.ZoneInput{
					Type:      game.ChemicalType(a.Type),
					Position:  a.Position,
					Radius:    a.Radius,
					Intensity: a.Intensity,
					ExpiresAt: a.ExpiresAt,
				})
				broadcaster.Push()

			case "clear_chemical_zone":
				var a ClearAction
				json.Unmarshal(msg, &a)
				store.ClearChemicalZone(a.ID)
				broadcaster.Push()

			case "clear_notification":
				var a ClearAction
				json.Unmarshal(msg, &a)
				store.ClearNotification(a.ID)
				broadcaster.Push()

			case "resolve_event":
				var a EventAction
				json.Unmarshal(msg, &a)
				store.ResolveEvent(a.EventID, a.OptionID)
				broadcaster.Push()

			case "set_locale":
				var a LocaleAction
				json.Unmarshal(msg, &a)
				tr.SetLocale(i18n.Locale(a.Locale))

			default:
				log.Printf("Unknown ws action '%s'", action)
			}
		}
	}
}
