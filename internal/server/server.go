package server

import (
	"time"

	"github.com/biteback/biteback/internal/game"
	"github.com/biteback/biteback/internal/i18n"
	"github.com/gin-gonic/gin"
)

func SetupRouter(broadcaster *game.Broadcaster, store *game.Store, tr *i18n.Translator) *gin.Engine {
	r := gin.Default()

	r.GET("/", indexHandler)

	api := r.Group("/api")
	{
		api.GET("/state", stateHandler(store))
		api.GET("/markers", markersHandler(store))
		api.GET("/chat/:room", chatHandler(store))
		api.GET("/hazards", hazardsHandler(store))
		api.GET("/radar", radarHandler(store))
		api.GET("/stats", statsHandler(store))
		api.GET("/notifications", notificationsHandler(store))
		api.GET("/events", eventsHandler(store))
		api.GET("/cities", citiesHandler(store))
	}

	r.GET("/ws", HandleWebsocket(broadcaster, store, tr))

	return r
}

func indexHandler(c *gin.Context) {
	c.JSON(200, gin.H{"name": "biteback", "status": "ok"})
}

func stateHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, store.State())
	}
}

func markersHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		markers := store.Markers()

		// The safe-camps filter is a view concern, applied at the edge so
		// the store never mutates markers for it
		if store.SafeCampsOnly() {
			filtered := []game.Marker{}
			for _, m := range markers {
				if m.Type != game.MarkerCamp || m.Approved {
					filtered = append(filtered, m)
				}
			}
			markers = filtered
		}

		c.JSON(200, markers)
	}
}

func chatHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, store.RoomMessages(c.Param("room")))
	}
}

func hazardsHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := store.CurrentCity()
		c.JSON(200, gin.H{
			"city":   city.Name,
			"levels": game.ChemicalLevelsAt(store.ChemicalZones(), city.Position, time.Now()),
			"zones":  store.ChemicalZones(),
		})
	}
}

func radarHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := store.CurrentCity()
		c.JSON(200, game.RadarContacts(store.Markers(), city.Position, time.Now()))
	}
}

func statsHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, game.Stats(store.Markers(), time.Now()))
	}
}

func notificationsHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, store.Notifications())
	}
}

func eventsHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, store.Events())
	}
}

func citiesHandler(store *game.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, store.Cities())
	}
}
