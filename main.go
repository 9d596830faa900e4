package main

import (
	"log"

	"github.com/biteback/biteback/internal/config"
	"github.com/biteback/biteback/internal/game"
	"github.com/biteback/biteback/internal/i18n"
	"github.com/biteback/biteback/internal/prefs"
	"github.com/biteback/biteback/internal/server"
)

func main() {
	log.Println("=== STARTING BITEBACK ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error:", err)
	}

	preferences, err := prefs.Open(cfg.DataDir)
	if err != nil {
		log.Fatal("Prefs error:", err)
	}

	translator := i18n.New(preferences)

	// Init the session store
	log.Println("Creating game state store...")
	store := game.NewStore(game.Options{
		Translator: translator,
		DevMode:    cfg.Development(),
	})
	store.StartSweeps()
	defer store.Close()

	// Start broadcaster in background
	log.Println("Starting broadcaster...")
	broadcaster := game.NewBroadcaster(store)
	go broadcaster.Run()

	// Setup and start server
	log.Println("Setting up router...")
	r := server.SetupRouter(broadcaster, store, translator)
	log.Printf("Server starting at port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
