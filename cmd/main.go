package main

import (
	"log"
	"log/slog"
	"os"

	"fitledger/config"
	"fitledger/models"
	"fitledger/routes"
	"fitledger/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, err := cfg.OpenKV(logger)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer kv.Close()

	store := services.NewLedgerStore(kv, logger)
	tracker := services.NewTracker(store)
	hub := services.NewRealtimeHub(logger)
	tracker.Subscribe(func(rec *models.DailyLedgerRecord) {
		hub.BroadcastLedgerUpdate(rec)
	})

	profile := services.NewProfileService(store, tracker)
	if err := profile.ApplyGoalDefault(); err != nil {
		logger.Warn("could not apply profile goal default", "error", err)
	}
	if rolled, err := tracker.ResetIfNewDay(); err != nil {
		logger.Warn("rollover check failed", "error", err)
	} else if rolled {
		logger.Info("new day", "date", tracker.CurrentDateKey())
	}

	r := routes.SetupRouter(routes.Deps{
		Auth:      services.NewAuthService(cfg.AuthEmail, cfg.AuthPasswordHash, []byte(cfg.JWTSecret)),
		Tracker:   tracker,
		Catalog:   services.NewCatalogService(),
		Profile:   profile,
		Analytics: services.NewAnalyticsService(tracker),
		RT:        hub,
	})

	logger.Info("listening", "addr", cfg.Addr, "storage", cfg.StorageBackend)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
