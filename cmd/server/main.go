package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Ko-stant/dungeon-layout-engine/internal/config"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
	"github.com/Ko-stant/dungeon-layout-engine/internal/ws"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	StartProfiling(GetProfilingConfigFromEnv())

	logger := NewLogger()
	metrics := session.NewMetrics()
	metrics.StartReporting(cfg.Server.MetricsInterval, nil)

	registry := session.NewRegistry(cfg.SessionOptions(), logger, metrics)
	if cfg.Server.DemoLevel {
		if snap, err := registry.Create(level.DemoLevel()); err != nil {
			log.Printf("demo level failed: %v", err)
		} else {
			log.Printf("demo level at /levels/%s", snap.ID)
		}
	}

	hub := ws.NewHub()
	handlers := NewHandlers(registry, NewBroadcaster(hub, NewSequenceGenerator()), logger)

	mux := http.NewServeMux()
	handlers.Routes(mux)
	mux.HandleFunc("GET /stream", StreamHandler(hub, registry, handlers, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(srv.ListenAndServe())
}
