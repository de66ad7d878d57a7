package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"venture_analytics/pkg/api/simulation"
	apiwaterfall "venture_analytics/pkg/api/waterfall"
	"venture_analytics/pkg/core/analysis"
	"venture_analytics/pkg/core/config"
	"venture_analytics/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := config.Load("config/engine.yaml")
	if err != nil {
		fmt.Printf("[FATAL] Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Run storage is optional; without DATABASE_URL the API serves
	// computations but skips the audit trail.
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Run storage disabled: %v\n", err)
	} else {
		fmt.Println("[STORE] Run storage connected")
		defer store.Close()
	}

	// Response cache is optional too.
	var cache store.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = store.NewRedisCache(addr, 24*time.Hour)
		fmt.Printf("[STORE] Response cache at %s\n", addr)
	}

	engine := analysis.NewEngine(cfg.Engine)
	simulation.InitHandler(engine, cache)
	apiwaterfall.InitHandler(cfg.Engine)

	// Simulation endpoints
	http.HandleFunc("/api/simulation/run", simulation.HandleRun)
	http.HandleFunc("/api/simulation/runs", simulation.HandleListRuns)
	http.HandleFunc("/api/simulation/run/get", simulation.HandleGetRun)

	// Waterfall endpoints
	http.HandleFunc("/api/waterfall/distribute", apiwaterfall.HandleDistribute)

	fmt.Printf("API server starting on %s...\n", cfg.Server.Addr)
	fmt.Println("  - POST /api/simulation/run")
	fmt.Println("  - GET  /api/simulation/runs")
	fmt.Println("  - GET  /api/simulation/run/get?id=<uuid>")
	fmt.Println("  - POST /api/waterfall/distribute")

	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
