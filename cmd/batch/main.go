package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"venture_analytics/pkg/core/analysis"
	"venture_analytics/pkg/core/config"
	"venture_analytics/pkg/core/dealfile"
	"venture_analytics/pkg/core/store"
)

// revalueAll runs the engine over every deal file in the configured
// directory and persists a summary row per deal when a database is up.
func revalueAll(engine *analysis.Engine, repo *store.RunRepo, dealDir string) {
	deals, err := dealfile.LoadDir(dealDir)
	if err != nil {
		fmt.Printf("[ERROR] Failed to scan deal directory %s: %v\n", dealDir, err)
		return
	}
	if len(deals) == 0 {
		fmt.Printf("[WARNING] No deal files found in %s\n", dealDir)
		return
	}
	fmt.Printf("[BATCH] Revaluing %d deal(s) from %s\n", len(deals), dealDir)

	for _, deal := range deals {
		input := analysis.Input{
			DealName:     deal.Name,
			BaseCase:     deal.BaseCase,
			Variations:   deal.Variations,
			Correlations: deal.Correlations,
			Preferences:  deal.Preferences,
			CommonShares: deal.CommonShares,
			TotalShares:  deal.TotalShares,
			UnitScale:    deal.UnitScale,
		}
		result, err := engine.Run(input)
		if err != nil {
			fmt.Printf("[ERROR] %s: %v\n", deal.Name, err)
			continue
		}
		fmt.Printf("[BATCH] %s: %d scenarios, expected EV %.4f, VaR95 %.4f\n",
			deal.Name, len(result.Scenarios), result.Statistics.Mean, result.Statistics.VaR95)

		if repo == nil {
			continue
		}
		request, _ := json.Marshal(input)
		summary, _ := json.Marshal(result.Statistics)
		id, err := repo.Save(context.Background(), deal.Name, request, summary)
		if err != nil {
			fmt.Printf("[ERROR] Failed to persist run for %s: %v\n", deal.Name, err)
			continue
		}
		fmt.Printf("[BATCH] Saved run %s for %s\n", id, deal.Name)
	}
}

func main() {
	godotenv.Load()

	cfg, err := config.Load("config/engine.yaml")
	if err != nil {
		fmt.Printf("[FATAL] Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var repo *store.RunRepo
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[WARNING] Database unavailable, summaries will not be persisted: %v\n", err)
	} else {
		repo = store.NewRunRepo()
		defer store.Close()
	}

	engine := analysis.NewEngine(cfg.Engine)

	// Run once at startup so a fresh deploy produces numbers immediately.
	revalueAll(engine, repo, cfg.Batch.DealDir)

	c := cron.New()
	_, err = c.AddFunc(cfg.Batch.Cron, func() {
		revalueAll(engine, repo, cfg.Batch.DealDir)
	})
	if err != nil {
		fmt.Printf("[FATAL] Invalid cron expression %q: %v\n", cfg.Batch.Cron, err)
		os.Exit(1)
	}
	c.Start()
	fmt.Printf("[BATCH] Scheduler started with expression %q\n", cfg.Batch.Cron)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("[BATCH] Shutting down scheduler")
	<-c.Stop().Done()
}
