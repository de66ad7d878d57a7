// Package simulation exposes the exit-return engine over HTTP.
package simulation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"venture_analytics/pkg/core/analysis"
	"venture_analytics/pkg/core/store"
)

var (
	engine *analysis.Engine
	cache  store.CacheRepository
	repo   *store.RunRepo
)

// InitHandler wires the engine and optional collaborators. A nil cache
// disables response caching; persistence is skipped when no database pool is
// configured.
func InitHandler(e *analysis.Engine, c store.CacheRepository) {
	engine = e
	cache = c
	repo = store.NewRunRepo()
}

// RunResponse wraps the engine result with its audit run ID.
type RunResponse struct {
	RunID string `json:"run_id,omitempty"`
	*analysis.Result
}

// HandleRun computes a full PWERM analysis for the posted deal input.
func HandleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input analysis.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The engine is referentially transparent, so a request hash is a sound
	// cache key: identical inputs, identical response.
	key, canonical := requestKey(input)
	if cache != nil {
		if payload, ok := cache.Get(key); ok {
			fmt.Printf("[SIMULATION] cache hit for %s\n", input.DealName)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write([]byte(payload))
			return
		}
	}

	result, err := engine.Run(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fmt.Printf("[SIMULATION] %s: %d scenarios, mean EV %.4f\n",
		input.DealName, len(result.Scenarios), result.Statistics.Mean)

	resp := RunResponse{Result: result}
	resp.RunID = persistRun(r.Context(), input.DealName, canonical, result)

	payload, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if cache != nil {
		if err := cache.Set(key, string(payload)); err != nil {
			fmt.Printf("[WARNING] failed to cache run: %v\n", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// HandleListRuns returns the most recent persisted runs.
func HandleListRuns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if store.GetPool() == nil {
		http.Error(w, "run storage not configured", http.StatusServiceUnavailable)
		return
	}
	records, err := repo.List(r.Context(), 50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// HandleGetRun returns one persisted run by id.
func HandleGetRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if store.GetPool() == nil {
		http.Error(w, "run storage not configured", http.StatusServiceUnavailable)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	record, err := repo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// persistRun stores the run summary as an audit record. Fire and forget: a
// storage failure is logged and the response proceeds without a run ID.
func persistRun(ctx context.Context, dealName string, request json.RawMessage, result *analysis.Result) string {
	if store.GetPool() == nil {
		return ""
	}
	summary, err := json.Marshal(struct {
		Statistics interface{} `json:"statistics"`
		Thresholds interface{} `json:"thresholds,omitempty"`
		Warnings   interface{} `json:"warnings,omitempty"`
	}{result.Statistics, result.Thresholds, result.Warnings})
	if err != nil {
		fmt.Printf("[WARNING] failed to marshal run summary: %v\n", err)
		return ""
	}
	id, err := repo.Save(ctx, dealName, request, summary)
	if err != nil {
		fmt.Printf("[WARNING] failed to persist run: %v\n", err)
		return ""
	}
	return id
}

// requestKey hashes the canonical JSON form of the input.
func requestKey(input analysis.Input) (string, []byte) {
	canonical, _ := json.Marshal(input)
	sum := sha256.Sum256(canonical)
	return "pwerm:run:" + hex.EncodeToString(sum[:]), canonical
}
