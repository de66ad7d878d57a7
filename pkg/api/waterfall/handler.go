// Package waterfall exposes the liquidation waterfall over HTTP.
package waterfall

import (
	"encoding/json"
	"fmt"
	"net/http"

	"venture_analytics/pkg/core/pwerm"
	"venture_analytics/pkg/core/waterfall"
)

var breakevenMultiple = pwerm.DefaultCalibration().BreakevenMultiple

// InitHandler sets the calibration the threshold report uses.
func InitHandler(cal pwerm.Calibration) {
	if cal.BreakevenMultiple > 0 {
		breakevenMultiple = cal.BreakevenMultiple
	}
}

type DistributeRequest struct {
	ExitValue    float64                           `json:"exit_value"`
	Preferences  []waterfall.LiquidationPreference `json:"preferences"`
	CommonShares float64                           `json:"common_shares"`
	TotalShares  float64                           `json:"total_shares"`
}

type DistributeResponse struct {
	Split      waterfall.DistributionSplit `json:"split"`
	Thresholds []waterfall.KeyThreshold    `json:"thresholds"`
	Warnings   []string                    `json:"warnings,omitempty"`
}

// HandleDistribute splits one exit value across the posted preference stack.
func HandleDistribute(w http.ResponseWriter, r *http.Request) {
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

	var req DistributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := DistributeResponse{
		Split:      waterfall.Distribute(req.ExitValue, req.Preferences, req.CommonShares, req.TotalShares),
		Thresholds: waterfall.KeyThresholds(req.Preferences, req.TotalShares, breakevenMultiple),
		Warnings:   waterfall.ValidateStack(req.Preferences),
	}
	fmt.Printf("[WATERFALL] exit %.2f -> common %.2f / preferred %.2f\n",
		req.ExitValue, resp.Split.Common, resp.Split.NonParticipating+resp.Split.Participating)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
