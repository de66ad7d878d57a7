// Package analysis orchestrates one full exit-return run: scenario
// generation, statistics, reporting artifacts, and the optional waterfall
// overlay. The HTTP handlers, CLI, and batch runner all go through here so
// every surface computes runs the same way.
package analysis

import (
	"fmt"

	"venture_analytics/pkg/core/pwerm"
	"venture_analytics/pkg/core/report"
	"venture_analytics/pkg/core/waterfall"
)

// Engine binds a calibration to the pure computation functions. It holds no
// run state; the same Engine can serve concurrent runs.
type Engine struct {
	cal pwerm.Calibration
}

// NewEngine creates an engine with the given calibration. A zero calibration
// falls back to the tuned defaults field by field.
func NewEngine(cal pwerm.Calibration) *Engine {
	return &Engine{cal: cal}
}

// Input is one deal's complete run request.
type Input struct {
	DealName     string                            `json:"deal_name"`
	BaseCase     pwerm.BaseCase                    `json:"base_case"`
	Variations   pwerm.VariationSpec               `json:"variations"`
	Correlations pwerm.CorrelationCoefficients     `json:"correlations"`
	Preferences  []waterfall.LiquidationPreference `json:"preferences,omitempty"`
	CommonShares float64                           `json:"common_shares,omitempty"`
	TotalShares  float64                           `json:"total_shares,omitempty"`
	UnitScale    float64                           `json:"unit_scale,omitempty"`

	// Calibration overrides the engine calibration for this run only.
	Calibration *pwerm.Calibration `json:"calibration,omitempty"`
}

// ScenarioPayout maps one headline scenario's enterprise value through the
// waterfall.
type ScenarioPayout struct {
	ScenarioID int                         `json:"scenario_id"`
	Rank       int                         `json:"rank"`
	ExitValue  float64                     `json:"exit_value"` // in stack currency units
	Split      waterfall.DistributionSplit `json:"split"`
}

// Result bundles everything a run produces.
type Result struct {
	DealName        string                     `json:"deal_name"`
	Scenarios       []pwerm.ScenarioResult     `json:"scenarios"`
	Statistics      pwerm.SimulationStatistics `json:"statistics"`
	Distribution    pwerm.Distribution         `json:"distribution"`
	Convergence     pwerm.Convergence          `json:"convergence"`
	Recommendations pwerm.Recommendations      `json:"recommendations"`
	Thresholds      []waterfall.KeyThreshold   `json:"thresholds,omitempty"`
	Payouts         []ScenarioPayout           `json:"payouts,omitempty"`
	Warnings        []string                   `json:"warnings,omitempty"`
	Memo            string                     `json:"memo"`
}

// Run executes one full analysis. Identical inputs always produce identical
// results.
func (e *Engine) Run(in Input) (*Result, error) {
	if in.BaseCase.Revenue <= 0 {
		return nil, fmt.Errorf("base case revenue must be positive")
	}
	if in.BaseCase.Margin <= 0 || in.BaseCase.Multiple <= 0 {
		return nil, fmt.Errorf("base case margin and multiple must be positive")
	}

	cal := e.cal
	if in.Calibration != nil {
		cal = *in.Calibration
	}
	unitScale := in.UnitScale
	if unitScale == 0 {
		unitScale = 1
	}

	scenarios := pwerm.GenerateScenarios(in.BaseCase, in.Variations, in.Correlations, cal)
	stats := pwerm.ComputeStatistics(scenarios)
	recs := pwerm.Recommend(scenarios, cal)

	result := &Result{
		DealName:        in.DealName,
		Scenarios:       scenarios,
		Statistics:      stats,
		Distribution:    pwerm.BinDistribution(scenarios, cal.BinCount),
		Convergence:     pwerm.TrackConvergence(scenarios, cal.ConvergenceSteps),
		Recommendations: recs,
	}

	if len(in.Preferences) > 0 {
		breakeven := cal.BreakevenMultiple
		if breakeven == 0 {
			breakeven = pwerm.DefaultCalibration().BreakevenMultiple
		}
		result.Warnings = waterfall.ValidateStack(in.Preferences)
		result.Thresholds = waterfall.KeyThresholds(in.Preferences, in.TotalShares, breakeven)
		result.Payouts = headlinePayouts(recs, in, unitScale)
	}

	result.Memo = report.BuildMemo(in.DealName, stats, recs, result.Thresholds, unitScale)
	return result, nil
}

// headlinePayouts runs the waterfall at the best, most-likely, and worst
// recommended scenarios, deduplicated when the set is small.
func headlinePayouts(recs pwerm.Recommendations, in Input, unitScale float64) []ScenarioPayout {
	var payouts []ScenarioPayout
	seen := map[int]bool{}
	for _, s := range []*pwerm.ScenarioResult{recs.BestCase, recs.MostLikely, recs.WorstCase} {
		if s == nil || seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		exit := s.Outputs.EnterpriseValue * unitScale
		payouts = append(payouts, ScenarioPayout{
			ScenarioID: s.ID,
			Rank:       s.Rank,
			ExitValue:  exit,
			Split:      waterfall.Distribute(exit, in.Preferences, in.CommonShares, in.TotalShares),
		})
	}
	return payouts
}
