// Package pwerm implements the probability-weighted exit return engine:
// a deterministic scenario grid over financial assumptions, correlated
// outcome derivation, and return statistics over the weighted distribution.
// All entry points are pure functions; the engine holds no state between runs.
package pwerm

// BaseCase holds the anchor assumptions for a single investment.
// Growth and Margin are fractional (0.30 = 30%).
type BaseCase struct {
	Revenue  float64 `json:"revenue" yaml:"revenue"`   // entry revenue, $M
	Growth   float64 `json:"growth" yaml:"growth"`     // annual revenue growth
	Margin   float64 `json:"margin" yaml:"margin"`     // EBITDA margin
	Multiple float64 `json:"multiple" yaml:"multiple"` // exit FCF multiple
}

// AxisVariations holds the named deltas applied to one base-case field.
// Revenue and Multiple deltas are fractional multipliers; Growth and Margin
// deltas are additive points.
type AxisVariations struct {
	Upside   []float64 `json:"upside" yaml:"upside"`
	Downside []float64 `json:"downside" yaml:"downside"`
}

// VariationSpec holds the per-axis variation lists. Empty lists are valid;
// the axis then contributes only its base value to the grid.
type VariationSpec struct {
	Revenue  AxisVariations `json:"revenue" yaml:"revenue"`
	Growth   AxisVariations `json:"growth" yaml:"growth"`
	Margin   AxisVariations `json:"margin" yaml:"margin"`
	Multiple AxisVariations `json:"multiple" yaml:"multiple"`
}

// CorrelationCoefficients couple adjacent assumption pairs. Applied
// multiplicatively and not bounded here; callers keep them plausible
// (typically within [-1, 1]).
type CorrelationCoefficients struct {
	RevenueGrowth  float64 `json:"revenue_growth" yaml:"revenue_growth"`
	GrowthMargin   float64 `json:"growth_margin" yaml:"growth_margin"`
	MarginMultiple float64 `json:"margin_multiple" yaml:"margin_multiple"`
}

// ScenarioOutputs holds the derived return metrics for one scenario.
type ScenarioOutputs struct {
	TerminalValue   float64 `json:"terminal_value"`
	EnterpriseValue float64 `json:"enterprise_value"`
	IRR             float64 `json:"irr"`
	MOIC            float64 `json:"moic"`
}

// ScenarioResult is one evaluated point of the grid. Immutable once
// computed; the full set is regenerated from scratch on each run.
type ScenarioResult struct {
	ID          int             `json:"id"`
	Inputs      BaseCase        `json:"inputs"` // correlation-adjusted combination
	Outputs     ScenarioOutputs `json:"outputs"`
	Probability float64         `json:"probability"` // normalized, sums to 1 across the set
	Rank        int             `json:"rank"`        // 1 = highest enterprise value
}

// SimulationStatistics summarizes the weighted enterprise-value distribution.
// Derived from a scenario set; recompute whenever the set changes.
type SimulationStatistics struct {
	Mean        float64         `json:"mean"`
	Median      float64         `json:"median"`
	StdDev      float64         `json:"std_dev"`
	Skewness    float64         `json:"skewness"`
	Kurtosis    float64         `json:"kurtosis"` // excess kurtosis
	Percentiles map[int]float64 `json:"percentiles"`
	VaR95       float64         `json:"var95"`
	CVaR95      float64         `json:"cvar95"`
}

// Distribution is a weighted histogram of scenario enterprise values.
type Distribution struct {
	Bins        []float64 `json:"bins"` // bin midpoints
	Frequencies []float64 `json:"frequencies"`
}

// Convergence traces running weighted mean/std over growing prefixes of the
// ranked scenario list. Diagnostic only.
type Convergence struct {
	Iterations []int     `json:"iterations"`
	MeanPath   []float64 `json:"mean_path"`
	StdPath    []float64 `json:"std_path"`
}

// Recommendations extracts the headline scenario subsets for display.
type Recommendations struct {
	BestCase        *ScenarioResult  `json:"best_case"`
	WorstCase       *ScenarioResult  `json:"worst_case"`
	MostLikely      *ScenarioResult  `json:"most_likely"`
	TargetScenarios []ScenarioResult `json:"target_scenarios"` // IRR above target, most probable first
}
