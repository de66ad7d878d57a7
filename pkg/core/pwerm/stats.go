package pwerm

import (
	"math"
	"sort"
)

// percentileLevels are the reported percentile cut points.
var percentileLevels = []int{5, 10, 25, 50, 75, 90, 95}

// ComputeStatistics derives the weighted distribution summary from a scenario
// set. Probabilities are assumed normalized (GenerateScenarios guarantees
// this). An empty set returns a zero-valued result with an empty percentile
// map so downstream rendering never has to special-case it.
func ComputeStatistics(scenarios []ScenarioResult) SimulationStatistics {
	stats := SimulationStatistics{Percentiles: map[int]float64{}}
	if len(scenarios) == 0 {
		return stats
	}

	// Weighted first moment
	var mean float64
	for i := range scenarios {
		mean += scenarios[i].Probability * scenarios[i].Outputs.EnterpriseValue
	}

	// Weighted central moments
	var m2, m3, m4 float64
	for i := range scenarios {
		d := scenarios[i].Outputs.EnterpriseValue - mean
		p := scenarios[i].Probability
		m2 += p * d * d
		m3 += p * d * d * d
		m4 += p * d * d * d * d
	}
	std := math.Sqrt(m2)

	stats.Mean = mean
	stats.StdDev = std
	if std > 0 {
		stats.Skewness = m3 / (std * std * std)
		stats.Kurtosis = m4/(m2*m2) - 3 // excess kurtosis
	}

	// Percentiles by inverse CDF (nearest rank): sort ascending, walk the
	// cumulative probability, take the first value at or past the cut.
	ordered := make([]ScenarioResult, len(scenarios))
	copy(ordered, scenarios)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Outputs.EnterpriseValue < ordered[j].Outputs.EnterpriseValue
	})

	cumulative := make([]float64, len(ordered))
	var running float64
	for i := range ordered {
		running += ordered[i].Probability
		cumulative[i] = running
	}

	for _, p := range percentileLevels {
		stats.Percentiles[p] = valueAtCumulative(ordered, cumulative, float64(p)/100)
	}
	stats.Median = stats.Percentiles[50]

	// VaR95 is the 5th percentile; CVaR95 the weighted mean of the tail at
	// or below it.
	stats.VaR95 = stats.Percentiles[5]
	var tailMass, tailSum float64
	for i := range ordered {
		if ordered[i].Outputs.EnterpriseValue <= stats.VaR95 {
			tailMass += ordered[i].Probability
			tailSum += ordered[i].Probability * ordered[i].Outputs.EnterpriseValue
		}
	}
	if tailMass > 0 {
		stats.CVaR95 = tailSum / tailMass
	}

	return stats
}

// valueAtCumulative returns the enterprise value of the first scenario whose
// cumulative probability reaches the target.
func valueAtCumulative(ordered []ScenarioResult, cumulative []float64, target float64) float64 {
	for i := range ordered {
		if cumulative[i] >= target {
			return ordered[i].Outputs.EnterpriseValue
		}
	}
	// Float round-off can leave the last cumulative a hair under 1.
	return ordered[len(ordered)-1].Outputs.EnterpriseValue
}
