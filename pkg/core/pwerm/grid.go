package pwerm

import (
	"math"
	"sort"
)

// GenerateScenarios expands the variation lists into a deterministic grid of
// assumption combinations, applies the correlation adjustments, evaluates each
// combination, and assigns normalized probabilities and ranks.
//
// The grid is a full Cartesian product of the four candidate lists, walked in
// a fixed order (revenue outer, then growth, then margin, then multiple
// innermost) so identical inputs always yield an identical scenario list.
// With u upside + d downside deltas per axis the set has (1+u+d)^4 entries.
func GenerateScenarios(base BaseCase, variations VariationSpec, corr CorrelationCoefficients, cal Calibration) []ScenarioResult {
	cal = cal.normalized()

	revenues := expandMultiplicative(base.Revenue, variations.Revenue)
	growths := expandAdditive(base.Growth, variations.Growth)
	margins := expandAdditive(base.Margin, variations.Margin)
	multiples := expandMultiplicative(base.Multiple, variations.Multiple)

	scenarios := make([]ScenarioResult, 0, len(revenues)*len(growths)*len(margins)*len(multiples))

	id := 0
	for _, rev := range revenues {
		for _, growth := range growths {
			for _, margin := range margins {
				for _, mult := range multiples {
					adjusted := adjustCombination(BaseCase{rev, growth, margin, mult}, base, corr)
					outputs := evaluateOutcome(adjusted, cal)
					scenarios = append(scenarios, ScenarioResult{
						ID:          id,
						Inputs:      adjusted,
						Outputs:     outputs,
						Probability: rawProbability(adjusted, base, cal.DecayRate),
					})
					id++
				}
			}
		}
	}

	normalizeProbabilities(scenarios)
	rankByEnterpriseValue(scenarios)
	return scenarios
}

// expandMultiplicative builds a candidate list from fractional deltas:
// [base, base*(1+up)..., base*(1-down)...].
func expandMultiplicative(base float64, v AxisVariations) []float64 {
	out := make([]float64, 0, 1+len(v.Upside)+len(v.Downside))
	out = append(out, base)
	for _, d := range v.Upside {
		out = append(out, base*(1+d))
	}
	for _, d := range v.Downside {
		out = append(out, base*(1-d))
	}
	return out
}

// expandAdditive builds a candidate list from additive point deltas:
// [base, base+up..., base-down...]. Used for growth and margin.
func expandAdditive(base float64, v AxisVariations) []float64 {
	out := make([]float64, 0, 1+len(v.Upside)+len(v.Downside))
	out = append(out, base)
	for _, d := range v.Upside {
		out = append(out, base+d)
	}
	for _, d := range v.Downside {
		out = append(out, base-d)
	}
	return out
}

// adjustCombination applies the correlation chain in the fixed order
// revenue->growth, growth->margin, margin->multiple. Each step reads the
// already-adjusted prior field, not the raw candidate; reordering the steps
// changes the output. Only above-base legs are adjusted: outcomes better than
// base drag their neighbors, worse-than-base legs pass through unmodified.
func adjustCombination(c, base BaseCase, corr CorrelationCoefficients) BaseCase {
	if c.Revenue > base.Revenue && base.Revenue != 0 {
		c.Growth *= 1 + corr.RevenueGrowth*(c.Revenue/base.Revenue-1)
	}
	if c.Growth > base.Growth {
		c.Margin *= 1 - math.Abs(corr.GrowthMargin)*(c.Growth-base.Growth)
	}
	if c.Margin > base.Margin && base.Margin != 0 {
		c.Multiple *= 1 + corr.MarginMultiple*(c.Margin/base.Margin-1)
	}
	return c
}

// rawProbability assigns likelihood by exponential decay of the Euclidean
// norm of the per-field normalized distances from base. Zero-valued base
// fields contribute zero distance rather than a division error.
func rawProbability(c, base BaseCase, decayRate float64) float64 {
	d := math.Sqrt(
		normalizedDistance(c.Revenue, base.Revenue)+
			normalizedDistance(c.Growth, base.Growth)+
			normalizedDistance(c.Margin, base.Margin)+
			normalizedDistance(c.Multiple, base.Multiple))
	return math.Exp(-decayRate * d)
}

// normalizedDistance returns the squared relative offset of v from base.
func normalizedDistance(v, base float64) float64 {
	if base == 0 {
		return 0
	}
	r := math.Abs(v-base) / math.Abs(base)
	return r * r
}

// normalizeProbabilities rescales raw weights in place to sum to 1.
func normalizeProbabilities(scenarios []ScenarioResult) {
	var total float64
	for i := range scenarios {
		total += scenarios[i].Probability
	}
	if total == 0 {
		return
	}
	for i := range scenarios {
		scenarios[i].Probability /= total
	}
}

// rankByEnterpriseValue orders scenarios by enterprise value descending and
// assigns rank = index+1. Stable sort keeps grid order among exact ties so
// ranking stays reproducible.
func rankByEnterpriseValue(scenarios []ScenarioResult) {
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Outputs.EnterpriseValue > scenarios[j].Outputs.EnterpriseValue
	})
	for i := range scenarios {
		scenarios[i].Rank = i + 1
	}
}
