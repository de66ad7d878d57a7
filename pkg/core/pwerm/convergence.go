package pwerm

import (
	"math"
)

// TrackConvergence walks growing prefixes of the ranked scenario list and
// recomputes the weighted mean/std over each prefix with locally renormalized
// weights. The paths show how quickly the summary stabilizes as scenarios are
// included; they are diagnostic and carry no correctness weight beyond
// monotone prefix sizes and non-negative std.
func TrackConvergence(scenarios []ScenarioResult, steps int) Convergence {
	if steps <= 0 {
		steps = DefaultCalibration().ConvergenceSteps
	}
	conv := Convergence{}
	n := len(scenarios)
	if n == 0 {
		return conv
	}

	stride := n / steps
	if stride < 1 {
		stride = 1
	}

	for size := stride; size <= n; size += stride {
		mean, std := prefixMoments(scenarios[:size])
		conv.Iterations = append(conv.Iterations, size)
		conv.MeanPath = append(conv.MeanPath, mean)
		conv.StdPath = append(conv.StdPath, std)
	}
	// Make sure the full set closes the path even when stride doesn't divide n.
	if last := len(conv.Iterations); last == 0 || conv.Iterations[last-1] != n {
		mean, std := prefixMoments(scenarios)
		conv.Iterations = append(conv.Iterations, n)
		conv.MeanPath = append(conv.MeanPath, mean)
		conv.StdPath = append(conv.StdPath, std)
	}
	return conv
}

// prefixMoments computes the weighted mean/std of a prefix with its
// probabilities renormalized to sum to 1 over just that prefix.
func prefixMoments(prefix []ScenarioResult) (float64, float64) {
	var mass float64
	for i := range prefix {
		mass += prefix[i].Probability
	}
	if mass == 0 {
		return 0, 0
	}

	var mean float64
	for i := range prefix {
		mean += (prefix[i].Probability / mass) * prefix[i].Outputs.EnterpriseValue
	}
	var variance float64
	for i := range prefix {
		d := prefix[i].Outputs.EnterpriseValue - mean
		variance += (prefix[i].Probability / mass) * d * d
	}
	return mean, math.Sqrt(variance)
}
