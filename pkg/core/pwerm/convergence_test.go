package pwerm

import (
	"math"
	"testing"
)

func TestTrackConvergence_PathsApproachFullMean(t *testing.T) {
	base := BaseCase{Revenue: 20, Growth: 0.35, Margin: 0.18, Multiple: 6}
	axis := AxisVariations{Upside: []float64{0.10, 0.25}, Downside: []float64{0.10, 0.25}}
	variations := VariationSpec{Revenue: axis, Growth: axis, Margin: axis, Multiple: axis}

	scenarios := GenerateScenarios(base, variations, CorrelationCoefficients{RevenueGrowth: 0.4}, DefaultCalibration())
	conv := TrackConvergence(scenarios, 100)

	if len(conv.Iterations) == 0 {
		t.Fatal("expected a non-empty convergence path")
	}
	if len(conv.MeanPath) != len(conv.Iterations) || len(conv.StdPath) != len(conv.Iterations) {
		t.Fatalf("path lengths disagree: %d/%d/%d", len(conv.Iterations), len(conv.MeanPath), len(conv.StdPath))
	}

	for i := range conv.Iterations {
		if i > 0 && conv.Iterations[i] <= conv.Iterations[i-1] {
			t.Fatalf("prefix sizes must strictly increase, step %d", i)
		}
		if conv.StdPath[i] < 0 || math.IsNaN(conv.StdPath[i]) {
			t.Fatalf("std must be non-negative, got %v at step %d", conv.StdPath[i], i)
		}
	}

	// The last prefix is the full set, so the path must land on the full
	// weighted mean exactly.
	last := len(conv.Iterations) - 1
	if conv.Iterations[last] != len(scenarios) {
		t.Errorf("final prefix should cover all %d scenarios, got %d", len(scenarios), conv.Iterations[last])
	}
	full := ComputeStatistics(scenarios)
	if math.Abs(conv.MeanPath[last]-full.Mean) > 1e-9 {
		t.Errorf("final mean %v should equal full-set mean %v", conv.MeanPath[last], full.Mean)
	}
	if math.Abs(conv.StdPath[last]-full.StdDev) > 1e-9 {
		t.Errorf("final std %v should equal full-set std %v", conv.StdPath[last], full.StdDev)
	}
}

func TestTrackConvergence_SmallSet(t *testing.T) {
	// Fewer scenarios than steps: stride clamps to 1, one entry per prefix.
	conv := TrackConvergence(threeScenarios(), 100)
	if len(conv.Iterations) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(conv.Iterations))
	}
	// First prefix is a single scenario with locally renormalized weight 1.
	if conv.MeanPath[0] != 100 || conv.StdPath[0] != 0 {
		t.Errorf("expected first step mean 100 / std 0, got %v / %v", conv.MeanPath[0], conv.StdPath[0])
	}
}

func TestTrackConvergence_Empty(t *testing.T) {
	conv := TrackConvergence(nil, 50)
	if len(conv.Iterations) != 0 {
		t.Errorf("empty set should yield an empty path")
	}
}
