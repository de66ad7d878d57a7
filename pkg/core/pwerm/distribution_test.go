package pwerm

import (
	"math"
	"testing"
)

func TestBinDistribution_MassAndClamp(t *testing.T) {
	scenarios := []ScenarioResult{
		{Outputs: ScenarioOutputs{EnterpriseValue: 0}, Probability: 0.25},
		{Outputs: ScenarioOutputs{EnterpriseValue: 50}, Probability: 0.25},
		{Outputs: ScenarioOutputs{EnterpriseValue: 99}, Probability: 0.25},
		{Outputs: ScenarioOutputs{EnterpriseValue: 100}, Probability: 0.25}, // top edge
	}

	dist := BinDistribution(scenarios, 10)
	if len(dist.Bins) != 10 || len(dist.Frequencies) != 10 {
		t.Fatalf("expected 10 bins, got %d/%d", len(dist.Bins), len(dist.Frequencies))
	}

	// Width 10 over [0,100]; the max value lands in the last bin, not past it.
	if dist.Frequencies[9] != 0.5 {
		t.Errorf("expected 0.5 mass in last bin (99 and clamped 100), got %v", dist.Frequencies[9])
	}
	if dist.Frequencies[0] != 0.25 {
		t.Errorf("expected 0.25 mass in first bin, got %v", dist.Frequencies[0])
	}

	// Midpoint labels: bin 0 spans [0,10) -> 5.
	if math.Abs(dist.Bins[0]-5) > 1e-9 {
		t.Errorf("expected first midpoint 5, got %v", dist.Bins[0])
	}

	var mass float64
	for _, f := range dist.Frequencies {
		mass += f
	}
	if math.Abs(mass-1.0) > 1e-9 {
		t.Errorf("histogram should conserve probability mass, got %v", mass)
	}
}

func TestBinDistribution_DegenerateRange(t *testing.T) {
	// All scenarios share one value: everything collapses into bin 0.
	scenarios := []ScenarioResult{
		{Outputs: ScenarioOutputs{EnterpriseValue: 7}, Probability: 0.6},
		{Outputs: ScenarioOutputs{EnterpriseValue: 7}, Probability: 0.4},
	}
	dist := BinDistribution(scenarios, 5)
	if math.Abs(dist.Frequencies[0]-1.0) > 1e-9 {
		t.Errorf("expected all mass in bin 0, got %v", dist.Frequencies[0])
	}
}

func TestBinDistribution_Empty(t *testing.T) {
	dist := BinDistribution(nil, 20)
	if len(dist.Bins) != 0 || len(dist.Frequencies) != 0 {
		t.Errorf("empty input should yield empty histogram")
	}
}
