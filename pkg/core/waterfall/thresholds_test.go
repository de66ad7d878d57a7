package waterfall

import (
	"testing"
)

func findThreshold(thresholds []KeyThreshold, label string) *KeyThreshold {
	for i := range thresholds {
		if thresholds[i].Label == label {
			return &thresholds[i]
		}
	}
	return nil
}

func TestKeyThresholds(t *testing.T) {
	stack := []LiquidationPreference{
		{Round: "Seed", Amount: 5e6, Type: NonParticipating},
		{Round: "Series A", Amount: 15e6, Type: ParticipatingCapped, Cap: 2.5},
	}

	thresholds := KeyThresholds(stack, 100e6, 1.5)

	if th := findThreshold(thresholds, "Preference stack"); th == nil || th.ExitValue != 20e6 {
		t.Errorf("expected preference stack threshold at 20M, got %+v", th)
	}
	// Conversion indifference: exit * amount/totalShares == amount at
	// exit == totalShares.
	if th := findThreshold(thresholds, "First conversion"); th == nil || th.ExitValue != 100e6 {
		t.Errorf("expected first conversion at 100M, got %+v", th)
	}
	if th := findThreshold(thresholds, "Participation cap"); th == nil || th.ExitValue != 37.5e6 {
		t.Errorf("expected cap point at 37.5M, got %+v", th)
	}
	if th := findThreshold(thresholds, "Common breakeven"); th == nil || th.ExitValue != 30e6 {
		t.Errorf("expected breakeven at 1.5x stack = 30M, got %+v", th)
	}
}

func TestKeyThresholds_NoNonParticipating(t *testing.T) {
	stack := []LiquidationPreference{
		{Round: "Series A", Amount: 10e6, Type: Participating},
	}
	thresholds := KeyThresholds(stack, 100e6, 1.5)
	if findThreshold(thresholds, "First conversion") != nil {
		t.Errorf("no non-participating round, no conversion threshold")
	}
}

func TestKeyThresholds_Empty(t *testing.T) {
	if got := KeyThresholds(nil, 100e6, 1.5); len(got) != 0 {
		t.Errorf("empty stack should yield no thresholds, got %d", len(got))
	}
}
