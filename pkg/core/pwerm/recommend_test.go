package pwerm

import (
	"testing"
)

func TestRecommend_Views(t *testing.T) {
	scenarios := []ScenarioResult{
		{ID: 0, Outputs: ScenarioOutputs{EnterpriseValue: 120, IRR: 0.25}, Probability: 0.10},
		{ID: 1, Outputs: ScenarioOutputs{EnterpriseValue: 300, IRR: 0.45}, Probability: 0.05},
		{ID: 2, Outputs: ScenarioOutputs{EnterpriseValue: 80, IRR: 0.05}, Probability: 0.60},
		{ID: 3, Outputs: ScenarioOutputs{EnterpriseValue: 150, IRR: 0.30}, Probability: 0.25},
	}

	recs := Recommend(scenarios, DefaultCalibration())

	if recs.BestCase == nil || recs.BestCase.ID != 1 {
		t.Errorf("best case should be ID 1")
	}
	if recs.WorstCase == nil || recs.WorstCase.ID != 2 {
		t.Errorf("worst case should be ID 2")
	}
	if recs.MostLikely == nil || recs.MostLikely.ID != 2 {
		t.Errorf("most likely should be ID 2")
	}

	// IRR > 0.20 keeps IDs 0, 1, 3; ordered by probability descending.
	wantOrder := []int{3, 0, 1}
	if len(recs.TargetScenarios) != len(wantOrder) {
		t.Fatalf("expected %d target scenarios, got %d", len(wantOrder), len(recs.TargetScenarios))
	}
	for i, id := range wantOrder {
		if recs.TargetScenarios[i].ID != id {
			t.Errorf("target[%d]: expected ID %d, got %d", i, id, recs.TargetScenarios[i].ID)
		}
	}
}

func TestRecommend_TargetListCap(t *testing.T) {
	cal := DefaultCalibration()
	cal.TargetListSize = 2

	scenarios := make([]ScenarioResult, 5)
	for i := range scenarios {
		scenarios[i] = ScenarioResult{
			ID:          i,
			Outputs:     ScenarioOutputs{EnterpriseValue: float64(i), IRR: 0.50},
			Probability: float64(i+1) / 15.0,
		}
	}

	recs := Recommend(scenarios, cal)
	if len(recs.TargetScenarios) != 2 {
		t.Fatalf("expected capped list of 2, got %d", len(recs.TargetScenarios))
	}
	if recs.TargetScenarios[0].ID != 4 || recs.TargetScenarios[1].ID != 3 {
		t.Errorf("expected the two most probable scenarios first")
	}
}

func TestRecommend_Empty(t *testing.T) {
	recs := Recommend(nil, DefaultCalibration())
	if recs.BestCase != nil || recs.WorstCase != nil || recs.MostLikely != nil {
		t.Errorf("empty set should have nil headline scenarios")
	}
	if len(recs.TargetScenarios) != 0 {
		t.Errorf("empty set should have no target scenarios")
	}
}
