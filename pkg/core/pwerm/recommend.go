package pwerm

import (
	"sort"
)

// Recommend extracts the best-case, worst-case, most-probable, and
// meets-target scenario views from a generated set. Pure derived views; the
// slice is not modified.
func Recommend(scenarios []ScenarioResult, cal Calibration) Recommendations {
	cal = cal.normalized()
	recs := Recommendations{TargetScenarios: []ScenarioResult{}}
	if len(scenarios) == 0 {
		return recs
	}

	best, worst, likely := 0, 0, 0
	for i := range scenarios {
		if scenarios[i].Outputs.EnterpriseValue > scenarios[best].Outputs.EnterpriseValue {
			best = i
		}
		if scenarios[i].Outputs.EnterpriseValue < scenarios[worst].Outputs.EnterpriseValue {
			worst = i
		}
		if scenarios[i].Probability > scenarios[likely].Probability {
			likely = i
		}
	}
	recs.BestCase = &scenarios[best]
	recs.WorstCase = &scenarios[worst]
	recs.MostLikely = &scenarios[likely]

	for i := range scenarios {
		if scenarios[i].Outputs.IRR > cal.TargetIRR {
			recs.TargetScenarios = append(recs.TargetScenarios, scenarios[i])
		}
	}
	sort.SliceStable(recs.TargetScenarios, func(i, j int) bool {
		return recs.TargetScenarios[i].Probability > recs.TargetScenarios[j].Probability
	})
	if len(recs.TargetScenarios) > cal.TargetListSize {
		recs.TargetScenarios = recs.TargetScenarios[:cal.TargetListSize]
	}
	return recs
}
