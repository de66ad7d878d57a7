package pwerm

import (
	"math"
	"testing"
)

func TestGenerateScenarios_GridCount(t *testing.T) {
	base := BaseCase{Revenue: 10, Growth: 0.30, Margin: 0.20, Multiple: 5}
	// 2 upside + 1 downside per axis -> (1+2+1)^4 = 256
	axis := AxisVariations{Upside: []float64{0.10, 0.20}, Downside: []float64{0.10}}
	variations := VariationSpec{Revenue: axis, Growth: axis, Margin: axis, Multiple: axis}

	scenarios := GenerateScenarios(base, variations, CorrelationCoefficients{}, DefaultCalibration())
	if len(scenarios) != 256 {
		t.Fatalf("expected 256 scenarios, got %d", len(scenarios))
	}
}

func TestGenerateScenarios_SingleScenarioDeterministic(t *testing.T) {
	base := BaseCase{Revenue: 10, Growth: 0.30, Margin: 0.20, Multiple: 5}
	scenarios := GenerateScenarios(base, VariationSpec{}, CorrelationCoefficients{}, DefaultCalibration())

	if len(scenarios) != 1 {
		t.Fatalf("expected exactly 1 scenario, got %d", len(scenarios))
	}
	s := scenarios[0]
	if math.Abs(s.Probability-1.0) > 1e-12 {
		t.Errorf("expected probability 1.0, got %v", s.Probability)
	}
	if s.Rank != 1 {
		t.Errorf("expected rank 1, got %d", s.Rank)
	}

	// 5-year projection by hand, FCF = revenue * margin * 0.70:
	// Revenues: 13, 16.9, 21.97, 28.561, 37.1293
	// FCFs:     1.82, 2.366, 3.0758, 3.99854, 5.198102 -> sum 16.458442
	// Terminal: 5.198102 * 5 = 25.99051
	// EV: 16.458442 + 25.99051 = 42.448952
	wantEV := 42.448952
	if math.Abs(s.Outputs.EnterpriseValue-wantEV) > 1e-6 {
		t.Errorf("expected EV %.6f, got %.6f", wantEV, s.Outputs.EnterpriseValue)
	}
	if math.Abs(s.Outputs.TerminalValue-25.99051) > 1e-6 {
		t.Errorf("expected terminal 25.99051, got %.6f", s.Outputs.TerminalValue)
	}

	// Initial investment = 10 * 5 = 50 -> MOIC = 42.448952 / 50
	wantMOIC := wantEV / 50
	if math.Abs(s.Outputs.MOIC-wantMOIC) > 1e-9 {
		t.Errorf("expected MOIC %.6f, got %.6f", wantMOIC, s.Outputs.MOIC)
	}
	wantIRR := math.Pow(wantMOIC, 0.2) - 1
	if math.Abs(s.Outputs.IRR-wantIRR) > 1e-9 {
		t.Errorf("expected IRR %.6f, got %.6f", wantIRR, s.Outputs.IRR)
	}
}

func TestGenerateScenarios_ProbabilitiesSumToOne(t *testing.T) {
	base := BaseCase{Revenue: 25, Growth: 0.40, Margin: 0.15, Multiple: 8}
	variations := VariationSpec{
		Revenue:  AxisVariations{Upside: []float64{0.25}, Downside: []float64{0.20, 0.40}},
		Growth:   AxisVariations{Upside: []float64{0.10}, Downside: []float64{0.15}},
		Margin:   AxisVariations{Upside: []float64{0.05}, Downside: []float64{0.05, 0.10}},
		Multiple: AxisVariations{Upside: []float64{0.30}, Downside: []float64{0.25}},
	}
	corr := CorrelationCoefficients{RevenueGrowth: 0.5, GrowthMargin: 0.3, MarginMultiple: 0.4}

	scenarios := GenerateScenarios(base, variations, corr, DefaultCalibration())

	var sum float64
	for _, s := range scenarios {
		sum += s.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities should sum to 1, got %.12f", sum)
	}

	// Ranking: descending enterprise value, ranks 1..n.
	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].Outputs.EnterpriseValue > scenarios[i-1].Outputs.EnterpriseValue {
			t.Fatalf("scenario %d out of rank order", i)
		}
		if scenarios[i].Rank != scenarios[i-1].Rank+1 {
			t.Fatalf("ranks not sequential at %d", i)
		}
	}
}

func TestAdjustCombination_OrderAndAsymmetry(t *testing.T) {
	base := BaseCase{Revenue: 100, Growth: 0.20, Margin: 0.30, Multiple: 8}
	corr := CorrelationCoefficients{RevenueGrowth: 0.5, GrowthMargin: 0.5, MarginMultiple: 0.5}

	// Revenue +20%: growth = 0.20 * (1 + 0.5*0.2) = 0.22
	// Adjusted growth now above base: margin = 0.30 * (1 - 0.5*0.02) = 0.297
	// Margin fell below base, so the multiple stays untouched.
	got := adjustCombination(BaseCase{Revenue: 120, Growth: 0.20, Margin: 0.30, Multiple: 8}, base, corr)
	if math.Abs(got.Growth-0.22) > 1e-12 {
		t.Errorf("expected adjusted growth 0.22, got %v", got.Growth)
	}
	if math.Abs(got.Margin-0.297) > 1e-12 {
		t.Errorf("expected adjusted margin 0.297, got %v", got.Margin)
	}
	if got.Multiple != 8 {
		t.Errorf("multiple should be unchanged, got %v", got.Multiple)
	}

	// Worse-than-base legs pass through unmodified.
	down := adjustCombination(BaseCase{Revenue: 80, Growth: 0.20, Margin: 0.30, Multiple: 8}, base, corr)
	if down != (BaseCase{Revenue: 80, Growth: 0.20, Margin: 0.30, Multiple: 8}) {
		t.Errorf("downside combination should be unadjusted, got %+v", down)
	}
}

func TestGenerateScenarios_ZeroBaseGrowth(t *testing.T) {
	// Degenerate growth denominator must contribute zero distance, not NaN.
	base := BaseCase{Revenue: 10, Growth: 0, Margin: 0.20, Multiple: 5}
	variations := VariationSpec{
		Growth: AxisVariations{Upside: []float64{0.05}, Downside: []float64{0.05}},
	}

	scenarios := GenerateScenarios(base, variations, CorrelationCoefficients{}, DefaultCalibration())
	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}
	var sum float64
	for _, s := range scenarios {
		if math.IsNaN(s.Probability) || math.IsInf(s.Probability, 0) {
			t.Fatalf("degenerate probability: %v", s.Probability)
		}
		sum += s.Probability
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities should sum to 1, got %v", sum)
	}
}

func TestEvaluateOutcome_DiscountRate(t *testing.T) {
	cal := DefaultCalibration()
	cal.DiscountRate = 0.10

	c := BaseCase{Revenue: 10, Growth: 0.30, Margin: 0.20, Multiple: 5}
	discounted := evaluateOutcome(c, cal)
	undiscounted := evaluateOutcome(c, DefaultCalibration())

	if discounted.EnterpriseValue >= undiscounted.EnterpriseValue {
		t.Errorf("discounted EV %.4f should be below undiscounted %.4f",
			discounted.EnterpriseValue, undiscounted.EnterpriseValue)
	}
	// Terminal value itself is a year-5 figure; only its present value changes.
	if math.Abs(discounted.TerminalValue-undiscounted.TerminalValue) > 1e-9 {
		t.Errorf("terminal value should not depend on the discount rate")
	}
}
