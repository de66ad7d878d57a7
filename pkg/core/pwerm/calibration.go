package pwerm

// Calibration collects the judgment-call constants of the engine. These are
// calibration parameters open to revision, not derived quantities; the
// defaults reproduce the model as originally tuned.
type Calibration struct {
	// DecayRate controls how fast scenario likelihood falls off with
	// normalized distance from the base case: raw = exp(-DecayRate * d).
	DecayRate float64 `json:"decay_rate" yaml:"decay_rate"`

	// FCFConversion is the fixed EBITDA -> free cash flow conversion factor.
	FCFConversion float64 `json:"fcf_conversion" yaml:"fcf_conversion"`

	// HorizonYears is the projection length of the cash-flow path.
	HorizonYears int `json:"horizon_years" yaml:"horizon_years"`

	// EntryRevenueMultiple prices the initial investment as a multiple of
	// entry revenue.
	EntryRevenueMultiple float64 `json:"entry_revenue_multiple" yaml:"entry_revenue_multiple"`

	// DiscountRate, when positive, discounts projected cash flows and the
	// terminal value to present value. Zero keeps the original undiscounted
	// convention.
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`

	// TargetIRR is the hurdle used by the recommendation selector.
	TargetIRR float64 `json:"target_irr" yaml:"target_irr"`

	// TargetListSize caps the meets-target recommendation list.
	TargetListSize int `json:"target_list_size" yaml:"target_list_size"`

	// BinCount is the default histogram resolution.
	BinCount int `json:"bin_count" yaml:"bin_count"`

	// ConvergenceSteps is the approximate number of prefix sizes walked by
	// the convergence tracker.
	ConvergenceSteps int `json:"convergence_steps" yaml:"convergence_steps"`

	// BreakevenMultiple scales the preference stack into the heuristic
	// common-breakeven threshold reported by the waterfall.
	BreakevenMultiple float64 `json:"breakeven_multiple" yaml:"breakeven_multiple"`
}

// DefaultCalibration returns the engine's tuned defaults.
func DefaultCalibration() Calibration {
	return Calibration{
		DecayRate:            2.0,
		FCFConversion:        0.70,
		HorizonYears:         5,
		EntryRevenueMultiple: 5.0,
		DiscountRate:         0.0,
		TargetIRR:            0.20,
		TargetListSize:       10,
		BinCount:             20,
		ConvergenceSteps:     100,
		BreakevenMultiple:    1.5,
	}
}

// normalized fills zero-valued fields with defaults so a partially specified
// calibration (e.g. from a config file) still produces a working engine.
func (c Calibration) normalized() Calibration {
	def := DefaultCalibration()
	if c.DecayRate == 0 {
		c.DecayRate = def.DecayRate
	}
	if c.FCFConversion == 0 {
		c.FCFConversion = def.FCFConversion
	}
	if c.HorizonYears == 0 {
		c.HorizonYears = def.HorizonYears
	}
	if c.EntryRevenueMultiple == 0 {
		c.EntryRevenueMultiple = def.EntryRevenueMultiple
	}
	if c.TargetIRR == 0 {
		c.TargetIRR = def.TargetIRR
	}
	if c.TargetListSize == 0 {
		c.TargetListSize = def.TargetListSize
	}
	if c.BinCount == 0 {
		c.BinCount = def.BinCount
	}
	if c.ConvergenceSteps == 0 {
		c.ConvergenceSteps = def.ConvergenceSteps
	}
	if c.BreakevenMultiple == 0 {
		c.BreakevenMultiple = def.BreakevenMultiple
	}
	return c
}
