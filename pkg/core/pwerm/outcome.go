package pwerm

import (
	"math"
)

// evaluateOutcome projects a multi-year cash-flow path from one adjusted
// combination and derives terminal value, enterprise value, IRR and MOIC.
//
// Revenue compounds at the scenario growth rate each year; EBITDA is
// revenue * margin, free cash flow is EBITDA * FCFConversion. Terminal value
// is final-year FCF * exit multiple, and enterprise value is the sum of all
// yearly FCF plus terminal value. With DiscountRate = 0 no present-value
// treatment is applied, matching the original model convention; a positive
// rate discounts each year's FCF and the terminal value.
func evaluateOutcome(c BaseCase, cal Calibration) ScenarioOutputs {
	revenue := c.Revenue
	var fcfTotal, finalFCF float64

	for year := 1; year <= cal.HorizonYears; year++ {
		revenue *= 1 + c.Growth
		fcf := revenue * c.Margin * cal.FCFConversion
		fcfTotal += fcf * discountFactor(cal.DiscountRate, year)
		finalFCF = fcf
	}

	terminal := finalFCF * c.Multiple
	ev := fcfTotal + terminal*discountFactor(cal.DiscountRate, cal.HorizonYears)

	// Initial investment priced at a fixed multiple of entry revenue.
	initial := c.Revenue * cal.EntryRevenueMultiple

	var moic, irr float64
	if initial != 0 {
		moic = ev / initial
	}
	if moic > 0 && cal.HorizonYears > 0 {
		// IRR from the holding-period multiple: (1+irr)^T = MOIC
		irr = math.Pow(moic, 1/float64(cal.HorizonYears)) - 1
	}

	return ScenarioOutputs{
		TerminalValue:   terminal,
		EnterpriseValue: ev,
		IRR:             irr,
		MOIC:            moic,
	}
}

func discountFactor(rate float64, year int) float64 {
	if rate <= 0 {
		return 1
	}
	return 1 / math.Pow(1+rate, float64(year))
}
