package waterfall

import (
	"fmt"
)

// KeyThresholds derives the named exit values at which the waterfall changes
// regime: the preference stack size, the first non-participating round's
// conversion indifference point, the payout cap of each capped round, and a
// heuristic common-stock breakeven at breakevenMultiple times the stack.
//
// The breakeven multiple is a calibration judgment call, not a derived
// quantity; it lives in the engine calibration rather than here.
func KeyThresholds(stack []LiquidationPreference, totalShares, breakevenMultiple float64) []KeyThreshold {
	thresholds := []KeyThreshold{}
	if len(stack) == 0 {
		return thresholds
	}

	var stackSum float64
	for _, p := range stack {
		stackSum += p.Amount
	}
	thresholds = append(thresholds, KeyThreshold{
		ExitValue:   stackSum,
		Label:       "Preference stack",
		Description: "Exit proceeds fully consumed by liquidation preferences",
	})

	// Conversion indifference for the first (most senior) non-participating
	// round: exitValue * amount/totalShares == amount, i.e. the as-converted
	// value per preference dollar reaches par at exitValue == totalShares.
	if totalShares > 0 {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].Type == NonParticipating {
				thresholds = append(thresholds, KeyThreshold{
					ExitValue:   totalShares,
					Label:       "First conversion",
					Description: fmt.Sprintf("%s preference converts to common above this exit", stack[i].Round),
				})
				break
			}
		}
	}

	for _, p := range stack {
		if p.Type == ParticipatingCapped && p.Cap > 0 {
			thresholds = append(thresholds, KeyThreshold{
				ExitValue:   p.Amount * p.Cap,
				Label:       "Participation cap",
				Description: fmt.Sprintf("%s receipts capped at %.1fx face amount", p.Round, p.Cap),
			})
		}
	}

	thresholds = append(thresholds, KeyThreshold{
		ExitValue:   stackSum * breakevenMultiple,
		Label:       "Common breakeven",
		Description: "Heuristic exit above which common stock participates meaningfully",
	})

	return thresholds
}
