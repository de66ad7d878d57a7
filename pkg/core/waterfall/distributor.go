package waterfall

// Distribute splits exitValue across the preference stack and common stock.
// totalShares includes all preferred-as-converted shares; commonShares is
// carried for ownership context and does not enter the split directly.
//
// Three phases, preferences taken in reverse stack order (most senior first):
//
//  1. Preference payouts. A non-participating round first tests conversion:
//     if its as-converted common value exceeds its face amount, it takes
//     nothing here and is paid through the common remainder instead.
//     Participating rounds take min(amount, remaining) unconditionally.
//  2. Participation. Remaining proceeds are shared pro rata with every
//     participating round; capped rounds are clamped so total receipts never
//     exceed amount * cap.
//  3. Common. Whatever is left after phases 1 and 2.
//
// The split is a total function: negative exit values, empty stacks, zero
// share counts and missing caps all produce a well-defined result.
func Distribute(exitValue float64, stack []LiquidationPreference, commonShares, totalShares float64) DistributionSplit {
	if exitValue <= 0 {
		return DistributionSplit{}
	}
	if len(stack) == 0 {
		return DistributionSplit{Common: exitValue, Total: exitValue}
	}

	var nonPart, part float64
	remaining := exitValue
	paid := make([]float64, len(stack))

	// Phase 1: preferences, most senior (last added) first.
	for i := len(stack) - 1; i >= 0 && remaining > 0; i-- {
		p := stack[i]
		switch p.Type {
		case NonParticipating:
			// Conversion test: value as common at this exit vs. face amount.
			asCommon := 0.0
			if totalShares > 0 {
				asCommon = exitValue * (p.Amount / totalShares)
			}
			if asCommon > p.Amount {
				continue // converts; collected via the common remainder
			}
			pay := min(p.Amount, remaining)
			nonPart += pay
			remaining -= pay
		default:
			// Participating and participating-capped take the preference
			// unconditionally; no conversion test.
			pay := min(p.Amount, remaining)
			part += pay
			paid[i] = pay
			remaining -= pay
		}
	}

	// Phase 2: pro-rata participation in what is left. Shares are computed
	// from the same remaining snapshot for every round; the running residual
	// only guards against handing out more than what is left.
	if remaining > 0 && totalShares > 0 {
		residual := remaining
		for i := len(stack) - 1; i >= 0 && residual > 0; i-- {
			p := stack[i]
			if p.Type != Participating && p.Type != ParticipatingCapped {
				continue
			}
			share := remaining * (p.Amount / totalShares)
			if p.Type == ParticipatingCapped && p.Cap > 0 {
				// Clamp total receipts (phase 1 + participation) to the cap.
				if headroom := p.Amount*p.Cap - paid[i]; share > headroom {
					share = max(headroom, 0)
				}
			}
			if share > residual {
				share = residual
			}
			part += share
			residual -= share
		}
	}

	// Phase 3: common absorbs the rest, including converted preferences.
	common := exitValue - nonPart - part
	if common < 0 {
		common = 0
	}

	return DistributionSplit{
		NonParticipating: nonPart,
		Participating:    part,
		Common:           common,
		Total:            nonPart + part + common,
	}
}
