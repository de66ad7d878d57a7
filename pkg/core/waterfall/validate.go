package waterfall

import (
	"fmt"
)

// ValidateStack reports configuration smells in a preference stack. None of
// these block a distribution (the split stays a total function); they are
// surfaced so callers don't silently run with a half-specified stack.
func ValidateStack(stack []LiquidationPreference) []string {
	var warnings []string
	for _, p := range stack {
		switch p.Type {
		case NonParticipating, Participating:
		case ParticipatingCapped:
			if p.Cap <= 0 {
				warnings = append(warnings,
					fmt.Sprintf("round %s is participating-capped but has no cap; clamping disabled", p.Round))
			}
		default:
			warnings = append(warnings,
				fmt.Sprintf("round %s has unknown preference type %q; treated as participating", p.Round, p.Type))
		}
		if p.Amount <= 0 {
			warnings = append(warnings, fmt.Sprintf("round %s has non-positive preference amount", p.Round))
		}
	}
	return warnings
}
