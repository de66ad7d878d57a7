// Package waterfall allocates exit proceeds across a seniority-ordered stack
// of liquidation preferences down to common stock, and derives the named exit
// thresholds where the split changes regime.
package waterfall

// PreferenceType selects the payout behavior of a preferred round.
type PreferenceType string

const (
	NonParticipating    PreferenceType = "non-participating"
	Participating       PreferenceType = "participating"
	ParticipatingCapped PreferenceType = "participating-capped"
)

// LiquidationPreference describes one preferred round. The stack is ordered
// by round age: the last-added round is the most senior and is paid first.
type LiquidationPreference struct {
	Round  string         `json:"round" yaml:"round"`
	Amount float64        `json:"amount" yaml:"amount"` // liquidation face value, $
	Type   PreferenceType `json:"type" yaml:"type"`
	Cap    float64        `json:"cap,omitempty" yaml:"cap"` // payout cap multiple, participating-capped only

	// ConversionThreshold is carried for round documentation but does not
	// enter the split computation; conversion is decided from proceeds.
	ConversionThreshold float64 `json:"conversion_threshold,omitempty" yaml:"conversion_threshold"`
}

// DistributionSplit is the three-way allocation of one exit value. The parts
// always sum back to the exit value used to compute them.
type DistributionSplit struct {
	NonParticipating float64 `json:"non_participating"`
	Participating    float64 `json:"participating"`
	Common           float64 `json:"common"`
	Total            float64 `json:"total"`
}

// KeyThreshold names an exit value at which the waterfall changes behavior.
// Reporting artifact only; not consumed by the split itself.
type KeyThreshold struct {
	ExitValue   float64 `json:"exit_value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}
