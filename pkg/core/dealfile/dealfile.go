// Package dealfile loads deal assumption documents for the CLI and batch
// runner. Files are HJSON so analysts can keep comments and trailing commas
// in their assumption sets.
package dealfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"venture_analytics/pkg/core/pwerm"
	"venture_analytics/pkg/core/waterfall"
)

// Deal is one investment's full engine input: base-case assumptions,
// variation grid, correlations, and an optional preference stack.
type Deal struct {
	Name         string                            `json:"name"`
	BaseCase     pwerm.BaseCase                    `json:"base_case"`
	Variations   pwerm.VariationSpec               `json:"variations"`
	Correlations pwerm.CorrelationCoefficients     `json:"correlations"`
	Preferences  []waterfall.LiquidationPreference `json:"preferences,omitempty"`
	CommonShares float64                           `json:"common_shares,omitempty"`
	TotalShares  float64                           `json:"total_shares,omitempty"`

	// UnitScale converts engine enterprise values into the currency unit of
	// the preference amounts (e.g. 1e6 when assumptions are in $M and the
	// stack is in dollars). Defaults to 1.
	UnitScale float64 `json:"unit_scale,omitempty"`
}

// Load parses a single deal file.
func Load(path string) (*Deal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deal file: %w", err)
	}
	deal := &Deal{}
	if err := hjson.Unmarshal(data, deal); err != nil {
		return nil, fmt.Errorf("parse deal file %s: %w", path, err)
	}
	if deal.Name == "" {
		deal.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := deal.validate(); err != nil {
		return nil, fmt.Errorf("deal file %s: %w", path, err)
	}
	return deal, nil
}

// LoadDir parses every .hjson/.json deal file in a directory. Files that fail
// to parse are skipped with a warning so one bad deal cannot sink a batch.
func LoadDir(dir string) ([]*Deal, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deal dir: %w", err)
	}
	var deals []*Deal
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".hjson" && ext != ".json" {
			continue
		}
		deal, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Printf("[WARNING] skipping deal file %s: %v\n", e.Name(), err)
			continue
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

func (d *Deal) validate() error {
	if d.UnitScale == 0 {
		d.UnitScale = 1
	}
	if d.BaseCase.Revenue <= 0 {
		return fmt.Errorf("base_case.revenue must be positive")
	}
	if d.BaseCase.Margin <= 0 || d.BaseCase.Multiple <= 0 {
		return fmt.Errorf("base_case margin and multiple must be positive")
	}
	if len(d.Preferences) > 0 && d.TotalShares <= d.CommonShares {
		return fmt.Errorf("total_shares must exceed common_shares when a preference stack is present")
	}
	return nil
}

// Warnings reports configuration smells that do not block a run, e.g. a
// participating-capped round with no cap (the waterfall then skips clamping).
func (d *Deal) Warnings() []string {
	return waterfall.ValidateStack(d.Preferences)
}
