// Package report renders an analysis run as a markdown investment memo for
// the UI and CLI. Core numbers stay float64 end to end; decimal rounding is
// applied only at the formatting boundary.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"venture_analytics/pkg/core/pwerm"
	"venture_analytics/pkg/core/waterfall"
)

// FormatUSD renders a dollar figure with a magnitude suffix for display.
func FormatUSD(v float64) string {
	d := decimal.NewFromFloat(v)
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000_000_000)).Round(2).String() + "B"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000_000)).Round(2).String() + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000)).Round(1).String() + "k"
	default:
		return "$" + d.Round(2).String()
	}
}

// FormatPct renders a fractional rate as a percentage.
func FormatPct(v float64) string {
	return decimal.NewFromFloat(v * 100).Round(1).String() + "%"
}

// BuildMemo assembles the markdown memo for one analysis run. unitScale
// converts engine enterprise values into dollars for display; thresholds may
// be nil when no preference stack was supplied.
func BuildMemo(dealName string, stats pwerm.SimulationStatistics, recs pwerm.Recommendations,
	thresholds []waterfall.KeyThreshold, unitScale float64) string {

	if unitScale == 0 {
		unitScale = 1
	}
	usd := func(v float64) string { return FormatUSD(v * unitScale) }

	var b strings.Builder
	fmt.Fprintf(&b, "# Exit Return Analysis — %s\n\n", dealName)

	b.WriteString("## Weighted Outcome Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Expected enterprise value | %s |\n", usd(stats.Mean))
	fmt.Fprintf(&b, "| Median | %s |\n", usd(stats.Median))
	fmt.Fprintf(&b, "| Std deviation | %s |\n", usd(stats.StdDev))
	fmt.Fprintf(&b, "| Skewness | %.3f |\n", stats.Skewness)
	fmt.Fprintf(&b, "| Excess kurtosis | %.3f |\n", stats.Kurtosis)
	fmt.Fprintf(&b, "| VaR (95%%) | %s |\n", usd(stats.VaR95))
	fmt.Fprintf(&b, "| CVaR (95%%) | %s |\n\n", usd(stats.CVaR95))

	if len(stats.Percentiles) > 0 {
		b.WriteString("## Percentiles\n\n| Percentile | Enterprise Value |\n|---|---|\n")
		for _, p := range []int{5, 10, 25, 50, 75, 90, 95} {
			if v, ok := stats.Percentiles[p]; ok {
				fmt.Fprintf(&b, "| p%d | %s |\n", p, usd(v))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Scenario Highlights\n\n")
	writeScenario := func(label string, s *pwerm.ScenarioResult) {
		if s == nil {
			return
		}
		fmt.Fprintf(&b, "- **%s**: EV %s, MOIC %.2fx, IRR %s (probability %s)\n",
			label, usd(s.Outputs.EnterpriseValue), s.Outputs.MOIC, FormatPct(s.Outputs.IRR), FormatPct(s.Probability))
	}
	writeScenario("Best case", recs.BestCase)
	writeScenario("Most likely", recs.MostLikely)
	writeScenario("Worst case", recs.WorstCase)
	if n := len(recs.TargetScenarios); n > 0 {
		fmt.Fprintf(&b, "- %d scenario(s) clear the target return hurdle\n", n)
	}
	b.WriteString("\n")

	if len(thresholds) > 0 {
		b.WriteString("## Waterfall Thresholds\n\n| Exit Value | Regime Change |\n|---|---|\n")
		for _, th := range thresholds {
			fmt.Fprintf(&b, "| %s | %s — %s |\n", FormatUSD(th.ExitValue), th.Label, th.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ValidateMarkdown checks that the memo parses cleanly. Goldmark is very
// permissive, so this is a smoke check against broken generation.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	return parser.Parse(reader) != nil
}
