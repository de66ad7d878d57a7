package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"venture_analytics/pkg/core/analysis"
	"venture_analytics/pkg/core/config"
	"venture_analytics/pkg/core/dealfile"
	"venture_analytics/pkg/core/pwerm"
	"venture_analytics/pkg/core/report"
	"venture_analytics/pkg/core/waterfall"
)

func main() {
	godotenv.Load()

	dealPath := flag.String("deal", "", "path to a deal file (HJSON); omit for the built-in sample")
	configPath := flag.String("config", "config/engine.yaml", "path to engine config")
	showMemo := flag.Bool("memo", false, "print the markdown memo instead of the table view")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to load config: %v\n", err)
		os.Exit(1)
	}

	input := sampleInput()
	if *dealPath != "" {
		deal, err := dealfile.Load(*dealPath)
		if err != nil {
			fmt.Printf("[FATAL] %v\n", err)
			os.Exit(1)
		}
		input = analysis.Input{
			DealName:     deal.Name,
			BaseCase:     deal.BaseCase,
			Variations:   deal.Variations,
			Correlations: deal.Correlations,
			Preferences:  deal.Preferences,
			CommonShares: deal.CommonShares,
			TotalShares:  deal.TotalShares,
			UnitScale:    deal.UnitScale,
		}
		for _, warning := range deal.Warnings() {
			fmt.Printf("[WARNING] %s\n", warning)
		}
	}

	engine := analysis.NewEngine(cfg.Engine)
	result, err := engine.Run(input)
	if err != nil {
		fmt.Printf("[FATAL] Analysis failed: %v\n", err)
		os.Exit(1)
	}

	if *showMemo {
		fmt.Println(result.Memo)
		return
	}
	printSummary(result, input)
}

func printSummary(result *analysis.Result, input analysis.Input) {
	scale := input.UnitScale
	if scale == 0 {
		scale = 1
	}
	usd := func(v float64) string { return report.FormatUSD(v * scale) }

	fmt.Printf("\n=== %s — %d scenarios ===\n\n", result.DealName, len(result.Scenarios))
	fmt.Printf("Expected EV:   %s\n", usd(result.Statistics.Mean))
	fmt.Printf("Median EV:     %s\n", usd(result.Statistics.Median))
	fmt.Printf("Std deviation: %s\n", usd(result.Statistics.StdDev))
	fmt.Printf("VaR95 / CVaR95: %s / %s\n", usd(result.Statistics.VaR95), usd(result.Statistics.CVaR95))

	fmt.Println("\nPercentiles:")
	for _, p := range []int{5, 25, 50, 75, 95} {
		fmt.Printf("  p%-3d %s\n", p, usd(result.Statistics.Percentiles[p]))
	}

	if best := result.Recommendations.BestCase; best != nil {
		fmt.Printf("\nBest case:   EV %s (MOIC %.2fx, IRR %s)\n",
			usd(best.Outputs.EnterpriseValue), best.Outputs.MOIC, report.FormatPct(best.Outputs.IRR))
	}
	if likely := result.Recommendations.MostLikely; likely != nil {
		fmt.Printf("Most likely: EV %s (probability %s)\n",
			usd(likely.Outputs.EnterpriseValue), report.FormatPct(likely.Probability))
	}
	if worst := result.Recommendations.WorstCase; worst != nil {
		fmt.Printf("Worst case:  EV %s (MOIC %.2fx)\n", usd(worst.Outputs.EnterpriseValue), worst.Outputs.MOIC)
	}
	fmt.Printf("Target-return scenarios: %d\n", len(result.Recommendations.TargetScenarios))

	if len(result.Payouts) > 0 {
		fmt.Println("\nWaterfall at headline scenarios:")
		for _, p := range result.Payouts {
			fmt.Printf("  exit %-10s -> preferred %s, common %s\n",
				report.FormatUSD(p.ExitValue),
				report.FormatUSD(p.Split.NonParticipating+p.Split.Participating),
				report.FormatUSD(p.Split.Common))
		}
	}
	for _, th := range result.Thresholds {
		fmt.Printf("  threshold %-10s %s\n", report.FormatUSD(th.ExitValue), th.Label)
	}
}

// sampleInput keeps the binary usable without any deal file on disk.
func sampleInput() analysis.Input {
	axis := pwerm.AxisVariations{Upside: []float64{0.15, 0.30}, Downside: []float64{0.15, 0.30}}
	return analysis.Input{
		DealName: "sample-deal",
		BaseCase: pwerm.BaseCase{Revenue: 10, Growth: 0.30, Margin: 0.20, Multiple: 5},
		Variations: pwerm.VariationSpec{
			Revenue: axis, Growth: axis, Margin: axis, Multiple: axis,
		},
		Correlations: pwerm.CorrelationCoefficients{RevenueGrowth: 0.5, GrowthMargin: 0.3, MarginMultiple: 0.4},
		Preferences: []waterfall.LiquidationPreference{
			{Round: "Seed", Amount: 3e6, Type: waterfall.NonParticipating},
			{Round: "Series A", Amount: 8e6, Type: waterfall.ParticipatingCapped, Cap: 2},
		},
		CommonShares: 60e6,
		TotalShares:  100e6,
		UnitScale:    1e6,
	}
}
