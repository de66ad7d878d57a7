package pwerm

// BinDistribution buckets scenario probability mass into an equal-width
// histogram over [min, max] enterprise value. Bin labels are midpoints.
// Values on the top edge are clamped into the last bin.
func BinDistribution(scenarios []ScenarioResult, binCount int) Distribution {
	if binCount <= 0 {
		binCount = DefaultCalibration().BinCount
	}
	if len(scenarios) == 0 {
		return Distribution{Bins: []float64{}, Frequencies: []float64{}}
	}

	lo := scenarios[0].Outputs.EnterpriseValue
	hi := lo
	for i := range scenarios {
		v := scenarios[i].Outputs.EnterpriseValue
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	bins := make([]float64, binCount)
	freqs := make([]float64, binCount)
	width := (hi - lo) / float64(binCount)

	for i := range bins {
		bins[i] = lo + width*(float64(i)+0.5)
	}

	for i := range scenarios {
		idx := 0
		if width > 0 {
			idx = int((scenarios[i].Outputs.EnterpriseValue - lo) / width)
			if idx >= binCount {
				idx = binCount - 1
			}
		}
		freqs[idx] += scenarios[i].Probability
	}

	return Distribution{Bins: bins, Frequencies: freqs}
}
