package analytics

// CarbonContributor is a source of carbon reduction with its relative weight.
type CarbonContributor struct {
	Name   string
	Weight float64
}

// DefaultCarbonContributors returns a fresh copy of the built-in breakdown weights.
func DefaultCarbonContributors() []CarbonContributor {
	return []CarbonContributor{
		{Name: "Reduced Travel", Weight: 45},
		{Name: "Optimized Routes", Weight: 30},
		{Name: "Efficient Loading", Weight: 25},
	}
}

// BreakdownCarbon splits carbonReductionPercent across contributors proportionally to their weights.
// Contributors with a zero total weight get a zero share.
func BreakdownCarbon(carbonReductionPercent float64, contributors []CarbonContributor) []CarbonContribution {
	total := 0.0
	for _, c := range contributors {
		total += c.Weight
	}

	out := make([]CarbonContribution, 0, len(contributors))
	for _, c := range contributors {
		share := 0.0
		if total != 0 {
			share = c.Weight / total * 100
		}
		out = append(out, CarbonContribution{
			Name:             c.Name,
			SharePercent:     share,
			ReductionPercent: share * carbonReductionPercent / 100,
		})
	}
	return out
}
