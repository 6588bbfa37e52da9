package analytics

import "math"

// Default prefix = values substituted for measurements missing from the live feed.
const (
	DefaultEfficiency                = 88.0
	DefaultCostSavingsPerStorePerDay = 1500.0
	DefaultCarbonReductionPercent    = 48.0
	DefaultTotalDistance             = 2200.0
	DefaultTotalTime                 = 33.0
)

// DefaultBaseMetrics returns the fallback snapshot used when no live data is available.
func DefaultBaseMetrics() BaseMetrics {
	return BaseMetrics{
		Efficiency:                DefaultEfficiency,
		CostSavingsPerStorePerDay: DefaultCostSavingsPerStorePerDay,
		CarbonReductionPercent:    DefaultCarbonReductionPercent,
		TotalDistance:             DefaultTotalDistance,
		TotalTime:                 DefaultTotalTime,
	}
}

// Normalize builds BaseMetrics from a possibly partial live record.
// Missing and non-finite fields fall back to their defaults; everything else, negative values included,
// is passed through unchanged.
func Normalize(live *LiveMetrics) BaseMetrics {
	base := DefaultBaseMetrics()
	if live == nil {
		return base
	}

	base.Efficiency = valueOr(live.Efficiency, base.Efficiency)
	base.CostSavingsPerStorePerDay = valueOr(live.CostSavings, base.CostSavingsPerStorePerDay)
	base.CarbonReductionPercent = valueOr(live.CarbonReduction, base.CarbonReductionPercent)
	base.TotalDistance = valueOr(live.TotalDistance, base.TotalDistance)
	base.TotalTime = valueOr(live.TotalTime, base.TotalTime)

	return base
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fallback
	}
	return *v
}
