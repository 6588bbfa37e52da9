package analytics

import (
	"math"
	"sort"
)

// LayoutProfile scales the baseline into one layout variant.
// The factors are design constants, not derived from layout geometry.
type LayoutProfile struct {
	Name                  string
	EfficiencyFactor      float64
	DistanceFactor        float64
	TimeFactor            float64
	CostSavingsFactor     float64
	CarbonReductionFactor float64
}

// SeasonalProfile describes the uplift applied to the baseline during one period.
type SeasonalProfile struct {
	Name                     PeriodName
	EfficiencyUpliftPercent  float64
	CostSavingsUpliftPercent float64
	ProjectedOrders          int
}

// DefaultLayoutProfiles returns a fresh copy of the built-in layout table.
func DefaultLayoutProfiles() []LayoutProfile {
	return []LayoutProfile{
		{Name: "Layout 1", EfficiencyFactor: 1, DistanceFactor: 1, TimeFactor: 1, CostSavingsFactor: 1, CarbonReductionFactor: 1},
		{Name: "Layout 2", EfficiencyFactor: 0.95, DistanceFactor: 1.045, TimeFactor: 1.06, CostSavingsFactor: 0.90, CarbonReductionFactor: 11.0 / 12.0},
		{Name: "Layout 3", EfficiencyFactor: 0.90, DistanceFactor: 1.09, TimeFactor: 1.12, CostSavingsFactor: 0.80, CarbonReductionFactor: 10.0 / 12.0},
	}
}

// DefaultSeasonalProfiles returns a fresh copy of the built-in seasonal table.
// All uplifts are non-negative, so every period performs at least as well as Normal.
func DefaultSeasonalProfiles() []SeasonalProfile {
	return []SeasonalProfile{
		{Name: PeriodNormal, EfficiencyUpliftPercent: 0, CostSavingsUpliftPercent: 0, ProjectedOrders: 1000},
		{Name: PeriodBlackFriday, EfficiencyUpliftPercent: 15, CostSavingsUpliftPercent: 25, ProjectedOrders: 2500},
		{Name: PeriodChristmas, EfficiencyUpliftPercent: 12, CostSavingsUpliftPercent: 20, ProjectedOrders: 2000},
		{Name: PeriodNewYear, EfficiencyUpliftPercent: 10, CostSavingsUpliftPercent: 15, ProjectedOrders: 1200},
	}
}

// Apply scales base by the profile factors.
func (p LayoutProfile) Apply(base BaseMetrics) LayoutScenario {
	return LayoutScenario{
		Name:                      p.Name,
		Efficiency:                base.Efficiency * p.EfficiencyFactor,
		Distance:                  base.TotalDistance * p.DistanceFactor,
		Time:                      base.TotalTime * p.TimeFactor,
		CostSavingsPerStorePerDay: base.CostSavingsPerStorePerDay * p.CostSavingsFactor,
		CarbonReductionPercent:    base.CarbonReductionPercent * p.CarbonReductionFactor,
	}
}

// Apply projects base onto the period.
func (p SeasonalProfile) Apply(base BaseMetrics) SeasonalPeriod {
	return SeasonalPeriod{
		Name:                      p.Name,
		Efficiency:                Improve(base.Efficiency, p.EfficiencyUpliftPercent),
		ProjectedOrders:           p.ProjectedOrders,
		CostSavingsPerStorePerDay: Improve(base.CostSavingsPerStorePerDay, p.CostSavingsUpliftPercent),
	}
}

// Improve raises value by percent and rounds to the nearest integer, halves away from zero.
func Improve(value, percent float64) float64 {
	return math.Round(value * (1 + percent/100))
}

// BuildLayoutScenarios expands base into the built-in layout table, in declaration order.
func BuildLayoutScenarios(base BaseMetrics) []LayoutScenario {
	return buildLayoutScenarios(base, DefaultLayoutProfiles())
}

// BuildSeasonalPeriods expands base into the built-in seasonal table, in declaration order.
func BuildSeasonalPeriods(base BaseMetrics) []SeasonalPeriod {
	return buildSeasonalPeriods(base, DefaultSeasonalProfiles())
}

func buildLayoutScenarios(base BaseMetrics, profiles []LayoutProfile) []LayoutScenario {
	scenarios := make([]LayoutScenario, 0, len(profiles))
	for _, p := range profiles {
		scenarios = append(scenarios, p.Apply(base))
	}
	return scenarios
}

func buildSeasonalPeriods(base BaseMetrics, profiles []SeasonalProfile) []SeasonalPeriod {
	periods := make([]SeasonalPeriod, 0, len(profiles))
	for _, p := range profiles {
		periods = append(periods, p.Apply(base))
	}
	return periods
}

// RankLayouts returns at most limit scenarios ordered by efficiency, highest first.
// Equal efficiencies keep table order. The input slice is not modified.
// A non-positive limit returns every scenario.
func RankLayouts(scenarios []LayoutScenario, limit int) []RankedLayout {
	sorted := make([]LayoutScenario, len(scenarios))
	copy(sorted, scenarios)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Efficiency > sorted[j].Efficiency
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	ranked := make([]RankedLayout, 0, len(sorted))
	for i, s := range sorted {
		ranked = append(ranked, RankedLayout{Rank: i + 1, LayoutScenario: s})
	}
	return ranked
}
