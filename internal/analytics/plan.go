package analytics

// RolloutStage is one entry of the deployment schedule. A zero Stores means the whole fleet.
type RolloutStage struct {
	Name       string
	StartMonth int
	EndMonth   int
	Stores     int
}

const monthsPerYear = 12

// DefaultRolloutStages returns a fresh copy of the built-in deployment schedule.
func DefaultRolloutStages() []RolloutStage {
	return []RolloutStage{
		{Name: "Pilot", StartMonth: 1, EndMonth: 2, Stores: 50},
		{Name: "Regional Rollout", StartMonth: 3, EndMonth: 6, Stores: 1000},
		{Name: "Full Deployment", StartMonth: 7, EndMonth: 12},
	}
}

// PlanRollout caps each stage at storeCount and computes the payback period in months.
func PlanRollout(stages []RolloutStage, storeCount int, roi ROIOutcome) RolloutPlan {
	plan := RolloutPlan{Phases: make([]RolloutPhase, 0, len(stages))}
	for _, s := range stages {
		stores := s.Stores
		if stores == 0 || stores > storeCount {
			stores = storeCount
		}
		plan.Phases = append(plan.Phases, RolloutPhase{
			Name:       s.Name,
			StartMonth: s.StartMonth,
			EndMonth:   s.EndMonth,
			Stores:     stores,
		})
	}

	if roi.Defined && roi.Projection.TotalAnnualSavings > 0 {
		months := roi.Projection.ImplementationCostTotal / (roi.Projection.TotalAnnualSavings / monthsPerYear)
		plan.BreakEvenMonths = &months
	}
	return plan
}

// SummarizeKeyMetrics computes the headline cards of the dashboard.
func SummarizeKeyMetrics(base BaseMetrics, scenarios []LayoutScenario, in Inputs) KeyMetrics {
	avg := 0.0
	if len(scenarios) > 0 {
		for _, s := range scenarios {
			avg += s.Efficiency
		}
		avg /= float64(len(scenarios))
	}

	return KeyMetrics{
		AverageEfficiency:      avg,
		DailyOrdersTotal:       in.DailyOrders * in.StoreCount,
		CarbonReductionPercent: base.CarbonReductionPercent,
		StoresOptimized:        in.StoreCount,
	}
}
