package analytics

const (
	// DaysPerYear annualizes daily savings.
	DaysPerYear = 365

	DefaultStoreCount                 = 4700
	DefaultDailyOrders                = 1000
	DefaultImplementationCostPerStore = 50000.0
)

// ComputeROI projects the fleet-wide return of rolling out the layouts.
// Daily savings are the unweighted mean across scenarios. When the implementation cost total is zero the
// projection is returned without RoiPercent, together with an *ErrRoiUndefined.
func ComputeROI(scenarios []LayoutScenario, storeCount int, perStoreImplementationCost float64) (ROIProjection, error) {
	if len(scenarios) == 0 {
		return ROIProjection{}, NewErrEmptyScenarioSet("compute roi")
	}

	sum := 0.0
	for _, s := range scenarios {
		sum += s.CostSavingsPerStorePerDay
	}

	projection := ROIProjection{}
	projection.DailySavingsPerStore = sum / float64(len(scenarios))
	projection.AnnualSavingsPerStore = projection.DailySavingsPerStore * DaysPerYear
	projection.TotalAnnualSavings = projection.AnnualSavingsPerStore * float64(storeCount)
	projection.ImplementationCostTotal = float64(storeCount) * perStoreImplementationCost

	if projection.ImplementationCostTotal == 0 {
		return projection, NewErrRoiUndefined(storeCount, perStoreImplementationCost)
	}

	projection.RoiPercent = (projection.TotalAnnualSavings - projection.ImplementationCostTotal) / projection.ImplementationCostTotal * 100
	return projection, nil
}

// SelectBestLayout picks the scenario with the highest daily savings per store.
// On exact ties the scenario that appears first wins.
func SelectBestLayout(scenarios []LayoutScenario, storeCount int) (RolloutImpact, error) {
	if len(scenarios) == 0 {
		return RolloutImpact{}, NewErrEmptyScenarioSet("select best layout")
	}

	best := scenarios[0]
	for _, s := range scenarios[1:] {
		if s.CostSavingsPerStorePerDay > best.CostSavingsPerStorePerDay {
			best = s
		}
	}

	return RolloutImpact{
		BestLayout:                      best,
		PotentialAnnualSavings:          best.CostSavingsPerStorePerDay * float64(storeCount) * DaysPerYear,
		PotentialCarbonReductionPercent: best.CarbonReductionPercent,
	}, nil
}
