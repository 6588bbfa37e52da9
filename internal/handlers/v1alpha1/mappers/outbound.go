package mappers

import (
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
)

// AnalyticsReportToApi converts an engine report to its API form.
// Slices are never nil so clients always receive arrays.
func AnalyticsReportToApi(r *analytics.Report) api.AnalyticsReport {
	out := api.AnalyticsReport{
		BaseMetrics: api.BaseMetrics{
			Efficiency:                r.Base.Efficiency,
			CostSavingsPerStorePerDay: r.Base.CostSavingsPerStorePerDay,
			CarbonReductionPercent:    r.Base.CarbonReductionPercent,
			TotalDistance:             r.Base.TotalDistance,
			TotalTime:                 r.Base.TotalTime,
		},
		Inputs: api.Inputs{
			StoreCount:  r.Inputs.StoreCount,
			DailyOrders: r.Inputs.DailyOrders,
		},
		Layouts:         make([]api.LayoutScenario, 0, len(r.Layouts)),
		RankedLayouts:   make([]api.RankedLayout, 0, len(r.RankedLayouts)),
		SeasonalPeriods: make([]api.SeasonalPeriod, 0, len(r.SeasonalPeriods)),
		Roi:             roiToApi(r.ROI),
		Rollout: api.RolloutImpact{
			BestLayout:                      layoutToApi(r.Rollout.BestLayout),
			PotentialAnnualSavings:          r.Rollout.PotentialAnnualSavings,
			PotentialCarbonReductionPercent: r.Rollout.PotentialCarbonReductionPercent,
		},
		CarbonBreakdown: make([]api.CarbonContribution, 0, len(r.Carbon)),
		KeyMetrics: api.KeyMetrics{
			AverageEfficiency:      r.KeyMetrics.AverageEfficiency,
			DailyOrdersTotal:       r.KeyMetrics.DailyOrdersTotal,
			CarbonReductionPercent: r.KeyMetrics.CarbonReductionPercent,
			StoresOptimized:        r.KeyMetrics.StoresOptimized,
		},
		RolloutPlan: api.RolloutPlan{
			BreakEvenMonths: r.Plan.BreakEvenMonths,
			Phases:          make([]api.RolloutPhase, 0, len(r.Plan.Phases)),
		},
		Recommendations: append([]string{}, r.Recommendations...),
	}

	for _, l := range r.Layouts {
		out.Layouts = append(out.Layouts, layoutToApi(l))
	}
	for _, rl := range r.RankedLayouts {
		out.RankedLayouts = append(out.RankedLayouts, api.RankedLayout{Rank: rl.Rank, Name: rl.Name, Efficiency: rl.Efficiency})
	}
	for _, s := range r.SeasonalPeriods {
		out.SeasonalPeriods = append(out.SeasonalPeriods, api.SeasonalPeriod{
			Name:                      string(s.Name),
			Efficiency:                s.Efficiency,
			ProjectedOrders:           s.ProjectedOrders,
			CostSavingsPerStorePerDay: s.CostSavingsPerStorePerDay,
		})
	}
	for _, c := range r.Carbon {
		out.CarbonBreakdown = append(out.CarbonBreakdown, api.CarbonContribution{
			Name:             c.Name,
			SharePercent:     c.SharePercent,
			ReductionPercent: c.ReductionPercent,
		})
	}
	for _, p := range r.Plan.Phases {
		out.RolloutPlan.Phases = append(out.RolloutPlan.Phases, api.RolloutPhase{
			Name:       p.Name,
			StartMonth: p.StartMonth,
			EndMonth:   p.EndMonth,
			Stores:     p.Stores,
		})
	}

	return out
}

func layoutToApi(l analytics.LayoutScenario) api.LayoutScenario {
	return api.LayoutScenario{
		Name:                      l.Name,
		Efficiency:                l.Efficiency,
		Distance:                  l.Distance,
		Time:                      l.Time,
		CostSavingsPerStorePerDay: l.CostSavingsPerStorePerDay,
		CarbonReductionPercent:    l.CarbonReductionPercent,
	}
}

func roiToApi(roi analytics.ROIOutcome) api.RoiProjection {
	out := api.RoiProjection{
		DailySavingsPerStore:    roi.Projection.DailySavingsPerStore,
		AnnualSavingsPerStore:   roi.Projection.AnnualSavingsPerStore,
		TotalAnnualSavings:      roi.Projection.TotalAnnualSavings,
		ImplementationCostTotal: roi.Projection.ImplementationCostTotal,
		Defined:                 roi.Defined,
	}
	if roi.Defined {
		percent := roi.Projection.RoiPercent
		out.RoiPercent = &percent
	} else {
		reason := roi.Reason
		out.Reason = &reason
	}
	return out
}
