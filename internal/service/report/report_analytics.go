package report

import (
	"fmt"
	"time"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
)

// StandardAnalyticsProcessor lays an analytics report out as the sections
// every renderer prints.
type StandardAnalyticsProcessor struct {
	now func() time.Time
}

func NewStandardAnalyticsProcessor() *StandardAnalyticsProcessor {
	return &StandardAnalyticsProcessor{now: time.Now}
}

// WithClock replaces the clock used for the generation timestamps.
func (p *StandardAnalyticsProcessor) WithClock(now func() time.Time) *StandardAnalyticsProcessor {
	p.now = now
	return p
}

func (p *StandardAnalyticsProcessor) Process(report *analytics.Report) *types.ReportData {
	return &types.ReportData{
		Report: report,
		Sections: []types.Section{
			p.keyMetrics(report.KeyMetrics),
			p.layouts(report.Layouts),
			p.ranking(report.RankedLayouts),
			p.seasonal(report.SeasonalPeriods),
			p.roi(report.ROI, report.Plan),
			p.rollout(report.Rollout),
			p.carbon(report.Carbon),
			p.plan(report.Plan),
			p.recommendations(report.Recommendations),
		},
		Timestamps: p.generateTimestamps(),
	}
}

func (p *StandardAnalyticsProcessor) keyMetrics(km analytics.KeyMetrics) types.Section {
	return types.Section{
		Title:  types.SectionKeyMetrics,
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Average Efficiency (%)", km.AverageEfficiency},
			{"Daily Orders", km.DailyOrdersTotal},
			{"Carbon Reduction (%)", km.CarbonReductionPercent},
			{"Stores Optimized", km.StoresOptimized},
		},
	}
}

func (p *StandardAnalyticsProcessor) layouts(layouts []analytics.LayoutScenario) types.Section {
	s := types.Section{
		Title:  types.SectionLayouts,
		Header: []string{"Layout", "Efficiency (%)", "Distance (m)", "Time (min)", "Cost Savings per Store per Day", "Carbon Reduction (%)"},
	}
	for _, l := range layouts {
		s.Rows = append(s.Rows, []any{l.Name, l.Efficiency, l.Distance, l.Time, l.CostSavingsPerStorePerDay, l.CarbonReductionPercent})
	}
	return s
}

func (p *StandardAnalyticsProcessor) ranking(ranked []analytics.RankedLayout) types.Section {
	s := types.Section{
		Title:  types.SectionRanking,
		Header: []string{"Rank", "Layout", "Efficiency (%)"},
	}
	for _, r := range ranked {
		s.Rows = append(s.Rows, []any{r.Rank, r.Name, r.Efficiency})
	}
	return s
}

func (p *StandardAnalyticsProcessor) seasonal(periods []analytics.SeasonalPeriod) types.Section {
	s := types.Section{
		Title:  types.SectionSeasonal,
		Header: []string{"Period", "Efficiency (%)", "Projected Orders", "Cost Savings per Store per Day"},
	}
	for _, sp := range periods {
		s.Rows = append(s.Rows, []any{string(sp.Name), sp.Efficiency, sp.ProjectedOrders, sp.CostSavingsPerStorePerDay})
	}
	return s
}

func (p *StandardAnalyticsProcessor) roi(roi analytics.ROIOutcome, plan analytics.RolloutPlan) types.Section {
	var roiValue, breakEven any = analytics.NotAvailable, analytics.NotAvailable
	if roi.Defined {
		roiValue = roi.Projection.RoiPercent
	}
	if plan.BreakEvenMonths != nil {
		breakEven = *plan.BreakEvenMonths
	}

	return types.Section{
		Title:  types.SectionROI,
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Mean Daily Savings per Store", roi.Projection.DailySavingsPerStore},
			{"Annual Savings per Store", roi.Projection.AnnualSavingsPerStore},
			{"Total Annual Savings", roi.Projection.TotalAnnualSavings},
			{"Implementation Cost", roi.Projection.ImplementationCostTotal},
			{"ROI (%)", roiValue},
			{"Break-even (months)", breakEven},
		},
	}
}

func (p *StandardAnalyticsProcessor) rollout(impact analytics.RolloutImpact) types.Section {
	return types.Section{
		Title:  types.SectionRollout,
		Header: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Best Layout", impact.BestLayout.Name},
			{"Potential Annual Savings", impact.PotentialAnnualSavings},
			{"Potential Carbon Reduction (%)", impact.PotentialCarbonReductionPercent},
		},
	}
}

func (p *StandardAnalyticsProcessor) carbon(contributions []analytics.CarbonContribution) types.Section {
	s := types.Section{
		Title:  types.SectionCarbon,
		Header: []string{"Contributor", "Share (%)", "Reduction (%)"},
	}
	for _, c := range contributions {
		s.Rows = append(s.Rows, []any{c.Name, c.SharePercent, c.ReductionPercent})
	}
	return s
}

func (p *StandardAnalyticsProcessor) plan(plan analytics.RolloutPlan) types.Section {
	s := types.Section{
		Title:  types.SectionPlan,
		Header: []string{"Phase", "Months", "Stores"},
	}
	for _, ph := range plan.Phases {
		s.Rows = append(s.Rows, []any{ph.Name, fmt.Sprintf("%d-%d", ph.StartMonth, ph.EndMonth), ph.Stores})
	}
	return s
}

func (p *StandardAnalyticsProcessor) recommendations(recs []string) types.Section {
	s := types.Section{
		Title:  types.SectionRecommendations,
		Header: []string{"#", "Recommendation"},
	}
	for i, r := range recs {
		s.Rows = append(s.Rows, []any{i + 1, r})
	}
	return s
}

func (p *StandardAnalyticsProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	return types.ReportTimestamps{
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05"),
	}
}
