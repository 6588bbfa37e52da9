package analytics

// PeriodName identifies one of the fixed seasonal periods.
type PeriodName string

const (
	PeriodNormal      PeriodName = "Normal"
	PeriodBlackFriday PeriodName = "Black Friday"
	PeriodChristmas   PeriodName = "Christmas"
	PeriodNewYear     PeriodName = "New Year"
)

// BaseMetrics is the canonical measurement snapshot every derived figure is seeded from.
// Percentages are expected in [0, 100]; the package does not clamp them.
type BaseMetrics struct {
	Efficiency                float64
	CostSavingsPerStorePerDay float64
	CarbonReductionPercent    float64
	TotalDistance             float64
	TotalTime                 float64
}

// LiveMetrics is a possibly partial record published by the simulation feed.
// A nil field means the measurement is missing.
type LiveMetrics struct {
	Efficiency      *float64
	CostSavings     *float64
	CarbonReduction *float64
	TotalDistance   *float64
	TotalTime       *float64
}

// LayoutScenario is one candidate warehouse layout.
type LayoutScenario struct {
	Name                      string
	Efficiency                float64
	Distance                  float64
	Time                      float64
	CostSavingsPerStorePerDay float64
	CarbonReductionPercent    float64
}

// RankedLayout is a LayoutScenario with its 1-based position in the efficiency ranking.
type RankedLayout struct {
	Rank int
	LayoutScenario
}

// SeasonalPeriod projects the baseline onto a peak-demand calendar window.
type SeasonalPeriod struct {
	Name                      PeriodName
	Efficiency                float64
	ProjectedOrders           int
	CostSavingsPerStorePerDay float64
}

type ROIProjection struct {
	DailySavingsPerStore    float64
	AnnualSavingsPerStore   float64
	TotalAnnualSavings      float64
	ImplementationCostTotal float64
	RoiPercent              float64
}

// ROIOutcome carries the projection together with whether RoiPercent could be computed.
// When Defined is false RoiPercent is zero and Reason explains why.
type ROIOutcome struct {
	Projection ROIProjection
	Defined    bool
	Reason     string
}

// RolloutImpact is the projected outcome of deploying the best layout to the whole fleet.
type RolloutImpact struct {
	BestLayout                      LayoutScenario
	PotentialAnnualSavings          float64
	PotentialCarbonReductionPercent float64
}

// CarbonContribution is one slice of the carbon reduction breakdown.
type CarbonContribution struct {
	Name             string
	SharePercent     float64
	ReductionPercent float64
}

type KeyMetrics struct {
	AverageEfficiency      float64
	DailyOrdersTotal       int
	CarbonReductionPercent float64
	StoresOptimized        int
}

type RolloutPhase struct {
	Name       string
	StartMonth int
	EndMonth   int
	Stores     int
}

// RolloutPlan is the staged deployment schedule. BreakEvenMonths is nil when the
// investment never pays back (undefined ROI or non-positive savings).
type RolloutPlan struct {
	Phases          []RolloutPhase
	BreakEvenMonths *float64
}

// Inputs are the user adjustable scalars of one evaluation.
type Inputs struct {
	StoreCount  int
	DailyOrders int
}

// Report is the output bundle handed to the presentation layer.
type Report struct {
	Base            BaseMetrics
	Inputs          Inputs
	Layouts         []LayoutScenario
	RankedLayouts   []RankedLayout
	SeasonalPeriods []SeasonalPeriod
	ROI             ROIOutcome
	Rollout         RolloutImpact
	Carbon          []CarbonContribution
	KeyMetrics      KeyMetrics
	Plan            RolloutPlan
	Recommendations []string
}
