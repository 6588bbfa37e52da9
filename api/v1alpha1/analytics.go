package v1alpha1

// LiveMetrics is a partial measurement snapshot. Omitted fields fall back to the defaults.
// Percentages are bounded to [0,100] and physical quantities to >= 0. Cost savings may be
// negative, a layout that loses money per day.
type LiveMetrics struct {
	CarbonReduction *float64 `json:"carbonReduction,omitempty" validate:"omitnil,finite,gte=0,lte=100"`
	CostSavings     *float64 `json:"costSavings,omitempty" validate:"omitnil,finite"`
	Efficiency      *float64 `json:"efficiency,omitempty" validate:"omitnil,finite,gte=0,lte=100"`
	TotalDistance   *float64 `json:"totalDistance,omitempty" validate:"omitnil,finite,gte=0"`
	TotalTime       *float64 `json:"totalTime,omitempty" validate:"omitnil,finite,gte=0"`
}

// AnalyticsRequest is the body of the evaluation and report endpoints.
type AnalyticsRequest struct {
	DailyOrders *int         `json:"dailyOrders,omitempty" validate:"omitnil,gt=0"`
	LiveMetrics *LiveMetrics `json:"liveMetrics,omitempty"`
	StoreCount  *int         `json:"storeCount,omitempty" validate:"omitnil,gt=0"`
}

type BaseMetrics struct {
	CarbonReductionPercent    float64 `json:"carbonReductionPercent"`
	CostSavingsPerStorePerDay float64 `json:"costSavingsPerStorePerDay"`
	Efficiency                float64 `json:"efficiency"`
	TotalDistance             float64 `json:"totalDistance"`
	TotalTime                 float64 `json:"totalTime"`
}

type Inputs struct {
	DailyOrders int `json:"dailyOrders"`
	StoreCount  int `json:"storeCount"`
}

type LayoutScenario struct {
	CarbonReductionPercent    float64 `json:"carbonReductionPercent"`
	CostSavingsPerStorePerDay float64 `json:"costSavingsPerStorePerDay"`
	Distance                  float64 `json:"distance"`
	Efficiency                float64 `json:"efficiency"`
	Name                      string  `json:"name"`
	Time                      float64 `json:"time"`
}

type RankedLayout struct {
	Efficiency float64 `json:"efficiency"`
	Name       string  `json:"name"`
	Rank       int     `json:"rank"`
}

type SeasonalPeriod struct {
	CostSavingsPerStorePerDay float64 `json:"costSavingsPerStorePerDay"`
	Efficiency                float64 `json:"efficiency"`
	Name                      string  `json:"name"`
	ProjectedOrders           int     `json:"projectedOrders"`
}

// RoiProjection carries the ROI figures. RoiPercent is nil and Reason set when ROI is undefined.
type RoiProjection struct {
	AnnualSavingsPerStore   float64  `json:"annualSavingsPerStore"`
	DailySavingsPerStore    float64  `json:"dailySavingsPerStore"`
	Defined                 bool     `json:"defined"`
	ImplementationCostTotal float64  `json:"implementationCostTotal"`
	Reason                  *string  `json:"reason,omitempty"`
	RoiPercent              *float64 `json:"roiPercent"`
	TotalAnnualSavings      float64  `json:"totalAnnualSavings"`
}

type RolloutImpact struct {
	BestLayout                      LayoutScenario `json:"bestLayout"`
	PotentialAnnualSavings          float64        `json:"potentialAnnualSavings"`
	PotentialCarbonReductionPercent float64        `json:"potentialCarbonReductionPercent"`
}

type CarbonContribution struct {
	Name             string  `json:"name"`
	ReductionPercent float64 `json:"reductionPercent"`
	SharePercent     float64 `json:"sharePercent"`
}

type KeyMetrics struct {
	AverageEfficiency      float64 `json:"averageEfficiency"`
	CarbonReductionPercent float64 `json:"carbonReductionPercent"`
	DailyOrdersTotal       int     `json:"dailyOrdersTotal"`
	StoresOptimized        int     `json:"storesOptimized"`
}

type RolloutPhase struct {
	EndMonth   int    `json:"endMonth"`
	Name       string `json:"name"`
	StartMonth int    `json:"startMonth"`
	Stores     int    `json:"stores"`
}

type RolloutPlan struct {
	BreakEvenMonths *float64       `json:"breakEvenMonths"`
	Phases          []RolloutPhase `json:"phases"`
}

// AnalyticsReport is the full evaluation result.
type AnalyticsReport struct {
	BaseMetrics     BaseMetrics          `json:"baseMetrics"`
	CarbonBreakdown []CarbonContribution `json:"carbonBreakdown"`
	Inputs          Inputs               `json:"inputs"`
	KeyMetrics      KeyMetrics           `json:"keyMetrics"`
	Layouts         []LayoutScenario     `json:"layouts"`
	RankedLayouts   []RankedLayout       `json:"rankedLayouts"`
	Recommendations []string             `json:"recommendations"`
	Roi             RoiProjection        `json:"roi"`
	Rollout         RolloutImpact        `json:"rollout"`
	RolloutPlan     RolloutPlan          `json:"rolloutPlan"`
	SeasonalPeriods []SeasonalPeriod     `json:"seasonalPeriods"`
}

type Info struct {
	BuildDate   string `json:"buildDate"`
	GitCommit   string `json:"gitCommit"`
	VersionName string `json:"versionName"`
}

type Status struct {
	Message   string  `json:"message"`
	RequestId *string `json:"requestId,omitempty"`
}

// ReportParams are the query parameters of the report endpoint.
type ReportParams struct {
	Format string `json:"format" validate:"required,report_format"`
}
