package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	layoutAnalytics = "layout_analytics"

	evaluationsTotal  = "evaluations_total"
	reportsTotal      = "reports_total"
	bestLayoutSavings = "best_layout_annual_savings"
	roiPercent        = "roi_percent"

	// Labels
	outcomeLabel = "outcome"
	formatLabel  = "format"
	layoutLabel  = "layout"

	OutcomeSuccess      = "success"
	OutcomeRoiUndefined = "roi_undefined"
	OutcomeFailed       = "failed"
)

var evaluationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: layoutAnalytics,
		Name:      evaluationsTotal,
		Help:      "number of analytics evaluations partitioned by outcome",
	},
	[]string{outcomeLabel},
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: layoutAnalytics,
		Name:      reportsTotal,
		Help:      "number of rendered reports partitioned by format and outcome",
	},
	[]string{formatLabel, outcomeLabel},
)

var bestLayoutSavingsMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: layoutAnalytics,
		Name:      bestLayoutSavings,
		Help:      "potential annual savings of the best layout in the last evaluation",
	},
	[]string{layoutLabel},
)

var roiPercentMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: layoutAnalytics,
		Name:      roiPercent,
		Help:      "ROI percent of the last evaluation with a defined ROI",
	},
)

func IncreaseEvaluationsTotalMetric(outcome string) {
	evaluationsTotalMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

func IncreaseReportsTotalMetric(format, outcome string) {
	reportsTotalMetric.With(prometheus.Labels{formatLabel: format, outcomeLabel: outcome}).Inc()
}

// bestLayoutMu makes the reset and set of UpdateBestLayoutMetric one step.
var bestLayoutMu sync.Mutex

// UpdateBestLayoutMetric keeps a single series, the one of the latest best layout.
func UpdateBestLayoutMetric(layout string, savings float64) {
	bestLayoutMu.Lock()
	defer bestLayoutMu.Unlock()

	bestLayoutSavingsMetric.Reset()
	bestLayoutSavingsMetric.With(prometheus.Labels{layoutLabel: layout}).Set(savings)
}

func UpdateRoiPercentMetric(percent float64) {
	roiPercentMetric.Set(percent)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(evaluationsTotalMetric)
	prometheus.MustRegister(reportsTotalMetric)
	prometheus.MustRegister(bestLayoutSavingsMetric)
	prometheus.MustRegister(roiPercentMetric)
}
