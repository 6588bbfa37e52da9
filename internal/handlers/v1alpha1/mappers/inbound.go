package mappers

import (
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service"
)

func LiveMetricsFromApi(m *api.LiveMetrics) *analytics.LiveMetrics {
	if m == nil {
		return nil
	}
	return &analytics.LiveMetrics{
		Efficiency:      m.Efficiency,
		CostSavings:     m.CostSavings,
		CarbonReduction: m.CarbonReduction,
		TotalDistance:   m.TotalDistance,
		TotalTime:       m.TotalTime,
	}
}

func AnalyticsRequestFromApi(req api.AnalyticsRequest) service.AnalyticsRequest {
	return service.AnalyticsRequest{
		Live:        LiveMetricsFromApi(req.LiveMetrics),
		StoreCount:  req.StoreCount,
		DailyOrders: req.DailyOrders,
	}
}
