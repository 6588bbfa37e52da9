package service

import (
	"context"
	"fmt"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/pkg/metrics"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
	"go.uber.org/zap"
)

// AnalyticsRequest is one evaluation request. Nil counts fall back to the
// service defaults; a nil Live evaluates the default base metrics.
type AnalyticsRequest struct {
	Live        *analytics.LiveMetrics
	StoreCount  *int
	DailyOrders *int
}

// AnalyticsService validates requests, runs them through the analytics Engine
// and renders reports.
type AnalyticsService struct {
	engine   *analytics.Engine
	defaults analytics.Inputs
	reports  *ReportService
}

func NewAnalyticsService(engine *analytics.Engine, defaults analytics.Inputs) *AnalyticsService {
	return &AnalyticsService{
		engine:   engine,
		defaults: defaults,
		reports:  NewReportService(),
	}
}

// Defaults returns the fleet inputs used when a request omits them.
func (s *AnalyticsService) Defaults() analytics.Inputs {
	return s.defaults
}

func (s *AnalyticsService) Evaluate(ctx context.Context, req AnalyticsRequest) (*analytics.Report, error) {
	logger := zap.S().Named("analytics_service").With("request_id", requestid.FromContext(ctx))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := s.inputs(req)
	if err != nil {
		logger.Debugw("rejected analytics request", "error", err)
		metrics.IncreaseEvaluationsTotalMetric(metrics.OutcomeFailed)
		return nil, err
	}

	report, err := s.engine.Evaluate(req.Live, in)
	if err != nil {
		logger.Errorw("failed to evaluate analytics", "error", err)
		metrics.IncreaseEvaluationsTotalMetric(metrics.OutcomeFailed)
		return nil, fmt.Errorf("failed to evaluate analytics: %w", err)
	}

	if report.ROI.Defined {
		metrics.IncreaseEvaluationsTotalMetric(metrics.OutcomeSuccess)
		metrics.UpdateRoiPercentMetric(report.ROI.Projection.RoiPercent)
	} else {
		metrics.IncreaseEvaluationsTotalMetric(metrics.OutcomeRoiUndefined)
		logger.Infow("roi undefined", "reason", report.ROI.Reason)
	}
	metrics.UpdateBestLayoutMetric(report.Rollout.BestLayout.Name, report.Rollout.PotentialAnnualSavings)

	logger.Debugw("analytics evaluated",
		"store_count", in.StoreCount,
		"daily_orders", in.DailyOrders,
		"best_layout", report.Rollout.BestLayout.Name,
		"live_metrics", req.Live != nil,
	)

	return report, nil
}

// GenerateReport evaluates req and renders the result in format.
func (s *AnalyticsService) GenerateReport(ctx context.Context, req AnalyticsRequest, format ReportFormat) (*RenderedReport, error) {
	if !s.reports.Supports(format) {
		metrics.IncreaseReportsTotalMetric(string(format), metrics.OutcomeFailed)
		return nil, NewErrUnsupportedFormat(string(format))
	}

	report, err := s.Evaluate(ctx, req)
	if err != nil {
		metrics.IncreaseReportsTotalMetric(string(format), metrics.OutcomeFailed)
		return nil, err
	}

	rendered, err := s.reports.GenerateReport(report, format)
	if err != nil {
		metrics.IncreaseReportsTotalMetric(string(format), metrics.OutcomeFailed)
		zap.S().Named("analytics_service").Errorw("failed to render report", "format", format, "error", err)
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.IncreaseReportsTotalMetric(string(format), metrics.OutcomeSuccess)
	return rendered, nil
}

func (s *AnalyticsService) inputs(req AnalyticsRequest) (analytics.Inputs, error) {
	in := s.defaults
	if req.StoreCount != nil {
		in.StoreCount = *req.StoreCount
	}
	if req.DailyOrders != nil {
		in.DailyOrders = *req.DailyOrders
	}

	if in.StoreCount <= 0 {
		return in, NewErrInvalidInput("storeCount", in.StoreCount)
	}
	if in.DailyOrders <= 0 {
		return in, NewErrInvalidInput("dailyOrders", in.DailyOrders)
	}
	return in, nil
}
