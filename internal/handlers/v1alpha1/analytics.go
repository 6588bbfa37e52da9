package v1alpha1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/v1alpha1/mappers"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/validator"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
	"go.uber.org/zap"
)

type AnalyticsReply struct {
	api.AnalyticsReport
}

func (a AnalyticsReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// (GET /api/v1/analytics)
func (h *ServiceHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, err.Error()))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, err.Error()))
		return
	}
	h.evaluate(w, r, req)
}

// (POST /api/v1/analytics)
func (h *ServiceHandler) EvaluateAnalytics(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	h.evaluate(w, r, req)
}

// (POST /api/v1/analytics/report)
func (h *ServiceHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	params := api.ReportParams{Format: r.URL.Query().Get("format")}
	if err := h.validator.Struct(params); err != nil {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, err.Error()))
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	format := service.ReportFormat(strings.ToLower(params.Format))
	rendered, err := h.analyticsSrv.GenerateReport(r.Context(), mappers.AnalyticsRequestFromApi(req), format)
	if err != nil {
		h.renderError(w, r, err, "failed to generate report")
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered.Content)
}

func (h *ServiceHandler) evaluate(w http.ResponseWriter, r *http.Request, req api.AnalyticsRequest) {
	report, err := h.analyticsSrv.Evaluate(r.Context(), mappers.AnalyticsRequestFromApi(req))
	if err != nil {
		h.renderError(w, r, err, "failed to evaluate analytics")
		return
	}
	_ = render.Render(w, r, AnalyticsReply{AnalyticsReport: mappers.AnalyticsReportToApi(report)})
}

// decodeRequest reads and validates the JSON body. An empty body is an empty request.
func (h *ServiceHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (api.AnalyticsRequest, bool) {
	var req api.AnalyticsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %s", err)))
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, err.Error()))
		return req, false
	}
	return req, true
}

func (h *ServiceHandler) renderError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var (
		invalid     *service.ErrInvalidInput
		unsupported *service.ErrUnsupportedFormat
		verr        *validator.ErrValidation
	)
	if errors.As(err, &invalid) || errors.As(err, &unsupported) || errors.As(err, &verr) {
		_ = render.Render(w, r, statusReply(r, http.StatusBadRequest, err.Error()))
		return
	}

	zap.S().Named("analytics_handler").Errorw(message, "error", err, "request_id", requestid.FromRequest(r))
	_ = render.Render(w, r, statusReply(r, http.StatusInternalServerError, message))
}

func requestFromQuery(r *http.Request) (api.AnalyticsRequest, error) {
	var req api.AnalyticsRequest
	q := r.URL.Query()

	for name, dst := range map[string]**int{"storeCount": &req.StoreCount, "dailyOrders": &req.DailyOrders} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%s must be an integer, got %q", name, raw)
		}
		*dst = &v
	}
	return req, nil
}
