package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/validator"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
)

type ServiceHandler struct {
	analyticsSrv *service.AnalyticsService
	validator    *validator.Validator
}

func NewServiceHandler(analyticsSrv *service.AnalyticsService) *ServiceHandler {
	return &ServiceHandler{
		analyticsSrv: analyticsSrv,
		validator:    validator.NewValidator().Register(validator.NewAnalyticsValidationRules()...),
	}
}

// RegisterRoutes mounts the health probe and the v1 API on router.
func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", h.GetInfo)
		r.Get("/analytics", h.GetAnalytics)
		r.Post("/analytics", h.EvaluateAnalytics)
		r.Post("/analytics/report", h.GenerateReport)
	})
}

type StatusReply struct {
	api.Status
	code int
}

func (s StatusReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, s.code)
	return nil
}

func statusReply(r *http.Request, code int, message string) StatusReply {
	reply := StatusReply{Status: api.Status{Message: message}, code: code}
	if id := requestid.FromRequest(r); id != "" {
		reply.RequestId = &id
	}
	return reply
}
