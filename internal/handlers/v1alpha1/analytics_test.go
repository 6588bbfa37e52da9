package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	api "github.com/layoutlab/warehouse-analytics/api/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	handlers "github.com/layoutlab/warehouse-analytics/internal/handlers/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/pkg/middleware"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("analytics handler", func() {
	var router *chi.Mux

	newRouter := func(opts ...analytics.EngineOption) *chi.Mux {
		srv := service.NewAnalyticsService(analytics.NewEngine(opts...), analytics.Inputs{
			StoreCount:  analytics.DefaultStoreCount,
			DailyOrders: analytics.DefaultDailyOrders,
		})
		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		handlers.NewServiceHandler(srv).RegisterRoutes(r)
		return r
	}

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set(requestid.Header, "req-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decodeReport := func(rec *httptest.ResponseRecorder) api.AnalyticsReport {
		var report api.AnalyticsReport
		Expect(json.Unmarshal(rec.Body.Bytes(), &report)).To(Succeed())
		return report
	}

	decodeStatus := func(rec *httptest.ResponseRecorder) api.Status {
		var status api.Status
		Expect(json.Unmarshal(rec.Body.Bytes(), &status)).To(Succeed())
		return status
	}

	BeforeEach(func() {
		router = newRouter()
	})

	Context("GET /api/v1/analytics", func() {
		It("evaluates the default fleet", func() {
			rec := do(http.MethodGet, "/api/v1/analytics", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			report := decodeReport(rec)
			Expect(report.Inputs.StoreCount).To(Equal(4700))
			Expect(report.Layouts).To(HaveLen(3))
			Expect(report.Roi.TotalAnnualSavings).To(Equal(2315925000.0))
			Expect(report.Rollout.BestLayout.Name).To(Equal("Layout 1"))
			Expect(report.Rollout.PotentialAnnualSavings).To(Equal(2573250000.0))
		})

		It("takes store count and daily orders from the query", func() {
			rec := do(http.MethodGet, "/api/v1/analytics?storeCount=10&dailyOrders=3", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
			report := decodeReport(rec)
			Expect(report.KeyMetrics.DailyOrdersTotal).To(Equal(30))
		})

		It("rejects a non-numeric store count", func() {
			rec := do(http.MethodGet, "/api/v1/analytics?storeCount=lots", "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			status := decodeStatus(rec)
			Expect(status.Message).To(ContainSubstring("storeCount"))
			Expect(status.RequestId).NotTo(BeNil())
			Expect(*status.RequestId).To(Equal("req-1"))
		})

		It("rejects a zero store count", func() {
			rec := do(http.MethodGet, "/api/v1/analytics?storeCount=0", "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeStatus(rec).Message).To(Equal("storeCount must be greater than 0"))
		})
	})

	Context("POST /api/v1/analytics", func() {
		It("applies live metrics from the body", func() {
			rec := do(http.MethodPost, "/api/v1/analytics", `{"liveMetrics":{"costSavings":2000},"storeCount":1}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			report := decodeReport(rec)
			Expect(report.BaseMetrics.CostSavingsPerStorePerDay).To(Equal(2000.0))
			Expect(report.BaseMetrics.Efficiency).To(Equal(88.0))
			Expect(report.Inputs.StoreCount).To(Equal(1))
		})

		It("accepts an empty body", func() {
			rec := do(http.MethodPost, "/api/v1/analytics", "")

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("rejects malformed JSON", func() {
			rec := do(http.MethodPost, "/api/v1/analytics", `{"storeCount":`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeStatus(rec).Message).To(HavePrefix("invalid request body"))
		})

		It("rejects an out of range efficiency", func() {
			rec := do(http.MethodPost, "/api/v1/analytics", `{"liveMetrics":{"efficiency":150}}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeStatus(rec).Message).To(Equal("liveMetrics.efficiency must be less than or equal to 100"))
		})

		It("reports an undefined ROI as null", func() {
			router = newRouter(analytics.WithImplementationCostPerStore(0))

			rec := do(http.MethodPost, "/api/v1/analytics", `{}`)

			Expect(rec.Code).To(Equal(http.StatusOK))
			report := decodeReport(rec)
			Expect(report.Roi.Defined).To(BeFalse())
			Expect(report.Roi.RoiPercent).To(BeNil())
			Expect(report.Roi.Reason).NotTo(BeNil())
			Expect(report.RolloutPlan.BreakEvenMonths).To(BeNil())
		})
	})

	Context("POST /api/v1/analytics/report", func() {
		DescribeTable("serves the report as an attachment",
			func(format, contentType string) {
				rec := do(http.MethodPost, "/api/v1/analytics/report?format="+format, `{"storeCount":100}`)

				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(rec.Header().Get("Content-Type")).To(HavePrefix(contentType))
				Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="layout-analytics-report.` + strings.ToLower(format) + `"`))
				Expect(rec.Body.Len()).To(BeNumerically(">", 0))
			},
			Entry("csv", "csv", "text/csv"),
			Entry("html", "html", "text/html"),
			Entry("xlsx", "xlsx", "application/vnd.openxmlformats"),
			Entry("upper case format", "CSV", "text/csv"),
		)

		It("rejects an unknown format", func() {
			rec := do(http.MethodPost, "/api/v1/analytics/report?format=pdf", "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeStatus(rec).Message).To(ContainSubstring("csv, html, xlsx"))
		})

		It("requires a format", func() {
			rec := do(http.MethodPost, "/api/v1/analytics/report", "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeStatus(rec).Message).To(Equal("format is required"))
		})

		It("validates the body", func() {
			rec := do(http.MethodPost, "/api/v1/analytics/report?format=csv", `{"dailyOrders":-1}`)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(bytes.Contains(rec.Body.Bytes(), []byte("dailyOrders"))).To(BeTrue())
		})
	})

	Context("GET /health", func() {
		It("returns 200", func() {
			rec := do(http.MethodGet, "/health", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
