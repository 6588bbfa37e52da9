package service_test

import (
	"context"
	"errors"
	"strings"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/pkg/requestid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func intPtr(v int) *int { return &v }

var _ = Describe("AnalyticsService", func() {
	var (
		srv *service.AnalyticsService
		ctx context.Context
	)

	BeforeEach(func() {
		srv = service.NewAnalyticsService(analytics.NewEngine(), analytics.Inputs{
			StoreCount:  analytics.DefaultStoreCount,
			DailyOrders: analytics.DefaultDailyOrders,
		})
		ctx = requestid.ToContext(context.Background(), "test-request")
	})

	Describe("Evaluate", func() {
		Context("with default inputs", func() {
			It("evaluates the default fleet", func() {
				report, err := srv.Evaluate(ctx, service.AnalyticsRequest{})

				Expect(err).To(BeNil())
				Expect(report.Inputs.StoreCount).To(Equal(4700))
				Expect(report.Layouts).To(HaveLen(3))
				Expect(report.ROI.Defined).To(BeTrue())
				Expect(report.ROI.Projection.TotalAnnualSavings).To(Equal(2315925000.0))
				Expect(report.ROI.Projection.RoiPercent).To(BeNumerically("~", 885.5, 1e-6))
				Expect(report.Rollout.BestLayout.Name).To(Equal("Layout 1"))
			})
		})

		Context("with request overrides", func() {
			It("uses the request store count and daily orders", func() {
				report, err := srv.Evaluate(ctx, service.AnalyticsRequest{
					StoreCount:  intPtr(10),
					DailyOrders: intPtr(20),
				})

				Expect(err).To(BeNil())
				Expect(report.Inputs).To(Equal(analytics.Inputs{StoreCount: 10, DailyOrders: 20}))
				Expect(report.KeyMetrics.DailyOrdersTotal).To(Equal(200))
			})

			It("applies live metrics", func() {
				efficiency := 90.0
				report, err := srv.Evaluate(ctx, service.AnalyticsRequest{
					Live: &analytics.LiveMetrics{Efficiency: &efficiency},
				})

				Expect(err).To(BeNil())
				Expect(report.Base.Efficiency).To(Equal(90.0))
				Expect(report.Layouts[0].Efficiency).To(Equal(90.0))
			})
		})

		Context("with invalid inputs", func() {
			It("rejects a non-positive store count", func() {
				_, err := srv.Evaluate(ctx, service.AnalyticsRequest{StoreCount: intPtr(0)})

				var invalid *service.ErrInvalidInput
				Expect(errors.As(err, &invalid)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("storeCount"))
			})

			It("rejects negative daily orders", func() {
				_, err := srv.Evaluate(ctx, service.AnalyticsRequest{DailyOrders: intPtr(-5)})

				var invalid *service.ErrInvalidInput
				Expect(errors.As(err, &invalid)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("dailyOrders"))
			})
		})

		Context("with a zero implementation cost", func() {
			It("reports an undefined ROI without failing", func() {
				srv = service.NewAnalyticsService(
					analytics.NewEngine(analytics.WithImplementationCostPerStore(0)),
					analytics.Inputs{StoreCount: 100, DailyOrders: 10},
				)

				report, err := srv.Evaluate(ctx, service.AnalyticsRequest{})

				Expect(err).To(BeNil())
				Expect(report.ROI.Defined).To(BeFalse())
				Expect(report.ROI.Reason).To(ContainSubstring("roi undefined"))
				Expect(report.Plan.BreakEvenMonths).To(BeNil())
			})
		})

		Context("with a cancelled context", func() {
			It("returns the context error", func() {
				cctx, cancel := context.WithCancel(ctx)
				cancel()

				_, err := srv.Evaluate(cctx, service.AnalyticsRequest{})
				Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			})
		})
	})

	Describe("GenerateReport", func() {
		DescribeTable("renders every supported format",
			func(format service.ReportFormat, contentType string, marker string) {
				rendered, err := srv.GenerateReport(ctx, service.AnalyticsRequest{}, format)

				Expect(err).To(BeNil())
				Expect(rendered.Format).To(Equal(format))
				Expect(rendered.ContentType).To(HavePrefix(contentType))
				Expect(rendered.Filename()).To(Equal("layout-analytics-report." + string(format)))
				Expect(string(rendered.Content)).To(ContainSubstring(marker))
			},
			Entry("csv", service.ReportFormatCSV, "text/csv", "WAREHOUSE LAYOUT ANALYTICS REPORT"),
			Entry("html", service.ReportFormatHTML, "text/html", "Warehouse Layout Analytics Report"),
			// xlsx is a zip archive
			Entry("xlsx", service.ReportFormatXLSX, "application/vnd.openxmlformats", "PK"),
		)

		It("rejects an unknown format", func() {
			_, err := srv.GenerateReport(ctx, service.AnalyticsRequest{}, service.ReportFormat("pdf"))

			var unsupported *service.ErrUnsupportedFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
			Expect(strings.Contains(err.Error(), "csv, html, xlsx")).To(BeTrue())
		})

		It("propagates input validation errors", func() {
			_, err := srv.GenerateReport(ctx, service.AnalyticsRequest{StoreCount: intPtr(-1)}, service.ReportFormatCSV)

			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})
	})
})
