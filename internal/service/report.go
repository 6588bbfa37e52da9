package service

import (
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service/report"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/csv"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/html"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/xlsx"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportData = types.ReportData

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatHTML = types.ReportFormatHTML
	ReportFormatXLSX = types.ReportFormatXLSX
)

// RenderedReport is a report file ready to be written or served.
type RenderedReport struct {
	Format      ReportFormat
	ContentType string
	Content     []byte
}

// Filename is the download name of the report.
func (r RenderedReport) Filename() string {
	return "layout-analytics-report." + string(r.Format)
}

type ReportService struct {
	processor types.ReportProcessor
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	return newReportService(report.NewStandardAnalyticsProcessor())
}

func newReportService(processor types.ReportProcessor) *ReportService {
	service := &ReportService{
		processor: processor,
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, r := range []types.ReportRenderer{csv.NewRenderer(), html.NewRenderer(), xlsx.NewRenderer()} {
		service.renderers[r.SupportedFormat()] = r
	}

	return service
}

// Supports reports whether a renderer exists for format.
func (r *ReportService) Supports(format ReportFormat) bool {
	_, ok := r.renderers[format]
	return ok
}

func (r *ReportService) GenerateReport(result *analytics.Report, format ReportFormat) (*RenderedReport, error) {
	renderer, exists := r.renderers[format]
	if !exists {
		return nil, NewErrUnsupportedFormat(string(format))
	}

	content, err := renderer.Render(r.processor.Process(result))
	if err != nil {
		return nil, err
	}

	return &RenderedReport{
		Format:      format,
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}
