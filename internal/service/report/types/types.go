package types

import (
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ReportProcessor interface {
	Process(report *analytics.Report) *ReportData
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// SupportedFormats lists every format a renderer exists for, in display order.
var SupportedFormats = []ReportFormat{ReportFormatCSV, ReportFormatHTML, ReportFormatXLSX}

// Section titles, in report order.
const (
	SectionKeyMetrics      = "Key Metrics"
	SectionLayouts         = "Layout Performance"
	SectionRanking         = "Layout Ranking"
	SectionSeasonal        = "Seasonal Performance"
	SectionROI             = "ROI Projection"
	SectionRollout         = "Rollout Impact"
	SectionCarbon          = "Carbon Breakdown"
	SectionPlan            = "Rollout Plan"
	SectionRecommendations = "Recommendations"
)

type ReportData struct {
	Report     *analytics.Report
	Sections   []Section
	Timestamps ReportTimestamps
}

// Section is one titled table of the report. Cells are strings, ints or float64s;
// tabular renderers keep numbers as numbers.
type Section struct {
	Title  string
	Header []string
	Rows   [][]any
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}
