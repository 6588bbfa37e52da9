package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service/report"
	csvrenderer "github.com/layoutlab/warehouse-analytics/internal/service/report/csv"
	htmlrenderer "github.com/layoutlab/warehouse-analytics/internal/service/report/html"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
	xlsxrenderer "github.com/layoutlab/warehouse-analytics/internal/service/report/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var fixedClock = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

func defaultReportData(t *testing.T, opts ...analytics.EngineOption) *types.ReportData {
	t.Helper()
	r, err := analytics.NewEngine(opts...).Evaluate(nil, analytics.Inputs{
		StoreCount:  analytics.DefaultStoreCount,
		DailyOrders: analytics.DefaultDailyOrders,
	})
	require.NoError(t, err)
	return report.NewStandardAnalyticsProcessor().WithClock(fixedClock).Process(r)
}

func findSection(data *types.ReportData, title string) *types.Section {
	for i := range data.Sections {
		if data.Sections[i].Title == title {
			return &data.Sections[i]
		}
	}
	return nil
}

func TestProcess_Sections(t *testing.T) {
	data := defaultReportData(t)

	assert.Equal(t, "2026-03-14", data.Timestamps.Generated)
	assert.Equal(t, "09:30:00", data.Timestamps.GeneratedTime)
	require.Len(t, data.Sections, 9)

	layouts := findSection(data, types.SectionLayouts)
	require.NotNil(t, layouts)
	require.Len(t, layouts.Rows, 3)
	assert.Equal(t, "Layout 1", layouts.Rows[0][0])
	assert.Equal(t, 1500.0, layouts.Rows[0][4])

	seasonal := findSection(data, types.SectionSeasonal)
	require.NotNil(t, seasonal)
	assert.Equal(t, "Black Friday", seasonal.Rows[1][0])

	plan := findSection(data, types.SectionPlan)
	require.NotNil(t, plan)
	assert.Equal(t, []any{"Pilot", "1-2", 50}, plan.Rows[0])
	assert.Equal(t, []any{"Full Deployment", "7-12", 4700}, plan.Rows[2])
}

func TestProcess_UndefinedROI(t *testing.T) {
	data := defaultReportData(t, analytics.WithImplementationCostPerStore(0))

	roi := findSection(data, types.SectionROI)
	require.NotNil(t, roi)
	assert.Equal(t, []any{"ROI (%)", analytics.NotAvailable}, roi.Rows[4])
	assert.Equal(t, []any{"Break-even (months)", analytics.NotAvailable}, roi.Rows[5])
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "83.6", types.CellString(83.6))
	assert.Equal(t, "2299", types.CellString(2200*1.045))
	assert.Equal(t, "885.52", types.CellString(885.5191))
	assert.Equal(t, "4700", types.CellString(4700))
	assert.Equal(t, "N/A", types.CellString("N/A"))
}

func TestCSVRenderer(t *testing.T) {
	r := csvrenderer.NewRenderer()
	assert.Equal(t, types.ReportFormatCSV, r.SupportedFormat())

	out, err := r.Render(defaultReportData(t))
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(out))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"WAREHOUSE LAYOUT ANALYTICS REPORT"}, rows[0])
	assert.Equal(t, []string{"Generated: 2026-03-14 at 09:30:00"}, rows[1])
	assert.Contains(t, rows, []string{"LAYOUT PERFORMANCE"})
	assert.Contains(t, rows, []string{"Layout 2", "83.6", "2299", "34.98", "1350", "44"})
	assert.Contains(t, rows, []string{"Black Friday", "101", "2500", "1875"})
	assert.Contains(t, rows, []string{"Total Annual Savings", "2315925000"})
}

func TestHTMLRenderer(t *testing.T) {
	r := htmlrenderer.NewRenderer()
	assert.Equal(t, types.ReportFormatHTML, r.SupportedFormat())
	assert.True(t, strings.HasPrefix(r.ContentType(), "text/html"))

	out, err := r.Render(defaultReportData(t))
	require.NoError(t, err)

	page := string(out)
	assert.Contains(t, page, "<title>Warehouse Layout Analytics Report</title>")
	assert.Contains(t, page, "Best Layout: Layout 1")
	assert.Contains(t, page, "$2.6B")
	assert.Contains(t, page, "885.5%")
	assert.Contains(t, page, "1.2 months")
	assert.Contains(t, page, "4,700,000")
	assert.Contains(t, page, "<li>Implement Layout 1 across all stores for $2.6B annual savings</li>")
}

func TestHTMLRenderer_RequiresReport(t *testing.T) {
	_, err := htmlrenderer.NewRenderer().Render(&types.ReportData{})
	assert.Error(t, err)
}

func TestXLSXRenderer(t *testing.T) {
	r := xlsxrenderer.NewRenderer()
	assert.Equal(t, types.ReportFormatXLSX, r.SupportedFormat())

	out, err := r.Render(defaultReportData(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Equal(t, "Summary", sheets[0])
	assert.Contains(t, sheets, types.SectionLayouts)
	assert.Contains(t, sheets, types.SectionRecommendations)

	rows, err := f.GetRows(types.SectionLayouts)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Layout", rows[0][0])
	assert.Equal(t, "Layout 3", rows[3][0])

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse Layout Analytics Report", title)
}
