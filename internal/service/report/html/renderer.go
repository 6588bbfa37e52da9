package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
)

type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the report template once. It panics if the built-in template is invalid.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"currency": analytics.FormatCurrency,
		"percent":  func(v float64) string { return analytics.FormatPercent(v, 1) },
		"count":    analytics.FormatCount,
		"cell":     types.CellString,
	}).Parse(htmlReportTemplate))

	return &Renderer{tmpl: tmpl}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type templateData struct {
	CSS             template.CSS
	GeneratedDate   string
	GeneratedTime   string
	KeyMetrics      analytics.KeyMetrics
	BestLayout      string
	PotentialSaving float64
	ROI             string
	BreakEven       string
	Sections        []types.Section
	Recommendations []string
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	if data.Report == nil {
		return nil, fmt.Errorf("report data has no analytics report")
	}
	report := data.Report

	td := templateData{
		CSS:             template.CSS(reportCSS),
		GeneratedDate:   data.Timestamps.Generated,
		GeneratedTime:   data.Timestamps.GeneratedTime,
		KeyMetrics:      report.KeyMetrics,
		BestLayout:      report.Rollout.BestLayout.Name,
		PotentialSaving: report.Rollout.PotentialAnnualSavings,
		ROI:             analytics.NotAvailable,
		BreakEven:       analytics.NotAvailable,
		Recommendations: report.Recommendations,
	}
	if report.ROI.Defined {
		td.ROI = analytics.FormatPercent(report.ROI.Projection.RoiPercent, 1)
	}
	if report.Plan.BreakEvenMonths != nil {
		td.BreakEven = fmt.Sprintf("%.1f months", *report.Plan.BreakEvenMonths)
	}
	// recommendations get their own list
	for _, s := range data.Sections {
		if len(s.Rows) > 0 && s.Title != types.SectionRecommendations {
			td.Sections = append(td.Sections, s)
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

const reportCSS = `
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 40px; }
        .header h1 { color: #2c3e50; margin-bottom: 10px; font-size: 2.2em; }
        .header p { color: #7f8c8d; }
        .summary-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 30px 0; }
        .summary-card { background: #27ae60; color: white; padding: 20px; border-radius: 8px; text-align: center; }
        .summary-card h4 { margin: 0 0 10px 0; font-size: 14px; font-weight: 600; }
        .summary-card .number { font-size: 28px; font-weight: bold; }
        .section { margin: 40px 0; }
        .section h2 { color: #2c3e50; border-left: 4px solid #27ae60; padding-left: 15px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 10px 14px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background: #2c3e50; color: white; }
        tr:nth-child(even) { background-color: #f8f9fa; }
        .recommendations { background: #f8f9fa; border-left: 4px solid #28a745; padding: 20px; border-radius: 0 8px 8px 0; }
        .recommendations li { margin-bottom: 10px; }
        @media print { body { background: white; } .container { box-shadow: none; } }`

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Warehouse Layout Analytics Report</title>
    <style>{{.CSS}}</style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Warehouse Layout Analytics Report</h1>
            <p>Generated: {{.GeneratedDate}} at {{.GeneratedTime}}</p>
        </div>

        <div class="summary-grid">
            <div class="summary-card">
                <h4>Average Efficiency</h4>
                <div class="number">{{percent .KeyMetrics.AverageEfficiency}}</div>
            </div>
            <div class="summary-card">
                <h4>Daily Orders</h4>
                <div class="number">{{count .KeyMetrics.DailyOrdersTotal}}</div>
            </div>
            <div class="summary-card">
                <h4>Carbon Reduction</h4>
                <div class="number">{{percent .KeyMetrics.CarbonReductionPercent}}</div>
            </div>
            <div class="summary-card">
                <h4>Stores Optimized</h4>
                <div class="number">{{count .KeyMetrics.StoresOptimized}}</div>
            </div>
            <div class="summary-card">
                <h4>ROI</h4>
                <div class="number">{{.ROI}}</div>
            </div>
            <div class="summary-card">
                <h4>Break-even</h4>
                <div class="number">{{.BreakEven}}</div>
            </div>
        </div>

        <div class="section">
            <h2>Best Layout: {{.BestLayout}}</h2>
            <p>Potential annual savings across the fleet: <strong>{{currency .PotentialSaving}}</strong></p>
        </div>
{{range .Sections}}
        <div class="section">
            <h2>{{.Title}}</h2>
            <table>
                <thead>
                    <tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
                </thead>
                <tbody>
{{- range .Rows}}
                    <tr>{{range .}}<td>{{cell .}}</td>{{end}}</tr>
{{- end}}
                </tbody>
            </table>
        </div>
{{end}}
{{- if .Recommendations}}
        <div class="recommendations">
            <h3>Recommendations</h3>
            <ol>
{{- range .Recommendations}}
                <li>{{.}}</li>
{{- end}}
            </ol>
        </div>
{{- end}}
    </div>
</body>
</html>
`
