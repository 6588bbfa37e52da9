package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"WAREHOUSE LAYOUT ANALYTICS REPORT"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	for _, section := range data.Sections {
		csvRows = r.addSection(csvRows, section)
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addSection(csvRows [][]string, section types.Section) [][]string {
	csvRows = append(csvRows, []string{strings.ToUpper(section.Title)})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, section.Header)

	for _, row := range section.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, types.CellString(cell))
		}
		csvRows = append(csvRows, cells)
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}
