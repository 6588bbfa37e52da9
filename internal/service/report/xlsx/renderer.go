package xlsx

import (
	"bytes"
	"fmt"

	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	defaultSheet = "Sheet1"
)

// Renderer writes one worksheet per report section, after a summary sheet.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := r.writeSummary(f, data, headerStyle); err != nil {
		return nil, err
	}

	for _, section := range data.Sections {
		if err := r.writeSection(f, section, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(f *excelize.File, data *types.ReportData, headerStyle int) error {
	rows := [][]any{
		{"Warehouse Layout Analytics Report"},
		{"Generated", fmt.Sprintf("%s %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
		{},
		{"Sheet", "Rows"},
	}
	for _, s := range data.Sections {
		rows = append(rows, []any{s.Title, len(s.Rows)})
	}

	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}
	return f.SetCellStyle(summarySheet, "A4", "B4", headerStyle)
}

func (r *Renderer) writeSection(f *excelize.File, section types.Section, headerStyle int) error {
	if _, err := f.NewSheet(section.Title); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", section.Title, err)
	}

	header := make([]any, 0, len(section.Header))
	for _, h := range section.Header {
		header = append(header, h)
	}
	if err := writeRows(f, section.Title, append([][]any{header}, section.Rows...)); err != nil {
		return err
	}

	if len(section.Header) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(section.Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(section.Title, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style sheet %q: %w", section.Title, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(section.Header))
	if err != nil {
		return err
	}
	return f.SetColWidth(section.Title, "A", lastCol, 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
