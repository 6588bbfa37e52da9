package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/handlers/v1alpha1/mappers"
	"github.com/layoutlab/warehouse-analytics/internal/service/report"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	tableFormat = "table"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat, tableFormat}
)

func printReport(w io.Writer, r *analytics.Report, output string) error {
	switch output {
	case jsonFormat:
		data, err := json.MarshalIndent(mappers.AnalyticsReportToApi(r), "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case yamlFormat:
		data, err := yaml.Marshal(mappers.AnalyticsReportToApi(r))
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	default:
		return printReportTable(w, r)
	}
}

func printReportTable(w io.Writer, r *analytics.Report) error {
	data := report.NewStandardAnalyticsProcessor().Process(r)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, section := range data.Sections {
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(section.Title))
		fmt.Fprintln(tw, strings.Join(section.Header, "\t"))
		for _, row := range section.Rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				cells = append(cells, types.CellString(c))
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
