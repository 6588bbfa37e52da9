package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/internal/service/report/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

type ReportOptions struct {
	GlobalOptions

	Format string
	Out    string
}

func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        string(types.ReportFormatCSV),
	}
}

func NewCmdReport() *cobra.Command {
	o := DefaultReportOptions()
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the analytics report to a file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Report format. One of: (%s).", strings.Join(reportFormats(), ", ")))
	fs.StringVar(&o.Out, "out", o.Out, "Output file path. Defaults to layout-analytics-report.<format> in the current directory.")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.Format = strings.ToLower(o.Format)
	if o.Out == "" {
		o.Out = service.RenderedReport{Format: types.ReportFormat(o.Format)}.Filename()
	}
	return nil
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.ContainsString(reportFormats(), o.Format) {
		return fmt.Errorf("report format must be one of %s", strings.Join(reportFormats(), ", "))
	}

	return nil
}

func (o *ReportOptions) Run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := o.Request(ctx)
	if err != nil {
		return err
	}

	rendered, err := o.Service().GenerateReport(ctx, req, types.ReportFormat(o.Format))
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	if err := os.WriteFile(o.Out, rendered.Content, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	_, err = fmt.Fprintf(out, "Report written to %s (%d bytes)\n", o.Out, len(rendered.Content))
	return err
}

func reportFormats() []string {
	formats := make([]string, 0, len(types.SupportedFormats))
	for _, f := range types.SupportedFormats {
		formats = append(formats, string(f))
	}
	return formats
}
