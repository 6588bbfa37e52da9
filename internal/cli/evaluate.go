package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

type EvaluateOptions struct {
	GlobalOptions

	Output string
}

func DefaultEvaluateOptions() *EvaluateOptions {
	return &EvaluateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        tableFormat,
	}
}

func NewCmdEvaluate() *cobra.Command {
	o := DefaultEvaluateOptions()
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate layout analytics for the fleet.",
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

func (o *EvaluateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *EvaluateOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *EvaluateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *EvaluateOptions) Run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := o.Request(ctx)
	if err != nil {
		return err
	}

	report, err := o.Service().Evaluate(ctx, req)
	if err != nil {
		return fmt.Errorf("evaluating analytics: %w", err)
	}

	return printReport(out, report, o.Output)
}
