package main

import (
	"os"

	"github.com/layoutlab/warehouse-analytics/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewLayoutAnalyticsCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewLayoutAnalyticsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout-analytics [flags] [options]",
		Short: "layout-analytics derives warehouse layout savings, ROI and rollout projections.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdEvaluate())
	cmd.AddCommand(cli.NewCmdReport())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
