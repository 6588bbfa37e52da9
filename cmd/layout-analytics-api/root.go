package main

import (
	"github.com/layoutlab/warehouse-analytics/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "layout-analytics-api",
	Short: "Serve the warehouse layout analytics API",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cli.NewCmdVersion())
}
