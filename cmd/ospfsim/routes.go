package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ospfsim/report"
	"github.com/katalvlaran/ospfsim/spf"
)

// routesCmd generates the per-router routing tables.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Generate routing tables for every router",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTopology()
		if err != nil {
			return err
		}

		all, err := spf.ComputeAllPairs(t, traceOptions()...)
		if err != nil {
			return err
		}

		return report.WriteRoutingTables(os.Stdout, t, all)
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
