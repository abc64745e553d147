package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ospfsim/report"
)

// topologyCmd prints the link listing of the active topology.
var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Display the network topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTopology()
		if err != nil {
			return err
		}

		return report.WriteTopology(os.Stdout, t)
	},
}

func init() {
	rootCmd.AddCommand(topologyCmd)
}
