package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ospfsim/hosts"
	"github.com/katalvlaran/ospfsim/spf"
)

// pathCmd answers a host-to-host route query using the built-in binding of
// end hosts to campus routers.
var pathCmd = &cobra.Command{
	Use:   "path <src-host> <dst-host>",
	Short: "Find the route between two end hosts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTopology()
		if err != nil {
			return err
		}

		all, err := spf.ComputeAllPairs(t, traceOptions()...)
		if err != nil {
			return err
		}

		binding := hosts.DefaultBinding()
		hr, err := hosts.Route(binding, t, all, args[0], args[1])
		if err != nil {
			return fmt.Errorf("%w (valid hosts: %s)", err, strings.Join(binding.Hosts(), ", "))
		}

		switch {
		case hr.SameRouter:
			fmt.Printf("%s and %s share router %s; no routing needed\n",
				hr.SrcHost, hr.DstHost, hr.SrcRouter)
		case hr.Unreachable:
			fmt.Printf("no route between %s (%s) and %s (%s)\n",
				hr.SrcHost, hr.SrcRouter, hr.DstHost, hr.DstRouter)
		default:
			fmt.Printf("Source:      %s (router %s)\n", hr.SrcHost, hr.SrcRouter)
			fmt.Printf("Destination: %s (router %s)\n", hr.DstHost, hr.DstRouter)
			fmt.Printf("Path:        %s\n", strings.Join(hr.Path, " → "))
			fmt.Printf("Hops:        %d\n", hr.Hops)
			fmt.Printf("Total cost:  %v\n", hr.Cost)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
