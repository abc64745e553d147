package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ospfsim/topology"
)

var (
	topologyPath string
	verbose      bool
)

// rootCmd is the base command; subcommands share the topology input and
// logging flags.
var rootCmd = &cobra.Command{
	Use:   "ospfsim",
	Short: "Offline OSPF-style SPF routing and route performance estimation",
	Long: `ospfsim runs the shortest-path-first computation of a link-state routing
protocol over a static topology snapshot: per-router routing tables, all-pairs
paths, and derived per-route delay/throughput estimates.

Without --topology, the built-in twelve-router multi-campus network is used.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		})))
	},
}

// Execute runs the root command; called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", "",
		"YAML topology file (default: built-in multi-campus network)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"debug logging, including per-step SPF tracing")
}

// loadTopology returns the topology selected by --topology, or the built-in
// preset, validated either way.
func loadTopology() (*topology.Topology, error) {
	if topologyPath == "" {
		return topology.MultiCampus(), nil
	}

	f, err := os.Open(topologyPath)
	if err != nil {
		return nil, fmt.Errorf("open topology: %w", err)
	}
	defer f.Close()

	t, err := topology.LoadYAML(f)
	if err != nil {
		return nil, err
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("topology loaded", "file", topologyPath, "nodes", t.NodeCount(), "arcs", t.ArcCount())

	return t, nil
}
