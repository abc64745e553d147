package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ospfsim/metrics"
	"github.com/katalvlaran/ospfsim/report"
	"github.com/katalvlaran/ospfsim/spf"
)

var (
	packetSize float64
	workers    int
	refPath    string
	outPath    string
)

// metricsCmd derives per-route performance metrics, optionally comparing
// them against an external reference CSV.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute per-route delay and throughput estimates",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTopology()
		if err != nil {
			return err
		}

		opts := traceOptions()
		if workers > 1 {
			// Tracing would interleave across workers; parallel wins.
			opts = []spf.Option{spf.WithWorkers(workers)}
		}
		all, err := spf.ComputeAllPairs(t, opts...)
		if err != nil {
			return err
		}

		params := metrics.DefaultParams()
		params.PacketSizeBytes = packetSize
		table, err := metrics.ComputeRouteTable(t, all, params)
		if err != nil {
			return err
		}

		ref := loadReference()

		out := io.Writer(os.Stdout)
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err = report.WriteMetrics(out, table, ref); err != nil {
			return err
		}
		if len(ref) > 0 {
			fmt.Fprintln(out)
			report.WriteCostComparison(out, report.CompareCosts(all, ref))
		}
		if outPath != "" {
			slog.Info("metrics report written", "file", outPath, "routes", len(table))
		}

		return nil
	},
}

// loadReference reads the optional reference CSV. Absence or unreadability
// degrades to an empty reference — the report renders N/A columns instead
// of failing.
func loadReference() report.Reference {
	if refPath == "" {
		return nil
	}

	f, err := os.Open(refPath)
	if err != nil {
		slog.Warn("reference CSV not readable, reporting without comparison", "file", refPath, "err", err)

		return nil
	}
	defer f.Close()

	ref, err := report.LoadReferenceCSV(f)
	if err != nil {
		slog.Warn("reference CSV malformed, reporting without comparison", "file", refPath, "err", err)

		return nil
	}
	slog.Debug("reference loaded", "file", refPath, "records", len(ref))

	return ref
}

func init() {
	metricsCmd.Flags().Float64Var(&packetSize, "packet-size", metrics.DefaultPacketSizeBytes,
		"modeled packet size in bytes")
	metricsCmd.Flags().IntVar(&workers, "workers", 1,
		"concurrent single-source computations")
	metricsCmd.Flags().StringVar(&refPath, "reference", "",
		"reference CSV (Source,Destination,PT_Delay_ms,PT_Throughput_Mbps,PT_OSPF_Cost)")
	metricsCmd.Flags().StringVarP(&outPath, "out", "o", "",
		"write the report to a file instead of stdout")
	rootCmd.AddCommand(metricsCmd)
}
