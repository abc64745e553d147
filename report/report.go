// Package report renders computed routing state and route metrics into
// human-readable reports, and compares the model's numbers against an
// externally supplied reference dataset.
//
// Rendering policy: unreachable destinations print as "∞" / "Unreachable";
// absent reference fields print as "N/A". Missing data degrades the output,
// never the run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/ospfsim/metrics"
	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

const rule = "----------------------------------------------------------------------"

// WriteRoutingTables renders one routing table per router: destination,
// summed cost, next hop, and the full path. Unreachable destinations render
// as "∞ / Unreachable" instead of being dropped.
func WriteRoutingTables(w io.Writer, t *topology.Topology, all spf.AllPairs) error {
	if t == nil {
		return metrics.ErrNilTopology
	}

	nodes := t.Nodes()
	for _, router := range nodes {
		routes, ok := all[router]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "ROUTING TABLE FOR %s\n%s\n", router, rule)
		fmt.Fprintf(w, "%-15s %-10s %-12s %s\n", "Destination", "Cost", "Next Hop", "Path")

		for _, dest := range nodes {
			if dest == router {
				continue
			}
			path, reachable := routes.Paths[dest]
			if !reachable {
				fmt.Fprintf(w, "%-15s %-10s %-12s %s\n", dest, "∞", "N/A", "Unreachable")
				continue
			}
			fmt.Fprintf(w, "%-15s %-10v %-12s %s\n",
				dest, routes.Dist[dest], path[1], strings.Join(path, " → "))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// WriteMetrics renders the route metrics table: a summary grid with
// reference columns (percentage error against ref, N/A when no record or no
// baseline exists), followed by a per-route breakdown of the delay
// decomposition and bandwidth profile. A nil ref renders all reference
// columns as N/A.
func WriteMetrics(w io.Writer, table metrics.RouteTable, ref Reference) error {
	keys := sortedKeys(table)

	fmt.Fprintf(w, "NETWORK PERFORMANCE METRICS\n%s\n", rule)
	fmt.Fprintf(w, "%-6s %-6s %4s %9s %13s %13s %10s %14s %10s\n",
		"SRC", "DST", "HOPS", "COST", "DELAY(ms)", "REF_DELAY", "%ERR_DELAY", "TPUT(Mbps)", "%ERR_TPUT")

	for _, key := range keys {
		rm := table[key]
		if rm.Unreachable {
			fmt.Fprintf(w, "%-6s %-6s %4d %9s %13s %13s %10s %14s %10s\n",
				key.Source, key.Destination, 0, "∞", "N/A", "N/A", "N/A", "N/A", "N/A")
			continue
		}

		refDelay, errDelay, errTput := "N/A", "N/A", "N/A"
		if rec, ok := ref[key]; ok {
			if rec.DelayMs != 0 {
				refDelay = fmt.Sprintf("%.4f", rec.DelayMs)
			}
			if pe, ok := PercentError(rm.Delay.TotalMs, rec.DelayMs); ok {
				errDelay = fmt.Sprintf("%.2f%%", pe)
			}
			if pe, ok := PercentError(rm.ThroughputMbps, rec.ThroughputMbps); ok {
				errTput = fmt.Sprintf("%.2f%%", pe)
			}
		}

		fmt.Fprintf(w, "%-6s %-6s %4d %9v %13.4f %13s %10s %14.2f %10s\n",
			key.Source, key.Destination, rm.Hops, rm.Cost,
			rm.Delay.TotalMs, refDelay, errDelay, rm.ThroughputMbps, errTput)
	}

	// Per-route breakdown.
	for _, key := range keys {
		rm := table[key]
		fmt.Fprintf(w, "\nRoute: %s -> %s\n", key.Source, key.Destination)
		if rm.Unreachable {
			fmt.Fprintln(w, "  Unreachable")
			continue
		}
		fmt.Fprintf(w, "  Path: %s\n", strings.Join(rm.Path, " -> "))
		fmt.Fprintf(w, "  Hops: %d\n", rm.Hops)
		fmt.Fprintf(w, "  Cost (sum of link costs): %v\n", rm.Cost)
		d := rm.Delay
		fmt.Fprintf(w, "  Delay (ms): total=%v, prop=%v, tx=%v, proc=%v, queue=%v\n",
			d.TotalMs, d.PropagationMs, d.TransmissionMs, d.ProcessingMs, d.QueuingMs)
		fmt.Fprintf(w, "  Path link bandwidths (Mbps): %v\n", rm.PathBandwidthsMbps)
		fmt.Fprintf(w, "  Effective throughput (Mbps): %v\n", rm.ThroughputMbps)
	}

	return nil
}

// WriteCostComparison renders the reference-vs-computed cost table with the
// final accuracy line.
func WriteCostComparison(w io.Writer, cmp CostComparison) {
	fmt.Fprintf(w, "VALIDATION: COMPUTED vs REFERENCE COSTS\n%s\n", rule)
	fmt.Fprintf(w, "%-20s %-12s %-15s %s\n", "Route", "Ref Cost", "Computed Cost", "Status")

	for _, row := range cmp.Rows {
		route := fmt.Sprintf("%s→%s", row.Key.Source, row.Key.Destination)
		switch {
		case row.NoRoute:
			fmt.Fprintf(w, "%-20s %-12v %-15s %s\n", route, row.RefCost, "∞", "NO ROUTE")
		case row.Match:
			fmt.Fprintf(w, "%-20s %-12v %-15v %s\n", route, row.RefCost, row.Cost, "MATCH")
		default:
			fmt.Fprintf(w, "%-20s %-12v %-15v %s\n", route, row.RefCost, row.Cost, "MISMATCH")
		}
	}

	fmt.Fprintf(w, "%s\nACCURACY: %.1f%% (%d/%d routes matched)\n",
		rule, cmp.Accuracy(), cmp.Matches, len(cmp.Rows))
}

// WriteTopology renders the link listing: one line per directed arc.
func WriteTopology(w io.Writer, t *topology.Topology) error {
	if t == nil {
		return metrics.ErrNilTopology
	}

	fmt.Fprintf(w, "NETWORK TOPOLOGY\n%s\n", rule)
	fmt.Fprintf(w, "%-10s %-10s %8s %12s %10s\n", "Router", "Neighbor", "Cost", "Distance", "Bandwidth")

	for _, from := range t.Nodes() {
		ids, err := t.NeighborIDs(from)
		if err != nil {
			return err
		}
		nbrs, err := t.Neighbors(from)
		if err != nil {
			return err
		}
		for _, to := range ids {
			attrs := nbrs[to]
			fmt.Fprintf(w, "%-10s %-10s %8v %10v km %5v Mbps\n",
				from, to, attrs.Cost, attrs.DistanceKm, attrs.BandwidthMbps)
		}
	}

	return nil
}

// sortedKeys returns the table keys ordered by (source, destination).
func sortedKeys(table metrics.RouteTable) []metrics.RouteKey {
	keys := make([]metrics.RouteKey, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Source != keys[j].Source {
			return keys[i].Source < keys[j].Source
		}

		return keys[i].Destination < keys[j].Destination
	})

	return keys
}
