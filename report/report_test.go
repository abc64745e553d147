// Package report_test contains unit tests for report rendering and
// reference-data comparison.
package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ospfsim/metrics"
	"github.com/katalvlaran/ospfsim/report"
	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

// fixture computes routing state and metrics for the multi-campus network.
func fixture(t *testing.T) (*topology.Topology, spf.AllPairs, metrics.RouteTable) {
	t.Helper()
	tp := topology.MultiCampus()
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)
	table, err := metrics.ComputeRouteTable(tp, all, metrics.DefaultParams())
	require.NoError(t, err)

	return tp, all, table
}

func TestWriteRoutingTables(t *testing.T) {
	tp, all, _ := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteRoutingTables(&buf, tp, all))
	out := buf.String()

	// One table per router.
	assert.Equal(t, 12, strings.Count(out, "ROUTING TABLE FOR"))
	// Spot-check a known route: R0 reaches R5 via next hop R6.
	assert.Contains(t, out, "R0 → R6 → R7 → R9 → R10 → R11 → R5")
	// Connected topology: nothing renders unreachable.
	assert.NotContains(t, out, "Unreachable")
}

func TestWriteRoutingTables_UnreachableRendering(t *testing.T) {
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("A", "B", topology.DefaultLinkAttrs()))
	require.NoError(t, tp.AddBiLink("C", "D", topology.DefaultLinkAttrs()))
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteRoutingTables(&buf, tp, all))

	assert.Contains(t, buf.String(), "∞")
	assert.Contains(t, buf.String(), "Unreachable")
}

func TestWriteMetrics_WithoutReference(t *testing.T) {
	_, _, table := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMetrics(&buf, table, nil))
	out := buf.String()

	// Reference columns degrade to N/A, never abort.
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Route: R0 -> R11")
	assert.Contains(t, out, "Effective throughput (Mbps): 792")
}

func TestWriteMetrics_WithReference(t *testing.T) {
	_, _, table := fixture(t)

	// Reference matching the model for R0→R6, off by 2x for throughput.
	rm := table[metrics.RouteKey{Source: "R0", Destination: "R6"}]
	ref := report.Reference{
		{Source: "R0", Destination: "R6"}: {
			DelayMs:        rm.Delay.TotalMs,
			ThroughputMbps: rm.ThroughputMbps / 2,
			Cost:           64,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteMetrics(&buf, table, ref))
	out := buf.String()

	assert.Contains(t, out, "0.00%")   // delay error: exact match
	assert.Contains(t, out, "100.00%") // throughput error: double the baseline
}

func TestLoadReferenceCSV(t *testing.T) {
	csvData := `Source,Destination,PT_Delay_ms,PT_Throughput_Mbps,PT_OSPF_Cost
R0,R6,3.27,792,64
R0,R7,,,128
`
	ref, err := report.LoadReferenceCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, ref, 2)

	rec := ref[metrics.RouteKey{Source: "R0", Destination: "R6"}]
	assert.Equal(t, 3.27, rec.DelayMs)
	assert.Equal(t, 792.0, rec.ThroughputMbps)
	assert.Equal(t, 64.0, rec.Cost)

	// Empty metric fields degrade to 0.
	rec = ref[metrics.RouteKey{Source: "R0", Destination: "R7"}]
	assert.Zero(t, rec.DelayMs)
	assert.Equal(t, 128.0, rec.Cost)
}

func TestLoadReferenceCSV_MissingColumns(t *testing.T) {
	_, err := report.LoadReferenceCSV(strings.NewReader("Src,Dst\nA,B\n"))
	assert.ErrorIs(t, err, report.ErrMissingColumns)
}

func TestPercentError(t *testing.T) {
	pe, ok := report.PercentError(11, 10)
	require.True(t, ok)
	assert.InDelta(t, 10.0, pe, 1e-9)

	// No baseline → no percentage.
	_, ok = report.PercentError(11, 0)
	assert.False(t, ok)
}

func TestCompareCosts(t *testing.T) {
	_, all, _ := fixture(t)

	ref := report.Reference{
		{Source: "R0", Destination: "R6"}:  {Cost: 64},  // match
		{Source: "R0", Destination: "R7"}:  {Cost: 999}, // mismatch
		{Source: "R0", Destination: "R11"}: {Cost: 320}, // match
	}

	cmp := report.CompareCosts(all, ref)
	require.Len(t, cmp.Rows, 3)
	assert.Equal(t, 2, cmp.Matches)
	assert.InDelta(t, 66.7, cmp.Accuracy(), 0.1)

	// Rows come out sorted by (source, destination).
	assert.Equal(t, "R11", cmp.Rows[0].Key.Destination)
	assert.True(t, cmp.Rows[0].Match)

	var buf bytes.Buffer
	report.WriteCostComparison(&buf, cmp)
	assert.Contains(t, buf.String(), "MISMATCH")
	assert.Contains(t, buf.String(), "66.7%")
}

func TestCompareCosts_NoRoute(t *testing.T) {
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("A", "B", topology.DefaultLinkAttrs()))
	require.NoError(t, tp.AddBiLink("C", "D", topology.DefaultLinkAttrs()))
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	cmp := report.CompareCosts(all, report.Reference{
		{Source: "A", Destination: "C"}: {Cost: 64},
	})
	require.Len(t, cmp.Rows, 1)
	assert.True(t, cmp.Rows[0].NoRoute)
	assert.Zero(t, cmp.Matches)

	var buf bytes.Buffer
	report.WriteCostComparison(&buf, cmp)
	assert.Contains(t, buf.String(), "NO ROUTE")
}

func TestWriteTopology(t *testing.T) {
	tp, _, _ := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTopology(&buf, tp))

	// Title + rule + column header + one line per arc.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3+24)
	assert.Contains(t, buf.String(), "R0         R6")
}