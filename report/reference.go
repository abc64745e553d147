package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ospfsim/metrics"
	"github.com/katalvlaran/ospfsim/spf"
)

// Sentinel errors for reference data loading.
var (
	// ErrMissingColumns indicates the CSV header lacks Source/Destination.
	ErrMissingColumns = errors.New("report: reference CSV must have Source and Destination columns")
)

// Reference CSV column names.
const (
	colSource     = "Source"
	colDest       = "Destination"
	colDelay      = "PT_Delay_ms"
	colThroughput = "PT_Throughput_Mbps"
	colCost       = "PT_OSPF_Cost"
)

// ReferenceRecord holds one externally measured route, e.g. exported from a
// Packet Tracer lab, used to gauge the model's accuracy.
type ReferenceRecord struct {
	DelayMs        float64
	ThroughputMbps float64
	Cost           float64
}

// Reference maps ordered pairs to their externally measured records.
type Reference map[metrics.RouteKey]ReferenceRecord

// LoadReferenceCSV parses reference records from CSV with the header
//
//	Source,Destination,PT_Delay_ms,PT_Throughput_Mbps,PT_OSPF_Cost
//
// Metric columns are optional and may hold empty values; both degrade to 0,
// which downstream rendering shows as N/A. Only a missing Source or
// Destination column, or an unreadable row, is an error — absent reference
// data must never abort a report.
func LoadReferenceCSV(r io.Reader) (Reference, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("report: reference header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col[colSource]; !ok {
		return nil, ErrMissingColumns
	}
	if _, ok := col[colDest]; !ok {
		return nil, ErrMissingColumns
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}
	number := func(row []string, name string) float64 {
		v, err := strconv.ParseFloat(field(row, name), 64)
		if err != nil {
			return 0
		}

		return v
	}

	ref := make(Reference)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("report: reference row: %w", err)
		}
		key := metrics.RouteKey{
			Source:      field(row, colSource),
			Destination: field(row, colDest),
		}
		if key.Source == "" || key.Destination == "" {
			continue
		}
		ref[key] = ReferenceRecord{
			DelayMs:        number(row, colDelay),
			ThroughputMbps: number(row, colThroughput),
			Cost:           number(row, colCost),
		}
	}

	return ref, nil
}

// PercentError returns |got−want| / want × 100 and true, or 0 and false when
// want is zero (no meaningful baseline — rendered as N/A).
func PercentError(got, want float64) (float64, bool) {
	if want == 0 {
		return 0, false
	}
	diff := got - want
	if diff < 0 {
		diff = -diff
	}

	return diff / want * 100, true
}

// CostRow is one reference-vs-computed cost comparison.
type CostRow struct {
	Key     metrics.RouteKey
	RefCost float64
	Cost    float64
	Match   bool
	NoRoute bool
}

// CostComparison summarizes computed costs against a reference dataset.
type CostComparison struct {
	Rows    []CostRow
	Matches int
}

// Accuracy returns the match percentage over all compared rows (0 when the
// reference is empty).
func (c CostComparison) Accuracy() float64 {
	if len(c.Rows) == 0 {
		return 0
	}

	return float64(c.Matches) / float64(len(c.Rows)) * 100
}

// CompareCosts checks every reference pair against the computed routing
// state. Pairs unknown to the routing state (missing source slot or
// unreachable destination) count as mismatches with NoRoute set.
func CompareCosts(all spf.AllPairs, ref Reference) CostComparison {
	keys := make([]metrics.RouteKey, 0, len(ref))
	for key := range ref {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Source != keys[j].Source {
			return keys[i].Source < keys[j].Source
		}

		return keys[i].Destination < keys[j].Destination
	})

	var cmp CostComparison
	for _, key := range keys {
		row := CostRow{Key: key, RefCost: ref[key].Cost}

		routes, ok := all[key.Source]
		if !ok {
			row.NoRoute = true
			cmp.Rows = append(cmp.Rows, row)
			continue
		}
		if _, reachable := routes.Paths[key.Destination]; !reachable {
			row.NoRoute = true
			cmp.Rows = append(cmp.Rows, row)
			continue
		}

		row.Cost = routes.Dist[key.Destination]
		row.Match = row.Cost == row.RefCost
		if row.Match {
			cmp.Matches++
		}
		cmp.Rows = append(cmp.Rows, row)
	}

	return cmp
}
