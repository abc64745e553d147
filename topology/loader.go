package topology

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// yamlArc is the on-disk attribute shape. Pointer fields distinguish
// "absent" from "zero", so partially described arcs fall back to the
// package defaults rather than to 0 (which would be an invalid bandwidth).
type yamlArc struct {
	Cost          *float64 `yaml:"cost"`
	DistanceKm    *float64 `yaml:"distance_km"`
	BandwidthMbps *float64 `yaml:"bandwidth_mbps"`
}

// LoadYAML decodes a topology from its YAML description:
//
//	R0:
//	  R6: {cost: 64, distance_km: 50, bandwidth_mbps: 1000}
//	R6:
//	  R0: {cost: 64}
//	  R7: {}
//
// Each top-level key is a node; each nested key a directed arc with optional
// attributes. Omitted attribute fields take DefaultLinkAttrs values — a
// deliberate tolerance for heterogeneous topology files. Arcs that violate
// the construction constraints (negative cost, bandwidth ≤ 0) are rejected.
func LoadYAML(r io.Reader) (*Topology, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("topology: read: %w", err)
	}

	var doc map[string]map[string]yamlArc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("topology: decode yaml: %w", err)
	}

	t := New()
	for node, row := range doc {
		if err = t.AddNode(node); err != nil {
			return nil, err
		}
		for nbr, arc := range row {
			attrs := DefaultLinkAttrs()
			if arc.Cost != nil {
				attrs.Cost = *arc.Cost
			}
			if arc.DistanceKm != nil {
				attrs.DistanceKm = *arc.DistanceKm
			}
			if arc.BandwidthMbps != nil {
				attrs.BandwidthMbps = *arc.BandwidthMbps
			}
			if err = t.AddLink(node, nbr, attrs); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}
