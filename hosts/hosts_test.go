// Package hosts_test contains unit tests for host binding and host-to-host
// route resolution.
package hosts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ospfsim/hosts"
	"github.com/katalvlaran/ospfsim/spf"
	"github.com/katalvlaran/ospfsim/topology"
)

func TestBinding_Resolve(t *testing.T) {
	b := hosts.DefaultBinding()

	router, err := b.Resolve("PC10")
	require.NoError(t, err)
	assert.Equal(t, "R3", router)

	_, err = b.Resolve("PC99")
	assert.ErrorIs(t, err, hosts.ErrUnknownHost)
}

func TestBinding_HostsAndRouters(t *testing.T) {
	b := hosts.DefaultBinding()

	assert.Len(t, b.Hosts(), 18)
	assert.Equal(t, []string{"R0", "R1", "R2", "R3", "R4", "R5"}, b.Routers())
}

func TestRoute_AcrossCampuses(t *testing.T) {
	tp := topology.MultiCampus()
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	hr, err := hosts.Route(hosts.DefaultBinding(), tp, all, "PC0", "PC9")
	require.NoError(t, err)

	assert.Equal(t, "R0", hr.SrcRouter)
	assert.Equal(t, "R3", hr.DstRouter)
	assert.False(t, hr.SameRouter)
	assert.False(t, hr.Unreachable)
	// R0 → R6 → R7 → R9 → R3: 4 hops at cost 64 each.
	assert.Equal(t, spf.Path{"R0", "R6", "R7", "R9", "R3"}, hr.Path)
	assert.Equal(t, 4, hr.Hops)
	assert.Equal(t, 256.0, hr.Cost)
}

func TestRoute_SameRouterShortCircuit(t *testing.T) {
	tp := topology.MultiCampus()

	// No routing state needed for the same-router case.
	hr, err := hosts.Route(hosts.DefaultBinding(), tp, nil, "PC0", "PC2")
	require.NoError(t, err)

	assert.True(t, hr.SameRouter)
	assert.Equal(t, "R0", hr.SrcRouter)
	assert.Equal(t, "R0", hr.DstRouter)
	assert.Empty(t, hr.Path)
	assert.Zero(t, hr.Hops)
}

func TestRoute_UnknownHostAndRouter(t *testing.T) {
	tp := topology.MultiCampus()

	_, err := hosts.Route(hosts.DefaultBinding(), tp, nil, "PC0", "PC99")
	assert.ErrorIs(t, err, hosts.ErrUnknownHost)

	b := hosts.Binding{"X0": "R99", "X1": "R0"}
	_, err = hosts.Route(b, tp, nil, "X0", "X1")
	assert.ErrorIs(t, err, hosts.ErrUnknownRouter)
}

func TestRoute_Unreachable(t *testing.T) {
	// Two islands with one host on each.
	tp := topology.New()
	require.NoError(t, tp.AddBiLink("R0", "R1", topology.DefaultLinkAttrs()))
	require.NoError(t, tp.AddBiLink("R2", "R3", topology.DefaultLinkAttrs()))
	all, err := spf.ComputeAllPairs(tp)
	require.NoError(t, err)

	b := hosts.Binding{"H0": "R0", "H1": "R2"}
	hr, err := hosts.Route(b, tp, all, "H0", "H1")
	require.NoError(t, err)

	assert.True(t, hr.Unreachable)
	assert.Empty(t, hr.Path)
}
