package topology

// MultiCampus returns the reference multi-campus topology: twelve routers,
// six campus edge routers (R0–R5) each single-homed onto a partially meshed
// backbone (R6–R11), every link carrying the serial reference cost 64.
//
// Link attributes beyond cost are left at the package defaults, so the
// metrics layer resolves every hop to distance 50 km / bandwidth 1000 Mbps.
//
// The preset is handy as a realistic fixture for examples, benchmarks, and
// as the built-in topology of the ospfsim CLI.
func MultiCampus() *Topology {
	links := [][2]string{
		{"R0", "R6"},
		{"R1", "R7"},
		{"R2", "R8"},
		{"R3", "R9"},
		{"R4", "R10"},
		{"R5", "R11"},
		{"R6", "R7"},
		{"R7", "R8"},
		{"R7", "R9"},
		{"R8", "R9"},
		{"R9", "R10"},
		{"R10", "R11"},
	}

	attrs := DefaultLinkAttrs()
	t := New()
	for _, l := range links {
		// Preset data is static and pre-validated; AddBiLink cannot fail here.
		_ = t.AddBiLink(l[0], l[1], attrs)
	}

	return t
}
