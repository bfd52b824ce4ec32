package pressure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valves/builder"
	"github.com/katalvlaran/valves/pressure"
	"github.com/katalvlaran/valves/valve"
)

// cavesRecords is the classic ten-valve network.
func cavesRecords() []valve.Record {
	return []valve.Record{
		{Name: "AA", Rate: 0, Tunnels: []string{"DD", "II", "BB"}},
		{Name: "BB", Rate: 13, Tunnels: []string{"CC", "AA"}},
		{Name: "CC", Rate: 2, Tunnels: []string{"DD", "BB"}},
		{Name: "DD", Rate: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{Name: "EE", Rate: 3, Tunnels: []string{"FF", "DD"}},
		{Name: "FF", Rate: 0, Tunnels: []string{"EE", "GG"}},
		{Name: "GG", Rate: 0, Tunnels: []string{"FF", "HH"}},
		{Name: "HH", Rate: 22, Tunnels: []string{"GG"}},
		{Name: "II", Rate: 0, Tunnels: []string{"AA", "JJ"}},
		{Name: "JJ", Rate: 21, Tunnels: []string{"II"}},
	}
}

func caves(tb testing.TB) *valve.Graph {
	tb.Helper()
	g, err := valve.NewGraph(cavesRecords())
	require.NoError(tb, err)
	return g
}

func build(tb testing.TB, opts []builder.Option, cons ...builder.Constructor) *valve.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(tb, err)
	return g
}

// randomGraphs returns small seeded networks with a handful of valuable valves.
func randomGraphs(tb testing.TB, count, size int) []*valve.Graph {
	tb.Helper()
	out := make([]*valve.Graph, 0, count)
	for seed := int64(1); seed <= int64(count); seed++ {
		out = append(out, build(tb, []builder.Option{builder.WithSeed(seed)},
			builder.RandomSparse(size, 0.15),
			builder.Corridor(2, 0),
		))
	}
	return out
}

// released sums the pressure of every opening in plan.
func released(plan []pressure.Opening) int {
	sum := 0
	for _, op := range plan {
		sum += op.Released
	}
	return sum
}
