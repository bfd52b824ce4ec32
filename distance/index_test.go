package distance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valves/distance"
	"github.com/katalvlaran/valves/valve"
)

// caves is the classic ten-valve network: AA is a zero-flow origin and
// FF, GG, II are corridors.
func caves(t *testing.T) *valve.Graph {
	t.Helper()
	g, err := valve.NewGraph([]valve.Record{
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
	})
	require.NoError(t, err)
	return g
}

func lookup(g *valve.Graph, name string) valve.ID {
	id, _ := g.Lookup(name)
	return id
}

func TestBuild_Layout(t *testing.T) {
	g := caves(t)
	x, err := distance.Build(g)
	require.NoError(t, err)

	require.Same(t, g, x.Graph())
	require.Equal(t, g.Valuable(), x.Targets())
	require.Len(t, x.Sources(), len(x.Targets())+1)
	require.Equal(t, g.Origin(), x.Sources()[x.OriginSlot()])

	_, ok := x.Slot(g.Origin())
	require.False(t, ok, "zero-flow origin is a source, not a target")
	_, ok = x.Source(lookup(g, "FF"))
	require.False(t, ok, "corridors have no row")
}

func TestBuild_Distances(t *testing.T) {
	g := caves(t)
	x, err := distance.Build(g)
	require.NoError(t, err)

	want := map[string]int{"BB": 1, "CC": 2, "DD": 1, "EE": 2, "HH": 5, "JJ": 2}
	row := x.Row(g.Origin())
	require.Len(t, row, len(want))
	for name, d := range want {
		require.Equal(t, d, row[lookup(g, name)], name)
	}

	d, ok := x.Distance(lookup(g, "JJ"), lookup(g, "HH"))
	require.True(t, ok)
	require.Equal(t, 7, d)

	d, ok = x.Distance(lookup(g, "CC"), lookup(g, "CC"))
	require.True(t, ok)
	require.Zero(t, d)

	_, ok = x.Distance(lookup(g, "FF"), lookup(g, "HH"))
	require.False(t, ok)
	require.Nil(t, x.Row(lookup(g, "FF")))
}

func TestBuild_Symmetry(t *testing.T) {
	g := caves(t)
	x, err := distance.Build(g)
	require.NoError(t, err)

	for _, u := range x.Targets() {
		for _, v := range x.Targets() {
			duv, ok1 := x.Distance(u, v)
			dvu, ok2 := x.Distance(v, u)
			require.Equal(t, ok1, ok2)
			require.Equal(t, duv, dvu, "%s<->%s", g.Name(u), g.Name(v))
		}
	}
}

func TestBuild_UnreachableOmitted(t *testing.T) {
	g, err := valve.NewGraph([]valve.Record{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", Rate: 4, Tunnels: []string{"AA"}},
		{Name: "CC", Rate: 9, Tunnels: []string{"DD"}},
		{Name: "DD", Tunnels: []string{"CC"}},
	})
	require.NoError(t, err)
	x, err := distance.Build(g)
	require.NoError(t, err)

	row := x.Row(g.Origin())
	require.Equal(t, map[valve.ID]int{lookup(g, "BB"): 1}, row)

	s, _ := x.Source(g.Origin())
	c, _ := x.Slot(lookup(g, "CC"))
	require.Equal(t, distance.Unreachable, x.Hops(s, c))
}

func TestBuild_ValuableOrigin(t *testing.T) {
	g, err := valve.NewGraph([]valve.Record{
		{Name: "AA", Rate: 5, Tunnels: []string{"BB"}},
		{Name: "BB", Rate: 7, Tunnels: []string{"AA"}},
	})
	require.NoError(t, err)
	x, err := distance.Build(g)
	require.NoError(t, err)

	require.Len(t, x.Sources(), 2, "valuable origin reuses its target row")
	slot, ok := x.Slot(g.Origin())
	require.True(t, ok)
	require.Equal(t, slot, x.OriginSlot())
}

func TestBuild_Errors(t *testing.T) {
	_, err := distance.Build(nil)
	require.ErrorIs(t, err, distance.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = distance.Build(caves(t), distance.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
