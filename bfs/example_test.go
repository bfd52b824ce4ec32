package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/valves/bfs"
	"github.com/katalvlaran/valves/valve"
)

// ExampleBFS_shortestPath finds the fewest-tunnel route between two valves.
// Two routes exist from AA to KK: AA-BB-CC-DD-KK and the shorter AA-EE-FF-KK.
func ExampleBFS_shortestPath() {
	g, err := valve.NewGraph([]valve.Record{
		{Name: "AA", Tunnels: []string{"BB", "EE"}},
		{Name: "BB", Rate: 5, Tunnels: []string{"AA", "CC"}},
		{Name: "CC", Tunnels: []string{"BB", "DD"}},
		{Name: "DD", Tunnels: []string{"CC", "KK"}},
		{Name: "EE", Tunnels: []string{"AA", "FF"}},
		{Name: "FF", Tunnels: []string{"EE", "KK"}},
		{Name: "KK", Rate: 9, Tunnels: []string{"DD", "FF"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, g.Origin())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	kk, _ := g.Lookup("KK")
	path, err := res.PathTo(kk)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	hops := make([]string, len(path))
	for i, id := range path {
		hops[i] = g.Name(id)
	}
	fmt.Println(strings.Join(hops, " "))
	fmt.Println("minutes:", res.Depth[kk])
	// Output:
	// AA EE FF KK
	// minutes: 3
}
