package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/valves/bfs"
	"github.com/katalvlaran/valves/valve"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 valves.
func BenchmarkBFS_Chain(b *testing.B) {
	g := chain(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Origin())
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid of valves.
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	name := func(i, j int) string { return fmt.Sprintf("%d_%d", i, j) }
	recs := make([]valve.Record, 0, M*M)
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			var tun []string
			if i > 0 {
				tun = append(tun, name(i-1, j))
			}
			if i+1 < M {
				tun = append(tun, name(i+1, j))
			}
			if j > 0 {
				tun = append(tun, name(i, j-1))
			}
			if j+1 < M {
				tun = append(tun, name(i, j+1))
			}
			recs = append(recs, valve.Record{Name: name(i, j), Tunnels: tun})
		}
	}
	g, err := valve.NewGraph(recs, valve.WithOrigin(name(0, 0)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Origin())
	}
}
