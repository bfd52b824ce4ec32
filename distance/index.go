package distance

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/valves/bfs"
	"github.com/katalvlaran/valves/valve"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("distance: graph is nil")

// Unreachable marks a missing entry in the dense hop table.
const Unreachable = -1

// Option configures Build.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets the context forwarded to every breadth-first walk.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Index is the immutable travel table between interesting valves.
type Index struct {
	graph   *valve.Graph
	targets []valve.ID
	sources []valve.ID
	target  map[valve.ID]int
	source  map[valve.ID]int
	hops    [][]int
	origin  int
}

// Build computes the travel table for g.
func Build(g *valve.Graph, opts ...Option) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	targets := g.Valuable()
	x := &Index{
		graph:   g,
		targets: targets,
		sources: append(make([]valve.ID, 0, len(targets)+1), targets...),
		target:  make(map[valve.ID]int, len(targets)),
		source:  make(map[valve.ID]int, len(targets)+1),
	}
	for i, id := range targets {
		x.target[id] = i
		x.source[id] = i
	}
	if slot, ok := x.source[g.Origin()]; ok {
		x.origin = slot
	} else {
		x.origin = len(x.sources)
		x.source[g.Origin()] = x.origin
		x.sources = append(x.sources, g.Origin())
	}

	x.hops = make([][]int, len(x.sources))
	for s, from := range x.sources {
		res, err := bfs.BFS(g, from, bfs.WithContext(o.ctx))
		if err != nil {
			return nil, fmt.Errorf("distance: walk from %q: %w", g.Name(from), err)
		}
		row := make([]int, len(targets))
		for t, to := range targets {
			row[t] = res.Depth[to] // -1 when unreached
		}
		x.hops[s] = row
	}

	return x, nil
}

// Graph returns the graph the index was built for.
func (x *Index) Graph() *valve.Graph { return x.graph }

// Targets returns the valuable valves in slot order.
func (x *Index) Targets() []valve.ID { return append([]valve.ID(nil), x.targets...) }

// Sources returns the valves that have a row, in slot order.
func (x *Index) Sources() []valve.ID { return append([]valve.ID(nil), x.sources...) }

// Slot returns the target slot of a valuable valve.
func (x *Index) Slot(id valve.ID) (int, bool) {
	s, ok := x.target[id]
	return s, ok
}

// Source returns the row of a source valve.
func (x *Index) Source(id valve.ID) (int, bool) {
	s, ok := x.source[id]
	return s, ok
}

// OriginSlot returns the source row of the origin valve.
func (x *Index) OriginSlot() int { return x.origin }

// Hops returns the tunnel count from source row s to target slot t,
// or Unreachable.
func (x *Index) Hops(s, t int) int { return x.hops[s][t] }

// Distance returns the tunnel count between a source valve and a valuable
// target. ok is false when either valve is not indexed or the target is
// unreachable.
func (x *Index) Distance(from, to valve.ID) (int, bool) {
	s, ok := x.source[from]
	if !ok {
		return 0, false
	}
	t, ok := x.target[to]
	if !ok {
		return 0, false
	}
	d := x.hops[s][t]
	return d, d != Unreachable
}

// Row returns the reachable targets of from with their tunnel counts.
// It returns nil when from is not a source.
func (x *Index) Row(from valve.ID) map[valve.ID]int {
	s, ok := x.source[from]
	if !ok {
		return nil
	}
	row := make(map[valve.ID]int, len(x.targets))
	for t, d := range x.hops[s] {
		if d != Unreachable {
			row[x.targets[t]] = d
		}
	}
	return row
}
