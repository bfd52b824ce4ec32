// Package bfs provides breadth-first search over a valve.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores valves in increasing tunnel distance from a start valve,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valves/valve"
)

// queueItem pairs a valve ID with its BFS depth.
type queueItem struct {
	id    valve.ID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *valve.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *valve.Graph, start valve.ID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Has(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Len()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]valve.ID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]valve.ID, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = -1
		w.res.Parent[i] = valve.None
	}

	w.enqueue(start, 0, valve.None)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d and records its parent.
func (w *walker) enqueue(id valve.ID, d int, parent valve.ID) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the valve in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", w.graph.Name(item.id), err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Tunnels(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.res.Depth[nbr] < 0 {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
