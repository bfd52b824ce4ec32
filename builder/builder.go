// SPDX-License-Identifier: MIT
// Package: valves/builder
//
// builder.go - the Build orchestrator and the network under construction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valves/valve"
)

// Constructor grows the network deterministically from the resolved
// config. Constructors validate parameters before adding anything.
type Constructor func(n *network, cfg config) error

// network accumulates records; index 0 is the origin.
type network struct {
	records []valve.Record
	byName  map[string]int
}

func newNetwork() *network {
	n := &network{byName: make(map[string]int)}
	n.records = append(n.records, valve.Record{Name: valve.DefaultOrigin})
	n.byName[valve.DefaultOrigin] = 0
	return n
}

// origin returns the record index of the origin.
func (n *network) origin() int { return 0 }

// add appends a valve with the given rate and returns its record index.
func (n *network) add(cfg config, rate int) (int, error) {
	i := len(n.records)
	name := cfg.nameFn(i)
	if name == "" || name == valve.DefaultOrigin {
		return 0, fmt.Errorf("name scheme gave %q for index %d: %w", name, i, ErrConstructFailed)
	}
	if _, dup := n.byName[name]; dup {
		return 0, fmt.Errorf("name scheme repeated %q at index %d: %w", name, i, ErrConstructFailed)
	}
	n.byName[name] = i
	n.records = append(n.records, valve.Record{Name: name, Rate: rate})
	return i, nil
}

// link adds a tunnel in both directions.
func (n *network) link(a, b int) {
	n.records[a].Tunnels = append(n.records[a].Tunnels, n.records[b].Name)
	n.records[b].Tunnels = append(n.records[b].Tunnels, n.records[a].Name)
}

// linked reports whether a already lists b.
func (n *network) linked(a, b int) bool {
	for _, t := range n.records[a].Tunnels {
		if t == n.records[b].Name {
			return true
		}
	}
	return false
}

// Build resolves opts and applies cons in order to a network holding only
// the origin. Constructor errors are wrapped with "Build: %w".
func Build(opts []Option, cons ...Constructor) ([]valve.Record, error) {
	cfg := newConfig(opts...)
	n := newNetwork()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return n.records, nil
}

// BuildGraph is Build followed by valve.NewGraph.
func BuildGraph(opts []Option, cons ...Constructor) (*valve.Graph, error) {
	recs, err := Build(opts, cons...)
	if err != nil {
		return nil, err
	}
	return valve.NewGraph(recs)
}
