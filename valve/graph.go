package valve

import (
	"fmt"
	"slices"
)

// Graph is the complete, immutable mapping from valve ID to Valve.
// All accessors return copies, so a Graph can be shared freely between
// goroutines once NewGraph has returned.
type Graph struct {
	valves []Valve
	index  map[string]ID
	origin ID
}

// NewGraph validates records and interns them into a Graph.
//
// Construction fails fast on the first offending record: empty name,
// negative rate, duplicate name, a tunnel to an undeclared valve, or a
// missing origin. The returned error wraps one of the package sentinels
// and names the record at fault.
//
// Tunnels are expected to be symmetric; that is assumed, not checked.
func NewGraph(records []Record, opts ...Option) (*Graph, error) {
	cfg := config{origin: DefaultOrigin}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(records) > maxValves {
		return nil, fmt.Errorf("%w: %d records, limit %d", ErrTooManyValves, len(records), maxValves)
	}

	g := &Graph{
		valves: make([]Valve, len(records)),
		index:  make(map[string]ID, len(records)),
	}

	// First pass: intern names so tunnels may reference later records.
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record #%d", ErrEmptyName, i)
		}
		if rec.Rate < 0 {
			return nil, fmt.Errorf("%w: valve %q has rate %d", ErrNegativeRate, rec.Name, rec.Rate)
		}
		if prev, ok := g.index[rec.Name]; ok {
			return nil, fmt.Errorf("%w: %q at records #%d and #%d", ErrDuplicateValve, rec.Name, prev, i)
		}
		id := ID(i)
		g.index[rec.Name] = id
		g.valves[i] = Valve{ID: id, Name: rec.Name, Rate: rec.Rate}
	}

	// Second pass: resolve tunnel names.
	for i, rec := range records {
		tunnels := make([]ID, 0, len(rec.Tunnels))
		for _, name := range rec.Tunnels {
			to, ok := g.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: valve %q lists %q", ErrUnknownTunnel, rec.Name, name)
			}
			tunnels = append(tunnels, to)
		}
		g.valves[i].Tunnels = tunnels
	}

	origin, ok := g.index[cfg.origin]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOriginNotFound, cfg.origin)
	}
	g.origin = origin

	return g, nil
}

// Len returns the number of valves.
func (g *Graph) Len() int { return len(g.valves) }

// Origin returns the valve every agent starts from.
func (g *Graph) Origin() ID { return g.origin }

// Has reports whether id names a valve of g.
func (g *Graph) Has(id ID) bool { return int(id) < len(g.valves) }

// Lookup resolves a valve name to its ID.
func (g *Graph) Lookup(name string) (ID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Name returns the name of id, or "" if id is unknown.
func (g *Graph) Name(id ID) string {
	if !g.Has(id) {
		return ""
	}
	return g.valves[id].Name
}

// Rate returns the flow rate of id, or 0 if id is unknown.
func (g *Graph) Rate(id ID) int {
	if !g.Has(id) {
		return 0
	}
	return g.valves[id].Rate
}

// Tunnels returns a copy of the neighbours of id in declaration order.
func (g *Graph) Tunnels(id ID) []ID {
	if !g.Has(id) {
		return nil
	}
	return slices.Clone(g.valves[id].Tunnels)
}

// Valve returns a copy of the valve stored under id.
func (g *Graph) Valve(id ID) (Valve, bool) {
	if !g.Has(id) {
		return Valve{}, false
	}
	v := g.valves[id]
	v.Tunnels = slices.Clone(v.Tunnels)
	return v, true
}

// Valves returns copies of all valves in ID order.
func (g *Graph) Valves() []Valve {
	out := make([]Valve, len(g.valves))
	for i, v := range g.valves {
		v.Tunnels = slices.Clone(v.Tunnels)
		out[i] = v
	}
	return out
}

// Valuable returns the IDs of all valves with a strictly positive rate, in ID order.
func (g *Graph) Valuable() []ID {
	var out []ID
	for _, v := range g.valves {
		if v.Rate > 0 {
			out = append(out, v.ID)
		}
	}
	return out
}
