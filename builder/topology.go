// SPDX-License-Identifier: MIT
// Package: valves/builder
//
// topology.go - topology constructors. All of them hang off the origin
// and emit tunnels in increasing index order.

package builder

import "fmt"

const (
	methodCorridor     = "Corridor"
	methodStar         = "Star"
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Corridor adds length-1 zero-flow valves in a chain from the origin,
// ending in one valve of the given rate at hop distance length.
func Corridor(length, rate int) Constructor {
	return func(n *network, cfg config) error {
		if length < 1 {
			return fmt.Errorf("%s: length=%d < 1: %w", methodCorridor, length, ErrTooFewValves)
		}
		prev := n.origin()
		for i := 1; i <= length; i++ {
			r := 0
			if i == length {
				r = rate
			}
			cur, err := n.add(cfg, r)
			if err != nil {
				return fmt.Errorf("%s: %w", methodCorridor, err)
			}
			n.link(prev, cur)
			prev = cur
		}
		return nil
	}
}

// Star adds arms identical corridors.
func Star(arms, length, rate int) Constructor {
	return func(n *network, cfg config) error {
		if arms < 1 {
			return fmt.Errorf("%s: arms=%d < 1: %w", methodStar, arms, ErrTooFewValves)
		}
		for a := 0; a < arms; a++ {
			if err := Corridor(length, rate)(n, cfg); err != nil {
				return fmt.Errorf("%s: arm %d: %w", methodStar, a, err)
			}
		}
		return nil
	}
}

// Path adds a chain of count rated valves from the origin.
func Path(count int) Constructor {
	return func(n *network, cfg config) error {
		if count < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodPath, count, ErrTooFewValves)
		}
		prev := n.origin()
		for i := 0; i < count; i++ {
			cur, err := n.add(cfg, cfg.rateFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
			n.link(prev, cur)
			prev = cur
		}
		return nil
	}
}

// Cycle adds a ring of count rated valves closed through the origin.
func Cycle(count int) Constructor {
	return func(n *network, cfg config) error {
		if count < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodCycle, count, ErrTooFewValves)
		}
		prev := n.origin()
		for i := 0; i < count; i++ {
			cur, err := n.add(cfg, cfg.rateFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
			n.link(prev, cur)
			prev = cur
		}
		n.link(prev, n.origin())
		return nil
	}
}

// Grid adds a rows×cols grid whose top-left cell is the origin; all other
// cells are rated.
func Grid(rows, cols int) Constructor {
	return func(n *network, cfg config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewValves)
		}
		cell := make([]int, rows*cols)
		cell[0] = n.origin()
		for k := 1; k < len(cell); k++ {
			idx, err := n.add(cfg, cfg.rateFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: %w", methodGrid, err)
			}
			cell[k] = idx
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					n.link(cell[r*cols+c], cell[r*cols+c+1])
				}
				if r+1 < rows {
					n.link(cell[r*cols+c], cell[(r+1)*cols+c])
				}
			}
		}
		return nil
	}
}

// RandomSparse adds count rated valves joined by a random spanning tree
// rooted at the origin, then links every other pair with probability p.
// Requires WithSeed or WithRand.
func RandomSparse(count int, p float64) Constructor {
	return func(n *network, cfg config) error {
		if count < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, count, ErrTooFewValves)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		members := []int{n.origin()}
		for i := 0; i < count; i++ {
			cur, err := n.add(cfg, cfg.rateFn(cfg.rng))
			if err != nil {
				return fmt.Errorf("%s: %w", methodRandomSparse, err)
			}
			n.link(members[cfg.rng.Intn(len(members))], cur)
			members = append(members, cur)
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				if cfg.rng.Float64() < p && !n.linked(members[i], members[j]) {
					n.link(members[i], members[j])
				}
			}
		}
		return nil
	}
}
