// SPDX-License-Identifier: MIT
// Package: valves/builder
//
// Package builder generates deterministic valve networks for tests,
// benchmarks and the CLI's generate command.
//
// Every network starts with a zero-flow origin named valve.DefaultOrigin;
// constructors grow topology off that origin and are applied in order, so
// the same constructors, options and seed always give the same records.
//
//	Corridor(length, rate)   chain of zero-flow valves ending in one valve of the given rate
//	Star(arms, length, rate) arms identical corridors
//	Path(n)                  chain of n rated valves
//	Cycle(n)                 ring of n rated valves through the origin
//	Grid(rows, cols)         4-neighbourhood grid with the origin in a corner
//	RandomSparse(n, p)       random spanning tree plus extra tunnels with probability p
//
// Rated valves draw their flow from the rate function (WithRateFn); the
// default is rng-driven in [1,25] with a seed, and 1 without one.
package builder
