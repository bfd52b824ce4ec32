// Package distance collapses a valve network into the travel table the
// pressure search works on.
//
// Only valves with a positive flow rate are worth walking to, and agents
// only ever stand on one of those or on the origin. Build runs one
// breadth-first walk from each such source and keeps the hop counts to
// every valuable target, so "walk to X and open it" becomes a single move
// of cost Hops+1 regardless of how many zero-flow corridor valves lie in
// between.
//
// Layout
//
//	targets  = valuable valves in ID order; slot i is the i-th target.
//	sources  = targets, followed by the origin when the origin has no flow.
//	table    = hops[source slot][target slot], -1 when unreachable.
//
// Unreachable pairs are not errors; they are absent from Row and reported
// as ok=false by Distance.
//
// Complexity (S = sources, V = valves, E = tunnels)
//
//   - Time:   O(S · (V + E))
//   - Memory: O(S · targets)
package distance
