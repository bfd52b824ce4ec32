// Package bfs provides breadth-first search over a valve.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore valves in non-decreasing tunnel distance from a start valve.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: distance (tunnels) from start per valve.ID, -1 when unreached
//   - Parent: predecessor in the BFS tree per valve.ID
//   - OnVisit hook may abort the walk with an error.
//   - Allows filtering of individual tunnels via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	Every tunnel costs one minute, so first-visit depth is the exact travel
//	time between two valves. The distance package runs one walk per
//	interesting valve to collapse corridors out of the network.
//
// Determinism
//
//	Neighbors are enqueued in tunnel declaration order, so the visit
//	sequence is fully reproducible for a given Graph.
//
// Complexity (V = valves, E = tunnels)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start valve does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
