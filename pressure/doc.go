// Package pressure computes the most pressure a team of agents can release
// from a valve network before time runs out.
//
// What
//
//   - Solve / SolveIndex: exact optimum for K ≥ 1 agents starting together
//     at the origin valve, sharing a time budget and an opened-set.
//   - SolveAll: independent problems fanned out over a bounded worker pool.
//   - Result.Plan: the openings that realise the optimum (who opens what, when).
//
// How
//
//	The network is first collapsed by package distance into a table of
//	tunnel counts between valuable valves. Walking to valve V and opening
//	it is then one move of cost Hops+1 that releases rate(V)·T' pressure,
//	T' being the minutes left once V is open.
//
//	One agent: memoized depth-first search over (position, minutes left,
//	opened-set). Several agents: the soonest arriving agent advances the
//	shared clock; every agent that becomes free in that step chooses its
//	next valve jointly with the others (cartesian product, no valve twice),
//	or retires. The memo key sorts agent descriptors so interchangeable
//	agents collapse onto one entry.
//
// Limits
//
//	The opened-set is a 64-bit Set, so at most MaxValuable valuable valves
//	are accepted. The state space is exponential in that count; expect
//	interactive run times up to roughly twenty valuable valves.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrNoAgents          if WithAgents is given k ≤ 0.
//   - ErrTooManyValuable   if the network has more than MaxValuable valuable valves.
//   - ErrIndexMismatch     if SolveIndex gets an index built for another graph.
//   - ctx.Err() when the context passed via WithContext is done.
//
// A budget of zero or less is not an error: nothing can be opened, so the
// result is 0.
package pressure
