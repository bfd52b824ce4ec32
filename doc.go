// Package valves computes the maximum pressure a team of agents can release
// from a network of valves within a time budget.
//
// Every valve has a flow rate and is joined to its neighbours by tunnels.
// Walking a tunnel costs one minute and so does opening a valve; an open
// valve releases its rate every minute until time runs out. Agents start
// together at the origin (valve "AA" unless configured otherwise) and act
// independently, but a valve can only be opened once.
//
// Packages:
//
//	valve/    - immutable valve network with interned IDs
//	bfs/      - breadth-first traversal over the tunnels
//	distance/ - all-pairs move costs between the origin and valuable valves
//	pressure/ - memoised single-agent and team search, batch solving
//	builder/  - deterministic network generators for tests and benchmarks
//	scenario/ - YAML scenario files
//
// Quick example:
//
//	g, _ := valve.NewGraph(records)
//	res, _ := pressure.Solve(g, pressure.WithBudget(26), pressure.WithAgents(2))
//	fmt.Println(res.Pressure)
//
// The valves command wraps the same pipeline:
//
//	valves solve --agents 2 --budget 26 caves.yaml
//	valves generate --shape random --size 12 --seed 7 > random.yaml
package valves
