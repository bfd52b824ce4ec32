package pressure

import (
	"fmt"
	"time"

	"github.com/katalvlaran/valves/distance"
	"github.com/katalvlaran/valves/valve"
)

// Opening is one valve opened along an optimal run.
type Opening struct {
	// Agent is the zero-based index of the agent that opens the valve.
	Agent int

	// Valve is the name of the opened valve.
	Valve string

	// Minute is the elapsed time at which the valve starts releasing.
	Minute int

	// Released is the pressure the valve releases until the budget ends.
	Released int
}

// Result is the outcome of a search.
type Result struct {
	// Pressure is the maximum total pressure releasable.
	Pressure int

	// Plan lists the openings of one optimal run; their Released values
	// sum to Pressure. Empty when WithoutPlan was given.
	Plan []Opening

	// States is the number of memoized search states.
	States int
}

// Solve builds the distance index of g and searches it.
func Solve(g *valve.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	x, err := distance.Build(g, distance.WithContext(o.ctx))
	if err != nil {
		return Result{}, err
	}
	return search(g, x, o)
}

// SolveIndex searches g using a prebuilt distance index, so that several
// budgets or agent counts can share one index. x must have been built by
// distance.Build from this very graph value; an index built from another
// graph, even an identical one, is rejected with ErrIndexMismatch.
func SolveIndex(g *valve.Graph, x *distance.Index, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if x == nil {
		return Result{}, fmt.Errorf("%w: index is nil", ErrIndexMismatch)
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	if x.Graph() != g {
		return Result{}, fmt.Errorf("%w: index was built for another graph", ErrIndexMismatch)
	}
	return search(g, x, o)
}

func search(g *valve.Graph, x *distance.Index, o options) (Result, error) {
	if err := o.ctx.Err(); err != nil {
		return Result{}, err
	}
	if o.budget <= 0 {
		return Result{}, nil
	}
	if n := len(x.Targets()); n > MaxValuable {
		return Result{}, fmt.Errorf("%w: %d, limit %d", ErrTooManyValuable, n, MaxValuable)
	}

	start := time.Now()
	net := newNetwork(g, x)
	gd := &guard{ctx: o.ctx}

	var (
		res Result
		err error
	)
	if o.agents == 1 {
		res, err = searchSolo(net, gd, o)
	} else {
		res, err = searchTeam(net, gd, o)
	}
	if err != nil {
		return Result{}, err
	}

	o.logger.Debug("pressure search complete",
		"agents", o.agents,
		"budget", o.budget,
		"valuable", len(net.rates),
		"pressure", res.Pressure,
		"states", res.States,
		"elapsed", time.Since(start),
	)
	return res, nil
}

func searchSolo(net *network, gd *guard, o options) (Result, error) {
	s := newSolo(net, gd)
	p, err := s.best(net.origin, o.budget, 0)
	if err != nil {
		return Result{}, err
	}
	res := Result{Pressure: p}
	if o.plan {
		if res.Plan, err = s.trace(o.budget); err != nil {
			return Result{}, err
		}
	}
	res.States = len(s.memo)
	return res, nil
}

func searchTeam(net *network, gd *guard, o options) (Result, error) {
	t := newTeam(net, gd)
	crew := make([]travel, o.agents)
	for i := range crew {
		crew[i] = travel{dest: net.origin, agent: i}
	}
	p, err := t.best(crew, o.budget, 0)
	if err != nil {
		return Result{}, err
	}
	res := Result{Pressure: p}
	if o.plan {
		if res.Plan, err = t.trace(o.agents, o.budget); err != nil {
			return Result{}, err
		}
	}
	res.States = len(t.memo)
	return res, nil
}
