package pressure

import (
	"context"

	"github.com/katalvlaran/valves/distance"
	"github.com/katalvlaran/valves/valve"
)

// network is the search view of a graph: positions are source rows of the
// index, destinations are target slots. A target slot is also its own
// source row, so an agent standing on valve t is at row t.
type network struct {
	x      *distance.Index
	names  []string
	rates  []int
	origin int
}

func newNetwork(g *valve.Graph, x *distance.Index) *network {
	targets := x.Targets()
	n := &network{
		x:      x,
		names:  make([]string, len(targets)),
		rates:  make([]int, len(targets)),
		origin: x.OriginSlot(),
	}
	for i, id := range targets {
		n.names[i] = g.Name(id)
		n.rates[i] = g.Rate(id)
	}
	return n
}

// move is one atomic "walk to a valve and open it" step.
type move struct {
	to     int // target slot
	cost   int // tunnels walked plus the minute spent opening
	left   int // minutes left once the valve is open
	reward int // pressure the valve releases over those minutes
}

// reach returns the move from row to slot when it fits into left minutes.
func (n *network) reach(from, to, left int) (move, bool) {
	h := n.x.Hops(from, to)
	if h == distance.Unreachable || h+1 > left {
		return move{}, false
	}
	rest := left - h - 1
	return move{to: to, cost: h + 1, left: rest, reward: n.rates[to] * rest}, true
}

// opening describes a move made by agent as part of a plan with the given budget.
func (n *network) opening(agent int, mv move, budget int) Opening {
	return Opening{
		Agent:    agent,
		Valve:    n.names[mv.to],
		Minute:   budget - mv.left,
		Released: mv.reward,
	}
}

// checkEvery is how many memo misses pass between two context checks.
const checkEvery = 1024

// guard polls the context while a search recurses.
type guard struct {
	ctx   context.Context
	calls int
}

func (g *guard) tick() error {
	g.calls++
	if g.calls%checkEvery == 1 {
		return g.ctx.Err()
	}
	return nil
}
