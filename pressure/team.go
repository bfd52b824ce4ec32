package pressure

import (
	"cmp"
	"encoding/binary"
	"slices"
)

// travel is an agent travel descriptor: the row the agent is heading to
// and the minutes until it gets there and the valve is open. agent only
// labels the descriptor for plans; it is not part of the memo key.
type travel struct {
	dest  int
	eta   int
	agent int
}

type teamKey struct {
	left int
	open Set
	crew string
}

// team is the multi-agent coordinator. memo is private to one run.
type team struct {
	net   *network
	memo  map[teamKey]int
	guard *guard
	buf   []byte
}

func newTeam(net *network, g *guard) *team {
	return &team{net: net, memo: make(map[teamKey]int), guard: g}
}

// advance moves the clock to the soonest arrival. It returns a sorted copy
// of crew with at least one free (eta 0) agent at the head, and the minutes
// left afterwards.
func advance(crew []travel, left int) ([]travel, int) {
	out := slices.Clone(crew)
	if len(out) == 0 {
		return out, left
	}
	step := out[0].eta
	for _, a := range out[1:] {
		step = min(step, a.eta)
	}
	for i := range out {
		out[i].eta -= step
	}
	slices.SortFunc(out, func(a, b travel) int {
		return cmp.Or(cmp.Compare(a.eta, b.eta), cmp.Compare(a.dest, b.dest), cmp.Compare(a.agent, b.agent))
	})
	return out, left - step
}

// encode renders the descriptors of a sorted crew without agent labels.
func (t *team) encode(crew []travel) string {
	b := t.buf[:0]
	for _, a := range crew {
		b = binary.AppendUvarint(b, uint64(a.dest))
		b = binary.AppendUvarint(b, uint64(a.eta))
	}
	t.buf = b
	return string(b)
}

// best returns the most pressure still releasable by crew with left
// minutes on the shared clock and open already opened.
func (t *team) best(crew []travel, left int, open Set) (int, error) {
	crew, left = advance(crew, left)
	if len(crew) == 0 || left <= 0 {
		return 0, nil
	}
	key := teamKey{left: left, open: open, crew: t.encode(crew)}
	if v, ok := t.memo[key]; ok {
		return v, nil
	}
	if err := t.guard.tick(); err != nil {
		return 0, err
	}

	best := 0
	err := t.joint(crew, left, open, func(next []travel, grown Set, gain int) (bool, error) {
		sub, err := t.best(next, left, grown)
		if err != nil {
			return true, err
		}
		best = max(best, gain+sub)
		return false, nil
	})
	if err != nil {
		return 0, err
	}
	t.memo[key] = best
	return best, nil
}

// visitFunc receives the crew after one joint decision, the grown
// opened-set and the pressure released by the new openings. Returning
// true stops the enumeration.
type visitFunc func(next []travel, open Set, gain int) (bool, error)

// joint enumerates every joint decision of the free agents at the head of
// an advanced crew. Busy agents carry over unchanged. The slice handed to
// visit is reused between calls.
func (t *team) joint(crew []travel, left int, open Set, visit visitFunc) error {
	free := 0
	for free < len(crew) && crew[free].eta == 0 {
		free++
	}
	next := make([]travel, 0, len(crew))
	next = append(next, crew[free:]...)
	_, err := t.assign(crew[:free], 0, 0, left, open, 0, next, visit)
	return err
}

// assign picks a destination for free[i] and recurses. Agents on the same
// row are interchangeable, so each one may only pick a slot at or above
// the pick of its predecessor; a retired agent ranks above every slot.
func (t *team) assign(free []travel, i, prev, left int, open Set, gain int, next []travel, visit visitFunc) (bool, error) {
	if i == len(free) {
		return visit(next, open, gain)
	}
	retired := len(t.net.rates)
	a := free[i]
	floor := 0
	if i > 0 && free[i-1].dest == a.dest {
		floor = prev
	}
	for to := floor; to < retired; to++ {
		if open.Has(to) {
			continue
		}
		mv, ok := t.net.reach(a.dest, to, left)
		if !ok {
			continue
		}
		stop, err := t.assign(free, i+1, to, left, open.With(to), gain+mv.reward,
			append(next, travel{dest: to, eta: mv.cost, agent: a.agent}), visit)
		if stop || err != nil {
			return stop, err
		}
	}
	return t.assign(free, i+1, retired, left, open, gain, next, visit)
}

// trace replays the memo for agents leaving the origin together and
// returns the openings of one optimal run, ordered by minute then agent.
func (t *team) trace(agents, budget int) ([]Opening, error) {
	crew := make([]travel, agents)
	for i := range crew {
		crew[i] = travel{dest: t.net.origin, agent: i}
	}
	left, open := budget, Set(0)

	var plan []Opening
	for {
		crew, left = advance(crew, left)
		if len(crew) == 0 || left <= 0 {
			break
		}
		want, err := t.best(crew, left, open)
		if err != nil {
			return nil, err
		}
		if want == 0 {
			break
		}

		busy := 0
		for _, a := range crew {
			if a.eta > 0 {
				busy++
			}
		}
		var (
			chosen []travel
			grown  Set
			found  bool
		)
		err = t.joint(crew, left, open, func(next []travel, g Set, gain int) (bool, error) {
			sub, err := t.best(next, left, g)
			if err != nil {
				return true, err
			}
			if gain+sub != want {
				return false, nil
			}
			chosen, grown, found = slices.Clone(next), g, true
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		for _, p := range chosen[busy:] {
			rest := left - p.eta
			plan = append(plan, t.net.opening(p.agent, move{to: p.dest, left: rest, reward: t.net.rates[p.dest] * rest}, budget))
		}
		crew, open = chosen, grown
	}

	slices.SortStableFunc(plan, func(a, b Opening) int {
		return cmp.Or(cmp.Compare(a.Minute, b.Minute), cmp.Compare(a.Agent, b.Agent))
	})
	return plan, nil
}
