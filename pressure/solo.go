package pressure

type soloKey struct {
	at   int
	left int
	open Set
}

// solo is the single-agent engine. memo is private to one run.
type solo struct {
	net   *network
	memo  map[soloKey]int
	guard *guard
}

func newSolo(net *network, g *guard) *solo {
	return &solo{net: net, memo: make(map[soloKey]int), guard: g}
}

// best returns the most pressure still releasable from row at with left
// minutes and open already opened.
func (s *solo) best(at, left int, open Set) (int, error) {
	if left <= 0 {
		return 0, nil
	}
	key := soloKey{at: at, left: left, open: open}
	if v, ok := s.memo[key]; ok {
		return v, nil
	}
	if err := s.guard.tick(); err != nil {
		return 0, err
	}

	best := 0
	for to := range s.net.rates {
		if open.Has(to) {
			continue
		}
		mv, ok := s.net.reach(at, to, left)
		if !ok {
			continue
		}
		sub, err := s.best(mv.to, mv.left, open.With(mv.to))
		if err != nil {
			return 0, err
		}
		best = max(best, mv.reward+sub)
	}
	s.memo[key] = best
	return best, nil
}

// trace replays the memo from the origin and returns the openings of one
// optimal run.
func (s *solo) trace(budget int) ([]Opening, error) {
	var plan []Opening
	at, left, open := s.net.origin, budget, Set(0)
	for {
		want, err := s.best(at, left, open)
		if err != nil || want == 0 {
			return plan, err
		}
		next, found := move{}, false
		for to := range s.net.rates {
			if open.Has(to) {
				continue
			}
			mv, ok := s.net.reach(at, to, left)
			if !ok {
				continue
			}
			sub, err := s.best(mv.to, mv.left, open.With(mv.to))
			if err != nil {
				return nil, err
			}
			if mv.reward+sub == want {
				next, found = mv, true
				break
			}
		}
		if !found {
			return plan, nil
		}
		plan = append(plan, s.net.opening(0, next, budget))
		at, left, open = next.to, next.left, open.With(next.to)
	}
}
