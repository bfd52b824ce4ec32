// SPDX-License-Identifier: MIT
// Package: valves/builder
//
// options.go - functional options for the builder package.
//
// Option constructors panic on meaningless inputs (nil functions);
// constructors themselves never panic and return sentinel errors.

package builder

import (
	"math/rand"
)

// Option customizes network generation.
type Option func(*config)

// config is resolved once per Build call and shared by all constructors.
type config struct {
	rng    *rand.Rand
	rateFn func(*rand.Rand) int
	nameFn func(int) string
}

const maxDefaultRate = 25

func newConfig(opts ...Option) config {
	c := config{
		rateFn: defaultRate,
		nameFn: LetterName,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func defaultRate(r *rand.Rand) int {
	if r == nil {
		return 1
	}
	return 1 + r.Intn(maxDefaultRate)
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithRateFn overrides the flow rate drawn for rated valves. fn receives
// the (possibly nil) RNG.
func WithRateFn(fn func(*rand.Rand) int) Option {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *config) { c.rateFn = fn }
}

// WithNameScheme sets the valve name generator: index -> name. Index 0 is
// the origin and is always named valve.DefaultOrigin.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *config) { c.nameFn = fn }
}

// LetterName is the default name scheme: base-26 upper-case letters, at
// least two wide, so 0 → "AA", 1 → "AB", 26 → "BA", 676 → "BAA".
func LetterName(i int) string {
	var b []byte
	for {
		b = append(b, byte('A'+i%26))
		i /= 26
		if i == 0 {
			break
		}
	}
	if len(b) < 2 {
		b = append(b, 'A')
	}
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b)
}
