package pressure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for Solve.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pressure: graph is nil")

	// ErrNoAgents is returned when the agent count is not positive.
	ErrNoAgents = errors.New("pressure: agent count must be positive")

	// ErrTooManyValuable is returned when the opened-set cannot cover all valuable valves.
	ErrTooManyValuable = errors.New("pressure: too many valuable valves")

	// ErrIndexMismatch is returned when a distance index does not belong to the graph.
	ErrIndexMismatch = errors.New("pressure: index does not match graph")
)

// DefaultBudget is the number of minutes available unless WithBudget says otherwise.
const DefaultBudget = 30

// Option configures a search. Invalid options are recorded and surfaced
// when Solve runs.
type Option func(*options)

type options struct {
	ctx    context.Context
	budget int
	agents int
	logger *slog.Logger
	plan   bool
	err    error
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		budget: DefaultBudget,
		agents: 1,
		logger: slog.New(slog.DiscardHandler),
		plan:   true,
	}
}

func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext sets a context checked while the search recurses.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithBudget sets the number of minutes available. Zero or negative budgets
// are valid and release nothing.
func WithBudget(minutes int) Option {
	return func(o *options) { o.budget = minutes }
}

// WithAgents sets how many agents leave the origin together.
func WithAgents(k int) Option {
	return func(o *options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNoAgents, k)
			return
		}
		o.agents = k
	}
}

// WithLogger sets the logger for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutPlan skips reconstructing Result.Plan.
func WithoutPlan() Option {
	return func(o *options) { o.plan = false }
}
