// Package valve defines the immutable valve network that the pressure
// search runs on: interned valve IDs, per-valve flow rates and the tunnels
// connecting them.
//
// Errors:
//
//	ErrEmptyName      - a record has an empty valve name.
//	ErrNegativeRate   - a record has a negative flow rate.
//	ErrDuplicateValve - two records share a valve name.
//	ErrUnknownTunnel  - a tunnel points at a valve that has no record.
//	ErrOriginNotFound - the configured origin valve has no record.
//	ErrTooManyValves  - more records than the ID space can intern.
package valve

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyName indicates a record without a valve name.
	ErrEmptyName = errors.New("valve: empty valve name")

	// ErrNegativeRate indicates a record with a flow rate below zero.
	ErrNegativeRate = errors.New("valve: negative flow rate")

	// ErrDuplicateValve indicates two records with the same name.
	ErrDuplicateValve = errors.New("valve: duplicate valve")

	// ErrUnknownTunnel indicates a tunnel to a valve that was never declared.
	ErrUnknownTunnel = errors.New("valve: tunnel to unknown valve")

	// ErrOriginNotFound indicates the origin valve is not part of the input.
	ErrOriginNotFound = errors.New("valve: origin valve not found")

	// ErrTooManyValves indicates the input does not fit the ID space.
	ErrTooManyValves = errors.New("valve: too many valves")
)

// DefaultOrigin is the valve every agent starts from unless WithOrigin says otherwise.
const DefaultOrigin = "AA"

// ID is the interned key of a valve inside one Graph.
// IDs are dense: a Graph with n valves uses IDs 0..n-1 in record order.
type ID uint16

// None marks the absence of a valve (e.g. the parent of a BFS root).
const None ID = math.MaxUint16

// maxValves is the number of valves a Graph can intern; None is reserved.
const maxValves = int(None)

// Record is one parsed valve description as handed over by an input parser.
type Record struct {
	// Name uniquely identifies the valve.
	Name string

	// Rate is the pressure released per minute once the valve is open.
	Rate int

	// Tunnels lists the names of directly connected valves.
	Tunnels []string
}

// Valve is the stored, interned form of a Record.
type Valve struct {
	ID      ID
	Name    string
	Rate    int
	Tunnels []ID
}

// Option configures graph construction.
type Option func(*config)

type config struct {
	origin string
}

// WithOrigin sets the name of the valve all agents start from.
// An empty name keeps DefaultOrigin.
func WithOrigin(name string) Option {
	return func(c *config) {
		if name != "" {
			c.origin = name
		}
	}
}
