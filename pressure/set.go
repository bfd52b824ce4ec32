package pressure

import "math/bits"

// MaxValuable is the number of valuable valves a Set can track.
const MaxValuable = 64

// Set is a fixed-width bit-set over target slots of a distance.Index.
type Set uint64

// Has reports whether slot i is in the set.
func (s Set) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// With returns the set with slot i added.
func (s Set) With(i int) Set { return s | 1<<uint(i) }

// Len returns the number of slots in the set.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }
