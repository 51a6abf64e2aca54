// Package witness builds the set of small odd primes that every table size
// must be coprime to.
//
// The consuming map probes with steps in [1,128], so a table length that
// shares no factor with any odd prime up to 127 (and is itself odd) lets
// every probe sequence visit the whole table.
package witness

import (
	"fmt"

	hmerrors "github.com/tamirms/hmapsizes/errors"
)

const (
	// CandidateLow is the first odd integer tested for inclusion after the seed.
	CandidateLow = 19

	// CandidateHigh is the last integer tested for inclusion. 127 is the
	// largest odd prime below the maximum probe step of 128.
	CandidateHigh = 127
)

// DefaultSeed holds the six smallest odd primes.
var DefaultSeed = []uint32{3, 5, 7, 11, 13, 17}

// Set is an ascending sequence of odd witnesses.
type Set []uint32

// Default returns the witness set for the fixed seed and candidate range.
func Default() Set {
	s, err := Build(DefaultSeed, CandidateLow, CandidateHigh)
	if err != nil {
		panic("witness: default range rejected: " + err.Error())
	}
	return s
}

// Build extends seed with every odd candidate in [lo, hi] that passes
// Coprime against the witnesses collected so far. The seed is copied.
func Build(seed []uint32, lo, hi uint32) (Set, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", hmerrors.ErrInvalidWitnessRange)
	}
	for i, q := range seed {
		if q < 3 || q%2 == 0 {
			return nil, fmt.Errorf("%w: seed value %d is not an odd integer >= 3", hmerrors.ErrInvalidWitnessRange, q)
		}
		if i > 0 && q <= seed[i-1] {
			return nil, fmt.Errorf("%w: seed is not strictly increasing at %d", hmerrors.ErrInvalidWitnessRange, q)
		}
	}
	if lo%2 == 0 || hi < lo {
		return nil, fmt.Errorf("%w: candidates [%d, %d]", hmerrors.ErrInvalidWitnessRange, lo, hi)
	}
	if lo <= seed[len(seed)-1] {
		return nil, fmt.Errorf("%w: first candidate %d does not exceed the seed", hmerrors.ErrInvalidWitnessRange, lo)
	}

	s := make(Set, len(seed), len(seed)+int(hi-lo)/2+1)
	copy(s, seed)
	for x := uint64(lo); x <= uint64(hi); x += 2 {
		if s.Coprime(x) {
			s = append(s, uint32(x))
		}
	}
	return s, nil
}

// Coprime reports whether no witness divides x, scanning witnesses in
// ascending order and stopping at the first q with q*q > x.
//
// This is a bounded trial division, not a primality proof: once x exceeds
// Max()^2 every witness is checked but factors above Max() are never looked
// at. The published tables depend on exactly this rule.
func (s Set) Coprime(x uint64) bool {
	for _, q := range s {
		qq := uint64(q) * uint64(q)
		if qq > x {
			break
		}
		if x%uint64(q) == 0 {
			return false
		}
	}
	return true
}

// Max returns the largest witness, or 0 for an empty set.
func (s Set) Max() uint32 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Exhaustive reports whether Coprime scans every witness for x.
func (s Set) Exhaustive(x uint64) bool {
	m := uint64(s.Max())
	return m*m <= x
}
