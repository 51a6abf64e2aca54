// Package errors defines all exported error sentinels for the hmapsizes module.
//
// This is the single source of truth for error values. Both the top-level
// hmapsizes package and the internal solver packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Generation errors
var (
	ErrSizeSearchExhausted = errors.New("hmapsizes: size search exhausted without a coprime candidate")
	ErrSizeOverflow        = errors.New("hmapsizes: table size does not fit in 32 bits")
	ErrInvalidPowerRange   = errors.New("hmapsizes: power level out of range")
	ErrInvalidWitnessRange = errors.New("hmapsizes: invalid witness seed or candidate range")
	ErrInvalidOption       = errors.New("hmapsizes: invalid generate option")
)

// Table errors
var (
	ErrInvalidTable       = errors.New("hmapsizes: table violates a sizing invariant")
	ErrCapacityOutOfRange = errors.New("hmapsizes: requested capacity exceeds the largest table")
)

// Output errors
var (
	ErrStaleOutput = errors.New("hmapsizes: generated file is out of date")
)
