// Package growth derives the table sizes of the pointer map from a
// golden-ratio growth curve.
//
// Each power level p starts from floor(φ^p) and walks outward until it hits
// an odd length that the witness set accepts. The length then determines the
// capacity limit and the reduction bias stored next to it.
package growth

import "math"

// Power range of the published table.
const (
	// MinPower is the smallest power level. φ^11 ≈ 199 is the smallest
	// table the consumer allocates.
	MinPower = 11

	// MaxPower is the largest power level. Lengths past φ^29 are mostly
	// academic; the last row is the final rehash target.
	MaxPower = 41

	// maxSupportedPower bounds GoldenSeed. Powers beyond it cannot produce
	// a length that fits the 32-bit table fields anyway.
	maxSupportedPower = 64
)

// DefaultMaxRepairSteps bounds the coprimality repair walk. The published
// range needs at most 5 steps.
const DefaultMaxRepairSteps = 64

// golden is φ = (1+√5)/2 rounded to float64. GoldenSeed works from this
// value rather than the real φ so the table matches float64 arithmetic.
var golden = (1 + math.Sqrt(5)) / 2

// loadNumerator and loadDenominator set the capacity limit to 2/3 of the
// table length.
const (
	loadNumerator   = 2
	loadDenominator = 3
)
