package growth

import (
	"fmt"
	"math"

	hmerrors "github.com/tamirms/hmapsizes/errors"
	intbits "github.com/tamirms/hmapsizes/internal/bits"
	"github.com/tamirms/hmapsizes/internal/witness"
)

// maxProbeStep is the largest probe step the pointer map derives from a
// hash: (h & 127) + 1.
const maxProbeStep = 128

// Entry is one row of the size table.
type Entry struct {
	Power int    // growth exponent the row was seeded from
	Limit uint32 // live entries allowed before the consumer rehashes
	Size  uint32 // table length, also the reduction modulus
	Bias  uint32 // 2^32 mod Size
}

// Slot maps a 32-bit hash to a table index in [0, Size) using the stored bias.
func (e Entry) Slot(h uint32) uint32 {
	return intbits.Reduce32(h, e.Size, e.Bias)
}

// ProbeCoprime reports whether every probe step in [1, 128] is coprime to
// Size, so that any probe sequence visits every slot before repeating.
func (e Entry) ProbeCoprime() bool {
	if e.Size == 0 {
		return false
	}
	for k := uint32(2); k <= maxProbeStep; k++ {
		if gcd(e.Size, k) != 1 {
			return false
		}
	}
	return true
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Solve derives the table row for power level p.
func Solve(p int, set witness.Set, maxSteps int) (Entry, error) {
	seed, err := GoldenSeed(p)
	if err != nil {
		return Entry{}, err
	}
	s, _, err := Repair(seed, set, maxSteps)
	if err != nil {
		return Entry{}, fmt.Errorf("power %d: %w", p, err)
	}
	if s > math.MaxUint32 {
		return Entry{}, fmt.Errorf("%w: power %d gives %d", hmerrors.ErrSizeOverflow, p, s)
	}
	size := uint32(s)
	return Entry{
		Power: p,
		Limit: Limit(size),
		Size:  size,
		Bias:  Bias(size),
	}, nil
}

// Repair forces seed odd and walks outward from it until set accepts the
// candidate. Offsets from the odd seed are tried in the order
// -2, +2, -4, +4, -6, ... so smaller lengths win ties.
//
// It returns the accepted length and the number of steps taken. More than
// maxSteps steps, or a candidate below 3, yields ErrSizeSearchExhausted.
func Repair(seed uint64, set witness.Set, maxSteps int) (uint64, int, error) {
	s := int64(seed | 1)
	d := int64(-2)
	steps := 0
	for !set.Coprime(uint64(s)) {
		if steps >= maxSteps {
			return 0, steps, fmt.Errorf("%w: seed %d after %d steps", hmerrors.ErrSizeSearchExhausted, seed, steps)
		}
		s += d
		if d < 0 {
			d = -d + 2
		} else {
			d = -d - 2
		}
		steps++
		if s < 3 {
			return 0, steps, fmt.Errorf("%w: seed %d walked below 3", hmerrors.ErrSizeSearchExhausted, seed)
		}
	}
	return uint64(s), steps, nil
}

// Bias returns 2^32 mod size. size must be non-zero.
func Bias(size uint32) uint32 {
	return uint32((uint64(1) << 32) % uint64(size))
}

// Limit returns floor(2*size/3).
func Limit(size uint32) uint32 {
	return uint32(uint64(size) * loadNumerator / loadDenominator)
}
