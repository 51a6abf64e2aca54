package growth

import (
	"fmt"
	"math"
	"math/big"

	hmerrors "github.com/tamirms/hmapsizes/errors"
)

// GoldenSeed returns floor(φ^p), where φ^p is the float64 nearest to the
// exact p-th power of the float64 golden ratio.
//
// The power is formed exactly with math/big (53 bits of mantissa per factor)
// and rounded once, so the result does not depend on the platform's pow.
// For p = 36, 38 and 40 this lands one above the floor of the real φ^p; the
// published table was built from those rounded values.
func GoldenSeed(p int) (uint64, error) {
	if p < 1 || p > maxSupportedPower {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", hmerrors.ErrInvalidPowerRange, p, maxSupportedPower)
	}

	prec := uint(53 * p)
	base := new(big.Float).SetPrec(prec).SetFloat64(golden)
	acc := new(big.Float).SetPrec(prec).SetInt64(1)
	for range p {
		acc.Mul(acc, base)
	}
	f, _ := acc.Float64()
	return uint64(math.Floor(f)), nil
}
