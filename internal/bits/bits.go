// Package bits provides the range reductions used to map hashes onto table slots.
package bits

import "math/bits"

// FastRange32 maps a 64-bit hash uniformly to [0, n) returning uint32.
// Uses the "fastrange" technique: multiply and take high bits.
func FastRange32(hash uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return uint32(hi)
}

// Reduce32 maps a 32-bit hash to [0, n) as the pointer map does:
// (h*n + bias) >> 32, where bias = 2^32 mod n.
//
// The result stays below n for every h whenever bias < n.
func Reduce32(h, n, bias uint32) uint32 {
	return uint32((uint64(h)*uint64(n) + uint64(bias)) >> 32)
}
