package lvc

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SelectorFromBitSet turns a bitset into the {0,1} selector vector b used by
// Open and Verify: bit i set means b[i] = 1. size must be at least bs's
// length; the result is exactly size long, zero-padded.
func SelectorFromBitSet(bs *bitset.BitSet, size uint64) []fr.Element {
	b := make([]fr.Element, size)
	for i := uint64(0); i < size; i++ {
		if bs.Test(uint(i)) {
			b[i] = fr.One()
		}
	}
	return b
}

// SelectorAll returns the all-ones selector vector of the given length, the
// identity selector under which y equals the sum of every entry of a.
func SelectorAll(size uint64) []fr.Element {
	b := make([]fr.Element, size)
	for i := range b {
		b[i] = fr.One()
	}
	return b
}
