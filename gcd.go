package ufrac

import "lukechampine.com/uint128"

// GCD returns the greatest common divisor (GCD) of a and b.
// The GCD is the largest integer that divides both a and b.
// GCD(a, 0) is a for every a, so GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	if b > a {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCD128 is like GCD but works on 128-bit operands, which is the width of
// the products formed when adding, comparing, or scaling fractions.
func GCD128(a, b uint128.Uint128) uint128.Uint128 {
	if b.Cmp(a) > 0 {
		a, b = b, a
	}
	for !b.IsZero() {
		// both halves fit in 64 bits, so finish with the narrow loop
		if a.Hi == 0 {
			return uint128.From64(GCD(a.Lo, b.Lo))
		}
		a, b = b, a.Mod(b)
	}
	return a
}
