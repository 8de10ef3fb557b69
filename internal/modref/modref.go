// Package modref is a slow, division-based modular arithmetic used as the
// reference the Barrett reduction is checked against.
package modref

import "math/bits"

// Mod returns x mod m.
func Mod(x, m uint64) uint64 {
	return x % m
}

// MulMod64 returns (a*b) mod m using a 128-bit intermediate product.
func MulMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// AddMod64 returns (a+b) mod m.
func AddMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	s, c := bits.Add64(a, b, 0)
	if c == 1 || s >= m {
		s -= m
	}
	return s
}

// SubMod64 returns (a-b) mod m.
func SubMod64(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= b {
		return a - b
	}
	return m - b + a
}

// NegacyclicMul multiplies two polynomials modulo (X^n+1, m) by schoolbook
// convolution. Inputs must have the same length n.
func NegacyclicMul(a, b []uint64, m uint64) []uint64 {
	n := len(a)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			t := MulMod64(a[i], b[j], m)
			if k := i + j; k < n {
				out[k] = AddMod64(out[k], t, m)
			} else {
				out[k-n] = SubMod64(out[k-n], t, m)
			}
		}
	}
	return out
}
