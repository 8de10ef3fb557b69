// Package encode packs 256-coefficient polynomials into bytes at a fixed bit
// width, as SimpleBitPack/SimpleBitUnpack (FIPS 204) and ByteEncode/ByteDecode
// (FIPS 203) do.
package encode

import (
	"errors"
	"fmt"

	"mldsa-lattice/algebra"
	"mldsa-lattice/internal/arrayutil"
	"mldsa-lattice/measure"
)

// MaxBits is the widest supported coefficient width.
const MaxBits = 20

// kemBits is the width at which decoded values may reach Q and are reduced.
const kemBits = 12

// ErrInvalidLength is returned when a buffer does not hold exactly the
// expected number of encoded polynomials.
var ErrInvalidLength = errors.New("encode: invalid encoding length")

// Layout describes how coefficients of Bits bits map onto bytes: ValueStep
// coefficients fill exactly ByteStep bytes.
type Layout struct {
	Bits           int
	ValueStep      int
	ByteStep       int
	PolynomialSize int

	mask uint64
	key  string
}

// accumulator holds one packing group. lcm(D, 8) never exceeds 152 bits for
// D <= 20, so three words suffice.
type accumulator [3]uint64

var layouts [MaxBits + 1]Layout

func init() {
	for d := 1; d <= MaxBits; d++ {
		l := newLayout(d)
		if err := l.validate(); err != nil {
			panic(err)
		}
		layouts[d] = l
	}
}

func newLayout(d int) Layout {
	unit := lcm(d, 8)
	return Layout{
		Bits:           d,
		ValueStep:      unit / d,
		ByteStep:       unit / 8,
		PolynomialSize: algebra.N * d / 8,
		mask:           uint64(1)<<d - 1,
		key:            fmt.Sprintf("encode/d%02d", d),
	}
}

func (l Layout) validate() error {
	switch {
	case l.ValueStep*l.Bits != l.ByteStep*8:
		return fmt.Errorf("encode: d=%d: %d values do not fill %d bytes", l.Bits, l.ValueStep, l.ByteStep)
	case l.ByteStep > 8*len(accumulator{}):
		return fmt.Errorf("encode: d=%d: group of %d bytes exceeds accumulator", l.Bits, l.ByteStep)
	case algebra.N%l.ValueStep != 0:
		return fmt.Errorf("encode: d=%d: value step %d does not divide %d", l.Bits, l.ValueStep, algebra.N)
	case algebra.N/l.ValueStep*l.ByteStep != l.PolynomialSize:
		return fmt.Errorf("encode: d=%d: groups do not cover %d bytes", l.Bits, l.PolynomialSize)
	}
	return nil
}

// LayoutFor returns the layout of width d, for tools that choose d at run time.
func LayoutFor(d int) (Layout, error) {
	if d < 1 || d > MaxBits {
		return Layout{}, fmt.Errorf("encode: unsupported width %d", d)
	}
	return layouts[d], nil
}

// Size returns the encoded size of k polynomials.
func (l Layout) Size(k int) int { return k * l.PolynomialSize }

// Encode packs coefficients, each assumed below 2^Bits.
func (l Layout) Encode(coeffs *[algebra.N]uint32) []byte {
	out := make([]byte, l.PolynomialSize)
	l.pack(out, coeffs)
	measure.Global.Add(l.key, int64(len(out)))
	return out
}

// Decode unpacks one polynomial's coefficients. At 12 bits each value is
// reduced modulo d.Q; at every other width it is returned as read.
func (l Layout) Decode(b []byte, d *algebra.Descriptor) ([algebra.N]uint32, error) {
	var coeffs [algebra.N]uint32
	if len(b) != l.PolynomialSize {
		return coeffs, fmt.Errorf("%w: %d bytes at %d bits, want %d", ErrInvalidLength, len(b), l.Bits, l.PolynomialSize)
	}
	l.unpack(&coeffs, b, d)
	measure.Global.Add(l.key, int64(len(b)))
	return coeffs, nil
}

func (l Layout) pack(out []byte, coeffs *[algebra.N]uint32) {
	for g := 0; g < algebra.N/l.ValueStep; g++ {
		var acc accumulator
		for j := 0; j < l.ValueStep; j++ {
			acc.or(uint64(coeffs[g*l.ValueStep+j])&l.mask, l.Bits*j, l.Bits)
		}
		dst := out[g*l.ByteStep : (g+1)*l.ByteStep]
		for i := range dst {
			dst[i] = arrayutil.Truncate[uint8](acc[i>>3] >> (8 * (i & 7)))
		}
	}
}

func (l Layout) unpack(coeffs *[algebra.N]uint32, in []byte, d *algebra.Descriptor) {
	reduce := l.Bits == kemBits
	for g := 0; g < algebra.N/l.ValueStep; g++ {
		var acc accumulator
		for i, b := range in[g*l.ByteStep : (g+1)*l.ByteStep] {
			acc[i>>3] |= uint64(b) << (8 * (i & 7))
		}
		for j := 0; j < l.ValueStep; j++ {
			v := arrayutil.Truncate[uint32](acc.extract(l.Bits*j, l.Bits) & l.mask)
			if reduce {
				v %= d.Q
			}
			coeffs[g*l.ValueStep+j] = v
		}
	}
}

// or sets the width-bit field at offset off to v; the field is zero before.
func (a *accumulator) or(v uint64, off, width int) {
	w, sh := off>>6, off&63
	a[w] |= v << sh
	if sh+width > 64 {
		a[w+1] |= v >> (64 - sh)
	}
}

func (a *accumulator) extract(off, width int) uint64 {
	w, sh := off>>6, off&63
	v := a[w] >> sh
	if sh+width > 64 {
		v |= a[w+1] << (64 - sh)
	}
	return v
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}
