// Package xof turns a seed into reproducible streams of bounded integers.
// It feeds tests and benchmarks; it is not one of the scheme's samplers.
package xof

import (
	"encoding/binary"
	"io"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// Stream reads little-endian words from SHAKE128(seed || label).
type Stream struct {
	r   io.Reader
	buf [8]byte
}

// New starts a stream. Distinct labels give independent streams for one seed.
func New(seed []byte, label string) *Stream {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte(label))
	return &Stream{r: h}
}

// Uint64 returns the next 64 bits of output.
func (s *Stream) Uint64() uint64 {
	// Reads from a ShakeHash never fail.
	_, _ = io.ReadFull(s.r, s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Bits returns a uniform value in [0, 2^d) for d <= 64.
func (s *Stream) Bits(d int) uint64 {
	if d >= 64 {
		return s.Uint64()
	}
	return s.Uint64() & (uint64(1)<<d - 1)
}

// Below returns a uniform value in [0, bound) by rejection.
func (s *Stream) Below(bound uint64) uint64 {
	if bound <= 1 {
		return 0
	}
	d := bits.Len64(bound - 1)
	for {
		if x := s.Bits(d); x < bound {
			return x
		}
	}
}
