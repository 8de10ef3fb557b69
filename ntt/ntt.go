// Package ntt moves polynomials between R_q and T_q using lattigo's negacyclic
// number-theoretic transform.
//
// The slot order of T_q is lattigo's, not the bit-reversed order of FIPS 204.
// Products, sums and round trips agree with the ring either way; byte
// encodings of NTT-domain values produced here are not interchangeable with
// FIPS test vectors.
package ntt

import (
	"errors"
	"fmt"
	"os"

	"github.com/tuneinsight/lattigo/v4/ring"

	"mldsa-lattice/algebra"
)

// ErrUnsupportedModulus is returned for fields with no primitive 512th root
// of unity, such as ML-KEM's q = 3329.
var ErrUnsupportedModulus = errors.New("ntt: modulus does not support a degree-256 negacyclic NTT")

// Transform is the forward/inverse NTT for field F. It is safe for concurrent
// use; scratch polynomials are allocated per call.
type Transform[F algebra.Field] struct {
	ringQ *ring.Ring
	q     uint64
}

// New builds the transform for F.
func New[F algebra.Field]() (*Transform[F], error) {
	d := algebra.DescriptorOf[F]()
	if d.QL%(2*algebra.N) != 1 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedModulus, d)
	}
	r, err := ring.NewRing(algebra.N, []uint64{d.QL})
	if err != nil {
		return nil, fmt.Errorf("ntt: ring.NewRing: %w", err)
	}
	dbg(os.Stderr, "[ntt] ring ready for %v\n", d)
	return &Transform[F]{ringQ: r, q: d.QL}, nil
}

// Ring exposes the underlying lattigo ring.
func (t *Transform[F]) Ring() *ring.Ring { return t.ringQ }

func (t *Transform[F]) Forward(p *algebra.Polynomial[F]) algebra.NttPolynomial[F] {
	c := p.Coefficients()
	rp := t.toPoly(&c)
	t.ringQ.NTT(rp, rp)
	return algebra.NewNttPolynomial[F](t.fromPoly(rp))
}

func (t *Transform[F]) Inverse(p *algebra.NttPolynomial[F]) algebra.Polynomial[F] {
	c := p.Coefficients()
	rp := t.toPoly(&c)
	t.ringQ.InvNTT(rp, rp)
	return algebra.NewPolynomial[F](t.fromPoly(rp))
}

// ForwardVector transforms each entry of v.
func ForwardVector[F algebra.Field, K algebra.Dim](t *Transform[F], v algebra.Vector[F, K]) algebra.NttVector[F, K] {
	polys := v.Polynomials()
	out := make([]algebra.NttPolynomial[F], len(polys))
	for i := range polys {
		out[i] = t.Forward(&polys[i])
	}
	return mustNttVector[F, K](out)
}

// InverseVector transforms each entry of v back to R_q.
func InverseVector[F algebra.Field, K algebra.Dim](t *Transform[F], v algebra.NttVector[F, K]) algebra.Vector[F, K] {
	polys := v.Polynomials()
	out := make([]algebra.Polynomial[F], len(polys))
	for i := range polys {
		out[i] = t.Inverse(&polys[i])
	}
	w, err := algebra.NewVector[F, K](out...)
	if err != nil {
		panic(err)
	}
	return w
}

func mustNttVector[F algebra.Field, K algebra.Dim](polys []algebra.NttPolynomial[F]) algebra.NttVector[F, K] {
	v, err := algebra.NewNttVector[F, K](polys...)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Transform[F]) toPoly(c *[algebra.N]uint32) *ring.Poly {
	p := t.ringQ.NewPoly()
	for j, v := range c {
		p.Coeffs[0][j] = uint64(v)
	}
	return p
}

func (t *Transform[F]) fromPoly(p *ring.Poly) (c [algebra.N]uint32) {
	for j := range c {
		c[j] = uint32(p.Coeffs[0][j] % t.q)
	}
	return c
}
