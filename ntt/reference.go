package ntt

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"

	"mldsa-lattice/algebra"
)

// ReferenceApply computes m*v with lattigo's coefficientwise arithmetic. It
// shares no code with NttMatrix.Apply and exists to cross-check it.
func ReferenceApply[F algebra.Field, K, L algebra.Dim](t *Transform[F], m algebra.NttMatrix[F, K, L], v algebra.NttVector[F, L]) (algebra.NttVector[F, K], error) {
	if t == nil {
		return algebra.NttVector[F, K]{}, fmt.Errorf("ntt: nil transform")
	}
	vec := make([]*ring.Poly, v.Len())
	for j, p := range v.Polynomials() {
		c := p.Coefficients()
		vec[j] = t.toPoly(&c)
	}
	out := make([]algebra.NttPolynomial[F], m.Rows())
	tmp := t.ringQ.NewPoly()
	for i := range out {
		acc := t.ringQ.NewPoly()
		for j, a := range m.Row(i).Polynomials() {
			c := a.Coefficients()
			t.ringQ.MulCoeffs(t.toPoly(&c), vec[j], tmp)
			t.ringQ.Add(acc, tmp, acc)
		}
		out[i] = algebra.NewNttPolynomial[F](t.fromPoly(acc))
	}
	return algebra.NewNttVector[F, K](out...)
}
