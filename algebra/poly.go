package algebra

// Polynomial is an element of R_q = Z_q[X]/(X^256+1) in coefficient form.
// Only the additive structure and scaling by field elements are defined here;
// products go through the NTT domain.
type Polynomial[F Field] [N]Elem[F]

// NewPolynomial builds a polynomial from residues already in [0, Q).
func NewPolynomial[F Field](coeffs [N]uint32) Polynomial[F] {
	return Polynomial[F](fromResidues[F](&coeffs))
}

func (p *Polynomial[F]) raw() *[N]Elem[F] { return (*[N]Elem[F])(p) }

func (p *Polynomial[F]) Add(q *Polynomial[F]) Polynomial[F] {
	return Polynomial[F](addCoeffs(p.raw(), q.raw()))
}

func (p *Polynomial[F]) Sub(q *Polynomial[F]) Polynomial[F] {
	return Polynomial[F](subCoeffs(p.raw(), q.raw()))
}

func (p *Polynomial[F]) Neg() Polynomial[F] {
	return Polynomial[F](negCoeffs(p.raw()))
}

// MulScalar multiplies every coefficient by s.
func (p *Polynomial[F]) MulScalar(s Elem[F]) Polynomial[F] {
	return Polynomial[F](scaleCoeffs(s, p.raw()))
}

// Coefficients returns the canonical residues.
func (p *Polynomial[F]) Coefficients() [N]uint32 {
	return residues(p.raw())
}

// Zeroize overwrites p with zeros.
func (p *Polynomial[F]) Zeroize() {
	clear(p[:])
}

// NttPolynomial is an element of T_q = Z_q^256, the NTT image of R_q, where
// ring multiplication is coordinatewise.
type NttPolynomial[F Field] [N]Elem[F]

// NewNttPolynomial builds an NTT-domain polynomial from residues in [0, Q).
func NewNttPolynomial[F Field](coeffs [N]uint32) NttPolynomial[F] {
	return NttPolynomial[F](fromResidues[F](&coeffs))
}

// NttOne is the multiplicative identity of T_q.
func NttOne[F Field]() (p NttPolynomial[F]) {
	for i := range p {
		p[i] = 1
	}
	return p
}

func (p *NttPolynomial[F]) raw() *[N]Elem[F] { return (*[N]Elem[F])(p) }

func (p *NttPolynomial[F]) Add(q *NttPolynomial[F]) NttPolynomial[F] {
	return NttPolynomial[F](addCoeffs(p.raw(), q.raw()))
}

func (p *NttPolynomial[F]) Sub(q *NttPolynomial[F]) NttPolynomial[F] {
	return NttPolynomial[F](subCoeffs(p.raw(), q.raw()))
}

func (p *NttPolynomial[F]) Neg() NttPolynomial[F] {
	return NttPolynomial[F](negCoeffs(p.raw()))
}

func (p *NttPolynomial[F]) MulScalar(s Elem[F]) NttPolynomial[F] {
	return NttPolynomial[F](scaleCoeffs(s, p.raw()))
}

// Mul is the ring product in the NTT domain: each of the 256 slots is
// multiplied independently.
func (p *NttPolynomial[F]) Mul(q *NttPolynomial[F]) NttPolynomial[F] {
	return NttPolynomial[F](mulCoeffs(p.raw(), q.raw()))
}

func (p *NttPolynomial[F]) Coefficients() [N]uint32 {
	return residues(p.raw())
}

func (p *NttPolynomial[F]) Zeroize() {
	clear(p[:])
}
