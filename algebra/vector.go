package algebra

import "fmt"

// Vector is a length-K vector over R_q. The zero value is the zero vector.
// Operations return new vectors; assignment copies share entries, which only
// Zeroize can observe.
type Vector[F Field, K Dim] struct {
	polys []Polynomial[F]
}

// NewVector copies exactly K polynomials into a vector.
func NewVector[F Field, K Dim](polys ...Polynomial[F]) (Vector[F, K], error) {
	if k := dimLen[K](); len(polys) != k {
		return Vector[F, K]{}, fmt.Errorf("%w: got %d polynomials, want %d", ErrDimension, len(polys), k)
	}
	return Vector[F, K]{polys: append([]Polynomial[F](nil), polys...)}, nil
}

func makeVector[F Field, K Dim]() Vector[F, K] {
	return Vector[F, K]{polys: make([]Polynomial[F], dimLen[K]())}
}

func (v Vector[F, K]) at(i int) *Polynomial[F] {
	if v.polys == nil {
		return new(Polynomial[F])
	}
	return &v.polys[i]
}

// Len returns K.
func (v Vector[F, K]) Len() int { return dimLen[K]() }

// At returns a copy of entry i.
func (v Vector[F, K]) At(i int) Polynomial[F] { return *v.at(i) }

// Polynomials returns a copy of the entries in order.
func (v Vector[F, K]) Polynomials() []Polynomial[F] {
	out := make([]Polynomial[F], v.Len())
	for i := range out {
		out[i] = *v.at(i)
	}
	return out
}

func (v Vector[F, K]) Add(w Vector[F, K]) Vector[F, K] {
	out := makeVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Add(w.at(i))
	}
	return out
}

func (v Vector[F, K]) Sub(w Vector[F, K]) Vector[F, K] {
	out := makeVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Sub(w.at(i))
	}
	return out
}

func (v Vector[F, K]) Neg() Vector[F, K] {
	out := makeVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Neg()
	}
	return out
}

func (v Vector[F, K]) MulScalar(s Elem[F]) Vector[F, K] {
	out := makeVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).MulScalar(s)
	}
	return out
}

func (v Vector[F, K]) Equal(w Vector[F, K]) bool {
	for i := 0; i < v.Len(); i++ {
		if *v.at(i) != *w.at(i) {
			return false
		}
	}
	return true
}

// Zeroize clears the entries in place, including those of any copy made by
// assignment.
func (v Vector[F, K]) Zeroize() {
	for i := range v.polys {
		v.polys[i].Zeroize()
	}
}

// NttVector is a length-K vector over T_q. It shares the copy semantics of
// Vector.
type NttVector[F Field, K Dim] struct {
	polys []NttPolynomial[F]
}

func NewNttVector[F Field, K Dim](polys ...NttPolynomial[F]) (NttVector[F, K], error) {
	if k := dimLen[K](); len(polys) != k {
		return NttVector[F, K]{}, fmt.Errorf("%w: got %d polynomials, want %d", ErrDimension, len(polys), k)
	}
	return NttVector[F, K]{polys: append([]NttPolynomial[F](nil), polys...)}, nil
}

func makeNttVector[F Field, K Dim]() NttVector[F, K] {
	return NttVector[F, K]{polys: make([]NttPolynomial[F], dimLen[K]())}
}

func (v NttVector[F, K]) at(i int) *NttPolynomial[F] {
	if v.polys == nil {
		return new(NttPolynomial[F])
	}
	return &v.polys[i]
}

func (v NttVector[F, K]) Len() int { return dimLen[K]() }

func (v NttVector[F, K]) At(i int) NttPolynomial[F] { return *v.at(i) }

func (v NttVector[F, K]) Polynomials() []NttPolynomial[F] {
	out := make([]NttPolynomial[F], v.Len())
	for i := range out {
		out[i] = *v.at(i)
	}
	return out
}

func (v NttVector[F, K]) Add(w NttVector[F, K]) NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Add(w.at(i))
	}
	return out
}

func (v NttVector[F, K]) Sub(w NttVector[F, K]) NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Sub(w.at(i))
	}
	return out
}

func (v NttVector[F, K]) Neg() NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).Neg()
	}
	return out
}

func (v NttVector[F, K]) MulScalar(s Elem[F]) NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = v.at(i).MulScalar(s)
	}
	return out
}

// MulPolynomial multiplies every entry by p in T_q.
func (v NttVector[F, K]) MulPolynomial(p *NttPolynomial[F]) NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = p.Mul(v.at(i))
	}
	return out
}

// Dot returns sum_i v[i]*w[i], folding from the zero polynomial.
func (v NttVector[F, K]) Dot(w NttVector[F, K]) NttPolynomial[F] {
	var acc NttPolynomial[F]
	for i := 0; i < v.Len(); i++ {
		prod := v.at(i).Mul(w.at(i))
		acc = acc.Add(&prod)
	}
	return acc
}

func (v NttVector[F, K]) Equal(w NttVector[F, K]) bool {
	for i := 0; i < v.Len(); i++ {
		if *v.at(i) != *w.at(i) {
			return false
		}
	}
	return true
}

func (v NttVector[F, K]) clone() NttVector[F, K] {
	if v.polys == nil {
		return v
	}
	return NttVector[F, K]{polys: append([]NttPolynomial[F](nil), v.polys...)}
}

// Zeroize clears the entries in place, including those of any copy made by
// assignment.
func (v NttVector[F, K]) Zeroize() {
	for i := range v.polys {
		v.polys[i].Zeroize()
	}
}
