package algebra

import (
	"errors"
	"testing"

	"mldsa-lattice/internal/xof"
)

type dsa = MLDSAField

func randomPoly(st *xof.Stream) Polynomial[dsa] {
	var c [N]uint32
	for i := range c {
		c[i] = uint32(st.Below(uint64(DescriptorOf[dsa]().Q)))
	}
	return NewPolynomial[dsa](c)
}

func randomNttPoly(st *xof.Stream) NttPolynomial[dsa] {
	p := randomPoly(st)
	return NewNttPolynomial[dsa](p.Coefficients())
}

func TestPolynomialOps(t *testing.T) {
	st := xof.New([]byte("poly"), "ops")
	a, b := randomPoly(st), randomPoly(st)
	s := NewElem[dsa](12345)
	sum, diff, neg, scaled := a.Add(&b), a.Sub(&b), a.Neg(), a.MulScalar(s)
	for i := 0; i < N; i++ {
		if sum[i] != a[i].Add(b[i]) || diff[i] != a[i].Sub(b[i]) {
			t.Fatalf("coefficient %d: add/sub mismatch", i)
		}
		if neg[i] != a[i].Neg() || scaled[i] != a[i].Mul(s) {
			t.Fatalf("coefficient %d: neg/scale mismatch", i)
		}
	}
	back := sum.Sub(&b)
	if back != a {
		t.Fatalf("(a+b)-b != a")
	}
	zero := a.Add(&neg)
	if zero != (Polynomial[dsa]{}) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestNttPolynomialMul(t *testing.T) {
	st := xof.New([]byte("poly"), "ntt-mul")
	a, b := randomNttPoly(st), randomNttPoly(st)
	prod := a.Mul(&b)
	for i := 0; i < N; i++ {
		if prod[i] != a[i].Mul(b[i]) {
			t.Fatalf("slot %d: got %d", i, prod[i])
		}
	}
	one := NttOne[dsa]()
	if got := a.Mul(&one); got != a {
		t.Fatalf("a * 1 != a")
	}
}

func TestVectorOps(t *testing.T) {
	st := xof.New([]byte("vector"), "ops")
	ap := []Polynomial[dsa]{randomPoly(st), randomPoly(st), randomPoly(st), randomPoly(st)}
	bp := []Polynomial[dsa]{randomPoly(st), randomPoly(st), randomPoly(st), randomPoly(st)}
	a, err := NewVector[dsa, Dim4](ap...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewVector[dsa, Dim4](bp...)
	if err != nil {
		t.Fatal(err)
	}
	s := NewElem[dsa](7)
	sum, diff, neg, scaled := a.Add(b), a.Sub(b), a.Neg(), a.MulScalar(s)
	for i := 0; i < a.Len(); i++ {
		if sum.At(i) != ap[i].Add(&bp[i]) || diff.At(i) != ap[i].Sub(&bp[i]) {
			t.Fatalf("entry %d: add/sub mismatch", i)
		}
		if neg.At(i) != ap[i].Neg() || scaled.At(i) != ap[i].MulScalar(s) {
			t.Fatalf("entry %d: neg/scale mismatch", i)
		}
	}
	if !sum.Sub(b).Equal(a) {
		t.Fatalf("(a+b)-b != a")
	}
	var zero Vector[dsa, Dim4]
	if !a.Add(neg).Equal(zero) || !zero.Add(a).Equal(a) {
		t.Fatalf("zero value is not the additive identity")
	}
	ap[0] = Polynomial[dsa]{}
	if a.At(0) == ap[0] {
		t.Fatalf("NewVector aliases its arguments")
	}
}

func TestDimensionMismatch(t *testing.T) {
	p := Polynomial[dsa]{}
	if _, err := NewVector[dsa, Dim5](p, p, p, p); !errors.Is(err, ErrDimension) {
		t.Fatalf("NewVector: err=%v", err)
	}
	np := NttPolynomial[dsa]{}
	if _, err := NewNttVector[dsa, Dim2](np); !errors.Is(err, ErrDimension) {
		t.Fatalf("NewNttVector: err=%v", err)
	}
	row, _ := NewNttVector[dsa, Dim1](np)
	if _, err := NewNttMatrix[dsa, Dim3](row, row); !errors.Is(err, ErrDimension) {
		t.Fatalf("NewNttMatrix: err=%v", err)
	}
}

func TestDotAndMulPolynomial(t *testing.T) {
	st := xof.New([]byte("vector"), "dot")
	vp := []NttPolynomial[dsa]{randomNttPoly(st), randomNttPoly(st), randomNttPoly(st)}
	wp := []NttPolynomial[dsa]{randomNttPoly(st), randomNttPoly(st), randomNttPoly(st)}
	v, _ := NewNttVector[dsa, Dim3](vp...)
	w, _ := NewNttVector[dsa, Dim3](wp...)

	var want NttPolynomial[dsa]
	for i := range vp {
		for j := 0; j < N; j++ {
			want[j] = want[j].Add(vp[i][j].Mul(wp[i][j]))
		}
	}
	if got := v.Dot(w); got != want {
		t.Fatalf("Dot mismatch")
	}

	c := randomNttPoly(st)
	scaled := v.MulPolynomial(&c)
	for i := range vp {
		if scaled.At(i) != vp[i].Mul(&c) {
			t.Fatalf("MulPolynomial entry %d mismatch", i)
		}
	}
}

func TestApplyIdentity(t *testing.T) {
	st := xof.New([]byte("matrix"), "identity")
	one := NttOne[dsa]()
	row, err := NewNttVector[dsa, Dim1](one)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewNttMatrix[dsa, Dim1](row)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		v, _ := NewNttVector[dsa, Dim1](randomNttPoly(st))
		if got := m.Apply(v); !got.Equal(v) {
			t.Fatalf("identity apply changed the input")
		}
	}
}

func TestApplyRows(t *testing.T) {
	st := xof.New([]byte("matrix"), "rows")
	rows := make([]NttVector[dsa, Dim5], 6)
	for i := range rows {
		rows[i], _ = NewNttVector[dsa, Dim5](randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st))
	}
	m, err := NewNttMatrix[dsa, Dim6](rows...)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 6 || m.Cols() != 5 {
		t.Fatalf("shape %dx%d", m.Rows(), m.Cols())
	}
	v, _ := NewNttVector[dsa, Dim5](randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st))
	got := m.Apply(v)
	for i := range rows {
		if got.At(i) != rows[i].Dot(v) {
			t.Fatalf("row %d mismatch", i)
		}
	}
}

func TestZeroize(t *testing.T) {
	st := xof.New([]byte("zeroize"), "")
	p := randomPoly(st)
	p.Zeroize()
	if p != (Polynomial[dsa]{}) {
		t.Fatalf("polynomial not cleared")
	}
	v, _ := NewVector[dsa, Dim2](randomPoly(st), randomPoly(st))
	v.Zeroize()
	if !v.Equal(Vector[dsa, Dim2]{}) {
		t.Fatalf("vector not cleared")
	}
	row, _ := NewNttVector[dsa, Dim1](randomNttPoly(st))
	m, _ := NewNttMatrix[dsa, Dim1](row)
	m.Zeroize()
	if m.Row(0).At(0) != (NttPolynomial[dsa]{}) {
		t.Fatalf("matrix not cleared")
	}
}

func BenchmarkNttMatrixApply65(b *testing.B) {
	st := xof.New([]byte("bench"), "apply")
	rows := make([]NttVector[dsa, Dim5], 6)
	for i := range rows {
		rows[i], _ = NewNttVector[dsa, Dim5](randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st), randomNttPoly(st))
	}
	m, _ := NewNttMatrix[dsa, Dim6](rows...)
	v := rows[0]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Apply(v)
	}
}

func TestMatrixOwnsRows(t *testing.T) {
	st := xof.New([]byte("matrix"), "owns")
	p := randomNttPoly(st)
	row, _ := NewNttVector[dsa, Dim1](p)
	m, err := NewNttMatrix[dsa, Dim1](row)
	if err != nil {
		t.Fatal(err)
	}
	row.Zeroize()
	if m.Row(0).At(0) != p {
		t.Fatalf("clearing the argument row cleared the matrix")
	}
	r := m.Row(0)
	r.Zeroize()
	if m.Row(0).At(0) != p {
		t.Fatalf("clearing a returned row cleared the matrix")
	}
}
