package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/zeebo/blake3"

	"mldsa-lattice/algebra"
	"mldsa-lattice/internal/xof"
	"mldsa-lattice/ntt"
	"mldsa-lattice/param"
	"mldsa-lattice/prof"
)

const matVecObject = "A*v"

type dsaField = algebra.MLDSAField

// matVec times w = InvNTT(A * NTT(v)) for an ML-DSA shape and checks A*v
// against the lattigo reference product. Rows for other sets report ok=false.
func (b *bench) matVec(s param.Set) (benchRow, bool, error) {
	p, isDSA := s.(*param.MLDSA)
	if !isDSA {
		return benchRow{}, false, nil
	}
	t, err := ntt.New[dsaField]()
	if err != nil {
		return benchRow{}, false, err
	}
	switch {
	case p.K == 4 && p.L == 4:
		return matVecShape[param.K44, param.L44](b, t, p.Name)
	case p.K == 6 && p.L == 5:
		return matVecShape[param.K65, param.L65](b, t, p.Name)
	case p.K == 8 && p.L == 7:
		return matVecShape[param.K87, param.L87](b, t, p.Name)
	}
	log.Printf("[bench] %s: no static shape for %dx%d, skipping matvec", p.Name, p.K, p.L)
	return benchRow{}, false, nil
}

func matVecShape[K, L algebra.Dim](b *bench, t *ntt.Transform[dsaField], name string) (benchRow, bool, error) {
	var k K
	var l L
	q := algebra.DescriptorOf[dsaField]().QL
	applyLabel := name + "/matvec/apply"
	refLabel := name + "/matvec/reference"
	h := blake3.New()
	ok := true
	for it := 0; it < b.iters; it++ {
		st := xof.New(b.seed, fmt.Sprintf("%s/matvec/%d", name, it))
		rows := make([]algebra.NttVector[dsaField, L], k.Len())
		for i := range rows {
			row, err := algebra.NewNttVector[dsaField, L](randomNtt(st, q, l.Len())...)
			if err != nil {
				return benchRow{}, false, err
			}
			rows[i] = row
		}
		m, err := algebra.NewNttMatrix[dsaField, K](rows...)
		if err != nil {
			return benchRow{}, false, err
		}
		v, err := algebra.NewVector[dsaField, L](randomPolys(st, q, l.Len())...)
		if err != nil {
			return benchRow{}, false, err
		}

		start := time.Now()
		vh := ntt.ForwardVector(t, v)
		wh := m.Apply(vh)
		w := ntt.InverseVector(t, wh)
		b.rec.Track(start, applyLabel)

		start = time.Now()
		ref, err := ntt.ReferenceApply(t, m, vh)
		if err != nil {
			return benchRow{}, false, err
		}
		b.rec.Track(start, refLabel)

		if !ref.Equal(wh) {
			ok = false
		}
		var buf []byte
		for _, p := range w.Polynomials() {
			for _, c := range p.Coefficients() {
				buf = binary.LittleEndian.AppendUint32(buf, c)
			}
		}
		h.Write(buf)
	}
	sum := prof.Summarize(b.rec.SnapshotAndReset())
	return benchRow{
		Set:       name,
		Object:    matVecObject,
		Cols:      l.Len(),
		Count:     k.Len(),
		Iters:     b.iters,
		ApplyNs:   sum[applyLabel].MedianNs,
		RefNs:     sum[refLabel].MedianNs,
		Digest:    hex.EncodeToString(h.Sum(nil)),
		RoundTrip: ok,
	}, true, nil
}

func randomPolys(st *xof.Stream, q uint64, n int) []algebra.Polynomial[dsaField] {
	out := make([]algebra.Polynomial[dsaField], n)
	for i := range out {
		var c [algebra.N]uint32
		for j := range c {
			c[j] = uint32(st.Below(q))
		}
		out[i] = algebra.NewPolynomial[dsaField](c)
	}
	return out
}

func randomNtt(st *xof.Stream, q uint64, n int) []algebra.NttPolynomial[dsaField] {
	out := make([]algebra.NttPolynomial[dsaField], n)
	for i := range out {
		var c [algebra.N]uint32
		for j := range c {
			c[j] = uint32(st.Below(q))
		}
		out[i] = algebra.NewNttPolynomial[dsaField](c)
	}
	return out
}
