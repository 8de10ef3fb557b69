package algebra

import "fmt"

// NttMatrix is a K x L matrix over T_q stored as K rows of length L, so that
// multiplying a vector on the right is one dot product per row.
type NttMatrix[F Field, K, L Dim] struct {
	rows []NttVector[F, L]
}

// NewNttMatrix copies exactly K rows into a matrix. The matrix owns its
// entries; later changes to the arguments do not reach it.
func NewNttMatrix[F Field, K, L Dim](rows ...NttVector[F, L]) (NttMatrix[F, K, L], error) {
	if k := dimLen[K](); len(rows) != k {
		return NttMatrix[F, K, L]{}, fmt.Errorf("%w: got %d rows, want %d", ErrDimension, len(rows), k)
	}
	own := make([]NttVector[F, L], len(rows))
	for i, r := range rows {
		own[i] = r.clone()
	}
	return NttMatrix[F, K, L]{rows: own}, nil
}

func (m NttMatrix[F, K, L]) row(i int) NttVector[F, L] {
	if m.rows == nil {
		return NttVector[F, L]{}
	}
	return m.rows[i]
}

// Rows returns K; Cols returns L.
func (m NttMatrix[F, K, L]) Rows() int { return dimLen[K]() }
func (m NttMatrix[F, K, L]) Cols() int { return dimLen[L]() }

// Row returns a copy of row i.
func (m NttMatrix[F, K, L]) Row(i int) NttVector[F, L] { return m.row(i).clone() }

// Apply returns m*v.
func (m NttMatrix[F, K, L]) Apply(v NttVector[F, L]) NttVector[F, K] {
	out := makeNttVector[F, K]()
	for i := range out.polys {
		out.polys[i] = m.row(i).Dot(v)
	}
	return out
}

// Zeroize clears the entries in place. Copies of m made by assignment share
// them and are cleared too.
func (m NttMatrix[F, K, L]) Zeroize() {
	for _, r := range m.rows {
		r.Zeroize()
	}
}
