package algebra

import "fmt"

// Elem is a residue modulo the prime of F, always in [0, Q).
type Elem[F Field] uint32

// NewElem wraps x without reducing it. The caller guarantees x < Q; builds
// tagged latticedebug panic otherwise.
func NewElem[F Field](x uint32) Elem[F] {
	if checkInvariants {
		if d := descriptor[F](); x >= d.Q {
			panic(fmt.Sprintf("algebra: residue %d out of range for %v", x, d))
		}
	}
	return Elem[F](x)
}

// ReduceElem reduces an arbitrary integer into the field.
func ReduceElem[F Field](x uint64) Elem[F] {
	return Elem[F](x % descriptor[F]().QL)
}

// Value returns the canonical representative.
func (a Elem[F]) Value() uint32 {
	return uint32(a)
}

func (a Elem[F]) Add(b Elem[F]) Elem[F] {
	return Elem[F](descriptor[F]().SmallReduce(uint32(a) + uint32(b)))
}

// Sub adds Q before subtracting so the intermediate never goes negative.
func (a Elem[F]) Sub(b Elem[F]) Elem[F] {
	d := descriptor[F]()
	return Elem[F](d.SmallReduce(uint32(a) + d.Q - uint32(b)))
}

func (a Elem[F]) Neg() Elem[F] {
	d := descriptor[F]()
	return Elem[F](d.SmallReduce(d.Q - uint32(a)))
}

func (a Elem[F]) Mul(b Elem[F]) Elem[F] {
	return Elem[F](descriptor[F]().BarrettReduce(uint64(a) * uint64(b)))
}

func (a Elem[F]) Equal(b Elem[F]) bool { return a == b }

func (a Elem[F]) IsZero() bool { return a == 0 }
