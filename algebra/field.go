package algebra

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"mldsa-lattice/internal/arrayutil"
)

// N is the ring dimension. It is fixed by both FIPS 203 and FIPS 204.
const N = 256

// ErrModulus is returned by NewDescriptor for moduli the reductions cannot serve.
var ErrModulus = errors.New("algebra: invalid modulus")

// Descriptor holds the constants for arithmetic modulo one prime Q.
//
// Q is kept in the native (32-bit) and double (64-bit) widths; the quadruple
// width needed by Barrett reduction is a 128-bit product from math/bits.
type Descriptor struct {
	Name string
	Q    uint32
	QL   uint64

	// BarrettShift is 2*bitlen(Q) and BarrettMultiplier is
	// floor(2^BarrettShift / Q).
	BarrettShift      uint
	BarrettMultiplier uint64
}

// NewDescriptor validates q and derives its reduction constants.
// q must be an odd prime in [3, 2^31).
func NewDescriptor(name string, q uint32) (*Descriptor, error) {
	if q < 3 || q >= 1<<31 || q&1 == 0 {
		return nil, fmt.Errorf("%w: %d is not an odd value in [3, 2^31)", ErrModulus, q)
	}
	if !new(big.Int).SetUint64(uint64(q)).ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %d is not prime", ErrModulus, q)
	}
	shift := 2 * uint(bits.Len32(q))
	return &Descriptor{
		Name:              name,
		Q:                 q,
		QL:                uint64(q),
		BarrettShift:      shift,
		BarrettMultiplier: (uint64(1) << shift) / uint64(q),
	}, nil
}

// MustDescriptor is NewDescriptor for package-level constants.
func MustDescriptor(name string, q uint32) *Descriptor {
	d, err := NewDescriptor(name, q)
	if err != nil {
		panic(err)
	}
	return d
}

// SmallReduce maps x in [0, 2Q) to [0, Q) with one masked subtraction.
func (d *Descriptor) SmallReduce(x uint32) uint32 {
	t := x - d.Q
	// t has its top bit set exactly when x < Q; Q < 2^31 guarantees it.
	return t + (-(t >> 31) & d.Q)
}

// BarrettReduce returns x mod Q for any x < 2^BarrettShift, which covers every
// product of two canonical residues.
func (d *Descriptor) BarrettReduce(x uint64) uint32 {
	hi, lo := bits.Mul64(x, d.BarrettMultiplier)
	quotient := hi<<(64-d.BarrettShift) | lo>>d.BarrettShift
	// The approximate quotient is short by at most one, so remainder < 2Q.
	remainder := x - quotient*d.QL
	return d.SmallReduce(arrayutil.Truncate[uint32](remainder))
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(q=%d)", d.Name, d.Q)
}

// Field is implemented by zero-size types naming one modulus. The type, not a
// runtime value, ties an Elem to its field.
type Field interface {
	Descriptor() *Descriptor
}

var (
	mldsaDescriptor = MustDescriptor("ML-DSA", 8380417)
	mlkemDescriptor = MustDescriptor("ML-KEM", 3329)
)

// MLDSAField is Z_q with q = 2^23 - 2^13 + 1, used by all ML-DSA parameter sets.
type MLDSAField struct{}

func (MLDSAField) Descriptor() *Descriptor { return mldsaDescriptor }

// MLKEMField is Z_q with q = 3329.
type MLKEMField struct{}

func (MLKEMField) Descriptor() *Descriptor { return mlkemDescriptor }

func descriptor[F Field]() *Descriptor {
	var f F
	return f.Descriptor()
}

// DescriptorOf returns the descriptor bound to F.
func DescriptorOf[F Field]() *Descriptor {
	return descriptor[F]()
}
