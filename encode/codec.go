package encode

import (
	"fmt"

	"mldsa-lattice/algebra"
	"mldsa-lattice/internal/arrayutil"
)

// EncodePolynomial packs p at width W. Coefficients must be below 2^W.
func EncodePolynomial[W Width, F algebra.Field](p *algebra.Polynomial[F]) []byte {
	c := p.Coefficients()
	return layoutOf[W]().Encode(&c)
}

// DecodePolynomial unpacks a polynomial encoded at width W.
func DecodePolynomial[W Width, F algebra.Field](b []byte) (algebra.Polynomial[F], error) {
	c, err := layoutOf[W]().Decode(b, algebra.DescriptorOf[F]())
	if err != nil {
		return algebra.Polynomial[F]{}, err
	}
	return algebra.NewPolynomial[F](c), nil
}

func EncodeNttPolynomial[W Width, F algebra.Field](p *algebra.NttPolynomial[F]) []byte {
	c := p.Coefficients()
	return layoutOf[W]().Encode(&c)
}

func DecodeNttPolynomial[W Width, F algebra.Field](b []byte) (algebra.NttPolynomial[F], error) {
	c, err := layoutOf[W]().Decode(b, algebra.DescriptorOf[F]())
	if err != nil {
		return algebra.NttPolynomial[F]{}, err
	}
	return algebra.NewNttPolynomial[F](c), nil
}

// EncodeVector concatenates the encodings of v's entries in order.
func EncodeVector[W Width, F algebra.Field, K algebra.Dim](v algebra.Vector[F, K]) []byte {
	polys := v.Polynomials()
	parts := make([][]byte, len(polys))
	for i := range polys {
		parts[i] = EncodePolynomial[W](&polys[i])
	}
	return mustFlatten(parts)
}

// DecodeVector splits b into K equal chunks and decodes each.
func DecodeVector[W Width, F algebra.Field, K algebra.Dim](b []byte) (algebra.Vector[F, K], error) {
	var k K
	parts, err := split(layoutOf[W](), b, k.Len())
	if err != nil {
		return algebra.Vector[F, K]{}, err
	}
	polys := make([]algebra.Polynomial[F], len(parts))
	for i, part := range parts {
		if polys[i], err = DecodePolynomial[W, F](part); err != nil {
			return algebra.Vector[F, K]{}, err
		}
	}
	return algebra.NewVector[F, K](polys...)
}

func EncodeNttVector[W Width, F algebra.Field, K algebra.Dim](v algebra.NttVector[F, K]) []byte {
	polys := v.Polynomials()
	parts := make([][]byte, len(polys))
	for i := range polys {
		parts[i] = EncodeNttPolynomial[W](&polys[i])
	}
	return mustFlatten(parts)
}

func DecodeNttVector[W Width, F algebra.Field, K algebra.Dim](b []byte) (algebra.NttVector[F, K], error) {
	var k K
	parts, err := split(layoutOf[W](), b, k.Len())
	if err != nil {
		return algebra.NttVector[F, K]{}, err
	}
	polys := make([]algebra.NttPolynomial[F], len(parts))
	for i, part := range parts {
		if polys[i], err = DecodeNttPolynomial[W, F](part); err != nil {
			return algebra.NttVector[F, K]{}, err
		}
	}
	return algebra.NewNttVector[F, K](polys...)
}

func split(l Layout, b []byte, k int) ([][]byte, error) {
	if len(b) != l.Size(k) {
		return nil, fmt.Errorf("%w: %d bytes for %d polynomials at %d bits, want %d",
			ErrInvalidLength, len(b), k, l.Bits, l.Size(k))
	}
	return arrayutil.Unflatten(b, k)
}

// mustFlatten joins per-polynomial encodings, which all share one layout.
func mustFlatten(parts [][]byte) []byte {
	out, err := arrayutil.Flatten(parts)
	if err != nil {
		panic(err)
	}
	return out
}
