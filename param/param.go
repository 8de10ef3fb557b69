// Package param holds the ML-DSA (FIPS 204) and ML-KEM (FIPS 203) parameter
// sets together with the encoding width and size of every object they
// serialize.
package param

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"mldsa-lattice/algebra"
)

// ErrUnknownSet is returned by Lookup and Load for names no set carries.
var ErrUnknownSet = errors.New("param: unknown parameter set")

// Fixed ML-DSA widths.
const (
	D      = 13 // dropped bits of t
	T1Bits = 23 - D
	T0Bits = D
	// SeedSize is the size of rho, K and the other 32-byte seeds.
	SeedSize = 32
)

// Dimension aliases for each set.
type (
	K44 = algebra.Dim4
	L44 = algebra.Dim4
	K65 = algebra.Dim6
	L65 = algebra.Dim5
	K87 = algebra.Dim8
	L87 = algebra.Dim7

	K512  = algebra.Dim2
	K768  = algebra.Dim3
	K1024 = algebra.Dim4
)

// Object is one polynomial vector a set serializes: Count polynomials at
// Bits bits each.
type Object struct {
	Name  string
	Bits  int
	Count int
}

// Size is the encoded size of the object in bytes.
func (o Object) Size() int { return o.Count * algebra.N * o.Bits / 8 }

// Set is implemented by *MLDSA and *MLKEM.
type Set interface {
	SetName() string
	Objects() []Object
	Validate() error
}

var (
	MLDSA44 = MLDSA{Name: "ML-DSA-44", K: 4, L: 4, Eta: 2, Tau: 39, Lambda: 128, Gamma1Bits: 17, Gamma2: (qDSA - 1) / 88, Omega: 80}
	MLDSA65 = MLDSA{Name: "ML-DSA-65", K: 6, L: 5, Eta: 4, Tau: 49, Lambda: 192, Gamma1Bits: 19, Gamma2: (qDSA - 1) / 32, Omega: 55}
	MLDSA87 = MLDSA{Name: "ML-DSA-87", K: 8, L: 7, Eta: 2, Tau: 60, Lambda: 256, Gamma1Bits: 19, Gamma2: (qDSA - 1) / 32, Omega: 75}

	MLKEM512  = MLKEM{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4}
	MLKEM768  = MLKEM{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4}
	MLKEM1024 = MLKEM{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5}
)

const qDSA = 8380417

// Lookup returns a copy of the built-in set with the given name.
func Lookup(name string) (Set, error) {
	for _, s := range []MLDSA{MLDSA44, MLDSA65, MLDSA87} {
		if s.Name == name {
			return &s, nil
		}
	}
	for _, s := range []MLKEM{MLKEM512, MLKEM768, MLKEM1024} {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSet, name)
}

// Names lists the built-in sets in sorted order.
func Names() []string {
	out := []string{
		MLDSA44.Name, MLDSA65.Name, MLDSA87.Name,
		MLKEM512.Name, MLKEM768.Name, MLKEM1024.Name,
	}
	sort.Strings(out)
	return out
}

// MLDSA is one ML-DSA parameter set.
type MLDSA struct {
	Name       string `json:"name"`
	K          int    `json:"k"`
	L          int    `json:"l"`
	Eta        int    `json:"eta"`
	Tau        int    `json:"tau"`
	Lambda     int    `json:"lambda"`
	Gamma1Bits int    `json:"gamma1_bits"`
	Gamma2     uint32 `json:"gamma2"`
	Omega      int    `json:"omega"`
}

func (p *MLDSA) SetName() string { return p.Name }

func (p *MLDSA) Beta() int { return p.Tau * p.Eta }

// EtaBits is the width of s1 and s2 entries, stored as eta - c in [0, 2*eta].
func (p *MLDSA) EtaBits() int { return bits.Len(uint(2 * p.Eta)) }

// ZBits is the width of z entries, stored as gamma1 - c in [0, 2*gamma1).
func (p *MLDSA) ZBits() int { return p.Gamma1Bits + 1 }

// W1Bits is the width of the high bits of w.
func (p *MLDSA) W1Bits() int {
	return bits.Len32((qDSA-1)/(2*p.Gamma2) - 1)
}

func (p *MLDSA) PublicKeySize() int {
	return SeedSize + p.K*algebra.N*T1Bits/8
}

func (p *MLDSA) PrivateKeySize() int {
	return 2*SeedSize + 64 + (p.K+p.L)*algebra.N*p.EtaBits()/8 + p.K*algebra.N*T0Bits/8
}

func (p *MLDSA) SignatureSize() int {
	return p.Lambda/4 + p.L*algebra.N*p.ZBits()/8 + p.Omega + p.K
}

func (p *MLDSA) Objects() []Object {
	return []Object{
		{Name: "t1", Bits: T1Bits, Count: p.K},
		{Name: "t0", Bits: T0Bits, Count: p.K},
		{Name: "s1", Bits: p.EtaBits(), Count: p.L},
		{Name: "s2", Bits: p.EtaBits(), Count: p.K},
		{Name: "z", Bits: p.ZBits(), Count: p.L},
		{Name: "w1", Bits: p.W1Bits(), Count: p.K},
	}
}

func (p *MLDSA) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("param: missing name")
	case p.K < 1 || p.K > 8 || p.L < 1 || p.L > 8:
		return fmt.Errorf("param: %s: k=%d l=%d outside 1..8", p.Name, p.K, p.L)
	case p.Eta != 2 && p.Eta != 4:
		return fmt.Errorf("param: %s: eta=%d, want 2 or 4", p.Name, p.Eta)
	case p.Gamma1Bits != 17 && p.Gamma1Bits != 19:
		return fmt.Errorf("param: %s: gamma1 bits=%d, want 17 or 19", p.Name, p.Gamma1Bits)
	case p.Gamma2 != (qDSA-1)/88 && p.Gamma2 != (qDSA-1)/32:
		return fmt.Errorf("param: %s: gamma2=%d, want (q-1)/88 or (q-1)/32", p.Name, p.Gamma2)
	case p.Tau < 1 || p.Tau > algebra.N:
		return fmt.Errorf("param: %s: tau=%d outside 1..%d", p.Name, p.Tau, algebra.N)
	case p.Lambda != 128 && p.Lambda != 192 && p.Lambda != 256:
		return fmt.Errorf("param: %s: lambda=%d, want 128, 192 or 256", p.Name, p.Lambda)
	case p.Omega < 1:
		return fmt.Errorf("param: %s: omega=%d", p.Name, p.Omega)
	}
	return nil
}

// MLKEM is one ML-KEM parameter set.
type MLKEM struct {
	Name string `json:"name"`
	K    int    `json:"k"`
	Eta1 int    `json:"eta1"`
	Eta2 int    `json:"eta2"`
	Du   int    `json:"du"`
	Dv   int    `json:"dv"`
}

// KeyBits is the width of t and s in ML-KEM keys.
const KeyBits = 12

func (p *MLKEM) SetName() string { return p.Name }

func (p *MLKEM) EncapsulationKeySize() int { return p.K*algebra.N*KeyBits/8 + SeedSize }

func (p *MLKEM) DecapsulationKeySize() int {
	return p.K*algebra.N*KeyBits/8 + p.EncapsulationKeySize() + 2*SeedSize
}

func (p *MLKEM) CiphertextSize() int { return algebra.N / 8 * (p.Du*p.K + p.Dv) }

func (p *MLKEM) Objects() []Object {
	return []Object{
		{Name: "t", Bits: KeyBits, Count: p.K},
		{Name: "u", Bits: p.Du, Count: p.K},
		{Name: "v", Bits: p.Dv, Count: 1},
		{Name: "m", Bits: 1, Count: 1},
	}
}

func (p *MLKEM) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("param: missing name")
	case p.K < 1 || p.K > 8:
		return fmt.Errorf("param: %s: k=%d outside 1..8", p.Name, p.K)
	case p.Eta1 < 2 || p.Eta1 > 3 || p.Eta2 < 2 || p.Eta2 > 3:
		return fmt.Errorf("param: %s: eta1=%d eta2=%d, want 2 or 3", p.Name, p.Eta1, p.Eta2)
	case p.Du < 1 || p.Du >= KeyBits || p.Dv < 1 || p.Dv >= KeyBits:
		return fmt.Errorf("param: %s: du=%d dv=%d outside 1..%d", p.Name, p.Du, p.Dv, KeyBits-1)
	}
	return nil
}
