package encode_test

import (
	"bytes"
	"testing"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"

	"mldsa-lattice/algebra"
	"mldsa-lattice/encode"
	"mldsa-lattice/param"
)

type dsa = algebra.MLDSAField

// reencode decodes region as a K-vector at width W and checks the encoding of
// the result is byte-identical.
func reencode[W encode.Width, F algebra.Field, K algebra.Dim](t *testing.T, name string, region []byte) {
	t.Helper()
	v, err := encode.DecodeVector[W, F, K](region)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if !bytes.Equal(encode.EncodeVector[W](v), region) {
		t.Fatalf("%s: re-encoding differs", name)
	}
}

func TestMLDSA44Keys(t *testing.T) {
	p := param.MLDSA44
	seed := bytes.Repeat([]byte{0x44}, mldsa44.Scheme().SeedSize())
	pk, sk := mldsa44.Scheme().DeriveKey(seed)
	pkb, err := pk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	skb, err := sk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(pkb) != p.PublicKeySize() || len(skb) != p.PrivateKeySize() {
		t.Fatalf("sizes %d/%d, want %d/%d", len(pkb), len(skb), p.PublicKeySize(), p.PrivateKeySize())
	}
	if !bytes.Equal(pkb[:param.SeedSize], skb[:param.SeedSize]) {
		t.Fatalf("rho differs between keys")
	}

	reencode[encode.Bits10, dsa, param.K44](t, "t1", pkb[param.SeedSize:])

	off := 2*param.SeedSize + 64
	s1 := encode.LayoutOf[encode.Bits3]().Size(p.L)
	s2 := encode.LayoutOf[encode.Bits3]().Size(p.K)
	reencode[encode.Bits3, dsa, param.L44](t, "s1", skb[off:off+s1])
	off += s1
	reencode[encode.Bits3, dsa, param.K44](t, "s2", skb[off:off+s2])
	off += s2
	reencode[encode.Bits13, dsa, param.K44](t, "t0", skb[off:])
}

func TestMLDSA65Keys(t *testing.T) {
	p := param.MLDSA65
	seed := bytes.Repeat([]byte{0x65}, mldsa65.Scheme().SeedSize())
	pk, sk := mldsa65.Scheme().DeriveKey(seed)
	pkb, _ := pk.MarshalBinary()
	skb, _ := sk.MarshalBinary()
	if len(pkb) != p.PublicKeySize() || len(skb) != p.PrivateKeySize() {
		t.Fatalf("sizes %d/%d, want %d/%d", len(pkb), len(skb), p.PublicKeySize(), p.PrivateKeySize())
	}
	reencode[encode.Bits10, dsa, param.K65](t, "t1", pkb[param.SeedSize:])

	off := 2*param.SeedSize + 64
	s1 := encode.LayoutOf[encode.Bits4]().Size(p.L)
	s2 := encode.LayoutOf[encode.Bits4]().Size(p.K)
	reencode[encode.Bits4, dsa, param.L65](t, "s1", skb[off:off+s1])
	off += s1
	reencode[encode.Bits4, dsa, param.K65](t, "s2", skb[off:off+s2])
	off += s2
	reencode[encode.Bits13, dsa, param.K65](t, "t0", skb[off:])
}

func TestMLKEM768Keys(t *testing.T) {
	p := param.MLKEM768
	scheme := mlkem768.Scheme()
	seed := bytes.Repeat([]byte{0x76}, scheme.SeedSize())
	pk, sk := scheme.DeriveKeyPair(seed)
	ek, err := pk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	dk, err := sk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(ek) != p.EncapsulationKeySize() || len(dk) != p.DecapsulationKeySize() {
		t.Fatalf("sizes %d/%d, want %d/%d", len(ek), len(dk), p.EncapsulationKeySize(), p.DecapsulationKeySize())
	}
	n := encode.LayoutOf[encode.Bits12]().Size(p.K)
	// t-hat and s-hat are NTT-domain vectors of canonical residues.
	for name, region := range map[string][]byte{"t": ek[:n], "s": dk[:n]} {
		v, err := encode.DecodeNttVector[encode.Bits12, algebra.MLKEMField, param.K768](region)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(encode.EncodeNttVector[encode.Bits12](v), region) {
			t.Fatalf("%s: re-encoding differs", name)
		}
	}
	if !bytes.Equal(dk[n:n+len(ek)], ek) {
		t.Fatalf("decapsulation key does not embed the encapsulation key")
	}
}
