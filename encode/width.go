package encode

// Width names a coefficient bit width at the type level.
type Width interface {
	Bits() int
}

// Widths used by ML-DSA and ML-KEM objects.
type (
	Bits1  struct{} // challenge-style bit vectors, ML-KEM messages
	Bits3  struct{} // s1, s2 at eta = 2
	Bits4  struct{} // s1, s2 at eta = 4, w1 at gamma2 = (q-1)/32, ML-KEM dv
	Bits5  struct{} // ML-KEM-1024 dv
	Bits6  struct{} // w1 at gamma2 = (q-1)/88
	Bits10 struct{} // t1, ML-KEM du
	Bits11 struct{} // ML-KEM-1024 du
	Bits12 struct{} // ML-KEM key vectors
	Bits13 struct{} // t0
	Bits18 struct{} // z at gamma1 = 2^17
	Bits20 struct{} // z at gamma1 = 2^19
)

func (Bits1) Bits() int  { return 1 }
func (Bits3) Bits() int  { return 3 }
func (Bits4) Bits() int  { return 4 }
func (Bits5) Bits() int  { return 5 }
func (Bits6) Bits() int  { return 6 }
func (Bits10) Bits() int { return 10 }
func (Bits11) Bits() int { return 11 }
func (Bits12) Bits() int { return 12 }
func (Bits13) Bits() int { return 13 }
func (Bits18) Bits() int { return 18 }
func (Bits20) Bits() int { return 20 }

func layoutOf[W Width]() Layout {
	var w W
	return layouts[w.Bits()]
}

// LayoutOf returns the layout bound to W.
func LayoutOf[W Width]() Layout { return layoutOf[W]() }
