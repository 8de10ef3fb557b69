package algebra

// Elementwise kernels shared by Polynomial and NttPolynomial. Each fetches the
// descriptor once and works on the raw residues.

func addCoeffs[F Field](a, b *[N]Elem[F]) (c [N]Elem[F]) {
	d := descriptor[F]()
	for i := range c {
		c[i] = Elem[F](d.SmallReduce(uint32(a[i]) + uint32(b[i])))
	}
	return c
}

func subCoeffs[F Field](a, b *[N]Elem[F]) (c [N]Elem[F]) {
	d := descriptor[F]()
	for i := range c {
		c[i] = Elem[F](d.SmallReduce(uint32(a[i]) + d.Q - uint32(b[i])))
	}
	return c
}

func negCoeffs[F Field](a *[N]Elem[F]) (c [N]Elem[F]) {
	d := descriptor[F]()
	for i := range c {
		c[i] = Elem[F](d.SmallReduce(d.Q - uint32(a[i])))
	}
	return c
}

func scaleCoeffs[F Field](s Elem[F], a *[N]Elem[F]) (c [N]Elem[F]) {
	d := descriptor[F]()
	for i := range c {
		c[i] = Elem[F](d.BarrettReduce(uint64(s) * uint64(a[i])))
	}
	return c
}

func mulCoeffs[F Field](a, b *[N]Elem[F]) (c [N]Elem[F]) {
	d := descriptor[F]()
	for i := range c {
		c[i] = Elem[F](d.BarrettReduce(uint64(a[i]) * uint64(b[i])))
	}
	return c
}

func residues[F Field](a *[N]Elem[F]) (out [N]uint32) {
	for i := range out {
		out[i] = uint32(a[i])
	}
	return out
}

func fromResidues[F Field](in *[N]uint32) (c [N]Elem[F]) {
	for i := range c {
		c[i] = NewElem[F](in[i])
	}
	return c
}
