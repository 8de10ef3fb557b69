package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/zeebo/blake3"

	"mldsa-lattice/algebra"
	"mldsa-lattice/encode"
	"mldsa-lattice/internal/xof"
	"mldsa-lattice/param"
	"mldsa-lattice/prof"
)

type bench struct {
	seed    []byte
	iters   int
	verbose bool
	rec     prof.Recorder
}

func descriptorFor(s param.Set) (*algebra.Descriptor, error) {
	switch s.(type) {
	case *param.MLDSA:
		return algebra.DescriptorOf[algebra.MLDSAField](), nil
	case *param.MLKEM:
		return algebra.DescriptorOf[algebra.MLKEMField](), nil
	}
	return nil, fmt.Errorf("unsupported set type %T", s)
}

// sweepSet encodes and decodes every object of s iters times.
func (b *bench) sweepSet(s param.Set) ([]benchRow, error) {
	d, err := descriptorFor(s)
	if err != nil {
		return nil, err
	}
	var rows []benchRow
	for _, o := range s.Objects() {
		l, err := encode.LayoutFor(o.Bits)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Name, err)
		}
		bound := uint64(1) << o.Bits
		if bound > d.QL {
			bound = d.QL
		}
		encLabel := s.SetName() + "/" + o.Name + "/encode"
		decLabel := s.SetName() + "/" + o.Name + "/decode"
		h := blake3.New()
		ok := true
		for it := 0; it < b.iters; it++ {
			st := xof.New(b.seed, fmt.Sprintf("%s/%s/%d", s.SetName(), o.Name, it))
			polys := make([][algebra.N]uint32, o.Count)
			for i := range polys {
				for j := range polys[i] {
					polys[i][j] = uint32(st.Below(bound))
				}
			}

			start := time.Now()
			var buf []byte
			for i := range polys {
				buf = append(buf, l.Encode(&polys[i])...)
			}
			b.rec.Track(start, encLabel)

			start = time.Now()
			back := make([][algebra.N]uint32, o.Count)
			for i := range back {
				if back[i], err = l.Decode(buf[i*l.PolynomialSize:(i+1)*l.PolynomialSize], d); err != nil {
					return nil, err
				}
			}
			b.rec.Track(start, decLabel)

			for i := range polys {
				if polys[i] != back[i] {
					ok = false
				}
			}
			h.Write(buf)
		}
		sum := prof.Summarize(b.rec.SnapshotAndReset())
		enc, dec := sum[encLabel], sum[decLabel]
		row := benchRow{
			Set:       s.SetName(),
			Object:    o.Name,
			Bits:      o.Bits,
			Count:     o.Count,
			Bytes:     o.Size(),
			Iters:     b.iters,
			Digest:    hex.EncodeToString(h.Sum(nil)),
			EncMeanNs: enc.MeanNs,
			EncMedNs:  enc.MedianNs,
			EncStdNs:  enc.StdNs,
			DecMeanNs: dec.MeanNs,
			DecMedNs:  dec.MedianNs,
			DecStdNs:  dec.StdNs,
			RoundTrip: ok,
		}
		if b.verbose {
			log.Printf("[bench] %s %s: %d bytes x %d iters", row.Set, row.Object, row.Bytes, row.Iters)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func printRow(r benchRow) {
	status := "ok"
	if !r.RoundTrip {
		status = "MISMATCH"
	}
	if r.Object == matVecObject {
		fmt.Printf("%-12s %-7s %dx%d  apply %9.0f ns  reference %9.0f ns  %s  %s\n",
			r.Set, r.Object, r.Count, r.Cols, r.ApplyNs, r.RefNs, r.Digest[:16], status)
		return
	}
	fmt.Printf("%-12s %-7s d=%-2d k=%d %6d B  enc %9.0f ns  dec %9.0f ns  %s  %s\n",
		r.Set, r.Object, r.Bits, r.Count, r.Bytes, r.EncMedNs, r.DecMedNs, r.Digest[:16], status)
}
