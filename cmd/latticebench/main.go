package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mldsa-lattice/measure"
	"mldsa-lattice/param"
)

type benchRow struct {
	Set       string  `json:"set"`
	Object    string  `json:"object"`
	Bits      int     `json:"bits"`
	Count     int     `json:"count"`
	Cols      int     `json:"cols,omitempty"`
	Bytes     int     `json:"bytes"`
	Iters     int     `json:"iters"`
	EncMeanNs float64 `json:"encode_mean_ns"`
	EncMedNs  float64 `json:"encode_median_ns"`
	EncStdNs  float64 `json:"encode_std_ns"`
	DecMeanNs float64 `json:"decode_mean_ns"`
	DecMedNs  float64 `json:"decode_median_ns"`
	DecStdNs  float64 `json:"decode_std_ns"`
	ApplyNs   float64 `json:"apply_median_ns,omitempty"`
	RefNs     float64 `json:"reference_median_ns,omitempty"`
	Digest    string  `json:"blake3"`
	RoundTrip bool    `json:"round_trip"`
}

func main() {
	var (
		setsSpec = flag.String("sets", strings.Join(param.Names(), ","), "comma-separated parameter set names")
		params   = flag.String("params", "", "JSON parameter file added to the sweep")
		iters    = flag.Int("iters", 50, "iterations per object")
		seed     = flag.String("seed", "latticebench", "seed for the coefficient streams")
		jsonPath = flag.String("jsonl", "", "write jsonl results to path")
		matvec   = flag.Bool("matvec", false, "also time NTT-domain matrix-vector products")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	if *iters <= 0 {
		log.Fatalf("iters must be positive, got %d", *iters)
	}

	var sets []param.Set
	for _, name := range strings.Split(*setsSpec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := param.Lookup(name)
		if err != nil {
			log.Fatalf("lookup: %v", err)
		}
		sets = append(sets, s)
	}
	if *params != "" {
		s, err := param.Load(*params)
		if err != nil {
			log.Fatalf("load params: %v", err)
		}
		sets = append(sets, s)
	}
	if len(sets) == 0 {
		log.Fatalf("no parameter sets selected")
	}

	var enc *json.Encoder
	if *jsonPath != "" {
		if err := os.MkdirAll(filepath.Dir(*jsonPath), 0o755); err != nil {
			log.Fatalf("mkdir: %v", err)
		}
		f, err := os.Create(*jsonPath)
		if err != nil {
			log.Fatalf("create jsonl: %v", err)
		}
		defer f.Close()
		enc = json.NewEncoder(f)
	}

	b := &bench{seed: []byte(*seed), iters: *iters, verbose: *verbose}
	failed := false
	for _, s := range sets {
		rows, err := b.sweepSet(s)
		if err != nil {
			log.Fatalf("%s: %v", s.SetName(), err)
		}
		if *matvec {
			row, ok, err := b.matVec(s)
			if err != nil {
				log.Fatalf("%s matvec: %v", s.SetName(), err)
			}
			if ok {
				rows = append(rows, row)
			}
		}
		for _, r := range rows {
			printRow(r)
			if !r.RoundTrip {
				failed = true
			}
			if enc != nil {
				if err := enc.Encode(r); err != nil {
					log.Fatalf("write jsonl: %v", err)
				}
			}
		}
	}
	measure.Global.Dump(os.Stderr)
	if failed {
		log.Fatalf("round-trip mismatch")
	}
}
