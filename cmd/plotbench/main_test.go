package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeJSONL(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.jsonl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRows(t *testing.T) {
	path := writeJSONL(t, `{"set":"ML-DSA-44","object":"t1","bits":10,"bytes":1280,"encode_median_ns":900,"decode_median_ns":1100,"round_trip":true}

{"set":"ML-DSA-44","object":"A*v","apply_median_ns":52000,"reference_median_ns":61000,"round_trip":true}
`)
	rows, err := readRows(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if r := rows[0]; r.Set != "ML-DSA-44" || r.Bits != 10 || r.Bytes != 1280 || r.EncMedNs != 900 || !r.RoundTrip {
		t.Fatalf("row 0: %+v", r)
	}
	if r := rows[1]; r.ApplyNs != 52000 || r.RefNs != 61000 {
		t.Fatalf("row 1: %+v", r)
	}
}

func TestReadRowsErrors(t *testing.T) {
	if _, err := readRows(writeJSONL(t, "{\"set\":\"x\"}\nnot json\n")); err == nil {
		t.Fatalf("malformed line accepted")
	}
	if _, err := readRows(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestChartsRender(t *testing.T) {
	codec := []row{{Set: "ML-KEM-768", Object: "t", Bits: 12, Bytes: 1152, EncMedNs: 1, DecMedNs: 2, RoundTrip: true}}
	matvec := []row{{Set: "ML-DSA-65", Object: "A*v", ApplyNs: 3, RefNs: 4, RoundTrip: true}}
	var buf bytes.Buffer
	if err := newCodecChart(codec).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if err := newMatVecChart(matvec).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("ML-KEM-768")) {
		t.Fatalf("chart output lacks the set label")
	}
}
