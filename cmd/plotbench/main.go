package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// row mirrors the fields of latticebench's JSONL output that are plotted.
type row struct {
	Set       string  `json:"set"`
	Object    string  `json:"object"`
	Bits      int     `json:"bits"`
	Bytes     int     `json:"bytes"`
	EncMedNs  float64 `json:"encode_median_ns"`
	DecMedNs  float64 `json:"decode_median_ns"`
	ApplyNs   float64 `json:"apply_median_ns"`
	RefNs     float64 `json:"reference_median_ns"`
	RoundTrip bool    `json:"round_trip"`
}

func main() {
	var (
		in  = flag.String("in", "", "latticebench jsonl file")
		out = flag.String("out", "latticebench.html", "html output path")
	)
	flag.Parse()
	if *in == "" {
		log.Fatalf("missing -in")
	}
	rows, err := readRows(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	if len(rows) == 0 {
		log.Fatalf("%s: no rows", *in)
	}

	page := components.NewPage()
	var codec, matvec []row
	for _, r := range rows {
		if r.ApplyNs > 0 {
			matvec = append(matvec, r)
		} else {
			codec = append(codec, r)
		}
	}
	if len(codec) > 0 {
		page.AddCharts(newCodecChart(codec))
	}
	if len(matvec) > 0 {
		page.AddCharts(newMatVecChart(matvec))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Chart page:", *out)
}

func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var rows []row
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var r row
		if err := json.Unmarshal([]byte(text), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, r)
	}
	return rows, sc.Err()
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newBar(title, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	return bar
}

func newCodecChart(rows []row) *charts.Bar {
	labels := make([]string, len(rows))
	enc := make([]float64, len(rows))
	dec := make([]float64, len(rows))
	bad := 0
	for i, r := range rows {
		labels[i] = fmt.Sprintf("%s %s (d=%d, %d B)", r.Set, r.Object, r.Bits, r.Bytes)
		enc[i] = r.EncMedNs
		dec[i] = r.DecMedNs
		if !r.RoundTrip {
			bad++
		}
	}
	bar := newBar("Codec median time (ns)", fmt.Sprintf("objects=%d, round-trip failures=%d", len(rows), bad))
	bar.SetXAxis(labels).
		AddSeries("encode", toBarItems(enc)).
		AddSeries("decode", toBarItems(dec)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func newMatVecChart(rows []row) *charts.Bar {
	labels := make([]string, len(rows))
	apply := make([]float64, len(rows))
	ref := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Set
		apply[i] = r.ApplyNs
		ref[i] = r.RefNs
	}
	bar := newBar("A*v median time (ns)", "apply includes forward and inverse NTT")
	bar.SetXAxis(labels).
		AddSeries("apply", toBarItems(apply)).
		AddSeries("reference", toBarItems(ref)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}
