// Package prof records labelled durations and summarises them per label.
package prof

import (
	"sort"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// Entry is one timed call.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Summary is the spread of the durations recorded under one label, in
// nanoseconds.
type Summary struct {
	Label    string
	Count    int
	MeanNs   float64
	MedianNs float64
	StdNs    float64
	P95Ns    float64
}

// Recorder collects entries. The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Default backs the package-level Track and SnapshotAndReset.
var Default = &Recorder{}

// Track records the time elapsed since start under label.
func (r *Recorder) Track(start time.Time, label string) {
	elapsed := time.Since(start)
	r.mu.Lock()
	r.entries = append(r.entries, Entry{Label: label, Dur: elapsed})
	r.mu.Unlock()
}

// SnapshotAndReset returns the recorded entries and clears them.
func (r *Recorder) SnapshotAndReset() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.entries
	r.entries = nil
	return out
}

func Track(start time.Time, label string) { Default.Track(start, label) }

func SnapshotAndReset() []Entry { return Default.SnapshotAndReset() }

// Summarize groups entries by label.
func Summarize(entries []Entry) map[string]Summary {
	byLabel := make(map[string][]float64)
	for _, e := range entries {
		byLabel[e.Label] = append(byLabel[e.Label], float64(e.Dur.Nanoseconds()))
	}
	out := make(map[string]Summary, len(byLabel))
	for label, ns := range byLabel {
		s := Summary{Label: label, Count: len(ns)}
		// errors only signal empty input
		s.MeanNs, _ = stats.Mean(ns)
		s.MedianNs, _ = stats.Median(ns)
		s.StdNs, _ = stats.StandardDeviation(ns)
		s.P95Ns, _ = stats.Percentile(ns, 95)
		out[label] = s
	}
	return out
}

// Labels returns the labels of m in sorted order.
func Labels(m map[string]Summary) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
