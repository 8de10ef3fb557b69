// Package measure keeps byte counters for encoded objects. Counting is off
// unless MEASURE_SIZES=1 so the codec hot path pays a single branch.
package measure

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

var Enabled = os.Getenv("MEASURE_SIZES") == "1"

var Global = NewCounter()

// Counter accumulates named byte counts.
type Counter struct {
	mu sync.Mutex
	m  map[string]int64
}

func NewCounter() *Counter {
	return &Counter{m: make(map[string]int64)}
}

// Add records n bytes under key when measuring is enabled.
func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.m[key] += n
	c.mu.Unlock()
}

// SnapshotAndReset returns the counters and clears them.
func (c *Counter) SnapshotAndReset() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.m))
	for k, v := range c.m {
		out[k] = v
	}
	c.m = make(map[string]int64)
	return out
}

// Dump writes a sorted size report to w.
func (c *Counter) Dump(w io.Writer) {
	if !Enabled {
		return
	}
	snap := c.SnapshotAndReset()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(w, "[measure] Size report:")
	for _, k := range keys {
		fmt.Fprintf(w, "[measure] %s = %s\n", k, Human(snap[k]))
	}
}

// Human formats a byte count.
func Human(n int64) string {
	const (
		KiB = 1024
		MiB = 1024 * KiB
	)
	switch {
	case n >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(n)/float64(MiB))
	case n >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(n)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
