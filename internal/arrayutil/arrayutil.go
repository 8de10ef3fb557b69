// Package arrayutil holds the integer narrowing and array reshaping helpers
// used by the field and codec code.
package arrayutil

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrUneven is returned by Unflatten when the input cannot be split evenly.
var ErrUneven = errors.New("arrayutil: length is not a multiple of the part count")

// Truncate keeps the low bits of x that fit in To. It never fails; callers
// use it where the discarded bits are known to be zero.
func Truncate[To, From constraints.Unsigned](x From) To {
	return To(x & From(^To(0)))
}

// Flatten concatenates parts of equal length in order.
func Flatten[T any](parts [][]T) ([]T, error) {
	if len(parts) == 0 {
		return nil, nil
	}
	m := len(parts[0])
	out := make([]T, 0, m*len(parts))
	for i, p := range parts {
		if len(p) != m {
			return nil, fmt.Errorf("arrayutil: part %d has length %d, want %d", i, len(p), m)
		}
		out = append(out, p...)
	}
	return out, nil
}

// Unflatten splits whole into n consecutive views of equal length. The views
// alias whole and are capped so appends cannot spill into a neighbour.
func Unflatten[T any](whole []T, n int) ([][]T, error) {
	if n <= 0 || len(whole)%n != 0 {
		return nil, fmt.Errorf("%w: %d elements into %d parts", ErrUneven, len(whole), n)
	}
	m := len(whole) / n
	out := make([][]T, n)
	for i := range out {
		out[i] = whole[i*m : (i+1)*m : (i+1)*m]
	}
	return out, nil
}
