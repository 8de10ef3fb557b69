package algebra

import "errors"

// ErrDimension is returned when a vector or matrix is built from the wrong
// number of parts.
var ErrDimension = errors.New("algebra: dimension mismatch")

// Dim is a vector length or matrix side carried at the type level.
type Dim interface {
	Len() int
}

type (
	Dim1 struct{}
	Dim2 struct{}
	Dim3 struct{}
	Dim4 struct{}
	Dim5 struct{}
	Dim6 struct{}
	Dim7 struct{}
	Dim8 struct{}
)

func (Dim1) Len() int { return 1 }
func (Dim2) Len() int { return 2 }
func (Dim3) Len() int { return 3 }
func (Dim4) Len() int { return 4 }
func (Dim5) Len() int { return 5 }
func (Dim6) Len() int { return 6 }
func (Dim7) Len() int { return 7 }
func (Dim8) Len() int { return 8 }

func dimLen[K Dim]() int {
	var k K
	return k.Len()
}
