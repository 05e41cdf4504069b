// Package verify checks candidate paths against the fixed-length path contract:
// exact vertex count, endpoints, real edges and no repeated vertex.
//
// Path reports every violated invariant at once (errors.Join), each wrapping
// one of the sentinels below so callers can branch with errors.Is. MustPath
// panics instead: a violation means an algorithm defect, not an expected outcome.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors describing contract violations.
var (
	ErrGraphNil         = errors.New("verify: graph is nil")
	ErrLength           = errors.New("verify: wrong path length")
	ErrStart            = errors.New("verify: path does not begin at start")
	ErrEnd              = errors.New("verify: path does not finish at end")
	ErrMissingEdge      = errors.New("verify: consecutive vertices are not adjacent")
	ErrRepeatedVertex   = errors.New("verify: vertex repeated")
	ErrVertexOutOfRange = errors.New("verify: vertex index out of range")
)

// Path returns nil if path is a simple start→end path of exactly length
// vertices in g, and a joined error naming every violation otherwise.
func Path(g core.Reader, path []int, start, end, length int) error {
	if g == nil {
		return ErrGraphNil
	}

	var errs []error
	if len(path) != length {
		errs = append(errs, fmt.Errorf("%w: got %d vertices, want %d", ErrLength, len(path), length))
	}
	if len(path) == 0 {
		errs = append(errs,
			fmt.Errorf("%w: empty path, want %d", ErrStart, start),
			fmt.Errorf("%w: empty path, want %d", ErrEnd, end))

		return errors.Join(errs...)
	}
	if path[0] != start {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d", ErrStart, path[0], start))
	}
	if last := path[len(path)-1]; last != end {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d", ErrEnd, last, end))
	}

	n := g.VertexCount()
	seenAt := make(map[int]int, len(path))
	for i, v := range path {
		if v < 0 || v >= n {
			errs = append(errs, fmt.Errorf("%w: path[%d]=%d not in [0,%d)", ErrVertexOutOfRange, i, v, n))
		}
		if j, dup := seenAt[v]; dup {
			errs = append(errs, fmt.Errorf("%w: %d at positions %d and %d", ErrRepeatedVertex, v, j, i))
		} else {
			seenAt[v] = i
		}
		if i > 0 && !g.HasEdge(path[i-1], v) {
			errs = append(errs, fmt.Errorf("%w: %d–%d at position %d", ErrMissingEdge, path[i-1], v, i))
		}
	}

	return errors.Join(errs...)
}

// MustPath is like Path but panics on any violation.
func MustPath(g core.Reader, path []int, start, end, length int) {
	if err := Path(g, path, start, end, length); err != nil {
		panic(err)
	}
}
