// Package graphbuild provides small, named-graph fixture construction
// for star-coloring test instances: complete graphs, paths, cycles, and
// hand-assembled edge lists, all producing the same bitmask.Mask
// adjacency-predecessor slices the instance loader consumes.
//
// Modeled on the teacher's NewGraph(opts ...GraphOption) idiom: a
// Builder accumulates edges under a fixed vertex count, then Finish
// freezes it into an []bitmask.Mask ready for instance.EncodeGraph or
// direct use by the search engine's tests.
package graphbuild

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/starverify/bitmask"
)

// Sentinel errors for fixture construction.
var (
	// ErrVertexOutOfRange indicates an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("graphbuild: vertex out of range")

	// ErrSelfLoop indicates an edge endpoint equal to itself; star-
	// coloring instances never have self-loops.
	ErrSelfLoop = errors.New("graphbuild: self-loop not allowed")

	// ErrWidthExceeded indicates n exceeds the compiled bitmask width.
	ErrWidthExceeded = errors.New("graphbuild: n exceeds bitmask width")
)

// Builder accumulates edges for an n-vertex simple undirected graph.
type Builder struct {
	n   int
	adj []bitmask.Mask
	err error
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithEdge adds edge {a,b} (a != b) at construction time. Panics-free:
// the first bad edge recorded is returned as an error by New.
func WithEdge(a, b int) Option {
	return func(b2 *Builder) { b2.addEdge(a, b) }
}

// WithPath adds edges {0,1},{1,2},...,{n-2,n-1}.
func WithPath() Option {
	return func(b *Builder) {
		for v := 1; v < b.n; v++ {
			b.addEdge(v-1, v)
		}
	}
}

// WithCycle adds a path plus the closing edge {n-1,0}.
func WithCycle() Option {
	return func(b *Builder) {
		for v := 1; v < b.n; v++ {
			b.addEdge(v-1, v)
		}
		if b.n > 2 {
			b.addEdge(b.n-1, 0)
		}
	}
}

// WithClique adds every edge among [0,n).
func WithClique() Option {
	return func(b *Builder) {
		for i := 0; i < b.n; i++ {
			for j := i + 1; j < b.n; j++ {
				b.addEdge(i, j)
			}
		}
	}
}

// New creates a Builder for n vertices and applies opts in order.
func New(n int, opts ...Option) (*Builder, error) {
	if n > bitmask.Width {
		return nil, fmt.Errorf("%w: n=%d width=%d", ErrWidthExceeded, n, bitmask.Width)
	}
	b := &Builder{n: n, adj: make([]bitmask.Mask, n)}
	for _, opt := range opts {
		opt(b)
	}
	if b.err != nil {
		return nil, b.err
	}
	return b, nil
}

// addEdge records an edge, deferring validation errors to the end of
// New so that Option funcs (which cannot themselves return an error) compose
// cleanly.
func (b *Builder) addEdge(a, c int) {
	if b.err != nil {
		return
	}
	if a == c {
		b.err = fmt.Errorf("%w: vertex %d", ErrSelfLoop, a)
		return
	}
	if a < 0 || a >= b.n || c < 0 || c >= b.n {
		b.err = fmt.Errorf("%w: edge {%d,%d} for n=%d", ErrVertexOutOfRange, a, c, b.n)
		return
	}
	lo, hi := a, c
	if lo > hi {
		lo, hi = hi, lo
	}
	b.adj[hi] = b.adj[hi].Set(uint(lo))
}

// Finish freezes the builder and returns the adjacency-predecessor
// masks, in the exact form instance.Instance.AdjPredMask expects.
func (b *Builder) Finish() ([]bitmask.Mask, error) {
	if b.err != nil {
		return nil, b.err
	}
	out := make([]bitmask.Mask, b.n)
	copy(out, b.adj)
	return out, nil
}
