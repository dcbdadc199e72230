// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the source ID is absent.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex: %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbours from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option adjusts a single BFS call. A bad value is remembered and BFS
// returns it as ErrOptionViolation before touching the graph.
type Option func(*Options)

// Options are the knobs of one BFS call. Nil hooks are skipped.
type Options struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnVisit sees each dequeued vertex with its hop count. An error stops the search.
	OnVisit func(id string, depth int) error

	// MaxDepth caps discovery at this many hops when positive.
	MaxDepth int

	// FilterNeighbor drops the road curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions is an unlimited search under context.Background.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext cancels the search when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth stops discovering vertices more than d hops from the source.
// 0 lifts the limit; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs the road filter.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Source is the vertex the search started from.
	Source string

	// Order lists vertices in visit sequence.
	Order []string

	// Depth maps each reached vertex to its hop count from Source.
	Depth map[string]int

	// Parent maps each reached vertex except Source to its BFS-tree predecessor.
	Parent map[string]string
}

// PathTo reconstructs the minimum-hop route from Source to dest.
// Returns paths.ErrPathNotFound if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	return paths.Build(r.Parent, r.Source, dest)
}

// Reached reports whether id was discovered by the search.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}
