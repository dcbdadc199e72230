// Package dfs defines options, errors and the result type for the
// stack-based depth-first search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/paths"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the source vertex does not exist.
	// It wraps core.ErrVertexNotFound.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex: %w", core.ErrVertexNotFound)

	// ErrOptionViolation is returned for an invalid Option value.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every popped vertex, including the
	// destination. Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// FilterNeighbor, if non-nil, is called for each neighbour ID before push.
	// Return false to skip it.
	FilterNeighbor func(id string) bool

	// MaxDepth, if > 0, stops pushing vertices deeper than this. A vertex
	// first reached beyond the limit is not revisited from a shorter branch.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the DFS tree to depth d. 0 means no limit and a
// negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit installs fn as the pop hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFilterNeighbor installs a neighbour filter.
// Skipped neighbours are counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Source and Destination echo the call arguments.
	Source      string
	Destination string

	// Order records vertices in the sequence they were popped.
	Order []string

	// Depth maps each discovered vertex to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each discovered vertex to the vertex that pushed it.
	// Source has no entry.
	Parent map[string]string

	// Visited flags every vertex that was pushed.
	Visited map[string]bool

	// Found reports whether Destination was popped.
	Found bool

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}

// PathTo reconstructs the route from Source to Destination.
// Returns paths.ErrPathNotFound if Destination was not reached.
func (r *Result) PathTo() ([]string, error) {
	return paths.Build(r.Parent, r.Source, r.Destination)
}
