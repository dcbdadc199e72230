// Package finder answers "route from A to B" queries over a loaded city graph
// using either breadth-first or depth-first search.
//
// A Finder holds no per-query state, so one value may serve concurrent
// callers. Every FindPath call runs its own traversal.
package finder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/citypath/bfs"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dfs"
	"github.com/katalvlaran/citypath/metrics"
	"github.com/katalvlaran/citypath/paths"
)

// Algorithm names a traversal strategy.
type Algorithm string

const (
	// BFS returns a route with the fewest roads.
	BFS Algorithm = "bfs"
	// DFS returns the first route found by stack order.
	DFS Algorithm = "dfs"
)

// ErrUnknownAlgorithm is returned for an algorithm name other than bfs or dfs.
var ErrUnknownAlgorithm = errors.New("finder: unknown algorithm")

// ErrGraphNil is returned when a Finder was built without a graph.
var ErrGraphNil = errors.New("finder: graph is nil")

// Algorithms lists the supported strategies in report order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case BFS, DFS:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Label is the upper-case name used in reports.
func (a Algorithm) Label() string {
	return strings.ToUpper(string(a))
}

// Result describes one answered query.
type Result struct {
	Algorithm   Algorithm
	Source      string
	Destination string

	// Path runs from Source to Destination inclusive.
	Path []string

	// Distance is the sum of road weights along Path.
	Distance int64

	// Hops is the number of roads on Path.
	Hops int

	// Visited counts vertices the traversal processed before it stopped.
	Visited int

	// Elapsed covers the traversal and the path reconstruction.
	Elapsed time.Duration
}

// Finder runs path queries against one graph.
type Finder struct {
	g       *core.Graph
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	maxHops int
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// WithMetrics records every query on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Finder) { f.metrics = m }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(f *Finder) {
		if now != nil {
			f.now = now
		}
	}
}

// WithMaxHops rejects routes longer than n roads by limiting both
// traversals to depth n. 0 means no limit.
func WithMaxHops(n int) Option {
	return func(f *Finder) { f.maxHops = n }
}

// New returns a Finder over g.
func New(g *core.Graph, opts ...Option) *Finder {
	f := &Finder{
		g:   g,
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FindPath runs algo from source and returns the route to destination.
//
// An unknown destination, or one in another component, yields
// paths.ErrPathNotFound. An unknown source yields an error wrapping
// core.ErrVertexNotFound.
func (f *Finder) FindPath(ctx context.Context, algo Algorithm, source, destination string) (*Result, error) {
	if f.g == nil {
		return nil, ErrGraphNil
	}

	start := f.now()
	res, err := f.run(ctx, algo, source, destination)
	elapsed := f.now().Sub(start)

	status := statusOf(err)
	f.metrics.ObserveQuery(string(algo), status, elapsed.Seconds(), hopsOf(res))
	if err != nil {
		f.log.Warn("path query failed",
			slog.String("algorithm", string(algo)),
			slog.String("source", source),
			slog.String("destination", destination),
			slog.String("status", status),
			slog.Any("error", err))
		return nil, err
	}

	res.Elapsed = elapsed
	f.log.Debug("path query",
		slog.String("algorithm", string(algo)),
		slog.String("source", source),
		slog.String("destination", destination),
		slog.Int("hops", res.Hops),
		slog.Int64("distance", res.Distance),
		slog.Int("visited", res.Visited),
		slog.Duration("elapsed", elapsed))

	return res, nil
}

// Compare answers the same query with every algorithm concurrently.
// Results come back in Algorithms() order. The first failure cancels the rest.
func (f *Finder) Compare(ctx context.Context, source, destination string) ([]*Result, error) {
	algos := Algorithms()
	out := make([]*Result, len(algos))

	eg, ctx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		eg.Go(func() error {
			res, err := f.FindPath(ctx, algo, source, destination)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (f *Finder) run(ctx context.Context, algo Algorithm, source, destination string) (*Result, error) {
	var (
		route   []string
		visited int
	)
	switch algo {
	case BFS:
		res, err := bfs.BFS(f.g, source, bfs.WithContext(ctx), bfs.WithMaxDepth(f.maxHops))
		if err != nil {
			return nil, err
		}
		if route, err = res.PathTo(destination); err != nil {
			return nil, fmt.Errorf("finder: %s %q→%q: %w", algo, source, destination, err)
		}
		visited = len(res.Order)
	case DFS:
		res, err := dfs.DFS(f.g, source, destination, dfs.WithContext(ctx), dfs.WithMaxDepth(f.maxHops))
		if err != nil {
			return nil, err
		}
		if route, err = res.PathTo(); err != nil {
			return nil, fmt.Errorf("finder: %s %q→%q: %w", algo, source, destination, err)
		}
		visited = len(res.Order)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	dist, err := paths.Distance(f.g, route)
	if err != nil {
		return nil, fmt.Errorf("finder: %s distance: %w", algo, err)
	}

	return &Result{
		Algorithm:   algo,
		Source:      source,
		Destination: destination,
		Path:        route,
		Distance:    dist,
		Hops:        paths.Hops(route),
		Visited:     visited,
	}, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, paths.ErrPathNotFound):
		return metrics.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusCancelled
	default:
		return metrics.StatusError
	}
}

func hopsOf(r *Result) int {
	if r == nil {
		return 0
	}

	return r.Hops
}
