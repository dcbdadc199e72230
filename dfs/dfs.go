// Package dfs implements stack-based depth-first search on core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/citypath/core"
)

// stackItem pairs a vertex ID with its depth in the DFS tree.
type stackItem struct {
	id    string
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  Options     // traversal options
	stack []stackItem // LIFO frontier
	res   *Result     // result collector
}

// DFS runs depth-first search on g from source, stopping when destination
// is popped. Traversal state is created only after source is validated.
func DFS(g *core.Graph, source, destination string, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, source)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Initialize state with capacity hint
	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  o,
		stack: make([]stackItem, 0, n),
		res: &Result{
			Source:      source,
			Destination: destination,
			Order:       make([]string, 0, n),
			Depth:       make(map[string]int, n),
			Parent:      make(map[string]string, n),
			Visited:     make(map[string]bool, n),
		},
	}

	w.push(source, 0, "")

	return w.res, w.loop()
}

// push marks id visited, records depth and parent, and pushes it.
func (w *dfsWalker) push(id string, depth int, parent string) {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.stack = append(w.stack, stackItem{id: id, depth: depth})
}

// pop removes and returns the top of the stack.
func (w *dfsWalker) pop() stackItem {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	return top
}

// loop pops until the stack is empty or the destination is popped.
func (w *dfsWalker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.pop()
		w.res.Order = append(w.res.Order, item.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.id, item.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", item.id, err)
			}
		}

		// early exit
		if item.id == w.res.Destination {
			w.res.Found = true
			return nil
		}

		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		nbs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", item.id, err)
		}
		for _, nid := range nbs {
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.push(nid, item.depth+1, item.id)
		}
	}

	return nil
}
