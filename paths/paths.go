package paths

import (
	"errors"
	"fmt"
)

// Sentinel errors for route reconstruction.
var (
	// ErrPathNotFound is returned when the destination was never reached.
	ErrPathNotFound = errors.New("paths: destination unreachable from source")

	// ErrBrokenChain is returned when parent links do not lead back to the source.
	ErrBrokenChain = errors.New("paths: parent chain does not reach source")
)

// WeightLookup reports the weight of the edge between two adjacent vertices.
// *core.Graph satisfies it.
type WeightLookup interface {
	Weight(a, b string) (int64, error)
}

// Build reconstructs the route source→destination from a parent map in
// which parent[v] is the vertex v was first discovered from. The source
// must have no entry.
//
// If destination == source the route is [source]. If destination has no
// parent entry, ErrPathNotFound is returned.
func Build(parent map[string]string, source, destination string) ([]string, error) {
	if destination == source {
		return []string{source}, nil
	}
	if _, ok := parent[destination]; !ok {
		return nil, fmt.Errorf("%w: %q → %q", ErrPathNotFound, source, destination)
	}

	// a well-formed chain is at most len(parent)+1 nodes long
	limit := len(parent) + 1
	reversed := make([]string, 0, 8)
	for cur := destination; ; {
		reversed = append(reversed, cur)
		if len(reversed) > limit {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenChain, cur)
		}
		prev, ok := parent[cur]
		if !ok {
			if cur != source {
				return nil, fmt.Errorf("%w: chain from %q ends at %q", ErrBrokenChain, destination, cur)
			}
			break
		}
		cur = prev
	}

	return reverse(reversed), nil
}

// Distance sums the weights of consecutive pairs in path.
// Paths of zero or one node have distance 0.
func Distance(g WeightLookup, path []string) (int64, error) {
	if len(path) < 2 {
		return 0, nil
	}
	var total int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("paths: step %d (%q→%q): %w", i, path[i-1], path[i], err)
		}
		total += w
	}

	return total, nil
}

// Hops returns the number of edges in path.
func Hops(path []string) int {
	if len(path) == 0 {
		return 0
	}

	return len(path) - 1
}

// reverse returns a new slice containing the elements of s in reverse order.
func reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
