// Package loader reads a city distance matrix from CSV into a core.Graph.
//
// Format
//
//	,Adana,Ankara,Mersin
//	Adana,0,490,69
//	Ankara,490,0,99999
//	Mersin,69,99999,0
//
// The header row lists city names after an ignored first cell. Row i names
// header city i in its first cell and carries one distance per header
// column. The sentinel 99999 means "no direct road". Diagonal cells are
// skipped. Every other cell must be a positive integer.
//
// Any failure aborts the load: Load never returns a partially built graph.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/citypath/core"
)

// NoEdge is the default sentinel distance meaning "no direct road".
const NoEdge int64 = 99999

// Sentinel errors for matrix loading.
var (
	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("loader: input is empty")

	// ErrBadHeader is returned for an empty or duplicate city name in the header.
	ErrBadHeader = errors.New("loader: bad header")

	// ErrShape is returned when the matrix has too many rows or a row has the wrong cell count.
	ErrShape = errors.New("loader: matrix shape mismatch")

	// ErrRowLabel is returned when a row's first cell does not name the expected city.
	ErrRowLabel = errors.New("loader: row label mismatch")

	// ErrBadCell is returned when a distance cell cannot become an edge.
	ErrBadCell = errors.New("loader: bad distance cell")

	// ErrAsymmetric is returned in strict mode when a[b] and b[a] disagree,
	// including when only one of them is the sentinel.
	ErrAsymmetric = errors.New("loader: asymmetric distances")
)

// Option configures a load.
type Option func(*options)

type options struct {
	sentinel       int64
	positionalRows bool
	strictSymmetry bool
	comma          rune
}

func defaultOptions() options {
	return options{sentinel: NoEdge, comma: ','}
}

// WithSentinel overrides the "no direct road" marker.
func WithSentinel(v int64) Option {
	return func(o *options) { o.sentinel = v }
}

// WithPositionalRows maps row i to header city i without checking the
// row's first cell.
func WithPositionalRows() Option {
	return func(o *options) { o.positionalRows = true }
}

// WithStrictSymmetry rejects a cell whose mirror holds a different distance
// or the sentinel. Without it the later cell wins, and a road given on
// either side is kept.
func WithStrictSymmetry() Option {
	return func(o *options) { o.strictSymmetry = true }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Load parses a distance matrix from r and returns the populated graph.
func Load(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1 // shape is validated per row below
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}
	cities, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var noRoad map[[2]string]bool
	if o.strictSymmetry {
		noRoad = make(map[[2]string]bool)
	}

	g := core.NewGraph()
	for _, c := range cities {
		if err = g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("loader: add %q: %w", c, err)
		}
	}

	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read row %d: %w", row+1, err)
		}
		if err = loadRow(g, cities, row, rec, o, noRoad); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// parseHeader returns the city names after the ignored first cell.
func parseHeader(header []string) ([]string, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: no cities listed", ErrBadHeader)
	}
	cities := make([]string, 0, len(header)-1)
	seen := make(map[string]int, len(header)-1)
	for col, cell := range header[1:] {
		name := strings.TrimSpace(cell)
		if name == "" {
			return nil, fmt.Errorf("%w: empty city name in column %d", ErrBadHeader, col+1)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q in columns %d and %d", ErrBadHeader, name, prev, col+1)
		}
		seen[name] = col + 1
		cities = append(cities, name)
	}

	return cities, nil
}

// loadRow adds the edges of data row number row (0-based). In strict mode
// noRoad collects the sentinel cells seen so far, keyed [row city, column city].
func loadRow(g *core.Graph, cities []string, row int, rec []string, o options, noRoad map[[2]string]bool) error {
	line := row + 2 // 1-based, after the header
	if row >= len(cities) {
		return fmt.Errorf("%w: line %d: more rows than the %d header cities", ErrShape, line, len(cities))
	}
	if len(rec) != len(cities)+1 {
		return fmt.Errorf("%w: line %d: %d cells, want %d", ErrShape, line, len(rec), len(cities)+1)
	}
	city := cities[row]
	if label := strings.TrimSpace(rec[0]); !o.positionalRows && label != city {
		return fmt.Errorf("%w: line %d: row names %q, want %q", ErrRowLabel, line, label, city)
	}

	for col, cell := range rec[1:] {
		neighbor := cities[col]
		if neighbor == city {
			continue // diagonal
		}
		raw := strings.TrimSpace(cell)
		dist, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d, column %q: %q is not an integer", ErrBadCell, line, neighbor, raw)
		}
		if dist == o.sentinel {
			if o.strictSymmetry {
				if prev, err := g.Weight(neighbor, city); err == nil {
					return fmt.Errorf("%w: %q→%q is %d but %q→%q has no road",
						ErrAsymmetric, neighbor, city, prev, city, neighbor)
				}
				noRoad[[2]string{city, neighbor}] = true
			}
			continue
		}
		if o.strictSymmetry {
			if noRoad[[2]string{neighbor, city}] {
				return fmt.Errorf("%w: %q→%q has no road but %q→%q is %d",
					ErrAsymmetric, neighbor, city, city, neighbor, dist)
			}
			if prev, err := g.Weight(neighbor, city); err == nil && prev != dist {
				return fmt.Errorf("%w: %q→%q is %d but %q→%q is %d",
					ErrAsymmetric, neighbor, city, prev, city, neighbor, dist)
			}
		}
		if err = g.AddEdge(city, neighbor, dist); err != nil {
			return fmt.Errorf("%w: line %d, column %q: %w", ErrBadCell, line, neighbor, err)
		}
	}

	return nil
}
