package queryfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrBadCoordinate indicates a from/to value that is not two integers.
	ErrBadCoordinate = errors.New("queryfile: coordinate must be [row, col]")
	// ErrDuplicateQuery indicates two queries sharing a name.
	ErrDuplicateQuery = errors.New("queryfile: duplicate query name")
	// ErrBadReachable indicates a negative reachable bound.
	ErrBadReachable = errors.New("queryfile: reachable must not be negative")
)

// Query is one path search request.
type Query struct {
	Name string
	From maze.Position
	To   maze.Position
	// Reachable, when set, asks for NumReachable(k) for k = 0..*Reachable.
	Reachable *int
}

// File is the decoded content of a query file.
type File struct {
	Queries []Query
}

// hclFile mirrors the file layout for gohcl decoding.
type hclFile struct {
	Queries []*hclQuery `hcl:"query,block"`
}

type hclQuery struct {
	Name      string `hcl:"name,label"`
	From      []int  `hcl:"from"`
	To        []int  `hcl:"to"`
	Reachable *int   `hcl:"reachable,optional"`
}

// Load parses and validates the query file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("queryfile: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes and validates HCL source; filename is used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("queryfile: failed to parse %s: %w", filename, diags)
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("queryfile: failed to decode %s: %w", filename, diags)
	}

	out := &File{Queries: make([]Query, 0, len(raw.Queries))}
	seen := make(map[string]bool, len(raw.Queries))
	for _, q := range raw.Queries {
		if seen[q.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateQuery, q.Name, filename)
		}
		seen[q.Name] = true

		from, err := position(q.From)
		if err != nil {
			return nil, fmt.Errorf("query %q from: %w", q.Name, err)
		}
		to, err := position(q.To)
		if err != nil {
			return nil, fmt.Errorf("query %q to: %w", q.Name, err)
		}
		if q.Reachable != nil && *q.Reachable < 0 {
			return nil, fmt.Errorf("%w: query %q has %d", ErrBadReachable, q.Name, *q.Reachable)
		}
		out.Queries = append(out.Queries, Query{Name: q.Name, From: from, To: to, Reachable: q.Reachable})
	}
	return out, nil
}

// position converts a decoded [row, col] list.
func position(v []int) (maze.Position, error) {
	if len(v) != 2 {
		return maze.Position{}, fmt.Errorf("%w, got %d values", ErrBadCoordinate, len(v))
	}
	return maze.Position{Row: v[0], Col: v[1]}, nil
}
