// Package gridgraph provides utilities to treat a 2D grid of digit cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked lookups by signed Position
//   - Enumeration of trailheads (value 0) and peaks (value 9)
//
// Cells holding NonDigit are kept in place; they simply never match any
// height rule, which turns them into walls.
package gridgraph

import (
	"strings"
)

// Orthogonal offsets in N, S, W, E order; diagonals follow for Conn8.
var (
	offsets4 = []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = []Position{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Value returns the cell value at p. ok is false when p is off the grid.
// Complexity: O(1).
func (gg *GridGraph) Value(p Position) (v int, ok bool) {
	if !gg.InBounds(p) {
		return 0, false
	}

	return gg.CellValues[p.Row][p.Col], true
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() []Position {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of p in offset order.
func (gg *GridGraph) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		if q := p.Add(d); gg.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Trailheads returns every cell with value MinHeight, in row-major order.
func (gg *GridGraph) Trailheads() []Position {
	return gg.cellsWithValue(MinHeight)
}

// Peaks returns every cell with value MaxHeight, in row-major order.
func (gg *GridGraph) Peaks() []Position {
	return gg.cellsWithValue(MaxHeight)
}

func (gg *GridGraph) cellsWithValue(v int) []Position {
	var out []Position
	for r, row := range gg.CellValues {
		for c, cell := range row {
			if cell == v {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}

	return out
}

// String renders the grid one row per line; cells outside 0..9 print as '.'.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow(gg.Height * (gg.Width + 1))
	for _, row := range gg.CellValues {
		for _, cell := range row {
			if cell < MinHeight || cell > MaxHeight {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
