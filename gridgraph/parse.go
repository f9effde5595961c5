package gridgraph

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// CellValue maps an input character to its cell value:
// '0'..'9' become 0..9, every other byte becomes NonDigit.
func CellValue(ch byte) int {
	if ch < '0' || ch > '9' {
		return NonDigit
	}

	return int(ch - '0')
}

// Parse reads a whole grid from r, one row per line.
// Width is the length of the first line and height the number of lines.
// A single trailing newline does not start a new row, and "\r\n" line
// endings are accepted.
//
// Returns ErrEmptyGrid for empty input and ErrNonRectangular, wrapped with the
// 1-based line number, when a line's length differs from the first one.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	// 1. Split into lines, dropping the terminator of the last one
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	// 2. Map characters, enforcing the first line's width
	width := len(lines[0])
	values := make([][]int, len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("line %d has length %d, want %d: %w", i+1, len(line), width, ErrNonRectangular)
		}
		row := make([]int, width)
		for c := 0; c < width; c++ {
			row[c] = CellValue(line[c])
		}
		values[i] = row
	}

	// 3. Build the immutable grid
	return NewGridGraph(values, opts)
}

// Load opens the file at path and parses it with Parse.
// Every error is wrapped with the path so callers can name the failed source.
func Load(path string, opts GridOptions) (*GridGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: %w", err) // *fs.PathError already names path
	}
	defer f.Close()

	gg, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: load %s: %w", path, err)
	}

	return gg, nil
}
