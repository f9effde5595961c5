// Package gridgraph treats a rectangular grid of digit cells as a graph,
// the terrain that trail searches run over.
//
// What:
//
//   - GridGraph wraps an immutable [][]int height map with Width and Height.
//   - Parse and Load turn text (one row per line) into a GridGraph; every
//     character '0'..'9' becomes its digit, anything else becomes NonDigit.
//   - Position addresses a cell as signed (Row, Col), so neighbours that fall
//     off the grid can be computed first and rejected by InBounds.
//   - Trailheads and Peaks enumerate the 0-cells and 9-cells in row-major order.
//
// Why:
//
//   - Hiking maps: every step must climb exactly one unit of height.
//   - Any puzzle whose input is a fixed-width block of characters.
//
// Complexity:
//
//   - Parse / Load / NewGridGraph: O(W×H) time and memory.
//   - InBounds, Value:             O(1).
//   - Trailheads, Peaks:           O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (N, S, W, E) or Conn8 (adds diagonals).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths. Ragged input is
//     rejected, never padded or truncated.
package gridgraph
