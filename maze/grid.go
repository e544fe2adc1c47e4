package maze

import (
	"fmt"
	"strings"
)

// Kind is the content of a grid cell
type Kind uint8

const (
	Wall Kind = iota
	Path
)

func (k Kind) String() string {
	if k == Path {
		return "path"
	}
	return "wall"
}

// Cell is an integer grid coordinate
type Cell struct {
	Row, Col int
}

// Direction is one of the four cardinal moves
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Direction deltas matching Up..Right, also the neighbor scan order
var dirDeltas = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Step returns the neighbor of c in direction d, possibly out of bounds
func (c Cell) Step(d Direction) Cell {
	if int(d) >= len(dirDeltas) {
		return c
	}
	delta := dirDeltas[d]
	return Cell{c.Row + delta.Row, c.Col + delta.Col}
}

// Adjacent reports whether c and o differ by exactly one cardinal step
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rows x cols wall/path matrix
// Cells are unexported: once built, a Grid is read-only
type Grid struct {
	rows, cols int
	cells      []Kind
	start, end Cell
}

func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols), // Zero value is Wall
		end:   Cell{rows - 1, cols - 1},
	}
}

func (g *Grid) Rows() int   { return g.rows }
func (g *Grid) Cols() int   { return g.cols }
func (g *Grid) Start() Cell { return g.start }
func (g *Grid) End() Cell   { return g.end }

// Size returns total cell count
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index returns the flat row-major index of an in-bounds cell
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt is the inverse of Index
func (g *Grid) CellAt(idx int) Cell {
	return Cell{idx / g.cols, idx % g.cols}
}

// Kind returns cell content, out of bounds reads as Wall
func (g *Grid) Kind(c Cell) Kind {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)]
}

// IsPath reports whether c is an in-bounds walkable cell
func (g *Grid) IsPath(c Cell) bool {
	return g.Kind(c) == Path
}

// Neighbors appends the in-bounds 4-neighbors of c to dst in up, down, left, right order
func (g *Grid) Neighbors(dst []Cell, c Cell) []Cell {
	for _, d := range dirDeltas {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// PathCells returns all walkable cells in row-major order
func (g *Grid) PathCells() []Cell {
	out := make([]Cell, 0, len(g.cells)/2)
	for i, k := range g.cells {
		if k == Path {
			out = append(out, g.CellAt(i))
		}
	}
	return out
}

func (g *Grid) set(c Cell, k Kind) {
	g.cells[g.Index(c)] = k
}

// countPathNeighbors returns how many 4-neighbors of c are Path
func (g *Grid) countPathNeighbors(c Cell) int {
	n := 0
	for _, d := range dirDeltas {
		if g.IsPath(Cell{c.Row + d.Row, c.Col + d.Col}) {
			n++
		}
	}
	return n
}

// String renders '#' for walls, '.' for paths, 'S' and 'E' for endpoints
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{r, c}
			switch {
			case cell == g.start:
				sb.WriteByte('S')
			case cell == g.end:
				sb.WriteByte('E')
			case g.IsPath(cell):
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromRows builds a grid from text rows using the String alphabet
// Missing 'S'/'E' default to the top-left and bottom-right corners
// Connectivity is not validated, use ValidateConnectivity
func FromRows(lines ...string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}
	g := newGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(line), g.cols)
		}
		for c, ch := range []byte(line) {
			cell := Cell{r, c}
			switch ch {
			case '#':
			case '.', ' ':
				g.set(cell, Path)
			case 'S':
				g.set(cell, Path)
				g.start = cell
			case 'E':
				g.set(cell, Path)
				g.end = cell
			default:
				return nil, fmt.Errorf("unknown layout rune %q at %v", ch, cell)
			}
		}
	}
	return g, nil
}
