package render

import (
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

// CellWidth is the number of terminal columns per maze cell, keeps cells roughly square
const CellWidth = 2

// Layout maps maze cells to terminal coordinates
// The maze is centered above a one-line status bar and clipped at the top-left when the terminal is too small
type Layout struct {
	OriginX, OriginY int
	Rows, Cols       int
	StatusY          int
}

// NewLayout centers a rows x cols maze on a width x height screen
func NewLayout(width, height, rows, cols int) Layout {
	mazeW := cols * CellWidth
	mazeH := rows
	return Layout{
		OriginX: max((width-mazeW)/2, 0),
		OriginY: max((height-1-mazeH)/2, 0),
		Rows:    rows,
		Cols:    cols,
		StatusY: max(height-1, 0),
	}
}

// ScreenOf returns the left terminal column and row of cell c
func (l Layout) ScreenOf(c maze.Cell) (x, y int) {
	return l.OriginX + c.Col*CellWidth, l.OriginY + c.Row
}

// ScreenOfPosition maps a continuous agent position to the nearest cell's screen coordinate
func (l Layout) ScreenOfPosition(p vmath.Vec2) (x, y int) {
	col, row := p.Round()
	return l.ScreenOf(maze.Cell{Row: row, Col: col})
}

// CellAt maps a terminal coordinate back to a maze cell, false outside the maze area
func (l Layout) CellAt(x, y int) (maze.Cell, bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return maze.Cell{}, false
	}
	c := maze.Cell{Row: dy, Col: dx / CellWidth}
	if c.Row >= l.Rows || c.Col >= l.Cols {
		return maze.Cell{}, false
	}
	return c, true
}
