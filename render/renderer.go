package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/maze-chase/agent"
	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/maze"
)

// Glyphs
const (
	GlyphWall    = '█'
	GlyphRoute   = '·'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphPlayer  = '@'
	GlyphPursuer = 'X'
)

const gameOverText = " GAME OVER - press r to restart, q to quit "

// Renderer draws snapshots onto a tcell screen
// It only reads the snapshot, all state lives in the simulation
type Renderer struct {
	styles Styles
}

func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Draw renders one frame and returns the layout used, for mapping mouse input back to cells
func (r *Renderer) Draw(screen tcell.Screen, snap engine.Snapshot) Layout {
	w, h := screen.Size()
	grid := snap.Grid
	layout := NewLayout(w, h, grid.Rows(), grid.Cols())

	screen.SetStyle(r.styles.Floor)
	screen.Clear()

	r.drawGrid(screen, layout, grid)

	player := snap.Player()
	for _, c := range player.Path {
		r.fillCell(screen, layout, c, GlyphRoute, r.styles.Route)
	}

	// Pursuers first so the player glyph wins a shared cell
	for _, a := range snap.Agents[1:] {
		r.drawAgent(screen, layout, a)
	}
	r.drawAgent(screen, layout, player)

	r.drawStatus(screen, layout, w, snap)
	if snap.State == engine.StateGameOver {
		r.drawBanner(screen, w, h)
	}

	screen.Show()
	return layout
}

func (r *Renderer) drawGrid(screen tcell.Screen, l Layout, grid *maze.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := maze.Cell{Row: row, Col: col}
			switch {
			case !grid.IsPath(c):
				r.fillCell(screen, l, c, GlyphWall, r.styles.Wall)
			case c == grid.Start():
				r.fillCell(screen, l, c, GlyphStart, r.styles.Start)
			case c == grid.End():
				r.fillCell(screen, l, c, GlyphEnd, r.styles.End)
			}
		}
	}
}

// fillCell writes ch into the left column of c; walls fill both columns
func (r *Renderer) fillCell(screen tcell.Screen, l Layout, c maze.Cell, ch rune, style tcell.Style) {
	x, y := l.ScreenOf(c)
	screen.SetContent(x, y, ch, nil, style)
	if ch == GlyphWall {
		screen.SetContent(x+1, y, ch, nil, style)
	}
}

func (r *Renderer) drawAgent(screen tcell.Screen, l Layout, a engine.AgentView) {
	x, y := l.ScreenOfPosition(a.Position)
	switch {
	case a.Kind == agent.KindPursuer:
		screen.SetContent(x, y, GlyphPursuer, nil, r.styles.Pursuer)
	case a.State == agent.Stopped:
		screen.SetContent(x, y, GlyphPlayer, nil, r.styles.Stopped)
	default:
		screen.SetContent(x, y, GlyphPlayer, nil, r.styles.Player)
	}
}

func (r *Renderer) drawStatus(screen tcell.Screen, l Layout, width int, snap engine.Snapshot) {
	player := snap.Player()
	text := fmt.Sprintf(" %s | %s | tick %d | pursuers %d | click/hjkl move  space stop  r restart  q quit",
		snap.State, player.State, snap.Tick, len(snap.Agents)-1)
	drawText(screen, 0, l.StatusY, width, text, r.styles.Status)
}

func (r *Renderer) drawBanner(screen tcell.Screen, width, height int) {
	textW := runewidth.StringWidth(gameOverText)
	x := max((width-textW)/2, 0)
	drawText(screen, x, height/2, width, gameOverText, r.styles.GameOver)
}

// drawText writes s from (x, y), clipped at maxX
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= maxX {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
