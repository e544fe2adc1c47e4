package input

import "github.com/lixenwraith/maze-chase/maze"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // q, Esc, Ctrl+C
	IntentRestart // r, new maze and agents
	IntentResize  // Terminal resize event

	// Player control
	IntentStep   // h,j,k,l, arrows
	IntentPathTo // Left click on a maze cell
	IntentToggle // Space, stop or resume
)

// Intent is one translated input event
// Dir is set for IntentStep, Cell for IntentPathTo
type Intent struct {
	Type IntentType
	Dir  maze.Direction
	Cell maze.Cell
}
