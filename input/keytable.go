package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-chase/maze"
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Type IntentType
	Dir  maze.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyUp:     {Type: IntentStep, Dir: maze.Up},
			tcell.KeyDown:   {Type: IntentStep, Dir: maze.Down},
			tcell.KeyLeft:   {Type: IntentStep, Dir: maze.Left},
			tcell.KeyRight:  {Type: IntentStep, Dir: maze.Right},
		},

		Runes: map[rune]KeyEntry{
			'h': {Type: IntentStep, Dir: maze.Left},
			'j': {Type: IntentStep, Dir: maze.Down},
			'k': {Type: IntentStep, Dir: maze.Up},
			'l': {Type: IntentStep, Dir: maze.Right},
			' ': {Type: IntentToggle},
			'r': {Type: IntentRestart},
			'q': {Type: IntentQuit},
		},
	}
}
