package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-chase/maze"
)

// CellLocator maps terminal coordinates to maze cells
type CellLocator interface {
	CellAt(x, y int) (maze.Cell, bool)
}

// Controller is the simulation surface driven by player input
type Controller interface {
	RequestPathTo(cell maze.Cell) bool
	RequestStep(dir maze.Direction) bool
	ToggleMovement() bool
}

// Handler translates tcell events into intents
// Mouse clicks fire on the press edge only, holding the button does not re-issue the request
type Handler struct {
	keys    *KeyTable
	buttons tcell.ButtonMask
}

func NewHandler(keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{keys: keys}
}

// Translate returns the intent for ev, IntentNone when the event carries no action
func (h *Handler) Translate(ev tcell.Event, loc CellLocator) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.translateKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = ev.Buttons()
		if !pressed || loc == nil {
			return Intent{}
		}
		cell, ok := loc.CellAt(ev.Position())
		if !ok {
			return Intent{}
		}
		return Intent{Type: IntentPathTo, Cell: cell}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (h *Handler) translateKey(ev *tcell.EventKey) Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = h.keys.Runes[ev.Rune()]
	} else {
		entry, ok = h.keys.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{}
	}
	return Intent{Type: entry.Type, Dir: entry.Dir}
}

// Apply forwards player-control intents to c and reports whether c accepted them
// System intents are left to the caller
func Apply(in Intent, c Controller) bool {
	switch in.Type {
	case IntentStep:
		return c.RequestStep(in.Dir)
	case IntentPathTo:
		return c.RequestPathTo(in.Cell)
	case IntentToggle:
		c.ToggleMovement()
		return true
	}
	return false
}
