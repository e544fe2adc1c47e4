// Package agent holds the movable actors of a session: the player and its pursuers.
//
// An agent follows one of two motion modes. Path-following walks a queue of grid
// waypoints at a fixed speed in cells per second. Direct-target eases toward a
// single cell by a fixed fraction of the remaining distance each tick. Paths are
// treated as immutable values: assignment copies, and reaching a waypoint reslices
// without touching the backing array, so a replaced path is never observed half
// rewritten.
package agent

import (
	"time"

	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

// Kind distinguishes the player from pursuers
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPursuer
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "pursuer"
}

// MovementState is the externally visible motion state
type MovementState uint8

const (
	Idle MovementState = iota
	Moving
	Stopped
)

func (s MovementState) String() string {
	switch s {
	case Moving:
		return "moving"
	case Stopped:
		return "stopped"
	}
	return "idle"
}

// Mode is the active motion mode
type Mode uint8

const (
	ModeNone Mode = iota
	ModePath
	ModeTarget
)

type Agent struct {
	ID   int
	Kind Kind

	Position vmath.Vec2

	// Speed is the path-following rate in cells per second
	Speed float64
	// StepFactor is the direct-target interpolation fraction per tick, in (0,1]
	StepFactor float64

	mode    Mode
	path    []maze.Cell
	targets []maze.Cell
	stopped bool
}

// New places an agent at the canonical position of cell
func New(id int, kind Kind, cell maze.Cell, speed, stepFactor float64) *Agent {
	return &Agent{
		ID:         id,
		Kind:       kind,
		Position:   CellPosition(cell),
		Speed:      speed,
		StepFactor: stepFactor,
	}
}

// CellPosition returns the continuous coordinate of a cell (x = col, y = row)
func CellPosition(c maze.Cell) vmath.Vec2 {
	return vmath.Vec2{X: float64(c.Col), Y: float64(c.Row)}
}

// Cell returns the occupied cell (floor of position)
func (a *Agent) Cell() maze.Cell {
	x, y := a.Position.Floor()
	return maze.Cell{Row: y, Col: x}
}

// RoundedCell returns the nearest cell, used for occupancy checks
func (a *Agent) RoundedCell() maze.Cell {
	x, y := a.Position.Round()
	return maze.Cell{Row: y, Col: x}
}

func (a *Agent) Mode() Mode { return a.mode }

// State reports Stopped while suspended, otherwise Moving if a path or target is pending
func (a *Agent) State() MovementState {
	switch {
	case a.stopped:
		return Stopped
	case a.mode == ModeNone:
		return Idle
	}
	return Moving
}

// Path returns the remaining waypoints, callers must treat it as read-only
func (a *Agent) Path() []maze.Cell {
	return a.path
}

// NextWaypoint returns the first pending waypoint in path mode
func (a *Agent) NextWaypoint() (maze.Cell, bool) {
	if a.mode != ModePath || len(a.path) == 0 {
		return maze.Cell{}, false
	}
	return a.path[0], true
}

// Target returns the final pending direct target in target mode
func (a *Agent) Target() (maze.Cell, bool) {
	if a.mode != ModeTarget || len(a.targets) == 0 {
		return maze.Cell{}, false
	}
	return a.targets[len(a.targets)-1], true
}

// AssignPath replaces any pending motion with a copy of path
// An empty path clears motion
func (a *Agent) AssignPath(path []maze.Cell) {
	if len(path) == 0 {
		a.ClearPath()
		return
	}
	p := make([]maze.Cell, len(path))
	copy(p, path)
	a.path = p
	a.targets = nil
	a.mode = ModePath
}

// SetTarget replaces any pending motion with direct targets visited in order
// Each target is reached before the next one is approached; no targets clears motion
func (a *Agent) SetTarget(cells ...maze.Cell) {
	if len(cells) == 0 {
		a.ClearPath()
		return
	}
	a.path = nil
	t := make([]maze.Cell, len(cells))
	copy(t, cells)
	a.targets = t
	a.mode = ModeTarget
}

// ClearPath drops pending motion, the agent stays where it is
func (a *Agent) ClearPath() {
	a.path = nil
	a.targets = nil
	a.mode = ModeNone
}

func (a *Agent) Stopped() bool { return a.stopped }

// SetStopped suspends or resumes motion without touching pending path/target
func (a *Agent) SetStopped(stopped bool) { a.stopped = stopped }

// ToggleStopped flips the suspension flag and returns the new value
func (a *Agent) ToggleStopped() bool {
	a.stopped = !a.stopped
	return a.stopped
}

// Advance moves the agent by one tick of duration dt
// Returns true when the final waypoint or the target was reached on this tick
func (a *Agent) Advance(dt time.Duration) bool {
	if a.stopped {
		return false
	}

	switch a.mode {
	case ModePath:
		if len(a.path) == 0 {
			a.mode = ModeNone
			return false
		}
		step := a.Speed * dt.Seconds()
		pos, reached := vmath.MoveToward(a.Position, CellPosition(a.path[0]), step)
		a.Position = pos
		if !reached {
			return false
		}
		a.path = a.path[1:]
		if len(a.path) == 0 {
			a.path = nil
			a.mode = ModeNone
			return true
		}

	case ModeTarget:
		if len(a.targets) == 0 {
			a.mode = ModeNone
			return false
		}
		dest := CellPosition(a.targets[0])
		a.Position = vmath.Lerp(a.Position, dest, a.StepFactor)
		if vmath.Distance(a.Position, dest) >= vmath.Epsilon {
			return false
		}
		a.Position = dest
		a.targets = a.targets[1:]
		if len(a.targets) == 0 {
			a.targets = nil
			a.mode = ModeNone
			return true
		}
	}
	return false
}
