package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/maze-chase/agent"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

// AgentView is a copied, renderer-facing view of one agent
type AgentView struct {
	ID       int
	Kind     agent.Kind
	Position vmath.Vec2
	State    agent.MovementState
	Path     []maze.Cell
}

// Snapshot is the pull-based frame state for renderers
// Grid is shared and read-only, everything else is copied
type Snapshot struct {
	SessionID uuid.UUID
	Grid      *maze.Grid
	Agents    []AgentView // Player first
	State     GameState
	Tick      uint64
}

// Player returns the player view
func (s Snapshot) Player() AgentView {
	return s.Agents[0]
}

// Snapshot copies the current frame state
func (s *Simulation) Snapshot() Snapshot {
	agents := make([]AgentView, 0, len(s.pursuers)+1)
	agents = append(agents, viewOf(s.player))
	for _, p := range s.pursuers {
		agents = append(agents, viewOf(p))
	}
	return Snapshot{
		SessionID: s.ID,
		Grid:      s.grid,
		Agents:    agents,
		State:     s.state.State(),
		Tick:      s.tickCount,
	}
}

func viewOf(a *agent.Agent) AgentView {
	var path []maze.Cell
	if src := a.Path(); len(src) > 0 {
		path = make([]maze.Cell, len(src))
		copy(path, src)
	}
	return AgentView{
		ID:       a.ID,
		Kind:     a.Kind,
		Position: a.Position,
		State:    a.State(),
		Path:     path,
	}
}
