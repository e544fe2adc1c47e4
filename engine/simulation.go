package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/agent"
	"github.com/lixenwraith/maze-chase/config"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/navigation"
	"github.com/lixenwraith/maze-chase/vmath"
)

// PlayerID is the agent ID of the player, pursuers are numbered from 1
const PlayerID = 0

// Simulation is the explicit context of one session: grid, agents and lifecycle
// Not safe for concurrent use; drive it from a single goroutine (ClockScheduler or a test)
type Simulation struct {
	ID uuid.UUID

	cfg      config.Config
	grid     *maze.Grid
	player   *agent.Agent
	pursuers []*agent.Agent
	state    StateMachine

	finder *navigation.Finder
	rng    vmath.Rand
	log    logrus.FieldLogger

	tickCount uint64
}

// NewSimulation generates a maze and spawns agents
// rng drives generation and spawn placement; nil seeds from cfg.Seed (0 = time based)
// Returns maze.ErrGenerationFailure when no connected maze is found within the attempt budget
func NewSimulation(cfg config.Config, rng vmath.Rand, log logrus.FieldLogger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng = resolveRand(rng, cfg.Seed)
	log = resolveLogger(log)

	res, err := maze.Generate(maze.Config{
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		MaxAttempts: cfg.MaxGenerationAttempts,
		Rand:        rng,
		Log:         log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s := newSimulation(cfg, res.Grid, rng, log)
	s.log.WithFields(logrus.Fields{
		"rows":     cfg.Rows,
		"cols":     cfg.Cols,
		"attempts": res.Attempts,
		"seed":     res.Seed,
		"pursuers": len(s.pursuers),
	}).Info("session started")
	return s, nil
}

// NewSimulationWithGrid starts a session on a prebuilt grid, start and end must be connected
func NewSimulationWithGrid(cfg config.Config, grid *maze.Grid, rng vmath.Rand, log logrus.FieldLogger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil || !maze.ValidateConnectivity(grid, grid.Start(), grid.End()) {
		return nil, fmt.Errorf("%w: start and end are not connected", maze.ErrGenerationFailure)
	}
	return newSimulation(cfg, grid, resolveRand(rng, cfg.Seed), resolveLogger(log)), nil
}

func newSimulation(cfg config.Config, grid *maze.Grid, rng vmath.Rand, log logrus.FieldLogger) *Simulation {
	id := uuid.New()
	s := &Simulation{
		ID:     id,
		cfg:    cfg,
		grid:   grid,
		finder: navigation.NewFinder(),
		rng:    rng,
		log:    log.WithField("session", id.String()),
	}
	s.player = agent.New(PlayerID, agent.KindPlayer, grid.Start(), cfg.PlayerSpeed, cfg.PlayerStepFactor)
	s.spawnPursuers()

	s.state.OnGameOver(func(tr Transition) {
		s.log.WithFields(logrus.Fields{
			"tick":     tr.Tick,
			"pursuers": tr.Pursuers,
		}).Info("player caught")
	})
	return s
}

func (s *Simulation) Grid() *maze.Grid         { return s.grid }
func (s *Simulation) Player() *agent.Agent     { return s.player }
func (s *Simulation) Pursuers() []*agent.Agent { return s.pursuers }
func (s *Simulation) State() GameState         { return s.state.State() }
func (s *Simulation) Config() config.Config    { return s.cfg }
func (s *Simulation) TickCount() uint64        { return s.tickCount }

// OnGameOver registers a listener for the terminal transition
func (s *Simulation) OnGameOver(fn func(Transition)) {
	s.state.OnGameOver(fn)
}

// Tick advances one movement step of duration dt
// Order: player, pursuers, collision detection, state transition; nothing happens once over
func (s *Simulation) Tick(dt time.Duration) {
	if s.state.IsOver() {
		return
	}
	s.tickCount++

	s.stepAgent(s.player, dt)
	for _, p := range s.pursuers {
		s.stepAgent(p, dt)
	}

	if hits := DetectCollisions(s.player, s.pursuers, s.cfg.CollisionThreshold); len(hits) > 0 {
		s.endGame(hits)
	}
}

// stepAgent applies the occupancy rule then advances a
// A blocked player keeps its path; a blocked pursuer drops it and waits for the next recompute
func (s *Simulation) stepAgent(a *agent.Agent, dt time.Duration) {
	if a.Stopped() {
		return
	}
	if wp, ok := a.NextWaypoint(); ok && s.occupied(wp, a) {
		if a.Kind == agent.KindPursuer {
			a.ClearPath()
		}
		return
	}
	a.Advance(dt)
}

// occupied reports whether any agent other than self rounds to cell c
func (s *Simulation) occupied(c maze.Cell, self *agent.Agent) bool {
	if s.player != self && s.player.RoundedCell() == c {
		return true
	}
	for _, p := range s.pursuers {
		if p != self && p.RoundedCell() == c {
			return true
		}
	}
	return false
}

func (s *Simulation) endGame(hits []int) {
	for _, p := range s.pursuers {
		p.ClearPath()
	}
	s.state.EndGame(s.tickCount, hits)
}

// RecomputePursuerPaths points every pursuer at the player's current cell
// A result of one cell or fewer (unreachable or already there) keeps the existing path
func (s *Simulation) RecomputePursuerPaths() {
	if s.state.IsOver() {
		return
	}
	goal := s.player.Cell()
	for _, p := range s.pursuers {
		path := s.finder.FindPath(s.grid, p.Cell(), goal)
		if len(path) <= 1 {
			continue
		}
		p.AssignPath(path[1:])
	}
}

// RequestPathTo routes the player to cell along the shortest path
// Walls, out-of-bounds and unreachable cells are ignored; returns whether a path was assigned
func (s *Simulation) RequestPathTo(cell maze.Cell) bool {
	if s.state.IsOver() || !s.grid.IsPath(cell) {
		return false
	}

	path := s.finder.FindPath(s.grid, s.player.Cell(), cell)
	switch {
	case len(path) == 0:
		return false
	case len(path) == 1:
		// Already in the target cell, settle onto it if mid-move
		if s.player.Position == agent.CellPosition(cell) {
			return false
		}
		s.player.AssignPath(path)
	default:
		s.player.AssignPath(path[1:])
	}
	return true
}

// RequestStep points the player's direct target at the neighbour of its nearest cell in dir
// Walls and out-of-bounds are ignored; a player between cells settles onto the nearest cell before turning
func (s *Simulation) RequestStep(dir maze.Direction) bool {
	if s.state.IsOver() {
		return false
	}

	base := s.player.RoundedCell()
	if !s.grid.IsPath(base) {
		base = s.player.Cell()
	}
	next := base.Step(dir)
	if !s.grid.IsPath(next) {
		return false
	}

	if s.player.Position != agent.CellPosition(base) {
		s.player.SetTarget(base, next)
	} else {
		s.player.SetTarget(next)
	}
	return true
}

// ToggleMovement flips the player's Stopped flag and returns the new value
func (s *Simulation) ToggleMovement() bool {
	stopped := s.player.ToggleStopped()
	s.log.WithField("stopped", stopped).Debug("player movement toggled")
	return stopped
}

// --- Helpers ---

func resolveRand(rng vmath.Rand, seed int64) vmath.Rand {
	if rng != nil {
		return rng
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return vmath.NewFastRand(uint64(seed))
}

func resolveLogger(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}
