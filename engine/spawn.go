package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/agent"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/navigation"
)

// spawnPursuers places cfg.PursuerCount pursuers on distinct Path cells
// Cells at least PursuerMinSpawnDistance (Manhattan) from the player are drawn first, the rest only as fallback
func (s *Simulation) spawnPursuers() {
	origin := s.player.Cell()

	var far, near []maze.Cell
	for _, c := range s.grid.PathCells() {
		switch {
		case c == origin:
		case navigation.Manhattan(c, origin) >= s.cfg.PursuerMinSpawnDistance:
			far = append(far, c)
		default:
			near = append(near, c)
		}
	}

	cells := s.drawCells(far, s.cfg.PursuerCount)
	if len(cells) < s.cfg.PursuerCount {
		cells = append(cells, s.drawCells(near, s.cfg.PursuerCount-len(cells))...)
	}
	if len(cells) < s.cfg.PursuerCount {
		s.log.WithFields(logrus.Fields{
			"requested": s.cfg.PursuerCount,
			"placed":    len(cells),
		}).Warn("not enough free cells for pursuers")
	}

	s.pursuers = make([]*agent.Agent, 0, len(cells))
	for i, c := range cells {
		s.pursuers = append(s.pursuers, agent.New(i+1, agent.KindPursuer, c, s.cfg.PursuerSpeed, 1))
	}
}

// drawCells picks up to n distinct cells with a partial Fisher-Yates shuffle, pool is reordered in place
func (s *Simulation) drawCells(pool []maze.Cell, n int) []maze.Cell {
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
