package engine

import (
	"github.com/lixenwraith/maze-chase/agent"
	"github.com/lixenwraith/maze-chase/vmath"
)

// DetectCollisions returns the IDs of pursuers strictly closer than threshold to the player
// Distance is Euclidean on continuous positions, threshold is in cells
func DetectCollisions(player *agent.Agent, pursuers []*agent.Agent, threshold float64) []int {
	var hits []int
	for _, p := range pursuers {
		if vmath.Distance(player.Position, p.Position) < threshold {
			hits = append(hits, p.ID)
		}
	}
	return hits
}
