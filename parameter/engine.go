package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the movement tick interval (~60 FPS, display-refresh aligned)
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps a measured tick delta after a stall to avoid agents tunnelling through cells
	MaxTickDelta = 100 * time.Millisecond

	// RepathInterval is the pursuer path recompute interval, independent of TickInterval
	RepathInterval = 1000 * time.Millisecond

	// CommandQueueSize is the buffered capacity of the scheduler command channel
	CommandQueueSize = 64
)

// Collision
const (
	// CollisionThreshold is the player-pursuer distance (fraction of one cell) below which the session ends
	CollisionThreshold = 0.75
)
