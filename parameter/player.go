package parameter

// Player Agent
const (
	// PlayerSpeed is the path-following speed in cells per second
	PlayerSpeed = 6.0

	// PlayerStepFactor is the per-tick interpolation factor toward a direct (keyboard) target, in (0,1]
	PlayerStepFactor = 0.35
)
