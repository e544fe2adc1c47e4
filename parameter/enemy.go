package parameter

// Pursuer Agents
const (
	// PursuerCount is the number of pursuers spawned per session
	PursuerCount = 3

	// PursuerSpeed is the path-following speed in cells per second, kept below PlayerSpeed for balance
	PursuerSpeed = 4.0

	// PursuerMinSpawnDistance is the preferred minimum Manhattan distance from the player at spawn
	PursuerMinSpawnDistance = 10
)
