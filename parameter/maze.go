package parameter

// Maze Generation
const (
	// MazeRows is the default grid height in cells
	MazeRows = 21

	// MazeCols is the default grid width in cells
	MazeCols = 31

	// MazeMaxGenerationAttempts bounds regeneration when start and end end up disconnected
	MazeMaxGenerationAttempts = 10
)
