package maze

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/parameter"
	"github.com/lixenwraith/maze-chase/vmath"
)

var (
	// ErrGenerationFailure is returned when no attempt produced a connected start/end pair
	ErrGenerationFailure = errors.New("maze generation failed")

	// ErrInvalidDimensions is returned for empty grids or endpoints outside the grid
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

type Config struct {
	Rows, Cols int

	StartPos *Cell // Optional (nil = top-left)
	EndPos   *Cell // Optional (nil = bottom-right)

	// MaxAttempts bounds regeneration (0 = parameter.MazeMaxGenerationAttempts)
	MaxAttempts int

	// Rand seeds every attempt, takes precedence over Seed
	Rand vmath.Rand
	Seed int64 // Optional (0 = Random)

	Log logrus.FieldLogger // Optional (nil = logrus standard logger)
}

type Result struct {
	Grid     *Grid
	Attempts int   // Attempts consumed, 1 on first-try success
	Seed     int64 // Seed of the accepted attempt
}

// Generate grows a randomized Prim maze and validates start/end connectivity
// Each failed attempt is retried with a fresh seed drawn from the source, up to MaxAttempts
func Generate(cfg Config) (Result, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}

	start := resolveCell(cfg.StartPos, Cell{0, 0})
	end := resolveCell(cfg.EndPos, Cell{cfg.Rows - 1, cfg.Cols - 1})
	bounds := Grid{rows: cfg.Rows, cols: cfg.Cols}
	if !bounds.InBounds(start) || !bounds.InBounds(end) {
		return Result{}, fmt.Errorf("%w: start %v or end %v outside %dx%d", ErrInvalidDimensions, start, end, cfg.Rows, cfg.Cols)
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = vmath.NewFastRand(uint64(seed))
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = parameter.MazeMaxGenerationAttempts
	}

	var log logrus.FieldLogger = logrus.StandardLogger()
	if cfg.Log != nil {
		log = cfg.Log
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		seed := rng.Int63()
		grid := growPrim(cfg.Rows, cfg.Cols, vmath.NewFastRand(uint64(seed)))

		// Forcing endpoints open can strand them outside the grown region, hence validation
		grid.set(start, Path)
		grid.set(end, Path)
		grid.start, grid.end = start, end

		if ValidateConnectivity(grid, start, end) {
			log.WithFields(logrus.Fields{
				"rows":    cfg.Rows,
				"cols":    cfg.Cols,
				"attempt": attempt,
				"seed":    seed,
			}).Debug("maze generated")
			return Result{Grid: grid, Attempts: attempt, Seed: seed}, nil
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"max":     maxAttempts,
			"seed":    seed,
		}).Warn("maze start and end disconnected, retrying")
	}

	return Result{}, fmt.Errorf("%w: no connected %dx%d maze after %d attempts",
		ErrGenerationFailure, cfg.Rows, cfg.Cols, maxAttempts)
}

// --- Core Algorithm ---

// growPrim grows a single-width passage tree from a random seed cell
// A frontier wall is promoted only when exactly one neighbor is already Path, which keeps passages one cell wide
// Each cell is queued at most once so the loop is bounded by rows*cols
func growPrim(rows, cols int, rng vmath.Rand) *Grid {
	grid := newGrid(rows, cols)

	queued := make([]bool, grid.Size())
	frontier := make([]Cell, 0, grid.Size()/2)
	nbrs := make([]Cell, 0, 4)

	push := func(c Cell) {
		nbrs = grid.Neighbors(nbrs[:0], c)
		for _, n := range nbrs {
			idx := grid.Index(n)
			if !queued[idx] && grid.cells[idx] == Wall {
				queued[idx] = true
				frontier = append(frontier, n)
			}
		}
	}

	first := Cell{rng.Intn(rows), rng.Intn(cols)}
	grid.set(first, Path)
	queued[grid.Index(first)] = true
	push(first)

	for len(frontier) > 0 {
		// Uniform pick, swap-remove
		i := rng.Intn(len(frontier))
		curr := frontier[i]
		last := len(frontier) - 1
		frontier[i] = frontier[last]
		frontier = frontier[:last]

		if grid.countPathNeighbors(curr) != 1 {
			continue
		}
		grid.set(curr, Path)
		push(curr)
	}

	return grid
}

// --- Helpers ---

func resolveCell(p *Cell, def Cell) Cell {
	if p == nil {
		return def
	}
	return *p
}
