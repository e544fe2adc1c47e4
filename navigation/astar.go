package navigation

import (
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/vmath"
)

const costUnreachable = 1<<30 - 1

// Manhattan returns the 4-directional grid distance, the A* heuristic
func Manhattan(a, b maze.Cell) int {
	return vmath.Abs(a.Row-b.Row) + vmath.Abs(a.Col-b.Col)
}

// Finder runs A* searches, reusing its buffers across calls
// Not safe for concurrent use
type Finder struct {
	gScore   []int
	cameFrom []int
	closed   []bool
	nbrs     []maze.Cell

	// Reusable heap buffer to reduce allocations across recomputes
	heap minHeap
}

// NewFinder creates a finder with empty buffers, sized on first search
func NewFinder() *Finder {
	return &Finder{nbrs: make([]maze.Cell, 0, 4)}
}

// FindPath is a one-shot search with a fresh Finder
func FindPath(grid *maze.Grid, start, end maze.Cell) []maze.Cell {
	return NewFinder().FindPath(grid, start, end)
}

// FindPath returns the shortest 4-connected start..end path (both inclusive)
// Returns nil when either endpoint is not a Path cell or the goal is unreachable
// Open-set ties on f-score resolve to the smallest row, then the smallest column
func (f *Finder) FindPath(grid *maze.Grid, start, end maze.Cell) []maze.Cell {
	if grid == nil || !grid.IsPath(start) || !grid.IsPath(end) {
		return nil
	}
	if start == end {
		return []maze.Cell{start}
	}

	f.reset(grid.Size())

	startIdx := grid.Index(start)
	goalIdx := grid.Index(end)
	f.gScore[startIdx] = 0
	f.heap.push(heapEntry{idx: startIdx, g: 0, f: Manhattan(start, end)})

	for len(f.heap) > 0 {
		entry := f.heap.pop()

		if f.closed[entry.idx] || entry.g > f.gScore[entry.idx] {
			continue // Stale entry
		}
		f.closed[entry.idx] = true

		if entry.idx == goalIdx {
			return f.reconstruct(grid, goalIdx)
		}

		curr := grid.CellAt(entry.idx)
		f.nbrs = grid.Neighbors(f.nbrs[:0], curr)
		for _, next := range f.nbrs {
			nIdx := grid.Index(next)
			if f.closed[nIdx] || !grid.IsPath(next) {
				continue
			}
			ng := entry.g + 1
			if ng < f.gScore[nIdx] {
				f.gScore[nIdx] = ng
				f.cameFrom[nIdx] = entry.idx
				f.heap.push(heapEntry{idx: nIdx, g: ng, f: ng + Manhattan(next, end)})
			}
		}
	}

	return nil
}

func (f *Finder) reset(size int) {
	if cap(f.gScore) < size {
		f.gScore = make([]int, size)
		f.cameFrom = make([]int, size)
		f.closed = make([]bool, size)
	} else {
		f.gScore = f.gScore[:size]
		f.cameFrom = f.cameFrom[:size]
		f.closed = f.closed[:size]
	}
	for i := 0; i < size; i++ {
		f.gScore[i] = costUnreachable
		f.cameFrom[i] = -1
		f.closed[i] = false
	}
	f.heap = f.heap[:0]
}

// reconstruct walks predecessor links back from goal, returning a fresh slice
func (f *Finder) reconstruct(grid *maze.Grid, goalIdx int) []maze.Cell {
	path := make([]maze.Cell, f.gScore[goalIdx]+1)
	idx := goalIdx
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = grid.CellAt(idx)
		idx = f.cameFrom[idx]
	}
	return path
}
