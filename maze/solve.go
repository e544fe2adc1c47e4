package maze

// ValidateConnectivity reports whether end is reachable from start over Path cells
func ValidateConnectivity(grid *Grid, start, end Cell) bool {
	_, ok := bfs(grid, start, end)
	return ok
}

// SolveBFS returns a shortest start..end path (both inclusive), nil if unreachable
func SolveBFS(grid *Grid, start, end Cell) []Cell {
	cameFrom, ok := bfs(grid, start, end)
	if !ok {
		return nil
	}

	// Reconstruct Path
	var path []Cell
	for idx := grid.Index(end); ; idx = cameFrom[idx] {
		path = append(path, grid.CellAt(idx))
		if idx == grid.Index(start) {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// bfs floods from start until end is dequeued
// Returns predecessor indices (-1 = unvisited) and whether end was reached
func bfs(grid *Grid, start, end Cell) ([]int, bool) {
	if grid == nil || !grid.IsPath(start) || !grid.IsPath(end) {
		return nil, false
	}

	cameFrom := make([]int, grid.Size())
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	startIdx := grid.Index(start)
	cameFrom[startIdx] = startIdx

	queue := make([]Cell, 0, grid.Size()/4+1)
	queue = append(queue, start)
	nbrs := make([]Cell, 0, 4)

	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		if curr == end {
			return cameFrom, true
		}

		nbrs = grid.Neighbors(nbrs[:0], curr)
		for _, next := range nbrs {
			idx := grid.Index(next)
			if cameFrom[idx] == -1 && grid.cells[idx] == Path {
				cameFrom[idx] = grid.Index(curr)
				queue = append(queue, next)
			}
		}
	}
	return nil, false
}
