package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/navigation"
	"github.com/lixenwraith/maze-chase/parameter"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	for {
		fmt.Println("\n=== RANDOMIZED PRIM MAZE GENERATOR ===")

		rows := getInt(reader, fmt.Sprintf("Rows (default %d): ", parameter.MazeRows), parameter.MazeRows)
		cols := getInt(reader, fmt.Sprintf("Cols (default %d): ", parameter.MazeCols), parameter.MazeCols)
		seed := int64(getInt(reader, "Seed [0 = random] (default 0): ", 0))

		cfg := maze.Config{
			Rows: rows,
			Cols: cols,
			Seed: seed,
			Log:  logger,
		}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(cfg)
		dur := time.Since(startT)

		switch {
		case errors.Is(err, maze.ErrInvalidDimensions):
			fmt.Printf("Invalid size: %v\n", err)
		case err != nil:
			fmt.Printf("Status: %v\n", err)
		default:
			fmt.Printf("Done in %v (attempt %d, seed %d)\n", dur, res.Attempts, res.Seed)
			fmt.Printf("Grid Dimensions: %dx%d\n", res.Grid.Cols(), res.Grid.Rows())

			path := navigation.FindPath(res.Grid, res.Grid.Start(), res.Grid.End())
			fmt.Printf("Solution Path Length: %d steps\n", len(path)-1)
			draw(res.Grid, path)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(grid *maze.Grid, path []maze.Cell) {
	onPath := make(map[maze.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := maze.Cell{Row: row, Col: col}
			switch {
			case c == grid.Start():
				sb.WriteString("S ")
			case c == grid.End():
				sb.WriteString("E ")
			case !grid.IsPath(c):
				sb.WriteString("██")
			case onPath[c]:
				sb.WriteString("• ")
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
