package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/config"
	"github.com/lixenwraith/maze-chase/engine"
	"github.com/lixenwraith/maze-chase/input"
	"github.com/lixenwraith/maze-chase/maze"
	"github.com/lixenwraith/maze-chase/render"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	envFlag    = flag.String("env", ".env", "dotenv file with MAZECHASE_* overrides")
	seedFlag   = flag.Int64("seed", 0, "Maze seed, overrides config (0 = keep config)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/"+logFileName)
)

// layoutRef publishes the last drawn layout from the scheduler goroutine to the input loop
type layoutRef struct {
	p atomic.Pointer[render.Layout]
}

func (r *layoutRef) CellAt(x, y int) (maze.Cell, bool) {
	l := r.p.Load()
	if l == nil {
		return maze.Cell{}, false
	}
	return l.CellAt(x, y)
}

func main() {
	flag.Parse()

	logger := logrus.New()
	if logFile := setupLogging(logger, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	sim, err := engine.NewSimulation(cfg, nil, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(r any, stack []byte) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\nMAZE-CHASE CRASHED: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r, debug.Stack())
		}
	}()
	defer screen.Fini()

	renderer := render.NewRenderer(render.DefaultStyles())
	layout := &layoutRef{}

	scheduler := engine.NewClockScheduler(sim, engine.NewMonotonicTimeProvider(), logger)
	// Frames draw on the scheduler goroutine, outside the recover above
	scheduler.SetFrameHandler(guardFrame(func(snap engine.Snapshot) {
		l := renderer.Draw(screen, snap)
		layout.p.Store(&l)
	}, crash))
	scheduler.Start()
	defer scheduler.Stop()

	handler := input.NewHandler(input.DefaultKeyTable())
	restarts := int64(0)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		intent := handler.Translate(ev, layout)
		switch intent.Type {
		case input.IntentNone:

		case input.IntentQuit:
			return

		case input.IntentRestart:
			restarts++
			next, err := engine.NewSimulation(restartConfig(cfg, restarts), nil, logger)
			if err != nil {
				logger.WithError(err).Error("restart failed, keeping current session")
				continue
			}
			scheduler.Reset(next)

		case input.IntentResize:
			screen.Sync()
			scheduler.Submit(func(*engine.Simulation) {}) // Redraw at the new size

		default:
			scheduler.Submit(func(s *engine.Simulation) {
				input.Apply(intent, s)
			})
		}
	}
}

// guardFrame wraps a frame handler so a panic is passed to onCrash with its stack
func guardFrame(draw func(engine.Snapshot), onCrash func(r any, stack []byte)) func(engine.Snapshot) {
	return func(snap engine.Snapshot) {
		defer func() {
			if r := recover(); r != nil {
				onCrash(r, debug.Stack())
			}
		}()
		draw(snap)
	}
}

// restartConfig derives the seed of the n-th restart
// A fixed seed yields a reproducible sequence of mazes, seed 0 stays time based
func restartConfig(cfg config.Config, n int64) config.Config {
	if cfg.Seed != 0 {
		cfg.Seed += n
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
