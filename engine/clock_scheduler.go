package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/maze-chase/parameter"
)

// ClockScheduler drives a Simulation from a single goroutine
// A high-frequency movement tick and an independent re-path interval share one loop with the
// command queue, so entry points never interleave and path replacement is always observed whole
type ClockScheduler struct {
	sim  *Simulation
	time TimeProvider
	log  logrus.FieldLogger

	// Tick configuration
	tickInterval   time.Duration
	repathInterval time.Duration
	maxTickDelta   time.Duration

	lastTickTime       time.Time // Last tick time, base of the measured dt
	nextTickDeadline   time.Time // Next tick deadline for drift correction
	nextRepathDeadline time.Time

	// Counters for debugging and tests
	tickCount   atomic.Uint64
	repathCount atomic.Uint64

	onFrame func(Snapshot)

	// Control channels
	commands  chan func(*Simulation)
	resetChan chan *Simulation
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
}

// NewClockScheduler creates a scheduler using the simulation's configured intervals
func NewClockScheduler(sim *Simulation, tp TimeProvider, log logrus.FieldLogger) *ClockScheduler {
	cfg := sim.Config()
	return &ClockScheduler{
		sim:            sim,
		time:           tp,
		log:            resolveLogger(log),
		tickInterval:   cfg.TickInterval,
		repathInterval: cfg.RepathInterval,
		maxTickDelta:   parameter.MaxTickDelta,
		commands:       make(chan func(*Simulation), parameter.CommandQueueSize),
		resetChan:      make(chan *Simulation, 1),
		stopChan:       make(chan struct{}),
	}
}

// SetFrameHandler registers the per-tick frame callback, must be called before Start()
// The callback runs on the scheduler goroutine after each tick, command and reset
func (cs *ClockScheduler) SetFrameHandler(fn func(Snapshot)) {
	cs.onFrame = fn
}

func (cs *ClockScheduler) TickCount() uint64   { return cs.tickCount.Load() }
func (cs *ClockScheduler) RepathCount() uint64 { return cs.repathCount.Load() }

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
		}
	})
}

// Submit queues cmd to run on the scheduler goroutine
// Returns false if the queue is full or the scheduler stopped
func (cs *ClockScheduler) Submit(cmd func(*Simulation)) bool {
	select {
	case <-cs.stopChan:
		return false
	default:
	}
	select {
	case cs.commands <- cmd:
		return true
	default:
		cs.log.Warn("scheduler command queue full, dropping input")
		return false
	}
}

// Reset swaps in a new session, timers restart from the moment it is applied
func (cs *ClockScheduler) Reset(sim *Simulation) {
	select {
	case cs.resetChan <- sim:
	case <-cs.stopChan:
	}
}

// Step runs whatever is due at now: at most one movement tick, then at most one re-path
// Missed deadlines collapse into one tick with a measured dt clamped to maxTickDelta
func (cs *ClockScheduler) Step(now time.Time) {
	if cs.nextTickDeadline.IsZero() {
		cs.arm(now)
		return
	}

	ticked := false
	if !now.Before(cs.nextTickDeadline) {
		dt := now.Sub(cs.lastTickTime)
		if dt > cs.maxTickDelta {
			dt = cs.maxTickDelta
		}
		cs.sim.Tick(dt)

		cs.lastTickTime = now
		cs.nextTickDeadline = catchUp(cs.nextTickDeadline.Add(cs.tickInterval), now, cs.tickInterval)
		cs.tickCount.Add(1)
		ticked = true
	}

	if !now.Before(cs.nextRepathDeadline) {
		cs.sim.RecomputePursuerPaths()
		cs.nextRepathDeadline = catchUp(cs.nextRepathDeadline.Add(cs.repathInterval), now, cs.repathInterval)
		cs.repathCount.Add(1)
	}

	if ticked {
		cs.frame()
	}
}

// arm restarts all deadlines from now
func (cs *ClockScheduler) arm(now time.Time) {
	cs.lastTickTime = now
	cs.nextTickDeadline = now.Add(cs.tickInterval)
	cs.nextRepathDeadline = now.Add(cs.repathInterval)
}

// nextDeadline returns the earliest pending deadline
func (cs *ClockScheduler) nextDeadline() time.Time {
	if cs.nextRepathDeadline.Before(cs.nextTickDeadline) {
		return cs.nextRepathDeadline
	}
	return cs.nextTickDeadline
}

func (cs *ClockScheduler) frame() {
	if cs.onFrame != nil {
		cs.onFrame(cs.sim.Snapshot())
	}
}

// schedulerLoop sleeps until the next deadline, waking early for commands, resets and stop
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.arm(cs.time.Now())
	cs.frame()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		cs.Step(cs.time.Now())

		sleepDuration := cs.nextDeadline().Sub(cs.time.Now())
		if sleepDuration < 0 {
			sleepDuration = 0
		}
		timer.Reset(sleepDuration)

		select {
		case <-cs.stopChan:
			return

		case cmd := <-cs.commands:
			stopTimer(timer)
			cmd(cs.sim)
			cs.frame()

		case sim := <-cs.resetChan:
			stopTimer(timer)
			cs.sim = sim
			cs.arm(cs.time.Now())
			cs.log.WithField("session", sim.ID.String()).Info("session reset")
			cs.frame()

		case <-timer.C:
		}
	}
}

// --- Helpers ---

// catchUp returns next unless it fell more than two intervals behind now
func catchUp(next, now time.Time, interval time.Duration) time.Time {
	if now.Sub(next) > interval*2 {
		return now.Add(interval)
	}
	return next
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
