package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/maze-chase/maze"
)

func newSteppedScheduler(t *testing.T, s *Simulation) (*ClockScheduler, *MockTimeProvider) {
	t.Helper()
	tp := NewMockTimeProvider(time.Unix(1000, 0))
	cs := NewClockScheduler(s, tp, quietLogger())
	cs.Step(tp.Now()) // arm
	return cs, tp
}

func TestClockScheduler_TickAndRepathCadence(t *testing.T) {
	s := newTestSim(t, "S...E")
	cs, tp := newSteppedScheduler(t, s)

	frames := 0
	cs.SetFrameHandler(func(Snapshot) { frames++ })

	for i := 0; i < 62; i++ {
		cs.Step(tp.Advance(16 * time.Millisecond))
	}
	assert.Equal(t, uint64(62), cs.TickCount())
	assert.Equal(t, uint64(62), s.TickCount())
	assert.Zero(t, cs.RepathCount(), "992ms elapsed, re-path not due yet")
	assert.Equal(t, 62, frames)

	cs.Step(tp.Advance(16 * time.Millisecond))
	assert.Equal(t, uint64(63), cs.TickCount())
	assert.Equal(t, uint64(1), cs.RepathCount())
}

func TestClockScheduler_NothingDueBeforeDeadline(t *testing.T) {
	s := newTestSim(t, "S...E")
	cs, tp := newSteppedScheduler(t, s)

	cs.Step(tp.Advance(10 * time.Millisecond))
	assert.Zero(t, cs.TickCount())

	cs.Step(tp.Advance(6 * time.Millisecond))
	assert.Equal(t, uint64(1), cs.TickCount())
}

func TestClockScheduler_ClampsLongGaps(t *testing.T) {
	s := newTestSim(t, "S...E")
	require.True(t, s.RequestPathTo(maze.Cell{Row: 0, Col: 4}))
	cs, tp := newSteppedScheduler(t, s)

	cs.Step(tp.Advance(time.Second))

	assert.Equal(t, uint64(1), cs.TickCount(), "missed ticks collapse into one")
	speed := s.Config().PlayerSpeed
	assert.InDelta(t, speed*0.1, s.Player().Position.X, 1e-9, "dt clamped to 100ms")

	// Deadline jumped forward instead of replaying the backlog
	cs.Step(tp.Advance(time.Millisecond))
	assert.Equal(t, uint64(1), cs.TickCount())
}

func TestClockScheduler_RepathTargetsPlayer(t *testing.T) {
	s := newTestSim(t, "S...E")
	p := addPursuer(s, maze.Cell{Row: 0, Col: 4})
	cs, tp := newSteppedScheduler(t, s)

	for i := 0; i < 63; i++ {
		cs.Step(tp.Advance(16 * time.Millisecond))
	}
	require.Equal(t, uint64(1), cs.RepathCount())
	path := p.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, maze.Cell{}, path[len(path)-1])
}

func TestClockScheduler_LoopAppliesCommandsAndResets(t *testing.T) {
	s := newTestSim(t, "S...E")
	cs := NewClockScheduler(s, NewMonotonicTimeProvider(), quietLogger())

	frames := make(chan Snapshot, 256)
	cs.SetFrameHandler(func(snap Snapshot) {
		select {
		case frames <- snap:
		default:
		}
	})

	cs.Start()
	defer cs.Stop()

	require.True(t, cs.Submit(func(sim *Simulation) {
		sim.RequestPathTo(maze.Cell{Row: 0, Col: 4})
	}))

	assert.Eventually(t, func() bool {
		return cs.TickCount() > 0
	}, 2*time.Second, 5*time.Millisecond)

	reached := make(chan bool, 1)
	assert.Eventually(t, func() bool {
		cs.Submit(func(sim *Simulation) {
			select {
			case reached <- sim.Player().Cell() == (maze.Cell{Row: 0, Col: 4}):
			default:
			}
		})
		select {
		case ok := <-reached:
			return ok
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)

	next := newTestSim(t, "S.E")
	cs.Reset(next)

	ids := make(chan uuid.UUID, 1)
	assert.Eventually(t, func() bool {
		cs.Submit(func(sim *Simulation) {
			select {
			case ids <- sim.ID:
			default:
			}
		})
		select {
		case id := <-ids:
			return id == next.ID
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	assert.NotEmpty(t, frames)
}

func TestClockScheduler_SubmitAfterStop(t *testing.T) {
	s := newTestSim(t, "S.E")
	cs := NewClockScheduler(s, NewMonotonicTimeProvider(), quietLogger())
	cs.Start()
	cs.Stop()
	cs.Stop()

	assert.False(t, cs.Submit(func(*Simulation) {}))
	cs.Reset(s) // must not block
}

func TestCatchUp(t *testing.T) {
	base := time.Unix(0, 0)
	interval := 10 * time.Millisecond

	next := base.Add(interval)
	assert.Equal(t, next, catchUp(next, base.Add(15*time.Millisecond), interval))
	assert.Equal(t, base.Add(60*time.Millisecond), catchUp(next, base.Add(50*time.Millisecond), interval))
}
