package engine

// GameState is the session lifecycle, GameOver is terminal
type GameState uint8

const (
	StateRunning GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "running"
}

// Transition describes the single Running -> GameOver change of a session
type Transition struct {
	From, To GameState
	Tick     uint64 // Movement tick on which the collision was detected
	Pursuers []int  // IDs of every pursuer within the threshold on that tick
}

// StateMachine owns the session GameState
// The only transition is Running -> GameOver; it fires listeners exactly once
type StateMachine struct {
	state       GameState
	transitions int
	listeners   []func(Transition)
}

func (m *StateMachine) State() GameState { return m.state }

// IsOver reports whether the terminal state was reached
func (m *StateMachine) IsOver() bool { return m.state == StateGameOver }

// Transitions returns how many transitions were applied, 0 or 1
func (m *StateMachine) Transitions() int { return m.transitions }

// OnGameOver registers a listener for the terminal transition
func (m *StateMachine) OnGameOver(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}

// EndGame moves to GameOver, idempotent
// Returns false when already over, in which case nothing happens
func (m *StateMachine) EndGame(tick uint64, pursuers []int) bool {
	if m.state == StateGameOver {
		return false
	}
	m.state = StateGameOver
	m.transitions++

	tr := Transition{From: StateRunning, To: StateGameOver, Tick: tick, Pursuers: pursuers}
	for _, fn := range m.listeners {
		fn(tr)
	}
	return true
}
