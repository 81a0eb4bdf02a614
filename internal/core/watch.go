package core

// Transition is a change in a round's status between two frames.
type Transition int

const (
	TransitionNone  Transition = iota
	TransitionOver             // Round ended
	TransitionReset            // Round restarted after ending
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionOver:
		return "over"
	case TransitionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Watcher detects round transitions by polling a Reporter after each frame.
// The zero value assumes a round in progress.
type Watcher struct {
	gameOver bool
}

// Observe returns the transition since the previous call along with the
// current state. Simulations that are not Reporters never transition.
func (w *Watcher) Observe(sim Simulation) (Transition, GameState) {
	reporter, ok := sim.(Reporter)
	if !ok {
		return TransitionNone, GameState{}
	}

	state := reporter.State()
	t := TransitionNone
	switch {
	case state.GameOver && !w.gameOver:
		t = TransitionOver
	case !state.GameOver && w.gameOver:
		t = TransitionReset
	}
	w.gameOver = state.GameOver
	return t, state
}
