package core

// Key represents a logical key the simulation reacts to, abstracted from
// physical key codes so terminal and window drivers can share one frame type.
type Key int

const (
	KeyNone    Key = iota
	KeyLeft        // Left arrow, A, H - move paddle left
	KeyRight       // Right arrow, D, L - move paddle right
	KeyConfirm     // Enter - restart after game over
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of keys held down during one simulation step.
type InputFrame struct {
	Pressed map[Key]bool
}

// NewInputFrame creates an input frame with the given keys pressed.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{Pressed: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		f.Set(k)
	}
	return f
}

// Set marks a key as pressed for this frame.
func (f *InputFrame) Set(k Key) {
	if k == KeyNone {
		return
	}
	if f.Pressed == nil {
		f.Pressed = make(map[Key]bool)
	}
	f.Pressed[k] = true
}

// Has reports whether the key is pressed this frame.
// The zero InputFrame has nothing pressed.
func (f InputFrame) Has(k Key) bool {
	return f.Pressed[k]
}

