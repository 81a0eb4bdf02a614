package core

// Surface is the set of drawing primitives a frame driver exposes to the
// simulation. Coordinates are world units; the surface owns any projection
// onto pixels or terminal cells.
type Surface interface {
	// Clear fills the whole frame with the given color.
	Clear(c Color) error

	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color) error

	// StrokeRect draws a rectangle outline of the given stroke width.
	StrokeRect(r Rect, c Color, width float64) error

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y float64) error

	// MeasureText returns the width and height the text would occupy.
	MeasureText(text string) (w, h float64)

	// Present finishes the frame.
	Present() error
}

// Simulation is implemented by anything a frame driver can run: it is
// advanced once per frame and then rendered.
type Simulation interface {
	// Advance moves the simulation forward by dt seconds given the keys held
	// during this frame.
	Advance(dt float64, in InputFrame)

	// Render translates the current state into draw calls on dst.
	// Surface errors are returned unchanged.
	Render(dst Surface) error
}

// GameState is a read-only summary drivers use for logging and status lines.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
}

// Reporter is optionally implemented by a Simulation to expose its status.
type Reporter interface {
	State() GameState
}
