package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Glyphs used to paint shapes into cells.
const (
	FillGlyph = '█'
)

// TerminalSurface projects world-space drawing onto a character grid.
// The whole world rectangle is scaled to fit the screen, so one cell covers
// worldW/cols by worldH/rows units.
type TerminalSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

var _ core.Surface = (*TerminalSurface)(nil)

// NewTerminalSurface creates a surface drawing into screen. worldW and
// worldH are the extent of the coordinate space callers draw in.
func NewTerminalSurface(screen *core.Screen, worldW, worldH float64) *TerminalSurface {
	return &TerminalSurface{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying cell buffer.
func (s *TerminalSurface) Screen() *core.Screen {
	return s.screen
}

// col converts a world x coordinate to a column.
func (s *TerminalSurface) col(x float64) int {
	return int(math.Floor(x * float64(s.screen.Width()) / s.worldW))
}

// row converts a world y coordinate to a row.
func (s *TerminalSurface) row(y float64) int {
	return int(math.Floor(y * float64(s.screen.Height()) / s.worldH))
}

// cells returns the cell rectangle covered by r. Anything with a positive
// extent covers at least one cell.
func (s *TerminalSurface) cells(r core.Rect) (x, y, w, h int) {
	x, y = s.col(r.X), s.row(r.Y)
	w = max(s.col(r.Right())-x, 1)
	h = max(s.row(r.Bottom())-y, 1)
	return x, y, w, h
}

// Clear blanks the screen. The terminal background stands in for any color.
func (s *TerminalSurface) Clear(core.Color) error {
	s.screen.Clear()
	return nil
}

// FillRect paints the cells under r.
func (s *TerminalSurface) FillRect(r core.Rect, c core.Color) error {
	if c.Transparent() || r.W <= 0 || r.H <= 0 {
		return nil
	}
	x, y, w, h := s.cells(r)
	s.screen.DrawRect(x, y, w, h, FillGlyph, c)
	return nil
}

// StrokeRect outlines the cells under r. Stroke width has no meaning at
// cell resolution and is ignored.
func (s *TerminalSurface) StrokeRect(r core.Rect, c core.Color, _ float64) error {
	if c.Transparent() || r.W <= 0 || r.H <= 0 {
		return nil
	}
	x, y, w, h := s.cells(r)
	s.screen.DrawBox(x, y, w, h, c)
	return nil
}

// DrawText writes text in white starting at the cell containing (x, y).
func (s *TerminalSurface) DrawText(text string, x, y float64) error {
	s.screen.DrawText(s.col(x), s.row(y), text, core.ColorWhite)
	return nil
}

// MeasureText returns the extent of text in world units: one cell per rune.
func (s *TerminalSurface) MeasureText(text string) (float64, float64) {
	if s.screen.Width() == 0 || s.screen.Height() == 0 {
		return 0, 0
	}
	cellW := s.worldW / float64(s.screen.Width())
	cellH := s.worldH / float64(s.screen.Height())
	return float64(utf8.RuneCountInString(text)) * cellW, cellH
}

// Present is a no-op; the Bubble Tea view reads the screen after rendering.
func (s *TerminalSurface) Present() error {
	return nil
}
