package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/brickfall/internal/core"
)

// ErrNoTarget is returned when drawing before a frame target is set.
var ErrNoTarget = errors.New("window: no render target")

// Surface draws onto an ebiten image in world units, which Layout maps
// one to one onto logical pixels.
type Surface struct {
	dst       *ebiten.Image
	face      font.Face
	textColor color.Color
}

var _ core.Surface = (*Surface)(nil)

// NewSurface creates a surface rendering text with face.
func NewSurface(face font.Face) *Surface {
	return &Surface{
		face:      face,
		textColor: color.White,
	}
}

// Target sets the image the next frame is drawn onto.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Clear fills the target with c.
func (s *Surface) Clear(c core.Color) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	s.dst.Fill(c.RGBA())
	return nil
}

// FillRect draws a filled rectangle.
func (s *Surface) FillRect(r core.Rect, c core.Color) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	if c.Transparent() {
		return nil
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
	return nil
}

// StrokeRect draws a rectangle outline.
func (s *Surface) StrokeRect(r core.Rect, c core.Color, width float64) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	if c.Transparent() {
		return nil
	}
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c.RGBA(), false)
	return nil
}

// DrawText draws text with its top-left corner at (x, y).
func (s *Surface) DrawText(t string, x, y float64) error {
	if s.dst == nil {
		return ErrNoTarget
	}
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.dst, t, s.face, int(x), int(y)+ascent, s.textColor)
	return nil
}

// MeasureText returns the advance width and line height of t.
func (s *Surface) MeasureText(t string) (float64, float64) {
	_, advance := font.BoundString(s.face, t)
	return float64(advance.Ceil()), float64(s.face.Metrics().Height.Ceil())
}

// Present is a no-op; ebiten shows the image once Draw returns.
func (s *Surface) Present() error {
	if s.dst == nil {
		return ErrNoTarget
	}
	return nil
}
