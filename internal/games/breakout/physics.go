package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// Ball is the single moving entity. X and Y are the top-left corner.
type Ball struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity in units per second
}

// Bounds returns the ball's rectangle.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, BallSize, BallSize)
}

// Move integrates position over dt seconds.
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player-controlled bar resting on the bottom edge.
type Paddle struct {
	X float64 // Left edge
}

// MaxX is the largest in-bounds left edge.
const MaxX = ScreenWidth - PaddleWidth

// Y returns the paddle's fixed top edge.
func (p *Paddle) Y() float64 {
	return ScreenHeight - PaddleHeight
}

// Bounds returns the paddle's rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y(), PaddleWidth, PaddleHeight)
}

// Move shifts the paddle for one frame. Each direction is guarded by the
// position before the move, so a long frame may carry it past the edge.
func (p *Paddle) Move(dt float64, in core.InputFrame) {
	if in.Has(core.KeyLeft) && p.X > 0 {
		p.X -= PaddleSpeed * dt
	}
	if in.Has(core.KeyRight) && p.X < MaxX {
		p.X += PaddleSpeed * dt
	}
}

// HitsSideWall reports whether the ball reached the left or right edge.
func HitsSideWall(ball *Ball) bool {
	return ball.X <= 0 || ball.X >= ScreenWidth-BallSize
}

// HitsCeiling reports whether the ball reached the top edge.
func HitsCeiling(ball *Ball) bool {
	return ball.Y <= 0
}

// HitsPaddle reports whether the ball's bottom edge is in the paddle band
// and the ball overlaps the paddle horizontally. Direction is not checked.
func HitsPaddle(ball *Ball, paddle *Paddle) bool {
	return ball.Y >= ScreenHeight-PaddleHeight-BallSize &&
		ball.X+BallSize >= paddle.X &&
		ball.X <= paddle.X+PaddleWidth
}

// FellOff reports whether the ball left the screen past the paddle.
func FellOff(ball *Ball) bool {
	return ball.Y >= ScreenHeight
}

// HitsBlock reports whether the ball touches the block, edges included.
func HitsBlock(ball *Ball, block Block) bool {
	return ball.Bounds().Touches(block.Bounds())
}
