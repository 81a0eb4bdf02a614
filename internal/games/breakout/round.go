package breakout

import "github.com/vovakirdan/brickfall/internal/core"

// Phase is the round's state machine position.
type Phase int

const (
	PhasePlaying  Phase = iota // Ball in play
	PhaseGameOver              // Ball lost, waiting for Confirm
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Round owns all mutable game state: paddle, ball, surviving blocks and scores.
type Round struct {
	paddle Paddle
	ball   Ball
	blocks []Block

	phase     Phase
	score     int
	highScore int
}

var _ core.Simulation = (*Round)(nil)

// NewRound creates a round ready to play with a fresh grid.
func NewRound() *Round {
	r := &Round{}
	r.place()
	return r
}

// place puts every entity at its starting position and rebuilds the grid.
func (r *Round) place() {
	r.paddle = Paddle{X: (ScreenWidth - PaddleWidth) / 2}
	r.ball = Ball{
		X:  ScreenWidth / 2,
		Y:  ScreenHeight / 2,
		VX: BallSpeed,
		VY: BallSpeed,
	}
	r.blocks = Layout()
	r.score = 0
	r.phase = PhasePlaying
}

// reset records the finished round's score and starts a new one.
func (r *Round) reset() {
	if r.score > r.highScore {
		r.highScore = r.score
	}
	r.place()
}

// Advance moves the round forward by dt seconds.
//
// In GameOver only Confirm is observed and it restarts the round. While
// playing, the order is: paddle, ball, walls, bottom edge, paddle bounce,
// blocks.
func (r *Round) Advance(dt float64, in core.InputFrame) {
	if r.phase == PhaseGameOver {
		if in.Has(core.KeyConfirm) {
			r.reset()
		}
		return
	}

	r.paddle.Move(dt, in)
	r.ball.Move(dt)

	if HitsSideWall(&r.ball) {
		r.ball.BounceX()
	}
	if HitsCeiling(&r.ball) {
		r.ball.BounceY()
	}

	// A ball past the bottom edge is lost even if it still overlaps the
	// paddle horizontally; no collision runs for it.
	if FellOff(&r.ball) {
		r.phase = PhaseGameOver
		return
	}

	if HitsPaddle(&r.ball, &r.paddle) {
		r.ball.BounceY()
	}

	r.collideBlocks()
}

// collideBlocks scores and removes every block the ball touches. Each hit
// flips vertical velocity, so two hits in one frame cancel out.
func (r *Round) collideBlocks() {
	var hit []int
	for i, block := range r.blocks {
		if HitsBlock(&r.ball, block) {
			hit = append(hit, i)
		}
	}
	if len(hit) == 0 {
		return
	}

	for _, i := range hit {
		r.score += r.blocks[i].Points
		r.ball.BounceY()
	}

	survivors := make([]Block, 0, len(r.blocks)-len(hit))
	next := 0
	for i, block := range r.blocks {
		if next < len(hit) && hit[next] == i {
			next++
			continue
		}
		survivors = append(survivors, block)
	}
	r.blocks = survivors
}

// Score returns the points accumulated this round.
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best score of any finished round.
func (r *Round) HighScore() int {
	return r.highScore
}

// GameOver reports whether the ball has been lost.
func (r *Round) GameOver() bool {
	return r.phase == PhaseGameOver
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Ball returns a copy of the ball.
func (r *Round) Ball() Ball {
	return r.ball
}

// Paddle returns a copy of the paddle.
func (r *Round) Paddle() Paddle {
	return r.paddle
}

// Blocks returns a copy of the surviving blocks.
func (r *Round) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// State returns a status summary for drivers.
func (r *Round) State() core.GameState {
	return core.GameState{
		Score:     r.score,
		HighScore: r.highScore,
		GameOver:  r.phase == PhaseGameOver,
	}
}
