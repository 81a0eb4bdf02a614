package breakout

import "math"

// Snapshot contains the complete round state by value, for tests, debug
// logging and anything else that must not hold a reference into the round.
type Snapshot struct {
	Phase     string
	Score     int
	HighScore int
	PaddleX   float64
	Ball      Ball
	Blocks    []Block
}

// Snapshot returns the current round state as a Snapshot.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Phase:     r.phase.String(),
		Score:     r.score,
		HighScore: r.highScore,
		PaddleX:   r.paddle.X,
		Ball:      r.ball,
		Blocks:    r.Blocks(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)
	h = h*31 + math.Float64bits(snap.Ball.VX)
	h = h*31 + math.Float64bits(snap.Ball.VY)
	h = h*31 + uint64(len(snap.Blocks))

	for _, b := range snap.Blocks {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.W)
		h = h*31 + math.Float64bits(b.H)
		h = h*31 + uint64(b.Color)
		h = h*31 + uint64(b.Points) //#nosec G115 -- hash computation
	}

	return h
}
