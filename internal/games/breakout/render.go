package breakout

import (
	"fmt"

	"github.com/vovakirdan/brickfall/internal/core"
)

// HUD text and placement.
const (
	scoreY          = 10.0
	highScoreY      = 30.0
	GameOverMessage = "Game Over! Press Enter to restart."
)

// Colors used for everything that is not a block.
const (
	BackgroundColor = core.ColorBlack
	PaddleColor     = core.ColorWhite
	BallColor       = core.ColorWhite
	BorderColor     = core.ColorTransparent
)

// Render draws the round onto dst. The first surface error aborts the frame
// and is returned as is.
func (r *Round) Render(dst core.Surface) error {
	if err := dst.Clear(BackgroundColor); err != nil {
		return err
	}

	if err := dst.FillRect(r.paddle.Bounds(), PaddleColor); err != nil {
		return err
	}
	if err := dst.FillRect(r.ball.Bounds(), BallColor); err != nil {
		return err
	}

	if err := r.renderBlocks(dst); err != nil {
		return err
	}
	if err := r.renderHUD(dst); err != nil {
		return err
	}

	if r.phase == PhaseGameOver {
		w, h := dst.MeasureText(GameOverMessage)
		if err := dst.DrawText(GameOverMessage, (ScreenWidth-w)/2, (ScreenHeight-h)/2); err != nil {
			return err
		}
	}

	return dst.Present()
}

// renderBlocks draws every surviving block with its (invisible) border.
func (r *Round) renderBlocks(dst core.Surface) error {
	for _, block := range r.blocks {
		bounds := block.Bounds()
		if err := dst.FillRect(bounds, block.Color); err != nil {
			return err
		}
		if err := dst.StrokeRect(bounds, BorderColor, strokeWidth); err != nil {
			return err
		}
	}
	return nil
}

// renderHUD draws the score and high score, each centered horizontally.
func (r *Round) renderHUD(dst core.Surface) error {
	lines := []struct {
		text string
		y    float64
	}{
		{fmt.Sprintf("Score: %d", r.score), scoreY},
		{fmt.Sprintf("High Score: %d", r.highScore), highScoreY},
	}

	for _, line := range lines {
		w, _ := dst.MeasureText(line.text)
		if err := dst.DrawText(line.text, (ScreenWidth-w)/2, line.y); err != nil {
			return err
		}
	}
	return nil
}
