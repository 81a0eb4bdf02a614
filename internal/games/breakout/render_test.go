package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brickfall/internal/core"
)

type drawOp struct {
	kind  string
	rect  core.Rect
	color core.Color
	width float64
	text  string
	x, y  float64
}

// recorder is a core.Surface that logs every call. failAt makes the
// n-th call (1-based) return errSurface.
type recorder struct {
	ops    []drawOp
	failAt int
}

var errSurface = errors.New("surface lost")

func (r *recorder) record(op drawOp) error {
	r.ops = append(r.ops, op)
	if r.failAt > 0 && len(r.ops) == r.failAt {
		return errSurface
	}
	return nil
}

func (r *recorder) Clear(c core.Color) error {
	return r.record(drawOp{kind: "clear", color: c})
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) error {
	return r.record(drawOp{kind: "fill", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect core.Rect, c core.Color, width float64) error {
	return r.record(drawOp{kind: "stroke", rect: rect, color: c, width: width})
}

func (r *recorder) DrawText(text string, x, y float64) error {
	return r.record(drawOp{kind: "text", text: text, x: x, y: y})
}

func (r *recorder) MeasureText(text string) (float64, float64) {
	return float64(len(text)) * 10, 20
}

func (r *recorder) Present() error {
	return r.record(drawOp{kind: "present"})
}

func TestRenderOrder(t *testing.T) {
	round := NewRound()
	rec := &recorder{}

	if err := round.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// clear, paddle, ball, fill+stroke per block, two HUD lines, present
	if want := 3 + 2*60 + 2 + 1; len(rec.ops) != want {
		t.Fatalf("got %d draw calls, want %d", len(rec.ops), want)
	}

	if op := rec.ops[0]; op.kind != "clear" || op.color != core.ColorBlack {
		t.Errorf("first op = %+v, want black clear", op)
	}
	if op := rec.ops[1]; op.kind != "fill" || op.rect != core.NewRect(350, 580, 100, 20) || op.color != core.ColorWhite {
		t.Errorf("paddle op = %+v", op)
	}
	if op := rec.ops[2]; op.kind != "fill" || op.rect != core.NewRect(400, 300, 20, 20) || op.color != core.ColorWhite {
		t.Errorf("ball op = %+v", op)
	}
	if op := rec.ops[len(rec.ops)-1]; op.kind != "present" {
		t.Errorf("last op = %+v, want present", op)
	}
}

func TestRenderBlocks(t *testing.T) {
	round := NewRound()
	rec := &recorder{}
	if err := round.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	blocks := round.Blocks()
	for i, b := range blocks {
		fill := rec.ops[3+2*i]
		stroke := rec.ops[4+2*i]

		if fill.kind != "fill" || fill.rect != b.Bounds() || fill.color != b.Color {
			t.Errorf("block %d fill = %+v", i, fill)
		}
		if stroke.kind != "stroke" || stroke.rect != b.Bounds() {
			t.Errorf("block %d stroke = %+v", i, stroke)
		}
		if !stroke.color.Transparent() || stroke.width != 2 {
			t.Errorf("block %d border = %s/%v, want transparent/2", i, stroke.color, stroke.width)
		}
	}
}

func TestRenderHUD(t *testing.T) {
	round := NewRound()
	round.score = 25
	round.highScore = 140
	rec := &recorder{}
	if err := round.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var texts []drawOp
	for _, op := range rec.ops {
		if op.kind == "text" {
			texts = append(texts, op)
		}
	}
	if len(texts) != 2 {
		t.Fatalf("got %d text ops, want 2", len(texts))
	}

	tests := []struct {
		text string
		x, y float64
	}{
		{"Score: 25", (800 - 90) / 2, 10},
		{"High Score: 140", (800 - 150) / 2, 30},
	}
	for i, tt := range tests {
		if texts[i].text != tt.text || texts[i].x != tt.x || texts[i].y != tt.y {
			t.Errorf("text %d = %q at (%v, %v), want %q at (%v, %v)",
				i, texts[i].text, texts[i].x, texts[i].y, tt.text, tt.x, tt.y)
		}
	}
}

func TestRenderGameOver(t *testing.T) {
	round := NewRound()
	round.phase = PhaseGameOver
	rec := &recorder{}
	if err := round.Render(rec); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if want := 3 + 2*60 + 3 + 1; len(rec.ops) != want {
		t.Fatalf("got %d draw calls, want %d", len(rec.ops), want)
	}

	op := rec.ops[len(rec.ops)-2]
	if op.kind != "text" || op.text != GameOverMessage {
		t.Fatalf("op before present = %+v, want game over message", op)
	}
	w := float64(len(GameOverMessage)) * 10
	if op.x != (800-w)/2 || op.y != (600-20)/2 {
		t.Errorf("game over message at (%v, %v), want centered", op.x, op.y)
	}
}

func TestRenderStopsOnError(t *testing.T) {
	tests := []struct {
		name   string
		failAt int
	}{
		{"clear", 1},
		{"paddle", 2},
		{"block stroke", 5},
		{"present", 3 + 2*60 + 2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := NewRound()
			rec := &recorder{failAt: tt.failAt}

			err := round.Render(rec)
			if !errors.Is(err, errSurface) {
				t.Fatalf("Render() error = %v, want %v", err, errSurface)
			}
			if len(rec.ops) != tt.failAt {
				t.Errorf("drawing continued after error: %d ops, failed at %d", len(rec.ops), tt.failAt)
			}
		})
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	round := NewRound()
	before := round.Snapshot()
	_ = round.Render(&recorder{})
	after := round.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Render() changed round state")
	}
}
