package engine

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

var testBounds = Bounds{Top: 0, Bottom: 300, Left: 0, Right: 600}

func newTestPaddle(x, y, speed float64) *Paddle {
	return NewPaddle(PaddleConfig{
		X: x, Y: y, Width: 20, Height: 60, Speed: speed,
		UpKey: input.KeyW, DownKey: input.KeyS,
	}, testBounds)
}

func TestPaddleMoveUpNeverCrossesTop(t *testing.T) {
	for _, start := range []float64{0, 1, 3, 7, 50, 119, 240} {
		p := newTestPaddle(10, start, 7)
		for i := 0; i < 100; i++ {
			p.MoveUp()
			if p.Y < testBounds.Top {
				t.Fatalf("start %v: y went to %v after %d moves", start, p.Y, i+1)
			}
		}
		// Refusal leaves the paddle less than one step from the bound
		if p.Y-testBounds.Top >= p.Speed {
			t.Errorf("start %v: paddle stopped at %v, more than a step from top", start, p.Y)
		}
	}
}

func TestPaddleMoveDownNeverCrossesBottom(t *testing.T) {
	maxY := testBounds.Bottom - 60
	for _, start := range []float64{0, 13, 120, 235, 239, 240} {
		p := newTestPaddle(10, start, 7)
		for i := 0; i < 100; i++ {
			p.MoveDown()
			if p.Y > maxY {
				t.Fatalf("start %v: y went to %v after %d moves", start, p.Y, i+1)
			}
		}
		if maxY-p.Y >= p.Speed {
			t.Errorf("start %v: paddle stopped at %v, more than a step from bottom", start, p.Y)
		}
	}
}

func TestPaddleMoveUpRefusedBelowTopBound(t *testing.T) {
	bounds := Bounds{Top: 5, Bottom: 300, Left: 0, Right: 600}
	p := NewPaddle(PaddleConfig{X: 10, Y: 0, Width: 20, Height: 60, Speed: 1}, bounds)

	if p.MoveUp() {
		t.Error("MoveUp should be refused")
	}
	if p.Y != 0 {
		t.Errorf("Expected y to stay 0, got %v", p.Y)
	}
}

func TestPaddleMoveIsRefusedNotSaturated(t *testing.T) {
	p := newTestPaddle(10, 3, 4)
	if p.MoveUp() {
		t.Fatal("Move from 3 by 4 would cross 0 and must be refused")
	}
	if p.Y != 3 {
		t.Errorf("Refused move must not clamp to the bound, got %v", p.Y)
	}
}

func TestPaddleUpdate(t *testing.T) {
	tests := []struct {
		name    string
		pressed []input.Key
		wantY   float64
	}{
		{"no keys", nil, 100},
		{"up", []input.Key{input.KeyW}, 96},
		{"down", []input.Key{input.KeyS}, 104},
		{"up wins over down", []input.Key{input.KeyS, input.KeyW}, 96},
		{"other player keys ignored", []input.Key{input.KeyUp}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle(10, 100, 4)
			keys := input.NewKeySet()
			for _, k := range tt.pressed {
				keys.Press(k)
			}
			p.Update(keys)
			if p.Y != tt.wantY {
				t.Errorf("Expected y %v, got %v", tt.wantY, p.Y)
			}
		})
	}
}

func TestPaddleSideAndFace(t *testing.T) {
	left := newTestPaddle(10, 120, 1)
	right := newTestPaddle(570, 120, 1)

	if left.Side != event.SideLeft || left.Facing != Right {
		t.Errorf("Left paddle: side %v facing %v", left.Side, left.Facing)
	}
	if left.Face() != 30 {
		t.Errorf("Left face expected 30, got %v", left.Face())
	}
	if right.Side != event.SideRight || right.Facing != Left {
		t.Errorf("Right paddle: side %v facing %v", right.Side, right.Facing)
	}
	if right.Face() != 570 {
		t.Errorf("Right face expected 570, got %v", right.Face())
	}
}

func TestPaddleDrawIsIdempotent(t *testing.T) {
	p := newTestPaddle(10, 120, 1)
	rec := render.NewRecorder()

	p.Draw(rec)
	first := rec.Calls()
	rec.Reset()
	p.Draw(rec)
	p.Draw(rec)
	calls := rec.Calls()

	if len(first) != 1 || first[0].Kind != render.CallRect {
		t.Fatalf("Expected one rect call, got %+v", first)
	}
	want := render.Rect{X: 10, Y: 120, W: 20, H: 60}
	if first[0].Rect != want {
		t.Errorf("Expected rect %+v, got %+v", want, first[0].Rect)
	}
	for i := range calls {
		if !reflect.DeepEqual(calls[i], first[0]) {
			t.Errorf("Draw %d differs: %+v vs %+v", i, calls[i], first[0])
		}
	}
	if p.Y != 120 {
		t.Error("Draw mutated the paddle")
	}
}
