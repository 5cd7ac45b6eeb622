package render

import (
	"image/color"
	"testing"
)

func TestRecorderCapturesCalls(t *testing.T) {
	rec := NewRecorder()
	rec.Clear(Rect{W: 600, H: 300})
	rec.FillRect(Rect{X: 1, Y: 2, W: 3, H: 4}, color.White)
	rec.FillCircle(5, 6, 7, ColorForeground)

	calls := rec.Calls()
	if len(calls) != 3 {
		t.Fatalf("Expected 3 calls, got %d", len(calls))
	}
	if calls[1].Color != ColorForeground {
		t.Errorf("color.White should normalize to %v, got %v", ColorForeground, calls[1].Color)
	}
	if calls[2].CX != 5 || calls[2].CY != 6 || calls[2].Radius != 7 {
		t.Errorf("Unexpected circle %+v", calls[2])
	}

	// Returned slice is a snapshot
	rec.Reset()
	rec.FillCircle(9, 9, 9, ColorForeground)
	if calls[0].Kind != CallClear {
		t.Error("Reset overwrote a previously returned snapshot")
	}
	if len(rec.Calls()) != 1 {
		t.Errorf("Expected 1 call after reset, got %d", len(rec.Calls()))
	}
}

func TestCellBufferString(t *testing.T) {
	buf := NewCellBuffer(4, 2)
	buf.SetContent(1, 0, 'x', nil, ColorStyle(ColorForeground))
	buf.SetContent(9, 9, 'y', nil, ColorStyle(ColorForeground)) // dropped

	if got := buf.String(); got != " x\n\n" {
		t.Errorf("Unexpected buffer text %q", got)
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder()
	src.Clear(Rect{W: 600, H: 300})
	src.FillRect(Rect{X: 10, Y: 120, W: 20, H: 60}, ColorForeground)
	src.FillCircle(300, 150, 10, ColorForeground)

	dst := NewRecorder()
	src.Replay(dst)

	want, got := src.Calls(), dst.Calls()
	if len(got) != len(want) {
		t.Fatalf("Replayed %d calls, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Call %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
