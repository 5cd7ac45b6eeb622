package render

import "image/color"

// CallKind identifies a recorded draw call
type CallKind uint8

const (
	CallClear CallKind = iota
	CallRect
	CallCircle
)

// DrawCall is one recorded surface operation
type DrawCall struct {
	Kind   CallKind
	Rect   Rect    // Clear, FillRect
	CX, CY float64 // FillCircle
	Radius float64 // FillCircle
	Color  color.RGBA
}

// Recorder is a Surface that records calls instead of drawing
type Recorder struct {
	calls []DrawCall
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear(rect Rect) {
	r.calls = append(r.calls, DrawCall{Kind: CallClear, Rect: rect})
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.calls = append(r.calls, DrawCall{Kind: CallRect, Rect: rect, Color: toRGBA(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.calls = append(r.calls, DrawCall{Kind: CallCircle, CX: cx, CY: cy, Radius: radius, Color: toRGBA(c)})
}

// Calls returns a copy of the recorded calls in order
func (r *Recorder) Calls() []DrawCall {
	return append([]DrawCall(nil), r.calls...)
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Replay issues the recorded calls on another surface in order
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.calls {
		switch c.Kind {
		case CallClear:
			s.Clear(c.Rect)
		case CallRect:
			s.FillRect(c.Rect, c.Color)
		case CallCircle:
			s.FillCircle(c.CX, c.CY, c.Radius, c.Color)
		}
	}
}
