package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	blockRune = '█'
	hudRows   = 1
)

// TerminalSurface maps world coordinates onto the character grid below a one-row HUD.
// The mapping is recomputed from the screen size on every call so resizes need no notification
type TerminalSurface struct {
	screen         CellScreen
	worldW, worldH float64
	bgStyle        tcell.Style
}

// NewTerminalSurface creates a surface scaling a worldW x worldH table to the screen
func NewTerminalSurface(screen CellScreen, worldW, worldH float64) *TerminalSurface {
	return &TerminalSurface{
		screen:  screen,
		worldW:  worldW,
		worldH:  worldH,
		bgStyle: tcell.StyleDefault.Background(RgbBackground),
	}
}

// viewport returns the play area size in cells and the world-to-cell scale
func (ts *TerminalSurface) viewport() (cols, rows int, sx, sy float64) {
	w, h := ts.screen.Size()
	cols, rows = w, h-hudRows
	if cols <= 0 || rows <= 0 || ts.worldW <= 0 || ts.worldH <= 0 {
		return 0, 0, 0, 0
	}
	return cols, rows, float64(cols) / ts.worldW, float64(rows) / ts.worldH
}

// cellSpan converts a world interval to an inclusive cell range, at least one cell wide
func cellSpan(lo, hi, scale float64, limit int) (int, int) {
	c0 := int(math.Floor(lo * scale))
	c1 := int(math.Ceil(hi*scale)) - 1
	if c1 < c0 {
		c1 = c0
	}
	return max(c0, 0), min(c1, limit-1)
}

func (ts *TerminalSurface) fill(r Rect, ch rune, style tcell.Style) {
	cols, rows, sx, sy := ts.viewport()
	if cols == 0 {
		return
	}
	x0, x1 := cellSpan(r.X, r.X+r.W, sx, cols)
	y0, y1 := cellSpan(r.Y, r.Y+r.H, sy, rows)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ts.screen.SetContent(x, y+hudRows, ch, nil, style)
		}
	}
}

func (ts *TerminalSurface) Clear(r Rect) {
	ts.fill(r, ' ', ts.bgStyle)
}

func (ts *TerminalSurface) FillRect(r Rect, c color.Color) {
	ts.fill(r, blockRune, ColorStyle(c))
}

// FillCircle fills every cell whose center lies inside the circle.
// A circle smaller than a cell still marks the cell containing its center
func (ts *TerminalSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	cols, rows, sx, sy := ts.viewport()
	if cols == 0 {
		return
	}
	style := ColorStyle(c)

	x0, x1 := cellSpan(cx-radius, cx+radius, sx, cols)
	y0, y1 := cellSpan(cy-radius, cy+radius, sy, rows)
	filled := false
	for y := y0; y <= y1; y++ {
		wy := (float64(y) + 0.5) / sy
		for x := x0; x <= x1; x++ {
			wx := (float64(x) + 0.5) / sx
			if math.Hypot(wx-cx, wy-cy) <= radius {
				ts.screen.SetContent(x, y+hudRows, blockRune, nil, style)
				filled = true
			}
		}
	}

	if !filled {
		x, y := int(math.Floor(cx*sx)), int(math.Floor(cy*sy))
		if x >= 0 && x < cols && y >= 0 && y < rows {
			ts.screen.SetContent(x, y+hudRows, blockRune, nil, style)
		}
	}
}

// DrawHUD writes the score line centered on the top row and an optional status on the right
func (ts *TerminalSurface) DrawHUD(left, right int, status string) {
	w, h := ts.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	textStyle := ts.bgStyle.Foreground(RgbHUDText)
	for x := 0; x < w; x++ {
		ts.screen.SetContent(x, 0, ' ', nil, textStyle)
	}

	score := fmt.Sprintf("%d : %d", left, right)
	ts.drawText((w-len(score))/2, score, textStyle)

	if status != "" {
		ts.drawText(w-len(status)-1, status, textStyle.Foreground(RgbHUDAccent).Bold(true))
	}
}

func (ts *TerminalSurface) drawText(x int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= 0 {
			ts.screen.SetContent(x+i, 0, r, nil, style)
		}
	}
}
