package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Palette shared by every surface
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255} // Paddles and ball
)

// Terminal styles
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbHUDText    = tcell.NewRGBColor(220, 220, 220)
	RgbHUDAccent  = tcell.NewRGBColor(255, 165, 0) // Orange for pause/winner banner
)

// TerminalColor converts an image color to a tcell RGB color, alpha is ignored
func TerminalColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// ColorStyle returns a foreground style over the table background
func ColorStyle(c color.Color) tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(TerminalColor(c))
}
