package render

import "image/color"

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y, W, H float64
}

// Surface is the drawing target of the frame driver.
// Coordinates are world units; the surface owns the mapping to pixels or cells
type Surface interface {
	// Clear resets the rectangle to the background
	Clear(r Rect)
	// FillRect paints a filled rectangle
	FillRect(r Rect, c color.Color)
	// FillCircle paints a filled circle centered at (cx, cy)
	FillCircle(cx, cy, radius float64, c color.Color)
}
