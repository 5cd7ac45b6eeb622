package engine

import "github.com/lixenwraith/pong/render"

// Bounds are the four scalar limits confining ball and paddles
type Bounds struct {
	Top, Bottom, Left, Right float64
}

// Center returns the midpoint of the bounds
func (b Bounds) Center() (x, y float64) {
	return (b.Left + b.Right) / 2, (b.Top + b.Bottom) / 2
}

// Table is the play field, origin at the top-left corner
type Table struct {
	Width, Height float64
}

// Bounds returns the table limits
func (t Table) Bounds() Bounds {
	return Bounds{Top: 0, Bottom: t.Height, Left: 0, Right: t.Width}
}

// Center returns the serve position
func (t Table) Center() (x, y float64) {
	return t.Width / 2, t.Height / 2
}

// Rect returns the full table area
func (t Table) Rect() render.Rect {
	return render.Rect{W: t.Width, H: t.Height}
}
