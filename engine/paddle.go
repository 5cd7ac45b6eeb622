package engine

import (
	"image/color"

	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// PaddleConfig describes a paddle at session start
type PaddleConfig struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	UpKey         input.Key
	DownKey       input.Key
}

// Paddle is a player-controlled bat
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	UpKey         input.Key
	DownKey       input.Key
	Color         color.Color

	// Facing is the direction the hitting face points to, derived from table side
	Facing Horizontal
	Side   event.Side

	minY, maxY float64 // Travel limits for the top edge
}

// NewPaddle places a paddle on the table. A paddle left of the table center
// belongs to the left player and faces right
func NewPaddle(cfg PaddleConfig, bounds Bounds) *Paddle {
	p := &Paddle{
		X:       cfg.X,
		Y:       cfg.Y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Speed:   cfg.Speed,
		UpKey:   cfg.UpKey,
		DownKey: cfg.DownKey,
		Color:   render.ColorForeground,
		minY:    bounds.Top,
		maxY:    bounds.Bottom - cfg.Height,
	}

	cx, _ := bounds.Center()
	if p.X+p.Width/2 < cx {
		p.Facing, p.Side = Right, event.SideLeft
	} else {
		p.Facing, p.Side = Left, event.SideRight
	}
	return p
}

// MoveUp shifts the paddle up by its speed unless that would cross the top bound.
// The move is refused, not shortened
func (p *Paddle) MoveUp() bool {
	if p.Y-p.Speed < p.minY {
		return false
	}
	p.Y -= p.Speed
	return true
}

// MoveDown shifts the paddle down by its speed unless the bottom edge would cross the bottom bound
func (p *Paddle) MoveDown() bool {
	if p.Y+p.Speed > p.maxY {
		return false
	}
	p.Y += p.Speed
	return true
}

// Update polls input, up wins when both keys are held
func (p *Paddle) Update(keys input.Reader) {
	switch {
	case keys.Pressed(p.UpKey):
		p.MoveUp()
	case keys.Pressed(p.DownKey):
		p.MoveDown()
	}
}

// Face returns the x coordinate of the hitting face
func (p *Paddle) Face() float64 {
	if p.Facing == Right {
		return p.X + p.Width
	}
	return p.X
}

// CenterY returns the vertical midpoint
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Draw(s render.Surface) {
	s.FillRect(render.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}, p.Color)
}
