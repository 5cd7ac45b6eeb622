package engine

import (
	"image/color"

	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/render"
)

// BallConfig describes the ball at session start
type BallConfig struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// Ball moves diagonally at Speed units per tick on both axes
type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	V      Vertical
	H      Horizontal
	Color  color.Color
}

// Outcome reports what a ball step did
type Outcome struct {
	WallBounce bool       // A direction flag changed at a wall
	PaddleHit  event.Side // Owner of the paddle that returned the ball
	Scored     event.Side // Player awarded a point
}

// NewBall creates a ball moving up and right
func NewBall(cfg BallConfig) *Ball {
	return &Ball{
		X:      cfg.X,
		Y:      cfg.Y,
		Radius: cfg.Radius,
		Speed:  cfg.Speed,
		V:      Up,
		H:      Right,
		Color:  render.ColorForeground,
	}
}

// Update advances the ball one tick.
// Order: move, top/bottom reflection, side reflection, scoring, paddle faces
func (b *Ball) Update(bounds Bounds, paddles []*Paddle, score *Score, rules Rules) Outcome {
	var out Outcome

	prevX := b.X
	b.X += float64(b.H) * b.Speed
	b.Y += float64(b.V) * b.Speed

	v, h := b.V, b.H

	// Both checks run, bottom wins if the ball spans the table
	if b.Y-b.Radius <= bounds.Top {
		b.V = Down
	}
	if b.Y+b.Radius >= bounds.Bottom {
		b.V = Up
	}

	if rules.SideWalls {
		if b.X+b.Radius >= bounds.Right {
			b.H = Left
		}
		if b.X-b.Radius <= bounds.Left {
			b.H = Right
		}
	}
	out.WallBounce = b.V != v || b.H != h

	switch {
	case b.X >= bounds.Right:
		score.Add(event.SideLeft)
		out.Scored = event.SideLeft
		b.recenter(bounds, Left, rules)
		prevX = b.X
	case b.X <= bounds.Left:
		score.Add(event.SideRight)
		out.Scored = event.SideRight
		b.recenter(bounds, Right, rules)
		prevX = b.X
	}

	for _, p := range paddles {
		if !physics.WithinOpen(b.Y, p.Y, p.Y+p.Height) {
			continue
		}

		var hit bool
		if p.Facing == Right {
			hit = physics.ReachesFace(rules.Collision, prevX-b.Radius, b.X-b.Radius, p.Face(), true)
		} else {
			hit = physics.ReachesFace(rules.Collision, prevX+b.Radius, b.X+b.Radius, p.Face(), false)
		}
		if !hit {
			continue
		}

		if rules.Collision == physics.CollisionExact {
			b.H = b.H.Reverse()
		} else {
			// A swept hit always sends the ball back toward the open table
			b.H = p.Facing
		}
		out.PaddleHit = p.Side
	}

	return out
}

// recenter moves the ball to the table center; away is the serve direction
// used when the rules reset direction on score
func (b *Ball) recenter(bounds Bounds, away Horizontal, rules Rules) {
	b.X, b.Y = bounds.Center()
	if rules.ResetDirectionOnScore {
		b.V = Up
		b.H = away
	}
}

func (b *Ball) Draw(s render.Surface) {
	s.FillCircle(b.X, b.Y, b.Radius, b.Color)
}
