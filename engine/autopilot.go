package engine

import "github.com/lixenwraith/pong/input"

// Autopilot drives a paddle by pressing its keys, so paddle movement still goes
// through the regular input path and the clamp rules
type Autopilot struct {
	paddle   *Paddle
	deadZone float64
}

func NewAutopilot(p *Paddle, deadZone float64) *Autopilot {
	return &Autopilot{paddle: p, deadZone: deadZone}
}

// Steer releases the paddle keys and presses the one pointing at the ball
func (a *Autopilot) Steer(keys *input.KeySet, ball *Ball) {
	p := a.paddle
	keys.Release(p.UpKey)
	keys.Release(p.DownKey)

	center := p.CenterY()
	switch {
	case ball.Y < center-a.deadZone:
		keys.Press(p.UpKey)
	case ball.Y > center+a.deadZone:
		keys.Press(p.DownKey)
	}
}
