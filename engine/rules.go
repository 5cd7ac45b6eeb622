package engine

import "github.com/lixenwraith/pong/physics"

// Rules tune the ball step
type Rules struct {
	// Collision selects the paddle face test. CollisionExact reproduces the
	// reference equality test including tunneling at speeds that skip the face
	Collision physics.CollisionMode

	// SideWalls reflects the ball off the left and right edges before the score check.
	// With side walls on, a point is only scored when the ball center reaches a side bound
	SideWalls bool

	// ResetDirectionOnScore re-serves the ball up and away from the side it scored on.
	// Off keeps the direction flags across recentering
	ResetDirectionOnScore bool

	// WinScore ends the match when a player reaches it, 0 plays forever
	WinScore int
}

// DefaultRules reproduces the reference loop with the swept paddle test
func DefaultRules() Rules {
	return Rules{
		Collision: physics.CollisionSwept,
		SideWalls: true,
	}
}
