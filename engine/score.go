package engine

import "github.com/lixenwraith/pong/event"

// Score holds the point counters of both players
type Score struct {
	Left, Right int
}

// Add awards one point
func (s *Score) Add(side event.Side) {
	switch side {
	case event.SideLeft:
		s.Left++
	case event.SideRight:
		s.Right++
	}
}

// Of returns the points of a player
func (s Score) Of(side event.Side) int {
	switch side {
	case event.SideLeft:
		return s.Left
	case event.SideRight:
		return s.Right
	default:
		return 0
	}
}

// Leader returns the player ahead, SideNone on a tie
func (s Score) Leader() event.Side {
	switch {
	case s.Left > s.Right:
		return event.SideLeft
	case s.Right > s.Left:
		return event.SideRight
	default:
		return event.SideNone
	}
}
