package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventWallBounce signals a reflection off the top/bottom wall or a side wall
	// Trigger: Ball update | Consumer: SoundManager | Side: SideNone
	EventWallBounce EventType = iota

	// EventPaddleHit signals the ball reversing off a paddle face
	// Trigger: Ball update | Consumer: SoundManager | Side: owner of the paddle
	EventPaddleHit

	// EventScore signals a point
	// Trigger: Ball center reaching the left or right bound | Consumer: SoundManager, host log
	// Side: player who scored
	EventScore

	// EventMatchOver signals that a player reached the winning score
	// Trigger: Session after EventScore | Consumer: host | Side: winner
	EventMatchOver
)

func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventScore:
		return "score"
	case EventMatchOver:
		return "match_over"
	default:
		return "unknown"
	}
}

// Side identifies a player
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other player, SideNone stays SideNone
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// GameEvent is a single simulation event stamped with the tick that produced it
type GameEvent struct {
	Type  EventType
	Side  Side
	Frame int64
}
