package physics

// CollisionMode selects how a moving edge is tested against a fixed face
type CollisionMode uint8

const (
	// CollisionSwept reports contact when the edge crossed or touched the face during the step.
	// No tunneling at any speed
	CollisionSwept CollisionMode = iota
	// CollisionExact reports contact only when the edge lands exactly on the face.
	// Reference behavior: a step that skips over the face tunnels through it
	CollisionExact
)

func (m CollisionMode) String() string {
	switch m {
	case CollisionExact:
		return "exact"
	default:
		return "swept"
	}
}

// ParseCollisionMode maps a config string to a mode, ok is false for unknown names
func ParseCollisionMode(s string) (CollisionMode, bool) {
	switch s {
	case "swept", "":
		return CollisionSwept, true
	case "exact":
		return CollisionExact, true
	default:
		return CollisionSwept, false
	}
}

// ReachesFace tests a leading edge moving from prev to cur against a face coordinate.
// descending is true when the face is approached from larger coordinates (edge moving toward smaller values)
func ReachesFace(mode CollisionMode, prev, cur, face float64, descending bool) bool {
	if mode == CollisionExact {
		return cur == face
	}
	if descending {
		return prev > face && cur <= face
	}
	return prev < face && cur >= face
}

// WithinOpen reports lo < v < hi
func WithinOpen(v, lo, hi float64) bool {
	return v > lo && v < hi
}
