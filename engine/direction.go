package engine

// Vertical is the vertical direction flag. A ball holds exactly one value
type Vertical int8

const (
	Up   Vertical = -1
	Down Vertical = 1
)

func (v Vertical) String() string {
	if v == Up {
		return "up"
	}
	return "down"
}

// Horizontal is the horizontal direction flag. A ball holds exactly one value
type Horizontal int8

const (
	Left  Horizontal = -1
	Right Horizontal = 1
)

func (h Horizontal) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Reverse returns the opposite direction
func (h Horizontal) Reverse() Horizontal {
	return -h
}
