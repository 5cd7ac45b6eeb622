package parameter

// Table dimensions in world units
const (
	TableWidth  = 600
	TableHeight = 300
)

// Paddle defaults. The left paddle faces right, the right paddle faces left
const (
	PaddleWidth  = 20
	PaddleHeight = 60
	PaddleSpeed  = 4

	LeftPaddleX  = 10
	RightPaddleX = TableWidth - PaddleWidth - 10
	PaddleStartY = (TableHeight - PaddleHeight) / 2
)

// Ball defaults, speed is in world units per tick
const (
	BallRadius = 10
	BallSpeed  = 2
)

// Default key bindings
const (
	LeftUpKey    = "w"
	LeftDownKey  = "s"
	RightUpKey   = "up"
	RightDownKey = "down"
)

// AutopilotDeadZone is the distance between ball and paddle center tolerated before steering
const AutopilotDeadZone = 8
