package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key counts as held after its last press or auto-repeat.
	// Must exceed the terminal's initial auto-repeat delay to avoid stutter
	KeyHoldWindow = 120 * time.Millisecond
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
