package input

import "time"

// Key identifies a physical or logical key, e.g. "w", "up"
type Key string

// Common key names shared by hosts
const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyW     Key = "w"
	KeyS     Key = "s"
	KeySpace Key = "space"
)

// Reader is the read side of the input state, polled once per frame
type Reader interface {
	Pressed(k Key) bool
}

// KeySet tracks currently pressed keys
// Not safe for concurrent use; owned by the frame driver
type KeySet struct {
	down map[Key]struct{}
}

// NewKeySet creates an empty key set
func NewKeySet() *KeySet {
	return &KeySet{down: make(map[Key]struct{})}
}

// Press marks a key as held. Empty keys are ignored
func (ks *KeySet) Press(k Key) {
	if k == "" {
		return
	}
	ks.down[k] = struct{}{}
}

// Release marks a key as no longer held
func (ks *KeySet) Release(k Key) {
	delete(ks.down, k)
}

// Pressed reports whether the key is currently held
func (ks *KeySet) Pressed(k Key) bool {
	_, ok := ks.down[k]
	return ok
}

// Reset releases all keys
func (ks *KeySet) Reset() {
	clear(ks.down)
}

// Len returns the number of held keys
func (ks *KeySet) Len() int {
	return len(ks.down)
}

// HoldTracker emulates key release for hosts that only deliver presses.
// Terminals report a press plus auto-repeat, never a release, so a key counts as
// held until it goes untouched for longer than the hold window
type HoldTracker struct {
	keys    *KeySet
	hold    time.Duration
	touched map[Key]time.Time
}

// NewHoldTracker wraps a key set with a hold window
func NewHoldTracker(keys *KeySet, hold time.Duration) *HoldTracker {
	return &HoldTracker{
		keys:    keys,
		hold:    hold,
		touched: make(map[Key]time.Time),
	}
}

// Touch presses the key and refreshes its timestamp
func (ht *HoldTracker) Touch(k Key, now time.Time) {
	if k == "" {
		return
	}
	ht.keys.Press(k)
	ht.touched[k] = now
}

// Expire releases every key whose last touch is older than the hold window.
// Returns the number of released keys
func (ht *HoldTracker) Expire(now time.Time) int {
	released := 0
	for k, t := range ht.touched {
		if now.Sub(t) > ht.hold {
			ht.keys.Release(k)
			delete(ht.touched, k)
			released++
		}
	}
	return released
}
