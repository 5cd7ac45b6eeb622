package input

import (
	"testing"
	"time"
)

func TestKeySetPressRelease(t *testing.T) {
	ks := NewKeySet()

	ks.Press(KeyW)
	if !ks.Pressed(KeyW) {
		t.Fatal("Expected w to be pressed")
	}
	if ks.Pressed(KeyS) {
		t.Error("Expected s to be released")
	}

	// Repeated press is idempotent
	ks.Press(KeyW)
	if ks.Len() != 1 {
		t.Errorf("Expected 1 held key, got %d", ks.Len())
	}

	ks.Release(KeyW)
	if ks.Pressed(KeyW) {
		t.Error("Expected w to be released")
	}

	// Releasing a key that is not held is harmless
	ks.Release(KeyDown)
	if ks.Len() != 0 {
		t.Errorf("Expected empty set, got %d keys", ks.Len())
	}
}

func TestKeySetIgnoresEmptyKey(t *testing.T) {
	ks := NewKeySet()
	ks.Press("")
	if ks.Len() != 0 {
		t.Errorf("Empty key should be ignored, got %d keys", ks.Len())
	}
}

func TestKeySetReset(t *testing.T) {
	ks := NewKeySet()
	ks.Press(KeyUp)
	ks.Press(KeyDown)
	ks.Reset()
	if ks.Len() != 0 || ks.Pressed(KeyUp) {
		t.Error("Reset should release all keys")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	ks := NewKeySet()
	ht := NewHoldTracker(ks, 100*time.Millisecond)
	start := time.Unix(0, 0)

	ht.Touch(KeyUp, start)
	ht.Touch(KeyW, start.Add(80*time.Millisecond))

	tests := []struct {
		name     string
		at       time.Duration
		released int
		upHeld   bool
		wHeld    bool
	}{
		{"within window", 50 * time.Millisecond, 0, true, true},
		{"up expired", 150 * time.Millisecond, 1, false, true},
		{"w expired", 200 * time.Millisecond, 1, false, false},
		{"nothing left", 500 * time.Millisecond, 0, false, false},
	}

	for _, tt := range tests {
		n := ht.Expire(start.Add(tt.at))
		if n != tt.released {
			t.Errorf("%s: expected %d released, got %d", tt.name, tt.released, n)
		}
		if ks.Pressed(KeyUp) != tt.upHeld {
			t.Errorf("%s: up held = %v, want %v", tt.name, ks.Pressed(KeyUp), tt.upHeld)
		}
		if ks.Pressed(KeyW) != tt.wHeld {
			t.Errorf("%s: w held = %v, want %v", tt.name, ks.Pressed(KeyW), tt.wHeld)
		}
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	ks := NewKeySet()
	ht := NewHoldTracker(ks, 100*time.Millisecond)
	start := time.Unix(0, 0)

	// Auto-repeat every 60ms keeps the key held
	for i := 0; i < 5; i++ {
		now := start.Add(time.Duration(i*60) * time.Millisecond)
		ht.Touch(KeyDown, now)
		ht.Expire(now)
		if !ks.Pressed(KeyDown) {
			t.Fatalf("Key released during auto-repeat at step %d", i)
		}
	}
}
