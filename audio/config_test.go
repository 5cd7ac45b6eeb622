package audio

import (
	"math"
	"testing"
)

func TestVolumeGain(t *testing.T) {
	tests := []struct {
		percent int
		want    float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{-20, 0},
		{250, 1},
	}
	for _, tt := range tests {
		if got := VolumeGain(tt.percent); got != tt.want {
			t.Errorf("VolumeGain(%d) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestGainToLog2(t *testing.T) {
	if got := gainToLog2(1); got != 0 {
		t.Errorf("Unity gain should be exponent 0, got %v", got)
	}
	if got := gainToLog2(0.25); math.Abs(got+2) > 1e-9 {
		t.Errorf("Quarter gain should be exponent -2, got %v", got)
	}
	if got := gainToLog2(0); got != 0 {
		t.Errorf("Zero gain is handled by Silent, exponent should be 0, got %v", got)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	sm := NewSoundManager()
	sm.SetVolume(2)
	if sm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", sm.volume)
	}
	sm.SetVolume(-1)
	if sm.volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", sm.volume)
	}
}
