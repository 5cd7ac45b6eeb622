package audio

import "math"

const (
	MinVolume = 0
	MaxVolume = 100
)

// VolumeGain converts a 0-100 master volume into a linear gain, clamping out-of-range values
func VolumeGain(percent int) float64 {
	if percent < MinVolume {
		percent = MinVolume
	}
	if percent > MaxVolume {
		percent = MaxVolume
	}
	return float64(percent) / MaxVolume
}

// gainToLog2 maps a linear gain to the exponent used by effects.Volume with base 2
func gainToLog2(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
