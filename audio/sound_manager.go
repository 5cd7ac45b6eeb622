package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pong/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 50

	bounceFrequencyHz = 440
	bounceDurationMs  = 40
	paddleFrequencyHz = 880
	paddleDurationMs  = 60
	scoreFrequencyHz  = 330
	scoreDurationMs   = 180
	scoreChimeHz      = 660

	blipAmplitude = 0.25
)

// SoundManager plays the short cues of a match
// All Play methods are no-ops until Initialize succeeds, so the game runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64 // Linear master gain in [0, 1]
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
	}
}

// Initialize sets up the speaker, a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted silences cues without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// SetVolume sets the master gain applied to every new cue, clamped to [0, 1]
func (sm *SoundManager) SetVolume(gain float64) {
	sm.mu.Lock()
	sm.volume = math.Max(0, math.Min(gain, 1))
	sm.mu.Unlock()
}

// PlayBounce plays the wall reflection blip
func (sm *SoundManager) PlayBounce() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*bounceDurationMs), NewBlipGenerator(sampleRate, bounceFrequencyHz, false)))
}

// PlayPaddle plays the brighter paddle hit blip
func (sm *SoundManager) PlayPaddle() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*paddleDurationMs), NewBlipGenerator(sampleRate, paddleFrequencyHz, true)))
}

// PlayScore plays a low buzz followed by a short sine chime
func (sm *SoundManager) PlayScore() {
	buzz := beep.Take(sampleRate.N(time.Millisecond*scoreDurationMs), NewBlipGenerator(sampleRate, scoreFrequencyHz, true))
	chime, err := generators.SineTone(sampleRate, scoreChimeHz)
	if err != nil {
		sm.play(buzz)
		return
	}
	sm.play(beep.Seq(buzz, beep.Take(sampleRate.N(time.Millisecond*bounceDurationMs*2), attenuate(chime))))
}

// Handle maps simulation events to cues
func (sm *SoundManager) Handle(events []event.GameEvent) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventWallBounce:
			sm.PlayBounce()
		case event.EventPaddleHit:
			sm.PlayPaddle()
		case event.EventScore:
			sm.PlayScore()
		}
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	if sm.volume < 1 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   gainToLog2(sm.volume),
			Silent:   sm.volume == 0,
		}
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// attenuate scales a streamer to the blip amplitude
func attenuate(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= blipAmplitude
			samples[i][1] *= blipAmplitude
		}
		return n, ok
	})
}

// BlipGenerator generates an enveloped sine or square tone
type BlipGenerator struct {
	sr     beep.SampleRate
	freq   float64
	square bool
	pos    int
}

// NewBlipGenerator creates a blip generator, square adds odd harmonics for a harsher tone
func NewBlipGenerator(sr beep.SampleRate, freq float64, square bool) *BlipGenerator {
	return &BlipGenerator{
		sr:     sr,
		freq:   freq,
		square: square,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * g.freq * t)
		if g.square {
			sample += math.Sin(2*math.Pi*g.freq*3*t) / 3
			sample += math.Sin(2*math.Pi*g.freq*5*t) / 5
		}

		// 5ms attack, then exponential decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*20)
		sample *= envelope * blipAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
