package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/logging"
)

var (
	configFlag = flag.String("config", "", "Path to TOML match configuration")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/pong.log")
	scaleFlag  = flag.Int("scale", 2, "Window size multiplier")
	soloFlag   = flag.Bool("solo", false, "Computer plays the right paddle")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	// Config first: nothing is opened yet, so exiting here leaks nothing
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *soloFlag {
		cfg.Game.AutopilotRight = true
	}
	if *muteFlag {
		cfg.Game.Audio = false
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Window error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file and the audio device; all exits go through its defers
func run(cfg *config.Config) error {
	logFile, err := logging.Setup(logging.DefaultDir, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	sound := audio.NewSoundManager()
	sound.SetVolume(audio.VolumeGain(cfg.Game.Volume))
	if cfg.Game.Audio {
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		}
	}
	defer sound.Cleanup()

	g := newWindowGame(cfg, sound)

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(int(cfg.Table.Width)*(*scaleFlag), int(cfg.Table.Height)*(*scaleFlag))
	// One simulation step per tick
	ebiten.SetTPS(ticksPerSecond(cfg.FrameInterval()))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// ticksPerSecond converts a frame interval into the nearest ebiten tick rate, at least 1
func ticksPerSecond(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(1, int(math.Round(float64(time.Second)/float64(interval))))
}
