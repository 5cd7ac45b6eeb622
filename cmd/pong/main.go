package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/logging"
)

var (
	configFlag = flag.String("config", "", "Path to TOML match configuration")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/pong.log")
	exactFlag  = flag.Bool("exact-collision", false, "Use exact-equality paddle collision (ball may tunnel)")
	soloFlag   = flag.Bool("solo", false, "Computer plays the right paddle")
	demoFlag   = flag.Bool("demo", false, "Computer plays both paddles")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	// Config first: nothing is opened yet, so exiting here leaks nothing
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every resource of the session; all exits go through its defers
func run(cfg *config.Config) error {
	logFile, err := logging.Setup(logging.DefaultDir, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			if logFile != nil {
				logFile.Close()
			}
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager()
	sound.SetVolume(audio.VolumeGain(cfg.Game.Volume))
	startAudio(cfg, sound.Initialize)
	defer sound.Cleanup()

	g := newGame(screen, cfg, sound)
	g.run()
	return nil
}

// loadConfig reads the match configuration and applies command-line overrides
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	return cfg, nil
}

// startAudio opens the audio device when enabled. The screen owns stderr at this point,
// so a failure goes to the log and the game continues silent
func startAudio(cfg *config.Config, initialize func() error) bool {
	if !cfg.Game.Audio {
		return false
	}
	if err := initialize(); err != nil {
		engine.Logger().Warn("audio disabled", "err", err)
		return false
	}
	return true
}

// applyFlags lets command-line switches override the loaded configuration
func applyFlags(cfg *config.Config) {
	if *exactFlag {
		cfg.Rules.Collision = "exact"
	}
	if *soloFlag {
		cfg.Game.AutopilotRight = true
	}
	if *demoFlag {
		cfg.Game.AutopilotLeft = true
		cfg.Game.AutopilotRight = true
	}
	if *muteFlag {
		cfg.Game.Audio = false
	}
}
