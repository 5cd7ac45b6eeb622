package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/physics"
)

var (
	ErrInvalidTable  = errors.New("invalid table")
	ErrInvalidPaddle = errors.New("invalid paddle")
	ErrInvalidBall   = errors.New("invalid ball")
	ErrInvalidRules  = errors.New("invalid rules")
	ErrInvalidGame   = errors.New("invalid game settings")
	ErrUnknownKey    = errors.New("unknown config key")
)

// maxFrameIntervalMs keeps every host at one tick per second or faster
const maxFrameIntervalMs = 1000

// Config is the full match configuration, decoded from TOML
type Config struct {
	Game  GameConfig   `toml:"game"`
	Table TableConfig  `toml:"table"`
	Left  PaddleConfig `toml:"left"`
	Right PaddleConfig `toml:"right"`
	Ball  BallConfig   `toml:"ball"`
	Rules RulesConfig  `toml:"rules"`
}

type GameConfig struct {
	FrameIntervalMs   int     `toml:"frame_interval_ms"`
	Audio             bool    `toml:"audio"`
	Volume            int     `toml:"volume"` // 0-100
	AutopilotLeft     bool    `toml:"autopilot_left"`
	AutopilotRight    bool    `toml:"autopilot_right"`
	AutopilotDeadZone float64 `toml:"autopilot_dead_zone"`
}

type TableConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PaddleConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
	Up     string  `toml:"up"`
	Down   string  `toml:"down"`
}

// BallConfig has no position, the ball always serves from the table center
type BallConfig struct {
	Radius float64 `toml:"radius"`
	Speed  float64 `toml:"speed"`
}

type RulesConfig struct {
	Collision             string `toml:"collision"` // "swept" or "exact"
	SideWalls             bool   `toml:"side_walls"`
	ResetDirectionOnScore bool   `toml:"reset_direction_on_score"`
	WinScore              int    `toml:"win_score"`
}

// Default returns a playable match: classic scoring without side walls, first to 11
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FrameIntervalMs:   int(parameter.FrameUpdateInterval / time.Millisecond),
			Audio:             true,
			Volume:            audio.MaxVolume,
			AutopilotDeadZone: parameter.AutopilotDeadZone,
		},
		Table: TableConfig{Width: parameter.TableWidth, Height: parameter.TableHeight},
		Left: PaddleConfig{
			X: parameter.LeftPaddleX, Y: parameter.PaddleStartY,
			Width: parameter.PaddleWidth, Height: parameter.PaddleHeight, Speed: parameter.PaddleSpeed,
			Up: parameter.LeftUpKey, Down: parameter.LeftDownKey,
		},
		Right: PaddleConfig{
			X: parameter.RightPaddleX, Y: parameter.PaddleStartY,
			Width: parameter.PaddleWidth, Height: parameter.PaddleHeight, Speed: parameter.PaddleSpeed,
			Up: parameter.RightUpKey, Down: parameter.RightDownKey,
		},
		Ball: BallConfig{Radius: parameter.BallRadius, Speed: parameter.BallSpeed},
		Rules: RulesConfig{
			Collision: physics.CollisionSwept.String(),
			WinScore:  11,
		},
	}
}

// Load reads a TOML file over the defaults, then applies environment overrides.
// An empty path loads defaults only
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from PONG_* environment variables, malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PONG_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Game.Audio = b
		}
	}
	if v := os.Getenv("PONG_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Game.Volume = n
		}
	}
	if v := os.Getenv("PONG_WIN_SCORE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Rules.WinScore = n
		}
	}
	if v := os.Getenv("PONG_COLLISION"); v != "" {
		c.Rules.Collision = v
	}
}

// Validate checks geometry, keys and rules
func (c *Config) Validate() error {
	if c.Game.FrameIntervalMs <= 0 || c.Game.FrameIntervalMs > maxFrameIntervalMs {
		return fmt.Errorf("%w: frame_interval_ms must be within 1-%d, got %d", ErrInvalidGame, maxFrameIntervalMs, c.Game.FrameIntervalMs)
	}
	if c.Game.Volume < audio.MinVolume || c.Game.Volume > audio.MaxVolume {
		return fmt.Errorf("%w: volume must be within %d-%d, got %d", ErrInvalidGame, audio.MinVolume, audio.MaxVolume, c.Game.Volume)
	}
	if c.Game.AutopilotDeadZone < 0 {
		return fmt.Errorf("%w: autopilot_dead_zone must not be negative", ErrInvalidGame)
	}

	t := c.Table
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidTable, t.Width, t.Height)
	}

	for _, p := range []struct {
		name string
		cfg  PaddleConfig
	}{{"left", c.Left}, {"right", c.Right}} {
		if err := p.cfg.validate(t); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPaddle, p.name, err)
		}
	}
	if c.Left.X+c.Left.Width/2 >= t.Width/2 {
		return fmt.Errorf("%w: left paddle must sit left of the table center", ErrInvalidPaddle)
	}
	if c.Right.X+c.Right.Width/2 < t.Width/2 {
		return fmt.Errorf("%w: right paddle must sit right of the table center", ErrInvalidPaddle)
	}

	seen := make(map[string]bool, 4)
	for _, k := range []string{c.Left.Up, c.Left.Down, c.Right.Up, c.Right.Down} {
		if seen[k] {
			return fmt.Errorf("%w: key %q bound twice", ErrInvalidPaddle, k)
		}
		seen[k] = true
	}

	b := c.Ball
	if b.Radius <= 0 || b.Speed <= 0 {
		return fmt.Errorf("%w: radius %v speed %v", ErrInvalidBall, b.Radius, b.Speed)
	}
	if 2*b.Radius >= t.Height || 2*b.Radius >= t.Width {
		return fmt.Errorf("%w: radius %v does not fit the table", ErrInvalidBall, b.Radius)
	}

	if _, ok := physics.ParseCollisionMode(c.Rules.Collision); !ok {
		return fmt.Errorf("%w: collision %q, want swept or exact", ErrInvalidRules, c.Rules.Collision)
	}
	if c.Rules.WinScore < 0 {
		return fmt.Errorf("%w: win_score must not be negative", ErrInvalidRules)
	}
	return nil
}

func (p PaddleConfig) validate(t TableConfig) error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("size %vx%v", p.Width, p.Height)
	case p.Speed < 0:
		return fmt.Errorf("negative speed %v", p.Speed)
	case p.Height > t.Height:
		return fmt.Errorf("height %v exceeds table", p.Height)
	case p.X < 0 || p.X+p.Width > t.Width:
		return fmt.Errorf("x %v outside table", p.X)
	case p.Y < 0 || p.Y+p.Height > t.Height:
		return fmt.Errorf("y %v outside table", p.Y)
	case p.Up == "" || p.Down == "":
		return fmt.Errorf("missing key binding")
	}
	return nil
}

// FrameInterval returns the tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Game.FrameIntervalMs) * time.Millisecond
}

// Setup converts the configuration into engine terms
func (c *Config) Setup() engine.Setup {
	mode, _ := physics.ParseCollisionMode(c.Rules.Collision)
	paddle := func(p PaddleConfig) engine.PaddleConfig {
		return engine.PaddleConfig{
			X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Speed: p.Speed,
			UpKey: input.Key(p.Up), DownKey: input.Key(p.Down),
		}
	}

	return engine.Setup{
		Table: engine.Table{Width: c.Table.Width, Height: c.Table.Height},
		Left:  paddle(c.Left),
		Right: paddle(c.Right),
		Ball: engine.BallConfig{
			X: c.Table.Width / 2, Y: c.Table.Height / 2,
			Radius: c.Ball.Radius, Speed: c.Ball.Speed,
		},
		Rules: engine.Rules{
			Collision:             mode,
			SideWalls:             c.Rules.SideWalls,
			ResetDirectionOnScore: c.Rules.ResetDirectionOnScore,
			WinScore:              c.Rules.WinScore,
		},
		AutopilotDeadZone: c.Game.AutopilotDeadZone,
	}
}

// NewSession builds a session with the configured autopilots engaged
func (c *Config) NewSession() *engine.Session {
	s := engine.NewSession(c.Setup())
	s.SetAutopilot(event.SideLeft, c.Game.AutopilotLeft)
	s.SetAutopilot(event.SideRight, c.Game.AutopilotRight)
	return s
}
