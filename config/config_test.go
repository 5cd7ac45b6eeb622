package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/physics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.FrameInterval() <= 0 {
		t.Error("Expected positive frame interval")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Table != Default().Table || cfg.Ball != Default().Ball {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[game]
autopilot_right = true

[ball]
speed = 3

[rules]
collision = "exact"
side_walls = true
win_score = 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ball.Speed != 3 || cfg.Ball.Radius != Default().Ball.Radius {
		t.Errorf("Expected speed override with default radius, got %+v", cfg.Ball)
	}
	if !cfg.Rules.SideWalls || cfg.Rules.WinScore != 5 {
		t.Errorf("Rules not decoded: %+v", cfg.Rules)
	}

	setup := cfg.Setup()
	if setup.Rules.Collision != physics.CollisionExact {
		t.Errorf("Expected exact collision, got %v", setup.Rules.Collision)
	}
	if setup.Ball.X != 300 || setup.Ball.Y != 150 {
		t.Errorf("Ball should serve from the center, got (%v, %v)", setup.Ball.X, setup.Ball.Y)
	}

	s := cfg.NewSession()
	if s.Paddle(event.SideRight) == nil || s.Rules.WinScore != 5 {
		t.Error("Session not built from config")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[ball]
spin = 2
`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[ball\nspeed = ")
	if _, err := Load(path); err == nil {
		t.Error("Expected decode error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"zero table", func(c *Config) { c.Table.Width = 0 }, ErrInvalidTable},
		{"paddle too tall", func(c *Config) { c.Left.Height = 400 }, ErrInvalidPaddle},
		{"paddle off table", func(c *Config) { c.Right.X = 590 }, ErrInvalidPaddle},
		{"left paddle on right half", func(c *Config) { c.Left.X = 400 }, ErrInvalidPaddle},
		{"duplicate key", func(c *Config) { c.Right.Up = c.Left.Up }, ErrInvalidPaddle},
		{"missing key", func(c *Config) { c.Left.Down = "" }, ErrInvalidPaddle},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }, ErrInvalidBall},
		{"ball larger than table", func(c *Config) { c.Ball.Radius = 150 }, ErrInvalidBall},
		{"unknown collision", func(c *Config) { c.Rules.Collision = "aabb" }, ErrInvalidRules},
		{"negative win score", func(c *Config) { c.Rules.WinScore = -1 }, ErrInvalidRules},
		{"zero frame interval", func(c *Config) { c.Game.FrameIntervalMs = 0 }, ErrInvalidGame},
		{"frame interval above one second", func(c *Config) { c.Game.FrameIntervalMs = 1001 }, ErrInvalidGame},
		{"volume too high", func(c *Config) { c.Game.Volume = 101 }, ErrInvalidGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PONG_AUDIO", "false")
	t.Setenv("PONG_WIN_SCORE", "3")
	t.Setenv("PONG_COLLISION", "exact")
	t.Setenv("PONG_VOLUME", "40")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Game.Audio {
		t.Error("Expected audio disabled from env")
	}
	if cfg.Rules.WinScore != 3 {
		t.Errorf("Expected win score 3, got %d", cfg.Rules.WinScore)
	}
	if cfg.Game.Volume != 40 {
		t.Errorf("Expected volume 40, got %d", cfg.Game.Volume)
	}
	if cfg.Rules.Collision != "exact" {
		t.Errorf("Expected exact collision, got %q", cfg.Rules.Collision)
	}
}

func TestApplyEnvIgnoresMalformed(t *testing.T) {
	t.Setenv("PONG_AUDIO", "loud")
	t.Setenv("PONG_WIN_SCORE", "many")

	cfg := Default()
	cfg.ApplyEnv()

	if !cfg.Game.Audio || cfg.Rules.WinScore != Default().Rules.WinScore {
		t.Error("Malformed env values should be ignored")
	}
}

func TestLoadExampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "pong.example.toml"))
	if err != nil {
		t.Fatalf("Example config should load: %v", err)
	}
	if cfg.Game.Volume != 80 || !cfg.Game.AutopilotRight {
		t.Errorf("Example game section not applied: %+v", cfg.Game)
	}
}
