package engine

import (
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// Setup is everything needed to start or restart a match
type Setup struct {
	Table Table
	Left  PaddleConfig
	Right PaddleConfig
	Ball  BallConfig
	Rules Rules

	AutopilotDeadZone float64
}

// Session owns all simulation state and is the frame driver.
// Single goroutine: the host calls Tick, feeds Keys and drains Events between ticks
type Session struct {
	// ===== Entities =====
	// Created by NewSession and Reset, mutated only by Tick

	Table   Table
	Paddles []*Paddle // Left, Right
	Ball    *Ball
	Score   Score

	// ===== Host Facing =====

	Keys   *input.KeySet     // Input snapshot polled by paddles
	Events *event.EventQueue // Drained by the host after each tick
	Rules  Rules

	setup      Setup
	autopilots map[event.Side]*Autopilot
	frame      int64
	paused     bool
	winner     event.Side
}

// NewSession builds the entities of a fresh match
func NewSession(setup Setup) *Session {
	s := &Session{
		Keys:       input.NewKeySet(),
		Events:     event.NewEventQueue(),
		setup:      setup,
		autopilots: make(map[event.Side]*Autopilot),
	}
	s.build()
	return s
}

func (s *Session) build() {
	bounds := s.setup.Table.Bounds()
	s.Table = s.setup.Table
	s.Rules = s.setup.Rules
	s.Paddles = []*Paddle{
		NewPaddle(s.setup.Left, bounds),
		NewPaddle(s.setup.Right, bounds),
	}
	s.Ball = NewBall(s.setup.Ball)
	s.Score = Score{}
	s.frame = 0
	s.paused = false
	s.winner = event.SideNone

	for side := range s.autopilots {
		s.autopilots[side] = NewAutopilot(s.Paddle(side), s.setup.AutopilotDeadZone)
	}
}

// Paddle returns the paddle of a player, nil for SideNone
func (s *Session) Paddle(side event.Side) *Paddle {
	for _, p := range s.Paddles {
		if p.Side == side {
			return p
		}
	}
	return nil
}

// SetAutopilot hands a paddle to the computer or back to the keyboard
func (s *Session) SetAutopilot(side event.Side, on bool) {
	p := s.Paddle(side)
	if p == nil {
		return
	}
	if on {
		s.autopilots[side] = NewAutopilot(p, s.setup.AutopilotDeadZone)
		return
	}
	if _, ok := s.autopilots[side]; ok {
		delete(s.autopilots, side)
		s.Keys.Release(p.UpKey)
		s.Keys.Release(p.DownKey)
	}
}

// Tick runs one frame: steer autopilots, clear, draw and update each paddle,
// then draw and update the ball. Updates are skipped while paused or after the match ended
func (s *Session) Tick(surface render.Surface) {
	for _, ap := range s.autopilots {
		ap.Steer(s.Keys, s.Ball)
	}

	running := s.Running()

	surface.Clear(s.Table.Rect())

	for _, p := range s.Paddles {
		p.Draw(surface)
		if running {
			p.Update(s.Keys)
		}
	}

	s.Ball.Draw(surface)
	if !running {
		return
	}

	out := s.Ball.Update(s.Table.Bounds(), s.Paddles, &s.Score, s.Rules)
	s.frame++
	s.record(out)
}

// record turns a ball outcome into events and log lines
func (s *Session) record(out Outcome) {
	log := Logger()

	if out.WallBounce {
		s.Events.Push(event.GameEvent{Type: event.EventWallBounce, Frame: s.frame})
		log.Debug("wall bounce", "frame", s.frame, "x", s.Ball.X, "y", s.Ball.Y)
	}

	if out.PaddleHit != event.SideNone {
		s.Events.Push(event.GameEvent{Type: event.EventPaddleHit, Side: out.PaddleHit, Frame: s.frame})
		log.Debug("paddle hit", "frame", s.frame, "side", out.PaddleHit)
	}

	if out.Scored == event.SideNone {
		return
	}

	s.Events.Push(event.GameEvent{Type: event.EventScore, Side: out.Scored, Frame: s.frame})
	log.Info("point", "frame", s.frame, "side", out.Scored, "left", s.Score.Left, "right", s.Score.Right)

	if s.Rules.WinScore > 0 && s.Score.Of(out.Scored) >= s.Rules.WinScore {
		s.winner = out.Scored
		s.Events.Push(event.GameEvent{Type: event.EventMatchOver, Side: out.Scored, Frame: s.frame})
		log.Info("match over", "winner", out.Scored, "left", s.Score.Left, "right", s.Score.Right)
	}
}

// Running reports whether Tick advances the simulation
func (s *Session) Running() bool {
	return !s.paused && s.winner == event.SideNone
}

// TogglePause flips the pause flag and returns the new state
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	Logger().Info("pause", "paused", s.paused, "frame", s.frame)
	return s.paused
}

func (s *Session) Paused() bool {
	return s.paused
}

// Winner returns the match winner, SideNone while the match is on
func (s *Session) Winner() event.Side {
	return s.winner
}

// Frame returns the number of simulated ticks
func (s *Session) Frame() int64 {
	return s.frame
}

// Reset starts a new match with the same setup, autopilots stay assigned
func (s *Session) Reset() {
	s.Keys.Reset()
	s.Events.Consume()
	s.build()
	Logger().Info("reset")
}
