package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/render"
)

// game binds a session to a terminal screen
type game struct {
	screen   tcell.Screen
	surface  *render.TerminalSurface
	session  *engine.Session
	holds    *input.HoldTracker
	sound    *audio.SoundManager
	interval time.Duration
	log      *slog.Logger
}

func newGame(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) *game {
	session := cfg.NewSession()
	return &game{
		screen:   screen,
		surface:  render.NewTerminalSurface(screen, cfg.Table.Width, cfg.Table.Height),
		session:  session,
		holds:    input.NewHoldTracker(session.Keys, parameter.KeyHoldWindow),
		sound:    sound,
		interval: cfg.FrameInterval(),
		log:      engine.Logger().With("host", "terminal"),
	}
}

// run blocks until the player quits
func (g *game) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(g.interval)
	defer frameTicker.Stop()

	g.log.Info("match started", "interval", g.interval)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev, time.Now()) {
				g.log.Info("quit", "frame", g.session.Frame(), "left", g.session.Score.Left, "right", g.session.Score.Right)
				return
			}

		case now := <-frameTicker.C:
			g.holds.Expire(now)
			g.frame()
		}
	}
}

// handleEvent applies one terminal event, returns false to quit
func (g *game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		switch command(ev) {
		case cmdQuit:
			return false
		case cmdPause:
			g.session.TogglePause()
		case cmdRestart:
			g.session.Reset()
		default:
			g.holds.Touch(keyName(ev), now)
		}
	}
	return true
}

// frame advances the session one tick and presents the result
func (g *game) frame() {
	g.session.Tick(g.surface)

	events := g.session.Events.Consume()
	g.sound.Handle(events)

	g.surface.DrawHUD(g.session.Score.Left, g.session.Score.Right, status(g.session))
	g.screen.Show()
}

// status is the HUD message for the current session state
func status(s *engine.Session) string {
	switch w := s.Winner(); {
	case w != event.SideNone:
		return fmt.Sprintf("%s WINS  r:restart q:quit", w)
	case s.Paused():
		return "PAUSED  space:resume q:quit"
	}
	return "space:pause r:restart q:quit"
}
