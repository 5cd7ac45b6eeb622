package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// windowGame adapts a session to the ebiten game loop.
// Update ticks the session into a recorder, Draw replays the recorded frame
type windowGame struct {
	session  *engine.Session
	frame    *render.Recorder
	sound    *audio.SoundManager
	bindings map[ebiten.Key]input.Key
	width    int
	height   int
}

func newWindowGame(cfg *config.Config, sound *audio.SoundManager) *windowGame {
	session := cfg.NewSession()
	return &windowGame{
		session: session,
		frame:   render.NewRecorder(),
		sound:   sound,
		bindings: bindKeys(
			cfg.Left.Up, cfg.Left.Down,
			cfg.Right.Up, cfg.Right.Down,
		),
		width:  int(cfg.Table.Width),
		height: int(cfg.Table.Height),
	}
}

func (g *windowGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Reset()
		// Keys held through the restart produce no new press edge
		reseedKeys(g.session.Keys, g.bindings, ebiten.IsKeyPressed)
	}

	for key, name := range g.bindings {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Keys.Press(name)
		}
		if inpututil.IsKeyJustReleased(key) {
			g.session.Keys.Release(name)
		}
	}

	g.frame.Reset()
	g.session.Tick(g.frame)
	g.sound.Handle(g.session.Events.Consume())
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.frame.Replay(imageSurface{dst: screen})

	hud := fmt.Sprintf("%d : %d", g.session.Score.Left, g.session.Score.Right)
	switch w := g.session.Winner(); {
	case w != event.SideNone:
		hud += fmt.Sprintf("   %s WINS  r:restart", w)
	case g.session.Paused():
		hud += "   PAUSED"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// imageSurface draws table coordinates 1:1 onto an ebiten image
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) Clear(r render.Rect) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), render.ColorBackground, false)
}

func (s imageSurface) FillRect(r render.Rect, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s imageSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}
