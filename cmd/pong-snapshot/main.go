package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/render"
)

var (
	configFlag = flag.String("config", "", "Path to TOML match configuration")
	ticksFlag  = flag.Int("ticks", 600, "Number of frames to simulate")
	outFlag    = flag.String("out", "pong.png", "PNG output path, empty to skip")
	scaleFlag  = flag.Float64("scale", 1, "Pixels per table unit")
	textFlag   = flag.Bool("text", false, "Print the final frame as text")
	verbose    = flag.Bool("v", false, "Log match events to stderr")
)

// options are the resolved flags of one run
type options struct {
	ticks   int
	out     string
	scale   float64
	text    bool
	textW   int
	textH   int
	summary io.Writer
}

func main() {
	flag.Parse()

	if *verbose {
		engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	opts := options{
		ticks:   *ticksFlag,
		out:     *outFlag,
		scale:   *scaleFlag,
		text:    *textFlag,
		textW:   80,
		textH:   25,
		summary: os.Stdout,
	}
	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Snapshot failed: %v\n", err)
		os.Exit(1)
	}
}

// run plays a computer-vs-computer match headlessly and writes the final frame
func run(cfg *config.Config, opts options) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", opts.ticks)
	}
	if opts.scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", opts.scale)
	}

	cfg.Game.AutopilotLeft = true
	cfg.Game.AutopilotRight = true
	session := cfg.NewSession()

	counts := make(map[event.EventType]int)
	null := render.NewRecorder()
	for i := 0; i < opts.ticks; i++ {
		null.Reset()
		session.Tick(null)
		for _, ev := range session.Events.Consume() {
			counts[ev.Type]++
		}
	}

	fmt.Fprintf(opts.summary, "frames=%d score=%d:%d bounces=%d hits=%d",
		session.Frame(), session.Score.Left, session.Score.Right,
		counts[event.EventWallBounce], counts[event.EventPaddleHit])
	if w := session.Winner(); w != event.SideNone {
		fmt.Fprintf(opts.summary, " winner=%s", w)
	}
	fmt.Fprintln(opts.summary)

	// Final frame is a pure draw: pause so the last state renders without advancing
	if !session.Paused() {
		session.TogglePause()
	}

	if opts.out != "" {
		raster := render.NewRasterSurface(cfg.Table.Width, cfg.Table.Height, opts.scale)
		session.Tick(raster)

		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.out, err)
		}
		if err := raster.EncodePNG(f); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", opts.out, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", opts.out, err)
		}
	}

	if opts.text {
		cells := render.NewCellBuffer(opts.textW, opts.textH)
		ts := render.NewTerminalSurface(cells, cfg.Table.Width, cfg.Table.Height)
		session.Tick(ts)
		ts.DrawHUD(session.Score.Left, session.Score.Right, "")
		fmt.Fprintln(opts.summary, cells.String())
	}
	return nil
}
