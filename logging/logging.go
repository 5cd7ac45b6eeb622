package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/pong/engine"
)

const (
	// DefaultDir is relative to the working directory
	DefaultDir  = "logs"
	logFileName = "pong.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Setup routes engine and stdlib logging to dir/pong.log when debug is set and
// discards everything otherwise. Terminal hosts must never log to stdout or stderr
// while the screen is active. A log file above 10MB is rotated to a timestamped name.
// The returned file is nil when logging is disabled
func Setup(dir string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		engine.SetLogger(nil)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("pong-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	log.SetOutput(f)
	engine.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}
