// Package capture translates screenshot tool calls into invocations of the
// platform capture utility and queries against the screenshot directory.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBinary   = "screencapture"
	timestampLayout = "20060102_150405"
)

// Config contains adapter settings. The zero value is usable: Dir falls back
// to ~/Desktop/mcp-screenshots and Binary to the platform default.
type Config struct {
	// Dir is the screenshot directory; created at construction if missing.
	Dir string
	// Binary is the capture utility to invoke.
	Binary string
	// Timeout bounds the wait for a synchronous capture. Zero means wait
	// forever, which matches the utility's own contract for delayed shots.
	Timeout time.Duration
}

// Adapter performs screenshot captures and directory listings. It holds no
// state between calls beyond its configuration; the directory contents are
// mutated externally by the capture utility.
type Adapter struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

// DefaultDir returns the default screenshot directory under the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Desktop", "mcp-screenshots"), nil
}

// New constructs an Adapter and creates its screenshot directory if absent.
// A nil runner selects the os/exec-backed default; a nil logger selects
// slog.Default.
func New(cfg Config, runner Runner, log *slog.Logger) (*Adapter, error) {
	if cfg.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("resolve screenshot dir: %w", err)
		}
		cfg.Dir = dir
	}
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if runner == nil {
		runner = NewRunner()
	}
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create screenshot dir: %w", err)
	}
	return &Adapter{cfg: cfg, runner: runner, log: log}, nil
}

// Dir returns the directory the adapter writes captures to and lists from.
func (a *Adapter) Dir() string { return a.cfg.Dir }

// resolve builds the target path for a capture. An empty filename gets a
// timestamped name with the given prefix. Supplied names are kept literal:
// no cleaning of ".." segments (filepath.Join would rewrite them), and an
// absolute name is used as-is.
func (a *Adapter) resolve(filename, prefix string) string {
	if filename == "" {
		name := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format(timestampLayout))
		return filepath.Join(a.cfg.Dir, name)
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	return a.cfg.Dir + string(filepath.Separator) + filename
}

// CaptureFull captures the entire desktop, waiting for the utility to exit.
// With delay > 0 the utility is asked to wait that many seconds first.
func (a *Adapter) CaptureFull(ctx context.Context, filename string, delay int) (string, error) {
	path := a.resolve(filename, "screenshot")
	args := make([]string, 0, 3)
	if delay > 0 {
		args = append(args, "-T", strconv.Itoa(delay))
	}
	args = append(args, path)

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	a.log.Debug("running capture utility", "binary", a.cfg.Binary, "path", path, "delay", delay)
	stderr, err := a.runner.Run(ctx, a.cfg.Binary, args...)
	if err != nil {
		diag := strings.TrimSpace(string(stderr))
		if diag == "" {
			diag = err.Error()
		}
		a.log.Error("capture failed", "path", path, "diag", diag)
		return "", fmt.Errorf("failed to capture screenshot: %s", diag)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("screenshot file not written: %w", err)
	}
	a.log.Info("screenshot saved", "path", path, "bytes", info.Size())
	return fmt.Sprintf("Screenshot saved successfully\nFile: %s\nSize: %s", path, formatKB(info.Size())), nil
}

// CaptureWindow launches the utility in interactive window-selection mode
// and returns immediately. The returned text names the eventual target path;
// whether the user completes the selection is unobservable from here.
func (a *Adapter) CaptureWindow(filename string) (string, error) {
	path := a.resolve(filename, "window")
	if err := a.runner.Start(a.cfg.Binary, "-W", path); err != nil {
		return "", fmt.Errorf("failed to launch capture utility: %w", err)
	}
	a.log.Info("window capture launched", "path", path)
	return fmt.Sprintf("Click on a window to capture screenshot...\n(Will be saved to: %s)", path), nil
}

// CaptureArea is CaptureWindow with rectangular area selection instead.
func (a *Adapter) CaptureArea(filename string) (string, error) {
	path := a.resolve(filename, "area")
	if err := a.runner.Start(a.cfg.Binary, "-s", path); err != nil {
		return "", fmt.Errorf("failed to launch capture utility: %w", err)
	}
	a.log.Info("area capture launched", "path", path)
	return fmt.Sprintf("Drag to select an area to capture...\n(Will be saved to: %s)", path), nil
}

func formatKB(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
