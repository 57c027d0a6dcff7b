package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flipgrid/internal/config"
	"github.com/five82/flipgrid/internal/flip"
	"github.com/five82/flipgrid/internal/prefs"
	"github.com/five82/flipgrid/internal/ui"
)

// Options configure the flipgrid application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/flipgrid/prefs.toml
	Autoplay   int    // seconds between random forced flips; zero disables
}

// Run boots the flipgrid TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	closeLog, err := setupLogging(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	states := NewStates(cfg)
	log.Printf("starting with %d cards, %s per flip", len(states), cfg.Flip.Duration)

	program := ui.NewProgram(ui.Options{
		Context:   ctx,
		Config:    cfg,
		States:    states,
		ThemeName: userPrefs.Theme,
		Exclusive: userPrefs.Exclusive,
		PrefsPath: prefsPath,
	})

	if opts.Autoplay > 0 {
		StartAutoplay(ctx, program, time.Duration(opts.Autoplay)*time.Second, len(states), nil)
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// NewStates builds one idle front-facing state per configured item.
func NewStates(cfg config.Config) []*flip.State {
	states := make([]*flip.State, cfg.Items)
	for i := range states {
		states[i] = flip.NewState(i, cfg.Flip)
	}
	return states
}

// setupLogging sends the standard logger, and the flip decision trace, to
// path. Without a path everything is discarded so nothing draws over the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "flipgrid")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	flip.SetLogger(log.Default())
	return func() {
		flip.SetLogger(nil)
		_ = f.Close()
	}, nil
}
