package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/flipgrid/internal/card"
	"github.com/five82/flipgrid/internal/flip"
)

// Config captures the construction-time options of the grid and its cards.
type Config struct {
	Flip flip.Options
	Card card.Options

	Items   int
	Columns int
	Rows    int

	FrontTitle string // fmt pattern, receives the item number
	BackTitle  string
	BackBody   string

	DebugLog string
}

const (
	defaultConfigPath = "~/.config/flipgrid/config.toml"
	defaultItems      = 300
	defaultColumns    = 4
	defaultRows       = 3
	defaultCardWidth  = 20
	defaultCardHeight = 7
	defaultPadding    = 1
	defaultFrontTitle = "Card %d"
	defaultBackTitle  = "Back"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Flip: flip.DefaultOptions(),
		Card: card.Options{
			Width:   defaultCardWidth,
			Height:  defaultCardHeight,
			Padding: defaultPadding,
			Scale:   card.ScaleCenter,
		},
		Items:      defaultItems,
		Columns:    defaultColumns,
		Rows:       defaultRows,
		FrontTitle: defaultFrontTitle,
		BackTitle:  defaultBackTitle,
	}
}

type rawConfig struct {
	DurationMS  int    `toml:"duration_ms" yaml:"duration_ms"`
	FrontToBack string `toml:"front_to_back" yaml:"front_to_back"`
	BackToFront string `toml:"back_to_front" yaml:"back_to_front"`
	Padding     *int   `toml:"padding" yaml:"padding"`
	Margin      *int   `toml:"margin" yaml:"margin"`
	Scale       string `toml:"scale" yaml:"scale"`
	Items       int    `toml:"items" yaml:"items"`
	Columns     int    `toml:"columns" yaml:"columns"`
	Rows        int    `toml:"rows" yaml:"rows"`
	CardWidth   int    `toml:"card_width" yaml:"card_width"`
	CardHeight  int    `toml:"card_height" yaml:"card_height"`
	FrontTitle  string `toml:"front_title" yaml:"front_title"`
	BackTitle   string `toml:"back_title" yaml:"back_title"`
	BackBody    string `toml:"back_body" yaml:"back_body"`
	DebugLog    string `toml:"debug_log" yaml:"debug_log"`
}

// Load reads the config at path, falling back to defaults when the file is
// missing. Paths ending in .yaml or .yml are parsed as YAML, anything else
// as TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := raw.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (r rawConfig) apply(cfg *Config) error {
	if r.DurationMS > 0 {
		cfg.Flip.Duration = time.Duration(r.DurationMS) * time.Millisecond
	}
	if s := strings.TrimSpace(r.FrontToBack); s != "" {
		d, err := flip.ParseDirection(s)
		if err != nil {
			return fmt.Errorf("front_to_back: %w", err)
		}
		cfg.Flip.FrontToBack = d
	}
	if s := strings.TrimSpace(r.BackToFront); s != "" {
		d, err := flip.ParseDirection(s)
		if err != nil {
			return fmt.Errorf("back_to_front: %w", err)
		}
		cfg.Flip.BackToFront = d
	}
	scale, err := card.ParseScaleMode(r.Scale)
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	cfg.Card.Scale = scale

	if r.Padding != nil {
		if *r.Padding < 0 {
			return fmt.Errorf("padding must not be negative")
		}
		cfg.Card.Padding = *r.Padding
	}
	if r.Margin != nil {
		if *r.Margin < 0 {
			return fmt.Errorf("margin must not be negative")
		}
		cfg.Card.Margin = *r.Margin
	}
	if r.CardWidth > 0 {
		cfg.Card.Width = r.CardWidth
	}
	if r.CardHeight > 0 {
		cfg.Card.Height = r.CardHeight
	}
	if r.Items > 0 {
		cfg.Items = r.Items
	}
	if r.Columns > 0 {
		cfg.Columns = r.Columns
	}
	if r.Rows > 0 {
		cfg.Rows = r.Rows
	}
	if s := strings.TrimSpace(r.FrontTitle); s != "" {
		cfg.FrontTitle = s
	}
	if s := strings.TrimSpace(r.BackTitle); s != "" {
		cfg.BackTitle = s
	}
	cfg.BackBody = strings.TrimSpace(r.BackBody)
	if s := strings.TrimSpace(r.DebugLog); s != "" {
		cfg.DebugLog = mustExpand(s)
	}
	return nil
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath expands a leading ~ to the home directory and makes path
// absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
