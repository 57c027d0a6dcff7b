package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/flipgrid/internal/card"
	"github.com/five82/flipgrid/internal/flip"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flip.Duration != 500*time.Millisecond {
		t.Fatalf("Duration = %v, want 500ms", cfg.Flip.Duration)
	}
	if cfg.Flip.FrontToBack != flip.Left || cfg.Flip.BackToFront != flip.Right {
		t.Fatalf("directions = %s/%s, want left/right", cfg.Flip.FrontToBack, cfg.Flip.BackToFront)
	}
	if cfg.Items != defaultItems || cfg.Columns != defaultColumns || cfg.Rows != defaultRows {
		t.Fatalf("grid = %d items %dx%d", cfg.Items, cfg.Columns, cfg.Rows)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := Load(""); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(DefaultPath(), home) {
		t.Fatalf("DefaultPath = %q, want it under HOME %q", DefaultPath(), home)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, "config.toml", `
duration_ms = 300
front_to_back = " Right "
back_to_front = "LEFT"
padding = 0
margin = 2
scale = "stretch"
items = 12
columns = 3
rows = 2
card_width = 16
card_height = 6
front_title = "  Photo %d  "
back_body = " tap again "
debug_log = "~/flip.log"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flip.Duration != 300*time.Millisecond || cfg.Flip.FrontToBack != flip.Right || cfg.Flip.BackToFront != flip.Left {
		t.Fatalf("flip options = %+v", cfg.Flip)
	}
	want := card.Options{Width: 16, Height: 6, Padding: 0, Margin: 2, Scale: card.ScaleStretch}
	if cfg.Card != want {
		t.Fatalf("card options = %+v, want %+v", cfg.Card, want)
	}
	if cfg.Items != 12 || cfg.Columns != 3 || cfg.Rows != 2 {
		t.Fatalf("grid = %d items %dx%d", cfg.Items, cfg.Columns, cfg.Rows)
	}
	if cfg.FrontTitle != "Photo %d" || cfg.BackTitle != defaultBackTitle || cfg.BackBody != "tap again" {
		t.Fatalf("titles = %q %q %q", cfg.FrontTitle, cfg.BackTitle, cfg.BackBody)
	}
	if cfg.DebugLog != filepath.Join(home, "flip.log") {
		t.Fatalf("DebugLog = %q", cfg.DebugLog)
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
duration_ms: 800
front_to_back: right
columns: 5
padding: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flip.Duration != 800*time.Millisecond || cfg.Flip.FrontToBack != flip.Right {
		t.Fatalf("flip options = %+v", cfg.Flip)
	}
	if cfg.Columns != 5 || cfg.Card.Padding != 3 || cfg.Rows != defaultRows {
		t.Fatalf("columns=%d padding=%d rows=%d", cfg.Columns, cfg.Card.Padding, cfg.Rows)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	path := writeConfig(t, "config.toml", `
duration_ms = 0
front_to_back = "   "
front_title = ""
items = -4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.Flip != def.Flip || cfg.Items != def.Items || cfg.FrontTitle != def.FrontTitle || cfg.Card.Padding != def.Card.Padding {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	cases := map[string]string{
		"syntax":    `duration_ms = [`,
		"direction": `front_to_back = "up"`,
		"scale":     `scale = "zoom"`,
		"padding":   `padding = -1`,
		"margin":    `margin = -2`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.toml", body))
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}
