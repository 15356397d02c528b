package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	if _, err := Load(missing, false); err != nil {
		t.Fatalf("implicit missing file should fall back to defaults, got %v", err)
	}
	if _, err := Load(missing, true); err == nil {
		t.Fatal("explicit missing file should be an error")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
font_size = 22
max_font_size = 30
cell_width_px = 10
always_on_top = false
journal_dir = "/tmp/journal"
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FontSize != 22 || cfg.MaxFontSize != 30 || cfg.CellWidthPx != 10 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.AlwaysOnTop {
		t.Error("AlwaysOnTop = true, want false")
	}
	if cfg.JournalDir != "/tmp/journal" {
		t.Errorf("JournalDir = %q", cfg.JournalDir)
	}
	if cfg.MinFontSize != 8 {
		t.Errorf("MinFontSize = %d, want default 8", cfg.MinFontSize)
	}
}

func TestLoadFractionalCellWidth(t *testing.T) {
	path := writeConfig(t, "cell_width_px = 8.4\n")
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CellWidthPx != 8.4 {
		t.Fatalf("CellWidthPx = %v, want 8.4", cfg.CellWidthPx)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "font_sise = 12\n")
	_, err := Load(path, true)
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadRejectsInvalidRange(t *testing.T) {
	path := writeConfig(t, "font_size = 50\n")
	if _, err := Load(path, true); err == nil {
		t.Fatal("expected font_size outside range to be rejected")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "min zero", mutate: func(c *Config) { c.MinFontSize = 0 }},
		{name: "min above max", mutate: func(c *Config) { c.MinFontSize = 40; c.MaxFontSize = 20; c.FontSize = 30 }},
		{name: "font below min", mutate: func(c *Config) { c.FontSize = 7 }},
		{name: "cell width zero", mutate: func(c *Config) { c.CellWidthPx = 0 }},
		{name: "cell width below one", mutate: func(c *Config) { c.CellWidthPx = 0.5 }},
		{name: "fractional cell width", mutate: func(c *Config) { c.CellWidthPx = 8.4 }, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
