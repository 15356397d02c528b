// Package config loads binderclip settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fsmiamoto/binderclip/internal/reflow"
)

// Config holds user-tunable settings. Zero values in the file fall back to
// Default().
type Config struct {
	FontSize    int     `toml:"font_size"`
	MinFontSize int     `toml:"min_font_size"`
	MaxFontSize int     `toml:"max_font_size"`
	CellWidthPx float64 `toml:"cell_width_px"` // pixels per terminal column, may be fractional
	AlwaysOnTop bool    `toml:"always_on_top"`
	JournalDir  string  `toml:"journal_dir"` // empty disables the journal
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FontSize:    reflow.DefaultFontSize,
		MinFontSize: reflow.MinFontSize,
		MaxFontSize: reflow.MaxFontSize,
		CellWidthPx: 9,
		AlwaysOnTop: true,
	}
}

// FontRange returns the configured inclusive font size range.
func (c Config) FontRange() reflow.FontRange {
	return reflow.FontRange{Min: c.MinFontSize, Max: c.MaxFontSize}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.MinFontSize < 1 {
		return fmt.Errorf("min_font_size must be at least 1, got %d", c.MinFontSize)
	}
	if c.MinFontSize > c.MaxFontSize {
		return fmt.Errorf("min_font_size %d exceeds max_font_size %d", c.MinFontSize, c.MaxFontSize)
	}
	if !c.FontRange().Contains(c.FontSize) {
		return fmt.Errorf("font_size %d outside [%d, %d]", c.FontSize, c.MinFontSize, c.MaxFontSize)
	}
	if c.CellWidthPx < 1 {
		return fmt.Errorf("cell_width_px must be at least 1, got %g", c.CellWidthPx)
	}
	return nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "binderclip", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error when
// the path was not given explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %q: unknown key %q", path, undecoded[0].String())
	}

	if file.FontSize != 0 {
		cfg.FontSize = file.FontSize
	}
	if file.MinFontSize != 0 {
		cfg.MinFontSize = file.MinFontSize
	}
	if file.MaxFontSize != 0 {
		cfg.MaxFontSize = file.MaxFontSize
	}
	if file.CellWidthPx != 0 {
		cfg.CellWidthPx = file.CellWidthPx
	}
	if md.IsDefined("always_on_top") {
		cfg.AlwaysOnTop = file.AlwaysOnTop
	}
	if file.JournalDir != "" {
		cfg.JournalDir = file.JournalDir
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}
