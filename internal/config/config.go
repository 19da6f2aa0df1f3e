// Package config loads the user's blocksort settings from
// ~/.blocksort/config.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"blocksort-cli/internal/dnd"

	"github.com/BurntSushi/toml"
)

// DefaultCooldown is the reorder engine's default hit-test window.
const DefaultCooldown = dnd.DefaultCooldown

type Config struct {
	// Source is the default data source spec (see source.Open).
	Source string `toml:"source" json:"source" yaml:"source"`

	// Cooldown limits how often a drag re-evaluates overlap. It is also the
	// glide duration for displaced blocks.
	Cooldown Duration `toml:"cooldown" json:"cooldown" yaml:"cooldown"`

	// LogLevel is a charmbracelet/log level name (debug, info, warn, error).
	LogLevel string `toml:"log_level" json:"log_level" yaml:"log_level"`

	// LogFile receives logs while the TUI owns the terminal. Empty discards them.
	LogFile string `toml:"log_file" json:"log_file,omitempty" yaml:"log_file,omitempty"`

	TUI TUIConfig `toml:"tui" json:"tui" yaml:"tui"`
}

type TUIConfig struct {
	// Border selects the block border style: rounded, normal or ascii.
	Border string `toml:"border" json:"border" yaml:"border"`
	// Gap is the number of blank rows between blocks.
	Gap int `toml:"gap" json:"gap" yaml:"gap"`
	// Width caps the block width in cells. Zero means fit the terminal.
	Width int `toml:"width" json:"width" yaml:"width"`
}

// Duration is a time.Duration written as a Go duration string ("300ms").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var borders = map[string]bool{"rounded": true, "normal": true, "ascii": true}

func Default() Config {
	return Config{
		Source:   "demo",
		Cooldown: Duration{DefaultCooldown},
		LogLevel: "info",
		TUI:      TUIConfig{Border: "rounded"},
	}
}

func (c Config) Validate() error {
	if c.Cooldown.Duration <= 0 {
		return fmt.Errorf("cooldown must be positive, got %s", c.Cooldown.Duration)
	}
	if !borders[c.TUI.Border] {
		return fmt.Errorf("tui.border must be one of rounded, normal, ascii; got %q", c.TUI.Border)
	}
	if c.TUI.Gap < 0 {
		return fmt.Errorf("tui.gap must not be negative, got %d", c.TUI.Gap)
	}
	if c.TUI.Width < 0 {
		return fmt.Errorf("tui.width must not be negative, got %d", c.TUI.Width)
	}
	return nil
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.blocksort).
	if v := strings.TrimSpace(os.Getenv("BLOCKSORT_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".blocksort"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or at Path() when path is empty. A missing
// file yields Default(). Keys left out of the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	md, err := toml.Decode(string(b), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path (or Path()) atomically.
func Save(path string, cfg Config) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.toml.*.tmp", path, buf.Bytes(), 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
