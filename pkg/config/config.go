// Package config loads and persists the dyeseq configuration file.
//
// The configuration holds the defaults the boundary layers resolve
// before invoking the search core: the base pixel color, the add/sub
// step constants and the default depth bound. The core never reads this
// file - callers load a Config once, resolve it into explicit search
// parameters and pass those by value.
//
// The file is TOML, by default at ~/.config/dyeseq/config.toml:
//
//	[base]
//	r = 241
//	g = 219
//	b = 29
//
//	[steps]
//	add = 32
//	sub = 16
//
//	[search]
//	max_depth = 48
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/errors"
)

// Defaults for a missing configuration file.
const (
	DefaultAdd      = 32
	DefaultSub      = 16
	DefaultMaxDepth = 48
)

// DefaultBase is the base pixel used when no configuration exists.
var DefaultBase = dye.Color{R: 241, G: 219, B: 29}

// Base is the [base] section: the base pixel color.
// Channels are plain ints so that out-of-range file values surface as
// validation errors instead of wrapping silently.
type Base struct {
	R int `toml:"r"`
	G int `toml:"g"`
	B int `toml:"b"`
}

// Steps is the [steps] section: the per-dye step constants.
type Steps struct {
	Add int `toml:"add"`
	Sub int `toml:"sub"`
}

// Search is the [search] section.
type Search struct {
	MaxDepth int `toml:"max_depth"`
}

// Config is the complete dyeseq configuration.
type Config struct {
	Base   Base   `toml:"base"`
	Steps  Steps  `toml:"steps"`
	Search Search `toml:"search"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Base:   Base{R: int(DefaultBase.R), G: int(DefaultBase.G), B: int(DefaultBase.B)},
		Steps:  Steps{Add: DefaultAdd, Sub: DefaultSub},
		Search: Search{MaxDepth: DefaultMaxDepth},
	}
}

// Validate checks the loaded values. A configuration with out-of-range
// channels or a negative depth bound is rejected as a whole; dyeseq
// never patches individual bad values back to defaults.
func (c Config) Validate() error {
	if err := errors.ValidateColor(c.Base.R, c.Base.G, c.Base.B); err != nil {
		return err
	}
	return errors.ValidateDepth(c.Search.MaxDepth)
}

// BaseColor returns the configured base pixel as a dye.Color.
// Call Validate first; out-of-range values would be truncated here.
func (c Config) BaseColor() dye.Color {
	return dye.Color{R: uint8(c.Base.R), G: uint8(c.Base.G), B: uint8(c.Base.B)}
}

// DefaultPath returns the configuration file location following the
// XDG convention (~/.config/dyeseq/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dyeseq", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dyeseq", "config.toml"), nil
}

// Load reads the configuration at path. A missing file returns the
// defaults; a file that cannot be parsed or fails validation returns a
// typed INVALID_CONFIG error rather than falling back.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config %s", path)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
// as needed.
func Save(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
