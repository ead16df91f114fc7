// Package config loads the optional wright.toml project file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"wright/internal/version"
)

var (
	// ErrVersionMismatch is returned when [package].wright does not admit the running tool.
	ErrVersionMismatch = errors.New("wright version does not satisfy the project constraint")
	// ErrInvalidValue wraps values outside their allowed set.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ColorMode is the [render].color setting.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

type Package struct {
	Name string `toml:"name"`
	// Wright is a semver constraint on the tool version, e.g. "^0.1".
	Wright string `toml:"wright"`
}

type Sources struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type Render struct {
	Color    ColorMode `toml:"color"`
	ASCII    bool      `toml:"ascii"`
	Context  int       `toml:"context"`
	TabWidth int       `toml:"tab-width"`
}

type Parse struct {
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
	MaxDiagnostics int  `toml:"max-diagnostics"`
}

// Config is the decoded wright.toml. Root is the directory that holds the
// file; Path is empty when defaults are used.
type Config struct {
	Package Package `toml:"package"`
	Sources Sources `toml:"sources"`
	Render  Render  `toml:"render"`
	Parse   Parse   `toml:"parse"`

	Path string `toml:"-"`
	Root string `toml:"-"`
}

// Default returns the configuration used without a project file.
func Default() Config {
	return Config{
		Render: Render{Color: ColorAuto, Context: 1, TabWidth: 4},
		Parse:  Parse{Cache: true, MaxDiagnostics: 100},
	}
}

// Load decodes the file at path over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	if err := cfg.validate(meta); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds wright.toml above startDir and loads it; without one it
// returns Default rooted at startDir.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		cfg := Default()
		cfg.Root, _ = filepath.Abs(startDir)
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) validate(meta toml.MetaData) error {
	switch c.Render.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("%w: render.color = %q, want auto, on or off", ErrInvalidValue, c.Render.Color)
	}
	if c.Render.Context < 0 {
		return fmt.Errorf("%w: render.context = %d", ErrInvalidValue, c.Render.Context)
	}
	if meta.IsDefined("render", "tab-width") && c.Render.TabWidth <= 0 {
		return fmt.Errorf("%w: render.tab-width = %d", ErrInvalidValue, c.Render.TabWidth)
	}
	if c.Parse.Jobs < 0 || c.Parse.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: parse.jobs and parse.max-diagnostics must not be negative", ErrInvalidValue)
	}
	return c.CheckVersion()
}

// CheckVersion tests the running tool against [package].wright.
func (c *Config) CheckVersion() error {
	constraint := strings.TrimSpace(c.Package.Wright)
	if constraint == "" {
		return nil
	}
	ok, err := version.Satisfies(constraint)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s requires %q, running %s", ErrVersionMismatch, FileName, constraint, version.Version)
	}
	return nil
}
