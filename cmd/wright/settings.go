package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wright/internal/config"
	"wright/internal/diagfmt"
	"wright/internal/driver"
	"wright/internal/observ"
)

// settings merges wright.toml with the command line; flags win.
type settings struct {
	cfg     config.Config
	color   bool
	ascii   bool
	quiet   bool
	timings bool
	maxDiag int
	timer   *observ.Timer
	baseDir string
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	s := &settings{cfg: cfg, ascii: cfg.Render.ASCII, maxDiag: cfg.Parse.MaxDiagnostics}
	if s.baseDir, err = os.Getwd(); err != nil {
		s.baseDir = cfg.Root
	}

	colorMode := string(cfg.Render.Color)
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if s.color, err = resolveColor(colorMode, isTerminal(os.Stderr)); err != nil {
		return nil, err
	}
	if flags.Changed("ascii") {
		if s.ascii, err = flags.GetBool("ascii"); err != nil {
			return nil, fmt.Errorf("failed to get ascii flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.timings {
		s.timer = observ.NewTimer()
	}
	return s, nil
}

func resolveColor(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return tty && os.Getenv("NO_COLOR") == "", nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.color,
		ASCII:     s.ascii,
		Context:   s.cfg.Render.Context,
		TabWidth:  s.cfg.Render.TabWidth,
		BaseDir:   s.baseDir,
		ShowNotes: true,
	}
}

func (s *settings) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: s.maxDiag,
		Jobs:           s.cfg.Parse.Jobs,
		Include:        s.cfg.Sources.Include,
		Exclude:        s.cfg.Sources.Exclude,
		Timer:          s.timer,
	}
}
