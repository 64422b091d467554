package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/navigation"
	"github.com/alexisbeaulieu97/folio/internal/tui"
)

// loadConfig reads the config file and applies the persistent flags that
// were set explicitly on the command line.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("content") {
		cfg.ContentPath = flags.contentPath
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flags.theme
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = flags.watch
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) (*logger.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !cfg.Log.JSON,
		Writer:        w,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// themePreference pins the theme when the config names one. Auto leaves the
// preference to the renderer's background detection.
func themePreference(theme string) navigation.PreferenceSource {
	switch theme {
	case config.ThemeDark:
		return navigation.FixedPreference(true)
	case config.ThemeLight:
		return navigation.FixedPreference(false)
	default:
		return nil
	}
}

func tuiOptions(cfg *config.Config, c *content.Content, log *logger.Logger) tui.Options {
	return tui.Options{
		Content:            c,
		Preference:         themePreference(cfg.Theme),
		Logger:             log,
		CompactThreshold:   cfg.Navbar.CompactThreshold,
		MobileBreakpoint:   cfg.Navbar.MobileBreakpoint,
		TransitionDuration: cfg.Transition.Duration,
		FPS:                cfg.Transition.FPS,
	}
}
