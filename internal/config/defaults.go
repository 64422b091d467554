package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const appName = "folio"

// DefaultConfigPath is $XDG_CONFIG_HOME/folio/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DefaultLogPath is $XDG_STATE_HOME/folio/folio.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// DefaultHostKeyPath is $XDG_DATA_HOME/folio/id_ed25519.
func DefaultHostKeyPath() string {
	return filepath.Join(xdg.DataHome, appName, "id_ed25519")
}

// Default returns the configuration used when no file or env overrides it.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
		Theme: ThemeAuto,
		Navbar: NavbarConfig{
			CompactThreshold: 20,
			MobileBreakpoint: 100,
		},
		Transition: TransitionConfig{
			Duration: 300 * time.Millisecond,
			FPS:      60,
		},
		SSH: SSHConfig{
			Host:        "localhost",
			Port:        23234,
			HostKeyPath: DefaultHostKeyPath(),
			IdleTimeout: 10 * time.Minute,
			MaxTimeout:  time.Hour,
		},
	}
}
