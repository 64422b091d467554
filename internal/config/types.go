// Package config loads folio's application settings.
package config

import "time"

// Theme values accepted by Config.Theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Config is the top-level application configuration.
type Config struct {
	Log         LogConfig        `yaml:"log" koanf:"log"`
	Theme       string           `yaml:"theme" koanf:"theme" validate:"oneof=auto dark light"`
	ContentPath string           `yaml:"content_path" koanf:"content_path"`
	Watch       bool             `yaml:"watch" koanf:"watch"`
	Navbar      NavbarConfig     `yaml:"navbar" koanf:"navbar"`
	Transition  TransitionConfig `yaml:"transition" koanf:"transition"`
	SSH         SSHConfig        `yaml:"ssh" koanf:"ssh"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	File  string `yaml:"file" koanf:"file"`
	JSON  bool   `yaml:"json" koanf:"json"`
}

// NavbarConfig holds the navbar layout thresholds.
type NavbarConfig struct {
	CompactThreshold int `yaml:"compact_threshold" koanf:"compact_threshold" validate:"min=1"`
	MobileBreakpoint int `yaml:"mobile_breakpoint" koanf:"mobile_breakpoint" validate:"min=40"`
}

// TransitionConfig drives the page transition frame loop.
type TransitionConfig struct {
	Duration time.Duration `yaml:"duration" koanf:"duration" validate:"min=0"`
	FPS      int           `yaml:"fps" koanf:"fps" validate:"min=1,max=240"`
}

// SSHConfig configures `folio serve`.
type SSHConfig struct {
	Host        string        `yaml:"host" koanf:"host"`
	Port        int           `yaml:"port" koanf:"port" validate:"min=1,max=65535"`
	HostKeyPath string        `yaml:"host_key_path" koanf:"host_key_path" validate:"required"`
	IdleTimeout time.Duration `yaml:"idle_timeout" koanf:"idle_timeout" validate:"min=0"`
	MaxTimeout  time.Duration `yaml:"max_timeout" koanf:"max_timeout" validate:"min=0"`
}
