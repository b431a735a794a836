package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultBaseURL points at a locally running Relax server.
	DefaultBaseURL = "http://localhost:5000"
	// DefaultQuoteTimeout bounds the quote request.
	DefaultQuoteTimeout = 5 * time.Second
	// DefaultMediaTimeout bounds gif and meme requests.
	DefaultMediaTimeout = 10 * time.Second
	// DefaultMaxCycles is the number of breathing cycles in a session.
	DefaultMaxCycles = 3

	appDirName = "relax"
)

// Config represents the relax client configuration document.
type Config struct {
	BaseURL   string            `yaml:"base_url" validate:"required,base_url"`
	StateDir  string            `yaml:"state_dir,omitempty"`
	Timeouts  Timeouts          `yaml:"timeouts"`
	Log       LogSettings       `yaml:"log"`
	Breathing BreathingSettings `yaml:"breathing"`
	Metrics   MetricsSettings   `yaml:"metrics"`
}

// Timeouts holds per-endpoint request deadlines.
type Timeouts struct {
	Quote time.Duration `yaml:"quote" validate:"min=1ms,max=1m"`
	Media time.Duration `yaml:"media" validate:"min=1ms,max=1m"`
}

// LogSettings controls the zerolog output.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	// File receives TUI logs; relative paths resolve against StateDir.
	File string `yaml:"file,omitempty"`
}

// BreathingSettings tunes the breathing exercise.
type BreathingSettings struct {
	MaxCycles int `yaml:"max_cycles" validate:"min=1,max=10"`
	// CompletionOnStop shows the completion card after a manual stop, matching
	// the behaviour of the web client.
	CompletionOnStop bool `yaml:"completion_on_stop"`
}

// MetricsSettings configures the optional Prometheus listener.
type MetricsSettings struct {
	Addr string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		StateDir: defaultStateDir(),
		Timeouts: Timeouts{
			Quote: DefaultQuoteTimeout,
			Media: DefaultMediaTimeout,
		},
		Log: LogSettings{
			Level: "info",
			File:  "relax.log",
		},
		Breathing: BreathingSettings{
			MaxCycles:        DefaultMaxCycles,
			CompletionOnStop: true,
		},
	}
}

// LogPath resolves the log file location.
func (c Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.StateDir, c.Log.File)
}

// ThemePath is where the theme preference is persisted.
func (c Config) ThemePath() string {
	return filepath.Join(c.StateDir, "theme.json")
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, "config.yaml"), nil
}

func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appDirName)
	}
	return filepath.Join(home, ".local", "state", appDirName)
}
