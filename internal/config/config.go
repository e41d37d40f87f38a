// Package config handles glbindgen and demo configuration loading.
package config

import (
	"fmt"
	"time"
)

// Config holds all settings.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Watch    WatchConfig    `yaml:"watch"`
	Window   WindowConfig   `yaml:"window"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GenerateConfig holds code generation settings.
type GenerateConfig struct {
	Output    string   `yaml:"output"`     // File written next to each package's sources
	GLNames   string   `yaml:"gl_names"`   // "field" or "snake"
	Tests     bool     `yaml:"tests"`      // Also scan _test.go files
	BuildTags []string `yaml:"build_tags"` // Passed to the package loader
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// WindowConfig holds demo window settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Output:  "glbind_gen.go",
			GLNames: "field",
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
		Window: WindowConfig{
			Title:  "glbind demo",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Generate.GLNames {
	case "field", "snake":
	default:
		return fmt.Errorf("generate.gl_names must be \"field\" or \"snake\", got %q", c.Generate.GLNames)
	}
	if c.Generate.Output == "" {
		return fmt.Errorf("generate.output must not be empty")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
