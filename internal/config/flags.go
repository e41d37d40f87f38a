package config

import "flag"

// Flags holds command-line overrides. Fields are nil when the flag was not
// registered on the command's flag set.
type Flags struct {
	config     *string
	debug      *bool
	output     *string
	glNames    *string
	tests      *bool
	width      *int
	height     *int
	windowed   *bool
	fullscreen *bool
}

// GeneratorFlags registers the flags of the glbindgen subcommands on fs.
func GeneratorFlags(fs *flag.FlagSet) *Flags {
	f := commonFlags(fs)
	f.output = fs.String("output", "", "Generated file name (default glbind_gen.go)")
	f.glNames = fs.String("gl-names", "", "GL name policy for untagged fields: field or snake")
	f.tests = fs.Bool("tests", false, "Also scan _test.go files")
	return f
}

// DemoFlags registers the demo window flags on fs.
func DemoFlags(fs *flag.FlagSet) *Flags {
	f := commonFlags(fs)
	f.windowed = fs.Bool("windowed", false, "Run in windowed mode")
	f.fullscreen = fs.Bool("fullscreen", false, "Run in fullscreen mode")
	f.width = fs.Int("width", 0, "Window width")
	f.height = fs.Int("height", 0, "Window height")
	return f
}

func commonFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config: fs.String("config", "", "Path to config file"),
		debug:  fs.Bool("debug", false, "Enable debug logging"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil || f.config == nil {
		return ""
	}
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if isSet(f.debug) {
		cfg.Logging.Level = "debug"
	}
	if f.output != nil && *f.output != "" {
		cfg.Generate.Output = *f.output
	}
	if f.glNames != nil && *f.glNames != "" {
		cfg.Generate.GLNames = *f.glNames
	}
	if isSet(f.tests) {
		cfg.Generate.Tests = true
	}
	if isSet(f.windowed) {
		cfg.Window.Fullscreen = false
	}
	if isSet(f.fullscreen) {
		cfg.Window.Fullscreen = true
	}
	if f.width != nil && *f.width > 0 {
		cfg.Window.Width = *f.width
	}
	if f.height != nil && *f.height > 0 {
		cfg.Window.Height = *f.height
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}
