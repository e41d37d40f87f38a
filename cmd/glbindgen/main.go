// glbindgen generates type-safe shader program wrappers from Go structs
// annotated with //glbind:program.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"go/scanner"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Faultbox/glbind/internal/codegen"
	"github.com/Faultbox/glbind/internal/config"
	"github.com/Faultbox/glbind/internal/logger"
)

func main() {
	args := os.Args[1:]
	command := "generate"
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' && isCommand(args[0]) {
		command, args = args[0], args[1:]
	}

	switch command {
	case "generate", "gen":
		os.Exit(cmdGenerate(args))
	case "inspect":
		os.Exit(cmdInspect(args))
	case "watch":
		os.Exit(cmdWatch(args))
	case "init":
		os.Exit(cmdInit(args))
	case "help", "-h", "--help":
		printUsage()
	}
}

func isCommand(s string) bool {
	switch s {
	case "generate", "gen", "inspect", "watch", "init", "help":
		return true
	}
	return false
}

func printUsage() {
	fmt.Println(`glbindgen - shader program binding generator

Usage:
  glbindgen [command] [options] [packages]

Commands:
  generate [packages]   Write glbind_gen.go next to annotated structs (default)
  inspect [packages]    Print the parsed program models as YAML
  watch [packages]      Regenerate on .go, .vert and .frag changes
  init                  Write a glbind.yaml with default settings

Packages default to ".". Run "glbindgen <command> -h" for options.

Examples:
  glbindgen ./...
  glbindgen inspect ./internal/programs
  glbindgen watch -debug ./...
  //go:generate go run github.com/Faultbox/glbind/cmd/glbindgen`)
}

// setup parses the command's flags and loads config and logger.
func setup(name string, args []string) (*config.Config, []string, bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.GeneratorFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return nil, nil, false
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return nil, nil, false
	}
	return cfg, fs.Args(), true
}

func cmdGenerate(args []string) int {
	cfg, patterns, ok := setup("generate", args)
	if !ok {
		return 1
	}
	defer logger.Sync()

	units, err := codegen.Generate(codegen.FromConfig(cfg), patterns...)
	if err != nil {
		printErrors(os.Stderr, err)
		return 1
	}
	written := 0
	for _, u := range units {
		if u.Written {
			written++
		}
	}
	logger.Debug("generation finished", zap.Int("units", len(units)), zap.Int("written", written))
	return 0
}

func cmdInspect(args []string) int {
	cfg, patterns, ok := setup("inspect", args)
	if !ok {
		return 1
	}
	defer logger.Sync()

	if err := codegen.Inspect(codegen.FromConfig(cfg), os.Stdout, patterns...); err != nil {
		printErrors(os.Stderr, err)
		return 1
	}
	return 0
}

func cmdWatch(args []string) int {
	cfg, patterns, ok := setup("watch", args)
	if !ok {
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", zap.Strings("packages", patterns), zap.Duration("debounce", cfg.Watch.Debounce))
	if err := codegen.Watch(ctx, codegen.FromConfig(cfg), cfg.Watch.Debounce, patterns...); err != nil {
		printErrors(os.Stderr, err)
		return 1
	}
	return 0
}

func cmdInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	flags := config.GeneratorFlags(fs)
	global := fs.Bool("global", false, "Write to the user config directory instead of the current one")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	path := config.FileName
	if *global {
		path = filepath.Join(config.ConfigDir(), config.FileName)
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s already exists (use -force to overwrite)\n", path)
		return 1
	}

	if *global {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote %s\n", path)
	return 0
}

var (
	posColor   = color.New(color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

// printErrors prints every located diagnostic in err as file:line:col.
func printErrors(w io.Writer, err error) {
	for _, e := range flatten(err) {
		var located *scanner.Error
		if errors.As(e, &located) {
			posColor.Fprintf(w, "%s: ", located.Pos)
			fmt.Fprintln(w, located.Msg)
			continue
		}
		errorColor.Fprint(w, "error: ")
		fmt.Fprintln(w, e)
	}
}

// flatten expands joined errors and error lists into single errors.
func flatten(err error) []error {
	switch e := err.(type) {
	case nil:
		return nil
	case scanner.ErrorList:
		out := make([]error, len(e))
		for i, x := range e {
			out[i] = x
		}
		return out
	case interface{ Unwrap() []error }:
		var out []error
		for _, x := range e.Unwrap() {
			out = append(out, flatten(x)...)
		}
		return out
	}
	return []error{err}
}
