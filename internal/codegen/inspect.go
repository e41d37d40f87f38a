package codegen

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glbind/internal/codegen/parse"
)

// PackageModel is the YAML view of one generated file.
type PackageModel struct {
	Package  string           `yaml:"package"`
	File     string           `yaml:"file"`
	Programs []*parse.Program `yaml:"programs"`
}

// Inspect parses the packages matched by patterns and writes their program
// models to w as YAML, without generating anything.
func Inspect(cfg Config, w io.Writer, patterns ...string) error {
	pkgs, err := Load(cfg, patterns...)
	if err != nil {
		return err
	}

	var (
		models []PackageModel
		errs   []error
	)
	for _, pkg := range pkgs {
		for _, u := range Parse(cfg, pkg) {
			if u.Err != nil {
				errs = append(errs, u.Err)
				continue
			}
			if len(u.Programs) == 0 {
				continue
			}
			models = append(models, PackageModel{Package: u.Package, File: u.Path, Programs: u.Programs})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(models); err != nil {
		return fmt.Errorf("encoding models: %w", err)
	}
	return enc.Close()
}
