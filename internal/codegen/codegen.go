// Package codegen drives glbind code generation: it loads Go packages,
// parses their annotated program structs and writes one generated file per
// package next to the sources.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/Faultbox/glbind/internal/codegen/gen"
	"github.com/Faultbox/glbind/internal/codegen/parse"
	"github.com/Faultbox/glbind/internal/config"
	"github.com/Faultbox/glbind/internal/logger"
)

// Config holds the settings of one generation run.
type Config struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// Output is the generated file name. Programs declared in _test.go
	// files go to the same name with a _test suffix.
	Output    string
	Naming    parse.Naming
	Tests     bool
	BuildTags []string
}

// FromConfig converts the generate section of a loaded config.
func FromConfig(cfg *config.Config) Config {
	return Config{
		Output:    cfg.Generate.Output,
		Naming:    parse.Naming(cfg.Generate.GLNames),
		Tests:     cfg.Generate.Tests,
		BuildTags: cfg.Generate.BuildTags,
	}
}

func (c Config) output() string {
	if c.Output == "" {
		return "glbind_gen.go"
	}
	return c.Output
}

func (c Config) testOutput() string {
	return strings.TrimSuffix(c.output(), ".go") + "_test.go"
}

// Unit is the set of programs written to one generated file.
type Unit struct {
	Package  string
	Name     string
	Path     string
	Programs []*parse.Program
	Err      error
	// Written is true when the file changed on disk.
	Written bool
}

// PackageModes returns the package load modes needed for generation.
func PackageModes() packages.LoadMode {
	return packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax
}

// Load loads the packages matched by patterns.
func Load(cfg Config, patterns ...string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pcfg := &packages.Config{
		Mode:  PackageModes(),
		Dir:   cfg.Dir,
		Tests: cfg.Tests,
		Fset:  token.NewFileSet(),
	}
	if len(cfg.BuildTags) > 0 {
		pcfg.BuildFlags = []string{"-tags=" + strings.Join(cfg.BuildTags, ",")}
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	// Generation is syntactic, so unresolved imports, which are common
	// while generated code is stale, only matter when nothing was parsed.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.ParseError || len(pkg.Syntax) == 0 {
				errs = append(errs, e)
				continue
			}
			logger.Debug("ignoring package error", zap.String("package", pkg.PkgPath), zap.String("error", e.Msg))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("loading packages: %w", errors.Join(errs...))
	}
	return selectPackages(pkgs, cfg.Tests), nil
}

// selectPackages drops the test binaries and external test packages that
// packages.Load returns in test mode, and keeps the test variant of every
// other package since it includes the _test.go files.
func selectPackages(pkgs []*packages.Package, tests bool) []*packages.Package {
	if !tests {
		return pkgs
	}
	best := make(map[string]*packages.Package)
	var order []string
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, "_test") || strings.HasSuffix(pkg.PkgPath, ".test") {
			continue
		}
		cur, ok := best[pkg.PkgPath]
		if !ok {
			order = append(order, pkg.PkgPath)
		}
		if !ok || len(pkg.Syntax) > len(cur.Syntax) {
			best[pkg.PkgPath] = pkg
		}
	}
	out := make([]*packages.Package, len(order))
	for i, path := range order {
		out[i] = best[path]
	}
	return out
}

// Parse parses the annotated structs of pkg into one unit per output file.
// Files generated by any tool are skipped. A unit whose structs fail to
// parse carries the error and no programs.
func Parse(cfg Config, pkg *packages.Package) []*Unit {
	dir := packageDir(pkg)
	units := map[bool]*Unit{
		false: {Package: pkg.PkgPath, Name: pkg.Name, Path: filepath.Join(dir, cfg.output())},
		true:  {Package: pkg.PkgPath, Name: pkg.Name, Path: filepath.Join(dir, cfg.testOutput())},
	}
	errs := map[bool][]error{}

	for _, f := range pkg.Syntax {
		filename := pkg.Fset.Position(f.Package).Filename
		if skipFile(f, filename, cfg) {
			continue
		}
		progs, err := parse.File(pkg.Fset, f, parse.Options{Naming: cfg.Naming})
		test := strings.HasSuffix(filename, "_test.go")
		if err != nil {
			errs[test] = append(errs[test], err)
			continue
		}
		units[test].Programs = append(units[test].Programs, progs...)
	}

	out := make([]*Unit, 0, 2)
	for _, test := range []bool{false, true} {
		u := units[test]
		if len(errs[test]) > 0 {
			u.Programs = nil
			u.Err = errors.Join(errs[test]...)
		}
		if test && !cfg.Tests {
			continue
		}
		out = append(out, u)
	}
	return out
}

func skipFile(f *ast.File, filename string, cfg Config) bool {
	base := filepath.Base(filename)
	if base == cfg.output() || base == cfg.testOutput() || ast.IsGenerated(f) {
		return true
	}
	return !parse.HasDirective(f)
}

func packageDir(pkg *packages.Package) string {
	if pkg.Dir != "" {
		return pkg.Dir
	}
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return "."
}

// Generate loads the packages matched by patterns and writes their
// generated files. Units that fail to parse are left untouched on disk;
// their errors are joined into the returned error.
func Generate(cfg Config, patterns ...string) ([]*Unit, error) {
	pkgs, err := Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}

	var (
		units []*Unit
		errs  []error
	)
	for _, pkg := range pkgs {
		for _, u := range Parse(cfg, pkg) {
			units = append(units, u)
			if u.Err != nil {
				errs = append(errs, u.Err)
				continue
			}
			if err := Write(u); err != nil {
				u.Err = err
				errs = append(errs, err)
			}
		}
	}
	return units, errors.Join(errs...)
}

// Write renders u and writes it if the content changed. A unit without
// programs removes a previously generated file.
func Write(u *Unit) error {
	log := logger.With(zap.String("package", u.Package), zap.String("file", u.Path))

	if len(u.Programs) == 0 {
		old, err := os.ReadFile(u.Path)
		if err != nil || !bytes.HasPrefix(old, []byte(gen.Header)) {
			return nil
		}
		log.Info("removing stale generated file")
		u.Written = true
		return os.Remove(u.Path)
	}

	sort.SliceStable(u.Programs, func(i, j int) bool {
		a, b := u.Programs[i].Pos, u.Programs[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	src, err := gen.File(u.Name, u.Programs)
	if err != nil {
		return fmt.Errorf("%s: %w", u.Package, err)
	}

	if old, err := os.ReadFile(u.Path); err == nil && bytes.Equal(old, src) {
		log.Debug("generated file up to date", zap.Int("programs", len(u.Programs)))
		return nil
	}
	if err := os.WriteFile(u.Path, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", u.Path, err)
	}
	u.Written = true
	log.Info("generated", zap.Int("programs", len(u.Programs)))
	return nil
}
