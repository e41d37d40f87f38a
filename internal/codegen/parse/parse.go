package parse

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"strings"
)

// Directive marks a struct as a shader program.
const Directive = "//glbind:program"

// File parses every annotated struct of f. Errors of all structs are
// collected, sorted by position and returned as a scanner.ErrorList.
func File(fset *token.FileSet, f *ast.File, opts Options) ([]*Program, error) {
	if opts.Naming == "" {
		opts.Naming = NamingField
	}
	p := &parser{fset: fset, file: f, opts: opts}
	var progs []*Program
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}
			dir, ok := findDirective(doc)
			if !ok {
				continue
			}
			if prog := p.program(ts, dir); prog != nil {
				progs = append(progs, prog)
			}
		}
	}
	p.errs.Sort()
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return progs, nil
}

// HasDirective reports whether any type declaration of f is annotated.
func HasDirective(f *ast.File) bool {
	for _, cg := range f.Comments {
		if _, ok := findDirective(cg); ok {
			return true
		}
	}
	return false
}

type parser struct {
	fset *token.FileSet
	file *ast.File
	opts Options
	errs scanner.ErrorList

	// package names referenced by the current program
	refs map[string]bool
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	p.errs.Add(p.fset.Position(pos), fmt.Sprintf(format, args...))
}

func (p *parser) program(ts *ast.TypeSpec, dir *ast.Comment) *Program {
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		p.errorf(ts.Pos(), "glbind:program can only be used on structs")
		return nil
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		p.errorf(ts.TypeParams.Pos(), "glbind:program does not support generic structs")
		return nil
	}

	nerrs := len(p.errs)
	p.refs = make(map[string]bool)
	prog := &Program{
		Name: ts.Name.Name,
		Pos:  p.fset.Position(ts.Pos()),
	}
	prog.Vertex, prog.Fragment = p.directive(dir)
	p.fields(prog, st)
	prog.Imports = p.imports()

	if len(p.errs) > nerrs {
		return nil
	}
	return prog
}

func findDirective(doc *ast.CommentGroup) (*ast.Comment, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t') {
			return c, true
		}
	}
	return nil, false
}
