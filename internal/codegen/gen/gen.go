// Package gen emits the Go source for parsed shader programs: lifecycle
// methods, the vertex record struct with its layout reflection and the
// type-state uniform builder.
package gen

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"github.com/Faultbox/glbind/internal/codegen/parse"
)

// RuntimePath is the import path of the runtime package generated code
// builds on.
const RuntimePath = "github.com/Faultbox/glbind/pkg/glprog"

// Header is the first line of every generated file.
const Header = "// Code generated by glbindgen. DO NOT EDIT."

// Generator accumulates the output for one package.
type Generator struct {
	Buf      bytes.Buffer
	Filename string
	Package  string
}

// NewGenerator returns a generator writing package pkg. filename is only
// used by the formatter to group imports.
func NewGenerator(pkg, filename string) *Generator {
	return &Generator{Package: pkg, Filename: filename}
}

// File returns the formatted source for progs, which all belong to
// package pkg.
func File(pkg string, progs []*parse.Program) ([]byte, error) {
	g := NewGenerator(pkg, "glbind_gen.go")
	return g.Generate(progs)
}

// Generate renders progs and formats the result.
func (g *Generator) Generate(progs []*parse.Program) ([]byte, error) {
	g.Buf.Reset()
	views := make([]*program, len(progs))
	for i, p := range progs {
		views[i] = newProgram(p)
	}
	if err := headerTmpl.Execute(&g.Buf, g.header(views)); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	for _, v := range views {
		for _, t := range programTmpls {
			if err := t.Execute(&g.Buf, v); err != nil {
				return nil, fmt.Errorf("program %s: %s: %w", v.Name, t.Name(), err)
			}
		}
	}
	return g.Format()
}

// Format runs the accumulated output through goimports formatting without
// resolving imports.
func (g *Generator) Format() ([]byte, error) {
	out, err := imports.Process(g.Filename, g.Buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, g.Buf.Bytes())
	}
	return out, nil
}

type header struct {
	Package string
	Std     []parse.Import
	Ext     []parse.Import
	Embeds  []embed
}

type embed struct {
	Var  string
	File string
}

func (g *Generator) header(views []*program) header {
	h := header{Package: g.Package}
	if len(views) == 0 {
		return h
	}
	needUnsafe, needEmbed := false, false
	for _, v := range views {
		needUnsafe = needUnsafe || len(v.Attributes) > 0
		needEmbed = needEmbed || v.Embeds()
	}
	seen := make(map[parse.Import]bool)
	add := func(imp parse.Import) {
		if seen[imp] {
			return
		}
		seen[imp] = true
		if isStd(imp.Path) {
			h.Std = append(h.Std, imp)
		} else {
			h.Ext = append(h.Ext, imp)
		}
	}
	if needEmbed {
		add(parse.Import{Name: "_", Path: "embed"})
	}
	add(parse.Import{Path: "fmt"})
	if needUnsafe {
		add(parse.Import{Path: "unsafe"})
	}
	add(parse.Import{Path: RuntimePath})
	for _, v := range views {
		for _, imp := range v.Imports {
			add(imp)
		}
		h.Embeds = append(h.Embeds, v.embeds...)
	}
	return h
}

// program adds the derived names the templates need to a parsed program.
type program struct {
	*parse.Program

	Ctor         string
	VertexExpr   string
	FragmentExpr string
	// Params declares the builder type parameters, "HasA, HasB any".
	Params string
	// Builder is the builder type as seen by its own methods.
	Builder string
	// Pending is the builder instantiation with no uniform set.
	Pending string
	Setters []setter

	embeds []embed
}

type setter struct {
	Field  string
	Param  string
	Type   string
	Result string
	Values []value
}

type value struct {
	Name string
	Expr string
}

func newProgram(p *parse.Program) *program {
	v := &program{Program: p}
	if p.Exported() {
		v.Ctor = "New" + p.Name
	} else {
		v.Ctor = "new" + upperFirst(p.Name)
	}
	v.VertexExpr = v.source(p.Vertex, "VertexSource")
	v.FragmentExpr = v.source(p.Fragment, "FragmentSource")

	builder := p.BuilderName()
	if len(p.Uniforms) == 0 {
		v.Builder, v.Pending = builder, builder
		return v
	}

	params := make([]string, len(p.Uniforms))
	types := make([]string, len(p.Uniforms))
	for i, u := range p.Uniforms {
		params[i] = u.TypeParam
		types[i] = u.Type
	}
	v.Params = strings.Join(params, ", ") + " any"
	v.Builder = instantiate(builder, params)
	v.Pending = instantiate(builder, types)

	for i, u := range p.Uniforms {
		args := slices.Clone(params)
		args[i] = "glprog.Set"
		s := setter{
			Field:  u.Field,
			Param:  u.TypeParam,
			Type:   u.Type,
			Result: instantiate(builder, args),
		}
		for j := range p.Uniforms {
			expr := "b." + valueName(j)
			if j == i {
				expr = fmt.Sprintf("glprog.Take[%s](v)", u.Type)
			}
			s.Values = append(s.Values, value{Name: valueName(j), Expr: expr})
		}
		v.Setters = append(v.Setters, s)
	}
	return v
}

func (v *program) source(s parse.Source, suffix string) string {
	if s.File == "" {
		return s.Expr
	}
	name := lowerFirst(v.Name) + suffix
	v.embeds = append(v.embeds, embed{Var: name, File: s.File})
	return name
}

// isStd reports whether path looks like a standard library package, whose
// first element has no dot.
func isStd(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func instantiate(name string, args []string) string {
	return name + "[" + strings.Join(args, ", ") + "]"
}

func valueName(i int) string {
	return "value" + strconv.Itoa(i)
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

var funcs = template.FuncMap{
	"quote":     strconv.Quote,
	"valueName": valueName,
}
