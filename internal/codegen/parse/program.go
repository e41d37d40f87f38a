// Package parse turns structs annotated with a //glbind:program directive
// into Program models for the generator.
package parse

import "go/token"

// Naming selects how GL names are derived from Go field names when a field
// has no explicit name option.
type Naming string

const (
	// NamingField uses the Go field name verbatim.
	NamingField Naming = "field"
	// NamingSnake converts the field name to snake_case.
	NamingSnake Naming = "snake"
)

// Options tune parsing.
type Options struct {
	Naming Naming
}

// Source is a shader source. Exactly one of File and Expr is set.
type Source struct {
	// File is a path relative to the package directory, embedded with
	// //go:embed.
	File string `yaml:"file,omitempty"`
	// Expr is a Go expression of type string.
	Expr string `yaml:"expr,omitempty"`
}

// Import is an import spec copied from the annotated file.
type Import struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// Attribute is a vertex attribute field.
type Attribute struct {
	Field      string         `yaml:"field"`
	Type       string         `yaml:"type"`
	GLName     string         `yaml:"gl_name"`
	Normalized bool           `yaml:"normalized,omitempty"`
	Pos        token.Position `yaml:"-"`
}

// Uniform is a uniform field.
type Uniform struct {
	Field     string         `yaml:"field"`
	Type      string         `yaml:"type"`
	GLName    string         `yaml:"gl_name"`
	TypeParam string         `yaml:"type_param"`
	Pos       token.Position `yaml:"-"`
}

// Program is the model of one annotated struct.
type Program struct {
	Name       string         `yaml:"name"`
	Data       string         `yaml:"data"`
	Vertex     Source         `yaml:"vertex"`
	Fragment   Source         `yaml:"fragment"`
	Attributes []Attribute    `yaml:"attributes"`
	Uniforms   []Uniform      `yaml:"uniforms"`
	Imports    []Import       `yaml:"imports,omitempty"`
	Pos        token.Position `yaml:"-"`
}

// AttrName is the name of the generated vertex record struct.
func (p *Program) AttrName() string { return p.Name + "Attr" }

// BuilderName is the name of the generated uniform builder.
func (p *Program) BuilderName() string { return p.Name + "Draw" }

// UniformsName is the name of the fully set builder instantiation.
func (p *Program) UniformsName() string { return p.Name + "Uniforms" }

// Exported reports whether the program struct is exported.
func (p *Program) Exported() bool { return token.IsExported(p.Name) }

// Embeds reports whether either source is embedded from a file.
func (p *Program) Embeds() bool { return p.Vertex.File != "" || p.Fragment.File != "" }
