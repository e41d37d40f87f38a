package gen

import "text/template"

var headerTmpl = template.Must(template.New("header").Funcs(funcs).Parse(Header + `

package {{.Package}}
{{if or .Std .Ext}}
import (
{{- range .Std}}
	{{if .Name}}{{.Name}} {{end}}{{quote .Path}}
{{- end}}
{{if and .Std .Ext}}
{{end}}
{{- range .Ext}}
	{{if .Name}}{{.Name}} {{end}}{{quote .Path}}
{{- end}}
)
{{end}}
{{- range .Embeds}}
//go:embed {{.File}}
var {{.Var}} string
{{end}}`))

// programTmpls are executed in order for every program.
var programTmpls = []*template.Template{programTmpl, attrTmpl, builderTmpl}

var programTmpl = template.Must(template.New("program").Funcs(funcs).Parse(`{{$p := .}}
// Allocate creates the program and shader objects of {{.Name}} and forgets
// every cached location.
func (p *{{.Name}}) Allocate(ctx glprog.Context) {
	program := ctx.CreateProgram()
	if program == 0 {
		panic("glbind: cannot initialize program for {{.Name}}")
	}
	vertex := ctx.CreateShader(glprog.VERTEX_SHADER)
	if vertex == 0 {
		panic("glbind: cannot initialize vertex shader for {{.Name}}")
	}
	fragment := ctx.CreateShader(glprog.FRAGMENT_SHADER)
	if fragment == 0 {
		panic("glbind: cannot initialize fragment shader for {{.Name}}")
	}
	p.{{.Data}} = glprog.ProgramData{
		Program:        program,
		VertexShader:   vertex,
		FragmentShader: fragment,
	}
{{- range .Attributes}}
	p.{{.Field}}.Reset()
{{- end}}
{{- range .Uniforms}}
	p.{{.Field}}.Reset()
{{- end}}
}

// CompileShaders uploads and compiles both shaders of {{.Name}}.
func (p *{{.Name}}) CompileShaders(ctx glprog.Context) {
	ctx.ShaderSource(p.{{.Data}}.VertexShader, {{.VertexExpr}})
	ctx.CompileShader(p.{{.Data}}.VertexShader)
	ctx.ShaderSource(p.{{.Data}}.FragmentShader, {{.FragmentExpr}})
	ctx.CompileShader(p.{{.Data}}.FragmentShader)
	if glprog.Debug {
		if !ctx.ShaderCompileStatus(p.{{.Data}}.VertexShader) {
			panic(fmt.Sprintf("glbind: error compiling vertex shader of {{.Name}}: %s", ctx.ShaderInfoLog(p.{{.Data}}.VertexShader)))
		}
		if !ctx.ShaderCompileStatus(p.{{.Data}}.FragmentShader) {
			panic(fmt.Sprintf("glbind: error compiling fragment shader of {{.Name}}: %s", ctx.ShaderInfoLog(p.{{.Data}}.FragmentShader)))
		}
	}
}

// LinkShaders attaches both shaders, binds every attribute to its
// declaration index and links {{.Name}}.
func (p *{{.Name}}) LinkShaders(ctx glprog.Context) {
	ctx.AttachShader(p.{{.Data}}.Program, p.{{.Data}}.VertexShader)
	ctx.AttachShader(p.{{.Data}}.Program, p.{{.Data}}.FragmentShader)
{{- range $i, $a := .Attributes}}
	ctx.BindAttribLocation(p.{{$p.Data}}.Program, {{$i}}, {{quote $a.GLName}})
{{- end}}
	ctx.LinkProgram(p.{{.Data}}.Program)
	if glprog.Debug && !ctx.ProgramLinkStatus(p.{{.Data}}.Program) {
		panic(fmt.Sprintf("glbind: error linking {{.Name}}: %s", ctx.ProgramInfoLog(p.{{.Data}}.Program)))
	}
}

// UseProgram makes {{.Name}} the current program.
func (p *{{.Name}}) UseProgram(ctx glprog.Context) {
	ctx.UseProgram(p.{{.Data}}.Program)
}

// ApplyAttrs binds buffer and points every active attribute of {{.Name}}
// at its field of the vertex records.
func (p *{{.Name}}) ApplyAttrs(ctx glprog.Context, buffer *glprog.Buffer[{{.AttrName}}]) {
	buffer.Bind(ctx)
{{- range $i, $a := .Attributes}}
	if loc, ok := p.{{$a.Field}}.Location(ctx, &p.{{$p.Data}}, {{quote $a.GLName}}); ok {
		buffer.BindToAttr(ctx, loc, {{$i}})
	}
{{- end}}
}

// Draw draws sel from buffer with {{.Name}}, leaving uniforms as they are.
func (p *{{.Name}}) Draw(ctx glprog.Context, mode glprog.Mode, buffer *glprog.Buffer[{{.AttrName}}], sel glprog.Selection) {
	p.UseProgram(ctx)
	glprog.Draw[{{.AttrName}}](ctx, mode, p, buffer, sel)
}

// PrepareBuffer uploads attrs into a new vertex buffer for {{.Name}}.
func (p *{{.Name}}) PrepareBuffer(ctx glprog.Context, attrs []{{.AttrName}}, usage glprog.Usage) *glprog.Buffer[{{.AttrName}}] {
	return glprog.NewBuffer(ctx, attrs, usage)
}

// {{.Ctor}} allocates, compiles and links a {{.Name}}.
func {{.Ctor}}(ctx glprog.Context) *{{.Name}} {
	p := new({{.Name}})
	glprog.Create(ctx, p)
	return p
}
`))

var attrTmpl = template.Must(template.New("attr").Funcs(funcs).Parse(`
// {{.AttrName}} is one vertex of a {{.Name}} buffer.
type {{.AttrName}} struct {
{{- range .Attributes}}
	{{.Field}} {{.Type}}
{{- end}}
}

// FieldsCount returns the number of attributes of {{.Name}}.
func ({{.AttrName}}) FieldsCount() int { return {{len .Attributes}} }

// FieldGLName returns the GL name of attribute i.
func ({{.AttrName}}) FieldGLName(i int) string {
{{- if .Attributes}}
	switch i {
{{- range $i, $a := .Attributes}}
	case {{$i}}:
		return {{quote $a.GLName}}
{{- end}}
	}
{{- end}}
	panic(fmt.Sprintf("glbind: nonexistent field %d of {{.AttrName}}", i))
}

// FieldOffset returns the byte offset of attribute i within a record.
func ({{if .Attributes}}a {{end}}{{.AttrName}}) FieldOffset(i int) uintptr {
{{- if .Attributes}}
	switch i {
{{- range $i, $a := .Attributes}}
	case {{$i}}:
		return unsafe.Offsetof(a.{{$a.Field}})
{{- end}}
	}
{{- end}}
	panic(fmt.Sprintf("glbind: nonexistent field %d of {{.AttrName}}", i))
}

// FieldType returns the GL scalar type of attribute i.
func ({{.AttrName}}) FieldType(i int) uint32 {
{{- if .Attributes}}
	switch i {
{{- range $i, $a := .Attributes}}
	case {{$i}}:
		return glprog.AttribType[{{$a.Type}}]()
{{- end}}
	}
{{- end}}
	panic(fmt.Sprintf("glbind: nonexistent field %d of {{.AttrName}}", i))
}

// FieldNumComps returns the number of components of attribute i.
func ({{.AttrName}}) FieldNumComps(i int) int {
{{- if .Attributes}}
	switch i {
{{- range $i, $a := .Attributes}}
	case {{$i}}:
		return glprog.AttribComps[{{$a.Type}}]()
{{- end}}
	}
{{- end}}
	panic(fmt.Sprintf("glbind: nonexistent field %d of {{.AttrName}}", i))
}

// FieldNormalized reports whether integer attribute i is normalized to
// [0, 1] or [-1, 1].
func ({{.AttrName}}) FieldNormalized(i int) bool {
{{- if .Attributes}}
	switch i {
{{- range $i, $a := .Attributes}}
	case {{$i}}:
		return {{$a.Normalized}}
{{- end}}
	}
{{- end}}
	panic(fmt.Sprintf("glbind: nonexistent field %d of {{.AttrName}}", i))
}
`))

var builderTmpl = template.Must(template.New("builder").Funcs(funcs).Parse(`{{$p := .}}
{{- if .Uniforms}}
// {{.BuilderName}} collects the uniforms of {{.Name}}. Each type parameter
// is the value type of its uniform until the setter is called, and
// glprog.Set afterwards. Calling a setter twice does not compile unless
// the second call passes a glprog.Set value; that case panics at run time.
type {{.BuilderName}}[{{.Params}}] struct {
	program *{{.Name}}
{{- range $i, $u := .Uniforms}}
	{{valueName $i}} {{$u.Type}}
{{- end}}
}

// {{.UniformsName}} is a {{.BuilderName}} with every uniform set.
type {{.UniformsName}} = {{.BuilderName}}[{{range $i, $u := .Uniforms}}{{if $i}}, {{end}}glprog.Set{{end}}]
{{- else}}
// {{.BuilderName}} is the uniform builder of {{.Name}}, which has no uniforms.
type {{.BuilderName}} struct {
	program *{{.Name}}
}

// {{.UniformsName}} is a {{.BuilderName}} with every uniform set.
type {{.UniformsName}} = {{.BuilderName}}
{{- end}}

// WithUniforms starts setting the uniforms of p.
func (p *{{.Name}}) WithUniforms() {{.Pending}} {
	return {{.Pending}}{program: p}
}

// WithDefaultUniforms returns every uniform of p set to its zero value.
func (p *{{.Name}}) WithDefaultUniforms() {{.UniformsName}} {
	return {{.UniformsName}}{program: p}
}
{{range .Setters}}
// {{.Field}} sets the {{.Field}} uniform.
func (b {{$p.Builder}}) {{.Field}}(v {{.Param}}) {{.Result}} {
	return {{.Result}}{
		program: b.program,
{{- range .Values}}
		{{.Name}}: {{.Expr}},
{{- end}}
	}
}
{{end}}
// DrawWithUniforms uploads u and draws sel from buffer with {{.Name}}.
// It fails when a uniform is not active in the linked program.
func (p *{{.Name}}) DrawWithUniforms(ctx glprog.Context, u {{.UniformsName}}, mode glprog.Mode, buffer *glprog.Buffer[{{.AttrName}}], sel glprog.Selection) error {
	if u.program != nil && u.program != p {
		panic("glbind: uniforms built for another {{.Name}}")
	}
	p.UseProgram(ctx)
{{- range $i, $u := .Uniforms}}
	if err := p.{{$u.Field}}.Apply(ctx, &p.{{$p.Data}}, {{quote $u.GLName}}, u.{{valueName $i}}); err != nil {
		return fmt.Errorf("{{$p.Name}}.{{$u.Field}}: %w", err)
	}
{{- end}}
	glprog.Draw[{{.AttrName}}](ctx, mode, p, buffer, sel)
	return nil
}
`))
