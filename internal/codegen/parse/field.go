package parse

import (
	"go/ast"
	goparser "go/parser"
	"go/types"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// TagKey is the struct tag key read by the parser.
const TagKey = "glbind"

type role int

const (
	roleNone role = iota
	roleData
	roleAttribute
	roleUniform
)

// fieldTag is a parsed glbind struct tag, for example
// `glbind:"attribute([4]uint8),normalized,name=a_color"`.
type fieldTag struct {
	role       role
	typ        ast.Expr
	name       string
	normalized bool
}

// builderFields are the field names of the generated builder struct, which
// no uniform setter may reuse.
var builderFields = regexp.MustCompile(`^(program|value[0-9]+)$`)

func (p *parser) fields(prog *Program, st *ast.StructType) {
	var dataFields int
	params := make(map[string]string)
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			p.errorf(field.Pos(), "glbind:program requires named fields")
			continue
		}
		tag, ok := p.tag(field)
		if !ok {
			continue
		}
		r, typ := tag.role, tag.typ
		if r == roleNone {
			r, typ, ok = p.typeRole(field)
			if !ok {
				continue
			}
		}

		for _, ident := range field.Names {
			name := ident.Name
			if tag.normalized && r != roleAttribute {
				p.errorf(ident.Pos(), "field %s: normalized only applies to attributes", name)
			}
			glName := tag.name
			if glName == "" {
				glName = p.glName(name)
			}
			switch r {
			case roleNone:
				p.errorf(ident.Pos(), "field %s appears to be irrelevant to the shader", name)
			case roleData:
				if tag.name != "" {
					p.errorf(ident.Pos(), "field %s: name does not apply to program data", name)
				}
				dataFields++
				prog.Data = name
			case roleAttribute:
				p.reference(typ)
				prog.Attributes = append(prog.Attributes, Attribute{
					Field:      name,
					Type:       types.ExprString(typ),
					GLName:     glName,
					Normalized: tag.normalized,
					Pos:        p.fset.Position(ident.Pos()),
				})
			case roleUniform:
				p.reference(typ)
				param := typeParam(name)
				if other, dup := params[param]; dup {
					p.errorf(ident.Pos(), "uniform %s collides with %s in the generated builder", name, other)
				} else if builderFields.MatchString(name) {
					p.errorf(ident.Pos(), "uniform %s collides with %s in the generated builder", name, name)
				}
				params[param] = name
				prog.Uniforms = append(prog.Uniforms, Uniform{
					Field:     name,
					Type:      types.ExprString(typ),
					GLName:    glName,
					TypeParam: param,
					Pos:       p.fset.Position(ident.Pos()),
				})
			}
		}
	}
	if dataFields != 1 {
		p.errorf(st.Pos(), `program struct must have exactly one ProgramData field or glbind:"data" tag`)
	}
}

// typeParam names the builder type parameter of a uniform field. The
// field's own capitalization is kept; only underscores are camel cased, so
// uColor and UColor both map to HasUColor and collide.
func typeParam(field string) string {
	if strings.Contains(field, "_") {
		field = strcase.ToCamel(field)
	}
	r, n := utf8.DecodeRuneInString(field)
	return "Has" + string(unicode.ToUpper(r)) + field[n:]
}

func (p *parser) glName(field string) string {
	if p.opts.Naming == NamingSnake {
		return strcase.ToSnake(field)
	}
	return field
}

// tag parses the glbind struct tag of field. The first element may name the
// role; every other element is an option.
func (p *parser) tag(field *ast.Field) (fieldTag, bool) {
	var t fieldTag
	if field.Tag == nil {
		return t, true
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		p.errorf(field.Tag.Pos(), "malformed struct tag: %v", err)
		return t, false
	}
	value, ok := reflect.StructTag(raw).Lookup(TagKey)
	if !ok {
		return t, true
	}

	ok = true
	for i, part := range splitTopLevel(value) {
		part = strings.TrimSpace(part)
		switch {
		case i == 0 && part == "data":
			t.role = roleData
		case i == 0 && isCall(part, "attribute"):
			t.role = roleAttribute
			t.typ, ok = p.tagType(field, part, "attribute")
		case i == 0 && isCall(part, "uniform"):
			t.role = roleUniform
			t.typ, ok = p.tagType(field, part, "uniform")
		case part == "normalized":
			t.normalized = true
		case strings.HasPrefix(part, "name="):
			t.name = strings.TrimPrefix(part, "name=")
			if t.name == "" {
				p.errorf(field.Tag.Pos(), "empty name option")
				ok = false
			}
		default:
			p.errorf(field.Tag.Pos(), "unsupported field option %q", part)
			ok = false
		}
	}
	return t, ok
}

func isCall(s, fn string) bool {
	return strings.HasPrefix(s, fn+"(") && strings.HasSuffix(s, ")")
}

func (p *parser) tagType(field *ast.Field, part, fn string) (ast.Expr, bool) {
	inner := strings.TrimSpace(part[len(fn)+1 : len(part)-1])
	if inner == "" {
		p.errorf(field.Tag.Pos(), "Attribute/Uniform requires a type parameter")
		return nil, false
	}
	if len(splitTopLevel(inner)) > 1 {
		p.errorf(field.Tag.Pos(), "Attribute/Uniform takes exactly one type parameter")
		return nil, false
	}
	x, err := goparser.ParseExpr(inner)
	if err != nil {
		p.errorf(field.Tag.Pos(), "invalid %s type %q: %v", fn, inner, err)
		return nil, false
	}
	return x, true
}

// typeRole infers the role of an untagged field from its declared type:
// ProgramData, Attribute[T] or Uniform[T], optionally package qualified.
func (p *parser) typeRole(field *ast.Field) (role, ast.Expr, bool) {
	var (
		name string
		args []ast.Expr
	)
	switch t := field.Type.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		name = endName(t)
	case *ast.IndexExpr:
		name = endName(t.X)
		args = []ast.Expr{t.Index}
	case *ast.IndexListExpr:
		name = endName(t.X)
		args = t.Indices
	}

	switch name {
	case "ProgramData":
		return roleData, nil, true
	case "Attribute", "Uniform":
		switch len(args) {
		case 0:
			p.errorf(field.Type.Pos(), "Attribute/Uniform requires a type parameter")
			return roleNone, nil, false
		case 1:
		default:
			p.errorf(field.Type.Pos(), "Attribute/Uniform takes exactly one type parameter")
			return roleNone, nil, false
		}
		if name == "Attribute" {
			return roleAttribute, args[0], true
		}
		return roleUniform, args[0], true
	}
	return roleNone, nil, true
}

func endName(x ast.Expr) string {
	switch t := x.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	}
	return ""
}

// splitTopLevel splits s on commas that are not nested in brackets.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
