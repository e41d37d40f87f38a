package parse

import (
	"go/ast"
	"path"
	"strconv"
	"strings"
	"unicode"
)

// reference records the package names x refers to.
func (p *parser) reference(x ast.Expr) {
	ast.Inspect(x, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				p.refs[id.Name] = true
			}
		}
		return true
	})
}

// imports returns the imports of the file whose names were referenced by
// the current program, in file order.
func (p *parser) imports() []Import {
	var out []Import
	for _, spec := range p.file.Imports {
		ipath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := ""
		if spec.Name != nil {
			name = spec.Name.Name
		}
		local := name
		if local == "" {
			local = assumedName(ipath)
		}
		if p.refs[local] {
			out = append(out, Import{Name: name, Path: ipath})
		}
	}
	return out
}

// assumedName guesses the package name of an import path the same way
// goimports does: the last element, skipping a major version suffix,
// without a "go-" prefix and cut at the first non-identifier rune.
func assumedName(ipath string) string {
	base := path.Base(ipath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(ipath); dir != "." {
				base = path.Base(dir)
			}
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	}); i >= 0 {
		base = base[:i]
	}
	return base
}
