package parse

import (
	"errors"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"io/fs"
	"strings"

	"github.com/mattn/go-shellwords"
)

// directive parses the options of a //glbind:program comment:
//
//	path=<dir/name>         sources are <dir/name>.vert and <dir/name>.frag
//	vert=<expr> frag=<expr> sources are Go string expressions
//
// Options are separated by spaces outside brackets and quotes, so
// frag=shaders.Get("a b.frag") is one option. A value that starts with a
// shell quote is unquoted like a shell word.
func (p *parser) directive(c *ast.Comment) (vert, frag Source) {
	words, err := directiveWords(strings.TrimPrefix(c.Text, Directive))
	if err != nil {
		p.errorf(c.Pos(), "malformed directive: %v", err)
		return
	}

	var path, vertExpr, fragExpr string
	for _, w := range words {
		key, val, ok := strings.Cut(w, "=")
		if !ok {
			p.errorf(c.Pos(), "unsupported directive option %q", w)
			continue
		}
		if val, err = unquote(val); err != nil {
			p.errorf(c.Pos(), "malformed directive: option %s: %v", key, err)
			continue
		}
		switch key {
		case "path":
			path = val
		case "vert":
			vertExpr = val
		case "frag":
			fragExpr = val
		default:
			p.errorf(c.Pos(), "unsupported directive option %q", key)
		}
	}

	switch {
	case path != "" && (vertExpr != "" || fragExpr != ""):
		p.errorf(c.Pos(), "path cannot be combined with vert or frag")
	case path != "":
		if !fs.ValidPath(path) || path == "." {
			p.errorf(c.Pos(), "path %q must be relative and must not contain \"..\"", path)
			return
		}
		vert = Source{File: path + ".vert"}
		frag = Source{File: path + ".frag"}
	case vertExpr == "" && fragExpr == "":
		p.errorf(c.Pos(), "cannot infer vertex/fragment code")
	case vertExpr == "":
		p.errorf(c.Pos(), "cannot infer vertex code")
	case fragExpr == "":
		p.errorf(c.Pos(), "cannot infer fragment code")
	default:
		vert = Source{Expr: p.sourceExpr(c, "vert", vertExpr)}
		frag = Source{Expr: p.sourceExpr(c, "frag", fragExpr)}
	}
	return vert, frag
}

func (p *parser) sourceExpr(c *ast.Comment, key, src string) string {
	x, err := goparser.ParseExpr(src)
	if err != nil {
		p.errorf(c.Pos(), "invalid %s expression %q: %v", key, src, err)
		return ""
	}
	p.reference(x)
	return src
}

// directiveWords splits s on blanks at bracket depth zero outside quotes.
// Unbalanced brackets are left for the expression parser to report.
func directiveWords(s string) ([]string, error) {
	var (
		words []string
		word  strings.Builder
		depth int
		quote rune
		esc   bool
	)
	for _, r := range s {
		switch {
		case quote != 0:
			switch {
			case esc:
				esc = false
			case r == '\\' && quote == '"':
				esc = true
			case r == quote:
				quote = 0
			}
		case r == '"' || r == '\'' || r == '`':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case (r == ')' || r == ']' || r == '}') && depth > 0:
			depth--
		case (r == ' ' || r == '\t') && depth == 0:
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
			continue
		}
		word.WriteRune(r)
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	return words, nil
}

// unquote strips shell quoting from a value that starts with a quote.
func unquote(val string) (string, error) {
	if val == "" || (val[0] != '"' && val[0] != '\'') {
		return val, nil
	}
	words, err := shellwords.Parse(val)
	if err != nil {
		return "", err
	}
	if len(words) != 1 {
		return "", fmt.Errorf("quoted value %s is not a single word", val)
	}
	return words[0], nil
}
