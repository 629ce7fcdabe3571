package format

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"felix/internal/ast"
	"felix/internal/parser"
	"felix/internal/source"
	"felix/internal/syntax"
)

// ErrHasErrors is returned for sources that do not parse cleanly.
var ErrHasErrors = errors.New("format: source has parse errors")

// maxNewlines - не больше одной пустой строки подряд.
const maxNewlines = 2

// FormatFile parses sf and returns its canonical text.
func FormatFile(sf *source.File) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	res := parser.ParseFile(sf, parser.Options{})
	if n := len(res.Errors()); n > 0 {
		return nil, fmt.Errorf("%w (%d)", ErrHasErrors, n)
	}
	return []byte(Format(res.Syntax())), nil
}

// Format renders an error-free tree. Significant tokens are separated by
// single spaces except around parens and after a prefix minus; statements and
// comments keep their line breaks. Comment text is normalized to NFC.
func Format(root *syntax.Node) string {
	stmtStarts := make(map[uint32]bool)
	for _, stmt := range root.Children() {
		stmtStarts[stmt.TextRange().Start] = true
	}

	var (
		sb       strings.Builder
		prev     *syntax.Token
		newlines int
	)
	for tok := range root.Tokens() {
		if tok.Kind() == syntax.Whitespace {
			newlines += strings.Count(tok.Text(), "\n")
			continue
		}
		if prev != nil {
			sb.WriteString(separator(prev, tok, newlines, stmtStarts))
		}
		if tok.Kind() == syntax.Comment {
			// комментарии приводим к NFC, остальные токены ASCII
			sb.WriteString(norm.NFC.String(tok.Text()))
		} else {
			sb.WriteString(tok.Text())
		}
		prev, newlines = tok, 0
	}
	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func separator(prev, next *syntax.Token, newlines int, stmtStarts map[uint32]bool) string {
	breakLine := prev.Kind() == syntax.Comment ||
		stmtStarts[next.TextRange().Start] ||
		(next.Kind() == syntax.Comment && newlines > 0)
	if breakLine {
		return strings.Repeat("\n", min(max(newlines, 1), maxNewlines))
	}
	switch {
	case next.Kind() == syntax.Comment:
		return " "
	case prev.Kind() == syntax.LParen, next.Kind() == syntax.RParen:
		return ""
	case prev.Kind() == syntax.Minus && prev.Parent().Kind() == syntax.PrefixExpr:
		return ""
	}
	return " "
}

// CheckRoundTrip reports whether formatting text preserves its meaning:
// the formatted text parses without errors into the same statements.
func CheckRoundTrip(text string) (ok bool, msg string) {
	before := parser.Parse(text)
	if len(before.Errors()) > 0 {
		return false, "input has parse errors"
	}
	formatted := Format(before.Syntax())
	after := parser.Parse(formatted)
	if len(after.Errors()) > 0 {
		return false, fmt.Sprintf("formatted text has parse errors:\n%s", after.DebugTree())
	}
	want := sexpr(before.Syntax())
	got := sexpr(after.Syntax())
	if want != got {
		return false, fmt.Sprintf("meaning changed:\nwant: %s\ngot:  %s", want, got)
	}
	if again := Format(after.Syntax()); again != formatted {
		return false, fmt.Sprintf("formatting is not idempotent:\n%q\n%q", formatted, again)
	}
	return true, ""
}

func sexpr(root *syntax.Node) string {
	r, _ := ast.CastRoot(root)
	return ast.Format(r)
}
