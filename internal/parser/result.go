package parser

import (
	"strings"

	"felix/internal/diag"
	"felix/internal/lexer"
	"felix/internal/source"
	"felix/internal/syntax"
)

// Result - дерево и ошибки одного разбора.
type Result struct {
	green  *syntax.GreenNode
	errors []ParseError
}

// NewResult pairs an already built green tree with its errors, e.g. one restored from a cache.
func NewResult(green *syntax.GreenNode, errors []ParseError) *Result {
	return &Result{green: green, errors: errors}
}

func (r *Result) Green() *syntax.GreenNode { return r.green }

// Syntax returns a fresh positioned view of the tree.
func (r *Result) Syntax() *syntax.Node { return syntax.NewRoot(r.green) }

// Errors returns the parse errors in the order they were found. Do not modify.
func (r *Result) Errors() []ParseError { return r.errors }

// DebugTree renders the tree followed by one line per error.
func (r *Result) DebugTree() string {
	var sb strings.Builder
	sb.WriteString(r.Syntax().Debug())
	for _, e := range r.errors {
		sb.WriteByte('\n')
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Diagnostics converts parse errors into diagnostics for file.
func (r *Result) Diagnostics(file source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(r.errors))
	if len(r.errors) == 0 {
		return out
	}
	ends := significantEnds(r.Syntax())
	for _, e := range r.errors {
		out = append(out, e.diagnostic(file, ends))
	}
	return out
}

func significantEnds(root *syntax.Node) []uint32 {
	var ends []uint32
	for tok := range root.Tokens() {
		if !tok.Kind().IsTrivia() {
			ends = append(ends, tok.TextRange().End)
		}
	}
	return ends
}

// Options настраивают ParseFile.
type Options struct {
	// Reporter получает диагностики лексера и парсера; может быть nil.
	Reporter diag.Reporter
	// Cache интернирует узлы между разборами; nil - свой кэш на каждый разбор.
	// Кэш не потокобезопасен.
	Cache *syntax.NodeCache
}

// Build runs the sink over a finished event list.
func Build(tokens []Token, events []Event, cache *syntax.NodeCache) *Result {
	green, errs := newSink(tokens, events, cache).finish()
	return &Result{green: green, errors: errs}
}

// Parse разбирает текст целиком. Чистая функция: одинаковый ввод даёт одинаковый результат.
func Parse(text string) *Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(text)))
	return ParseFile(file, Options{})
}

// ParseFile lexes and parses one source file.
func ParseFile(file *source.File, opts Options) *Result {
	tokens := FromLexed(lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter}))
	res := Build(tokens, Events(tokens), opts.Cache)
	if opts.Reporter != nil {
		for _, d := range res.Diagnostics(file.ID) {
			opts.Reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
		}
	}
	return res
}
