package parser

import (
	"slices"
	"strings"

	"felix/internal/diag"
	"felix/internal/source"
	"felix/internal/syntax"
)

// ParseError - ошибка разбора: что ожидали, что нашли и где.
// Found == syntax.EOF означает, что ввод закончился.
type ParseError struct {
	Expected []syntax.Kind
	Found    syntax.Kind
	Range    syntax.TextRange
}

// String renders `error at S..E: expected A, B or C, but found K`.
func (e ParseError) String() string {
	var sb strings.Builder
	sb.WriteString("error at ")
	sb.WriteString(e.Range.String())
	sb.WriteString(": expected ")
	writeExpected(&sb, e.Expected)
	if e.Found != syntax.EOF {
		sb.WriteString(", but found ")
		sb.WriteString(e.Found.Describe())
	}
	return sb.String()
}

func writeExpected(sb *strings.Builder, kinds []syntax.Kind) {
	for i, k := range kinds {
		switch {
		case i == 0:
		case i == len(kinds)-1:
			sb.WriteString(" or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(k.Describe())
	}
}

// Diagnostic converts the error into a diag record located in file.
// Without the tree a missing ')' is inserted right at the error position;
// Result.Diagnostics places it after the preceding significant token.
func (e ParseError) Diagnostic(file source.FileID) diag.Diagnostic {
	return e.diagnostic(file, nil)
}

// ends - концы значимых токенов файла по возрастанию, может быть nil.
func (e ParseError) diagnostic(file source.FileID, ends []uint32) diag.Diagnostic {
	code := diag.SynUnexpectedToken
	if e.Found == syntax.EOF {
		code = diag.SynUnexpectedEOF
	}
	var sb strings.Builder
	sb.WriteString("expected ")
	writeExpected(&sb, e.Expected)
	if e.Found != syntax.EOF {
		sb.WriteString(", but found ")
		sb.WriteString(e.Found.Describe())
	} else {
		sb.WriteString(", but reached end of input")
	}
	d := diag.NewError(code, source.Span{File: file, Start: e.Range.Start, End: e.Range.End}, sb.String())
	if fix, ok := e.suggestFix(file, ends); ok {
		d = d.WithFix(fix.Title, fix.Edits...)
	}
	return d
}

// suggestFix предлагает вставку пропущенной ')' или '='.
// ')' закрывает выражение сразу за последним значимым токеном перед ошибкой,
// '=' ставится перед найденным токеном.
func (e ParseError) suggestFix(file source.FileID, ends []uint32) (diag.Fix, bool) {
	at := e.Range.Start
	if e.Found == syntax.EOF {
		at = e.Range.End
	}
	switch {
	case slices.Contains(e.Expected, syntax.RParen):
		at = closeAfter(ends, at)
		span := source.Span{File: file, Start: at, End: at}
		return diag.Fix{Title: "insert ')'", Edits: []diag.FixEdit{{Span: span, NewText: ")"}}}, true
	case e.Found != syntax.EOF && slices.Equal(e.Expected, []syntax.Kind{syntax.Equals}):
		span := source.Span{File: file, Start: at, End: at}
		return diag.Fix{Title: "insert '='", Edits: []diag.FixEdit{{Span: span, NewText: "= "}}}, true
	}
	return diag.Fix{}, false
}

// closeAfter returns the largest end not past at, or at itself.
func closeAfter(ends []uint32, at uint32) uint32 {
	i, found := slices.BinarySearch(ends, at)
	if found || i == 0 {
		return at
	}
	return ends[i-1]
}
