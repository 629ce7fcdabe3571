package diagfmt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"felix/internal/diag"
	"felix/internal/source"
)

type palette struct {
	err, warn, info func(a ...any) string
	code, path      func(a ...any) string
	gutter, caret   func(a ...any) string
	note, fix       func(a ...any) string
	added, removed  func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		if !enabled {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warn:    mk(color.FgYellow, color.Bold),
		info:    mk(color.FgCyan, color.Bold),
		code:    mk(color.Bold),
		path:    mk(color.Bold),
		gutter:  mk(color.FgBlue),
		caret:   mk(color.FgRed, color.Bold),
		note:    mk(color.FgCyan),
		fix:     mk(color.FgGreen),
		added:   mk(color.FgGreen),
		removed: mk(color.FgRed),
	}
}

func (p palette) severity(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return p.err(sev.String())
	case diag.SevWarning:
		return p.warn(sev.String())
	default:
		return p.info(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeDiagnostic(w, &d, fs, opts, p)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		p.path(formatPath(fs, d.Primary.File, opts.PathMode)), start.Line, start.Col,
		p.severity(d.Severity), p.code(d.Code.ID()), d.Message)

	writeSnippet(w, fs, d.Primary, opts.Context, p)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			ns, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note("note:"),
				formatPath(fs, note.Span.File, opts.PathMode), ns.Line, ns.Col, note.Msg)
		}
	}

	if !opts.ShowFixes {
		return
	}
	for i, f := range d.Fixes {
		fmt.Fprintf(w, "  %s %s\n", p.fix("fix #"+strconv.Itoa(i+1)+":"), f.Title)
		for _, edit := range f.Edits {
			fmt.Fprintf(w, "    apply=%q at %s:%s\n", edit.NewText,
				formatPath(fs, edit.Span.File, opts.PathMode), formatSpan(edit.Span, fs))
			if !opts.ShowPreview {
				continue
			}
			preview, err := buildFixEditPreview(fs, edit)
			if err != nil {
				fmt.Fprintf(w, "    preview unavailable: %v\n", err)
				continue
			}
			fmt.Fprintln(w, "    preview:")
			for _, line := range preview.before {
				fmt.Fprintf(w, "      %s\n", p.removed("- "+line))
			}
			for _, line := range preview.after {
				fmt.Fprintf(w, "      %s\n", p.added("+ "+line))
			}
		}
	}
}

// writeSnippet печатает строку span'а с контекстом и подчёркиванием.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int8, p palette) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	ctx := uint32(max(context, 0))

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	lineCount, err := safecast.Conv[uint32](len(f.LineIdx) + 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	if last > lineCount {
		last = lineCount
	}

	numWidth := len(strconv.FormatUint(uint64(last), 10))
	blank := strings.Repeat(" ", numWidth)

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, " %s %s %s\n", p.gutter(fmt.Sprintf("%*d", numWidth, ln)), p.gutter("|"), text)
		if ln != start.Line {
			continue
		}
		endCol := end.Col
		if end.Line != start.Line {
			endCol = math.MaxUint32
		}
		pad, mark := underline(text, start.Col, endCol)
		fmt.Fprintf(w, " %s %s %s%s\n", blank, p.gutter("|"), pad, p.caret(mark))
	}
}

// underline строит отступ и метку "^~~~" для байтовых колонок [startCol, endCol).
// Ширина считается в ячейках терминала, табы сохраняются в отступе.
func underline(line string, startCol, endCol uint32) (pad, mark string) {
	s := clampCol(line, startCol)
	e := max(clampCol(line, endCol), s)

	var sb strings.Builder
	for _, r := range line[:s] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := runewidth.StringWidth(line[s:e])
	if width < 1 {
		width = 1
	}
	return sb.String(), "^" + strings.Repeat("~", width-1)
}

func clampCol(line string, col uint32) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}
