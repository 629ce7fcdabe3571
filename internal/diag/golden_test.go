package diag

import (
	"testing"

	"felix/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/testdata/sample.fx", []byte("1 +\nlet\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexUnknownChar,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 4, End: 7},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/sample.fx:1:1 first line second\n" +
		"note SYN2001 testdata/sample.fx:1:3 note line\n" +
		"warning LEX1001 testdata/sample.fx:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestBagLimitSortDedup(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}
	ReportError(r, SynUnexpectedToken, source.Span{Start: 5, End: 6}, "b").Emit()
	ReportWarning(r, LexUnknownChar, source.Span{Start: 1, End: 2}, "a").Emit()
	ReportError(r, SynUnexpectedToken, source.Span{Start: 5, End: 6}, "b again").Emit()
	if bag.Add(NewError(SynUnexpectedEOF, source.Span{}, "dropped")) {
		t.Fatal("bag must reject items over the limit")
	}

	bag.Sort()
	if first := bag.Items()[0]; first.Code != LexUnknownChar {
		t.Fatalf("expected LEX diagnostic first after sort, got %s", first.Code.ID())
	}
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("expected both errors and warnings")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, SynUnexpectedEOF, source.Span{}, "eof").
		WithNote(source.Span{Start: 1, End: 1}, "here").
		WithFix("insert", FixEdit{NewText: "1"})
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected single emit, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != "1" {
		t.Fatalf("builder lost details: %+v", d)
	}
}

func TestMultiAndDedupReporter(t *testing.T) {
	a, b := NewBag(4), NewBag(4)
	r := NewDedupReporter(MultiReporter{BagReporter{Bag: a}, NopReporter{}, BagReporter{Bag: b}})
	for range 3 {
		r.Report(LexUnknownChar, SevError, source.Span{Start: 1, End: 2}, "same", nil, nil)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("expected one forwarded diagnostic per bag, got %d/%d", a.Len(), b.Len())
	}
	r.Report(LexUnknownChar, SevError, source.Span{Start: 1, End: 2}, "other", nil, nil)
	if r.Seen() != 2 || a.Len() != 2 {
		t.Fatalf("distinct message must pass: seen %d, bag %d", r.Seen(), a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynUnexpectedToken: "SYN2001",
		IOLoadFileError:    "IO4001",
		ObsTimings:         "OBS6001",
		UnknownCode:        "E0000",
	}
	for c, want := range tests {
		if c.ID() != want {
			t.Errorf("%d: ID = %s, want %s", c, c.ID(), want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", Code(9999).Title())
	}
}
