package driver

import (
	"context"
	"strconv"

	"felix/internal/diag"
	"felix/internal/lexer"
	"felix/internal/observ"
	"felix/internal/parser"
	"felix/internal/source"
	"felix/internal/trace"
)

type ParseResult struct {
	// Path - путь файла в том виде, в каком он был передан (или найден в каталоге).
	Path    string
	FileSet *source.FileSet
	// File is nil when the file could not be loaded; Bag then holds the I/O error.
	File   *source.File
	Result *parser.Result
	Bag    *diag.Bag
	Timing *observ.Report
	Cached bool
}

// HasErrors reports whether the file failed to load or has error diagnostics.
func (r *ParseResult) HasErrors() bool {
	return r.File == nil || r.Bag.HasErrors()
}

// Parse loads and parses a single file.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, fs, fs.Get(fileID), opts), nil
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	return parseFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

// parseFile runs lex, parse and sink for one file, each stage under its own
// trace span, and consults the disk cache first when one is configured.
func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	out := &ParseResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	defer func() {
		if timer != nil {
			report := timer.Report()
			out.Timing = &report
		}
	}()

	if opts.Cache != nil {
		done := timer.Track(string(StageCache))
		res, diags, ok, err := opts.Cache.Load(file.Hash, file.ID)
		switch {
		case err != nil:
			trace.Point(tracer, trace.ScopeFile, "cache-invalid", err.Error(), parent)
		case ok:
			done("hit")
			out.Result = res
			out.Cached = true
			for _, d := range diags {
				out.Bag.Add(d)
			}
			return out
		}
		done("miss")
	}

	reporter := fileReporter(out.Bag, tracer, parent)

	emit(opts.Progress, ProgressEvent{File: file.Path, Stage: StageLex, Status: StatusWorking})
	done := timer.Track(string(StageLex))
	span := trace.BeginStage(tracer, string(StageLex), parent)
	tokens := parser.FromLexed(lexer.Tokenize(file, lexer.Options{Reporter: reporter}))
	span.Count("tokens", len(tokens)).End("")
	done(strconv.Itoa(len(tokens)) + " tokens")

	emit(opts.Progress, ProgressEvent{File: file.Path, Stage: StageParse, Status: StatusWorking})
	done = timer.Track(string(StageParse))
	span = trace.BeginStage(tracer, string(StageParse), parent)
	events := parser.Events(tokens)
	span.Count("events", len(events)).End("")
	done("")

	emit(opts.Progress, ProgressEvent{File: file.Path, Stage: StageSink, Status: StatusWorking})
	done = timer.Track(string(StageSink))
	span = trace.BeginStage(tracer, string(StageSink), parent)
	out.Result = parser.Build(tokens, events, nil)
	span.Count("errors", len(out.Result.Errors())).End("")
	done("")

	for _, d := range out.Result.Diagnostics(file.ID) {
		reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes, d.Fixes)
	}

	if opts.Cache != nil {
		if err := opts.Cache.Store(file.Hash, out.Result, out.Bag.Items()); err != nil {
			trace.Point(tracer, trace.ScopeFile, "cache-store-failed", err.Error(), parent)
			// после Store, иначе предупреждение попало бы в кэш
			diag.ReportWarning(reporter, diag.IOCacheError, source.Span{File: file.ID}, "failed to write parse cache: "+err.Error()).Emit()
		}
	}
	return out
}
