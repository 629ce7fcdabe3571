package driver

import (
	"context"

	"felix/internal/diag"
	"felix/internal/lexer"
	"felix/internal/source"
	"felix/internal/token"
	"felix/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it completely.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource lexes in-memory content registered under name.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	span := trace.BeginStage(tracer, string(StageLex), trace.CurrentSpan(ctx).SpanID)
	bag := diag.NewBag(opts.maxDiagnostics())
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: fileReporter(bag, tracer, span.ID())})
	span.Count("tokens", len(tokens)).End(file.Path)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
