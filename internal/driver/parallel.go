package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"felix/internal/diag"
	"felix/internal/source"
	"felix/internal/trace"
)

// ListSourceFiles возвращает отсортированный список всех *.fx файлов в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// ParseDir парсит все *.fx файлы в директории параллельно.
// Результаты упорядочены по пути и не зависят от opts.Jobs.
// Ошибка загрузки файла не прерывает обход: она становится диагностикой IOLoadFileError.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*ParseResult, error) {
	tracer := trace.FromContext(ctx)
	dirSpan := trace.Begin(tracer, trace.ScopeDriver, "parse-dir", trace.CurrentSpan(ctx).SpanID)

	files, err := ListSourceFiles(dir)
	if err != nil {
		dirSpan.End("list failed")
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		dirSpan.End("no files")
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен на запись, поэтому всё грузим заранее.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
		emit(opts.Progress, ProgressEvent{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*ParseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = loadFailure(path, fileSet, loadErr, opts)
				emit(opts.Progress, ProgressEvent{File: path, Stage: StageLoad, Status: StatusError, Errors: 1})
				return nil
			}

			started := time.Now()
			fileSpan := trace.BeginFile(tracer, displayPath(dir, path), dirSpan.ID())
			fctx := trace.WithSpanContext(gctx, trace.SpanContext{SpanID: fileSpan.ID()})

			res := parseFile(fctx, fileSet, fileSet.Get(fileIDs[path]), opts)
			res.Path = path
			results[i] = res

			status := StatusDone
			errCount := len(res.Result.Errors())
			if res.HasErrors() {
				status = StatusError
			}
			fileSpan.Count("errors", errCount).Flag("cached", res.Cached).End("")
			emit(opts.Progress, ProgressEvent{
				File:    path,
				Stage:   StageSink,
				Status:  status,
				Errors:  errCount,
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		dirSpan.End(err.Error())
		return fileSet, results, err
	}
	dirSpan.Count("files", len(files)).End("")
	emit(opts.Progress, ProgressEvent{Stage: StageSink, Status: StatusDone})
	return fileSet, results, nil
}

func loadFailure(path string, fs *source.FileSet, loadErr error, opts Options) *ParseResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
	return &ParseResult{Path: path, FileSet: fs, Bag: bag}
}

func displayPath(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
