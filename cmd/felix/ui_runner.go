package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"felix/internal/driver"
	"felix/internal/source"
	"felix/internal/ui"
)

type parseDirOutcome struct {
	fileSet *source.FileSet
	results []*driver.ParseResult
	err     error
}

// runParseDirWithUI runs driver.ParseDir in the background and renders its
// progress events until the parse finishes.
func runParseDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []*driver.ParseResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, optsCopy)
		outcomeCh <- parseDirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// модель могла выйти раньше (ctrl+c); дочитываем канал, чтобы ParseDir не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
