package driver

import "time"

// Stage describes one step of the per-file pipeline.
type Stage string

const (
	StageLoad  Stage = "load"
	StageCache Stage = "cache"
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
	StageSink  Stage = "sink"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	// StatusDone: файл разобран без ошибок.
	StatusDone Status = "done"
	// StatusError: файл не загрузился или содержит ошибки разбора.
	StatusError Status = "error"
)

// ProgressEvent reports progress for a file (or for the whole run when File is empty).
type ProgressEvent struct {
	File    string
	Stage   Stage
	Status  Status
	Errors  int
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be goroutine-safe.
type ProgressSink interface {
	OnEvent(ProgressEvent)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- ProgressEvent
}

func (s ChannelSink) OnEvent(ev ProgressEvent) {
	if s.Ch == nil {
		return
	}
	s.Ch <- ev
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) OnEvent(ev ProgressEvent) { f(ev) }

func emit(sink ProgressSink, ev ProgressEvent) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
