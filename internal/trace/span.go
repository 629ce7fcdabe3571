package trace

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return globalSpans.Add(1) }

// getGoroutineID читает номер горутины из заголовка runtime.Stack:
// "goroutine 123 [running]:". При ParseDir файлы разбираются параллельно,
// и GID позволяет развести их стадии в выводе.
func getGoroutineID() uint64 {
	var buf [64]byte
	head := buf[:runtime.Stack(buf[:], false)]
	rest, ok := bytes.CutPrefix(head, []byte("goroutine "))
	if !ok {
		return 0
	}
	num, _, ok := bytes.Cut(rest, []byte(" "))
	if !ok {
		return 0
	}
	gid, err := strconv.ParseUint(string(num), 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

// Span - открытый интервал трассы: parse-dir, файл или стадия lex/parse/sink.
// Выключенный span (уровень не пропускает scope) безопасно принимает все вызовы.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	gid      uint64
	scope    Scope
	name     string
	started  time.Time
	extra    map[string]string
}

// Begin starts a span and emits its begin event. parent is 0 for a root span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parent,
		gid:      getGoroutineID(),
		scope:    scope,
		name:     name,
		started:  time.Now(),
	}
	s.emit(KindSpanBegin, s.started, "", nil)
	return s
}

// BeginStage opens one pipeline stage ("lex", "parse", "sink") of a file.
func BeginStage(t Tracer, stage string, parent uint64) *Span {
	return Begin(t, ScopeStage, stage, parent)
}

// BeginFile opens the span of one file inside a directory run.
func BeginFile(t Tracer, path string, parent uint64) *Span {
	return Begin(t, ScopeFile, "file:"+path, parent)
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	dur := time.Since(s.started)
	s.emit(KindSpanEnd, time.Now(), detail, s.extra)
	return dur
}

func (s *Span) emit(kind Kind, at time.Time, detail string, extra map[string]string) {
	s.tracer.Emit(&Event{
		Time:     at,
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		GID:      s.gid,
		Name:     s.name,
		Detail:   detail,
		Extra:    extra,
	})
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// Count attaches a counter (tokens, events, errors, files) to the end event.
func (s *Span) Count(key string, n int) *Span {
	return s.WithExtra(key, strconv.Itoa(n))
}

// Flag attaches a boolean such as "cached" to the end event.
func (s *Span) Flag(key string, v bool) *Span {
	return s.WithExtra(key, strconv.FormatBool(v))
}

// ID returns the span ID; 0 for a disabled span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
