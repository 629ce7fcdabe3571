package driver

import (
	"felix/internal/diag"
	"felix/internal/source"
	"felix/internal/trace"
)

// traceReporter дублирует диагностики файла в трассу точками "diag".
type traceReporter struct {
	tracer trace.Tracer
	parent uint64
}

func (r traceReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, _ []diag.Note, _ []diag.Fix) {
	trace.Point(r.tracer, trace.ScopeFile, "diag", sev.String()+" "+code.ID()+" at "+primary.Range()+": "+msg, r.parent)
}

// fileReporter собирает диагностики одного файла: в bag и, если трасса
// включена, в трассу; повторы отбрасываются.
func fileReporter(bag *diag.Bag, tracer trace.Tracer, parent uint64) *diag.DedupReporter {
	sinks := diag.MultiReporter{diag.BagReporter{Bag: bag}}
	if tracer != nil && tracer.Enabled() {
		sinks = append(sinks, traceReporter{tracer: tracer, parent: parent})
	}
	return diag.NewDedupReporter(sinks)
}
