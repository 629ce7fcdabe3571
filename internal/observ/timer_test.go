package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Unix(0, 0)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	lex := tm.Begin("lex")
	tm.End(lex, "12 tokens")
	done := tm.Track("parse")
	done("")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %+v", report.Phases)
	}
	if report.Phases[0].DurationMS != 1 || report.Phases[0].Note != "12 tokens" {
		t.Fatalf("lex = %+v", report.Phases[0])
	}
	if report.TotalMS != 2 {
		t.Fatalf("total = %v", report.TotalMS)
	}

	summary := tm.Summary()
	if !strings.Contains(summary, "// 12 tokens") || !strings.Contains(summary, "total") {
		t.Fatalf("summary:\n%s", summary)
	}
}

func TestTimerIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(3, "x")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("unexpected phase")
	}
	var nilTimer *Timer
	nilTimer.Track("noop")("")
	if nilTimer.Report().TotalMS != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
