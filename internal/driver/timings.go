package driver

import (
	"encoding/json"
	"fmt"

	"felix/internal/diag"
	"felix/internal/observ"
	"felix/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimingDiagnostic adds an ObsTimings info diagnostic whose single note
// carries the report as JSON. The bag grows past its limit if needed.
func AppendTimingDiagnostic(bag *diag.Bag, file source.FileID, path string, report observ.Report) {
	if bag == nil {
		return
	}
	data, err := json.Marshal(timingPayload{Kind: "parse", Path: path, TotalMS: report.TotalMS, Phases: report.Phases})
	if err != nil {
		return
	}

	msg := fmt.Sprintf("timings (parse): total %.2f ms", report.TotalMS)
	if path != "" {
		msg += ", " + path
	}
	span := source.Span{File: file}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, span, msg).WithNote(span, string(data))

	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
