// Package trace is the structured event log of the felix toolchain.
//
// Enable it from the command line:
//
//	felix parse --trace=- --trace-level=detail ./examples
//
// Tracers:
//
//   - Nop: zero-cost tracer used when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory for dumps
//   - MultiTracer: fans out to several tracers
//
// Levels map to scopes: phase emits driver and stage spans, detail adds
// per-file spans, debug adds node-level events.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", parentID)
//	defer span.End("")
package trace
