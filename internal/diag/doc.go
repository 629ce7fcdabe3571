// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, Code (numeric, with a stable
// string form such as "SYN2001"), Message, Primary span, optional Notes and
// Fixes. Phases emit through a Reporter so that emission is decoupled from
// storage; BagReporter collects into a Bag, which supports limits, sorting
// and deduplication.
//
// Package diag does not render anything. Pretty and JSON output live in
// internal/diagfmt.
package diag
