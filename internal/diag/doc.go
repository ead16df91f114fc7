// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – from Help up to Bug, defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form: LEX1xxx lexical, SYN2xxx grammar, IO3xxx loading, ESC4xxx escapes.
//   - Message – human oriented text; keep it short and actionable.
//   - Highlights – source fragments to underline. The first primary
//     highlight is the location of the diagnostic.
//   - Notes – free text lines printed after the snippet (help, hints).
//
// # Emitting diagnostics
//
// Producers report through a Reporter, usually via ReportBuilder. BagReporter
// aggregates into a Bag, which supports sorting, deduplication and merging.
// Converters in convert.go turn parser errors, escape errors and malformed
// tokens into diagnostics.
//
// Package diag does not format anything for terminals; rendering lives in
// internal/diagfmt.
package diag
