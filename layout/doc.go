// Package layout provides document structure inference: deriving a
// title and a hierarchical outline of headings from the visual layout
// of a PDF.
//
// # Analysis
//
// The [Analyzer] orchestrates the full pipeline over decoded pages:
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(pages)
//
// The pipeline runs leaves-first:
//
//   - block normalization - raw styled runs become canonical
//     [model.TextBlock] values; boilerplate (running headers, footers,
//     page numbers) is filtered out
//   - font profiling - character volume per (size, style) pair
//     establishes the body font size and heading candidate sizes
//   - form detection - documents dominated by label/value field entries
//     are flagged and outline extraction is suppressed for them
//   - heading classification - ordered pattern tiers with font-delta
//     gated level assignment decide heading level 1-3 per block
//   - title selection - early prominent blocks are scored by position,
//     font size, page, and length to pick one title
//   - outline assembly - classified headings in document order,
//     deduplicated, excluding the title
//
// # Configuration
//
// All heuristic tables (ignore patterns, form-field signatures, heading
// pattern tiers) and calibration constants live in [Config], constructed
// once via [DefaultConfig] and immutable afterwards:
//
//	config := layout.DefaultConfig()
//	config.FormFieldDensity = 0.4
//	analyzer := layout.NewAnalyzerWithConfig(config)
//
// Pattern tables can be extended from a YAML file with
// [Config.ApplyPatternFile].
//
// The Analyzer holds no per-document state; it is safe to use from
// multiple goroutines on distinct documents.
package layout
