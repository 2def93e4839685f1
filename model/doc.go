// Package model provides the intermediate representation for document
// structure inference.
//
// This package defines the data types that flow through the analysis
// pipeline: normalized text blocks, the document font profile, and the
// final extraction result. All analysis operations ultimately produce
// these types, making them the primary API for consuming results.
//
// # Text Blocks
//
// A [TextBlock] is the canonical unit of analysis: one merged layout
// block with averaged font size, dominant style flags, page number, and
// position. Blocks are created once per physical layout block and are
// read-only downstream.
//
// # Font Profile
//
// The [FontProfile] aggregates character volume per (font size, style)
// combination to establish what counts as body text versus emphasized
// text. See [FontProfile.BodyFontSize].
//
// # Results
//
// The [ExtractionResult] is the sole externally visible artifact: a
// document title and an ordered outline of [OutlineEntry] records. Its
// JSON form is stable:
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
//
// # Geometry
//
// [BBox] and [Point] support position calculations in PDF coordinate
// space (Y increases upward).
package model
