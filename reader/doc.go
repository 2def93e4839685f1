// Package reader provides PDF decoding for the analysis pipeline.
//
// This package is the data-extraction collaborator: it opens a PDF,
// validates it, and walks its pages to produce styled layout blocks.
// It makes no structural decisions; everything it returns is consumed
// read-only by the layout package.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// Files are validated with pdfcpu before text extraction; a corrupt or
// unreadable file surfaces as a single wrapped error and no partial
// content is produced. Inputs without a .pdf extension are rejected
// with [ErrNotPDF].
//
// # Page Content
//
// [Reader.Pages] returns one [PageBlocks] per page, each holding layout
// [Block] values assembled from styled runs. Runs carry text, font
// size, and a style-flag bitmask derived from the font name. Run text
// is NFC-normalized. A page with no text yields an empty block list,
// which is not an error.
package reader
