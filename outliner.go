// Package outliner infers the structure of PDF documents: the title and
// a hierarchical outline of H1/H2/H3 headings with page numbers, derived
// from font statistics and layout rather than embedded bookmarks.
//
// Basic usage:
//
//	result, err := outliner.Open("document.pdf").Extract()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("report.pdf").
//	    WithConfig(cfg).
//	    Extract()
//
// For advanced use cases, the lower-level reader and layout packages are
// also available.
package outliner

import (
	"encoding/json"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// Extractor is the fluent handle for one extraction. Configure it with
// the With* methods, then call a terminal operation such as Extract.
type Extractor struct {
	filename   string
	reader     *reader.Reader
	ownsReader bool
	config     layout.Config
	maxPages   int
	err        error
}

// Open prepares an extractor for the given PDF file. The file is not
// touched until a terminal operation runs.
//
// Example:
//
//	result, err := outliner.Open("document.pdf").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename:   filename,
		ownsReader: true,
		config:     layout.DefaultConfig(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// The caller remains responsible for closing the reader.
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader: r,
		config: layout.DefaultConfig(),
	}
}

// Extract runs the full pipeline and returns the inferred structure.
// When the extractor owns its reader the underlying file is closed
// before returning.
func (e *Extractor) Extract() (*model.ExtractionResult, error) {
	if e.err != nil {
		return nil, e.err
	}

	r := e.reader
	if r == nil {
		var err error
		r, err = reader.Open(e.filename)
		if err != nil {
			return nil, err
		}
	}
	if e.ownsReader {
		defer r.Close()
	}

	pages, err := r.Pages()
	if err != nil {
		return nil, err
	}
	if e.maxPages > 0 && len(pages) > e.maxPages {
		pages = pages[:e.maxPages]
	}

	return layout.NewAnalyzerWithConfig(e.config).Analyze(pages), nil
}

// ExtractJSON runs Extract and serializes the result. With pretty set,
// the output is indented for human reading.
func (e *Extractor) ExtractJSON(pretty bool) ([]byte, error) {
	result, err := e.Extract()
	if err != nil {
		return nil, err
	}
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.pdf").Extract())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
