package outliner

import (
	"github.com/tsawler/outliner/layout"
)

// WithConfig replaces the analyzer configuration for this extraction.
func (e *Extractor) WithConfig(config layout.Config) *Extractor {
	e.config = config
	return e
}

// MaxPages limits analysis to the first n pages. Zero or negative means
// all pages.
func (e *Extractor) MaxPages(n int) *Extractor {
	e.maxPages = n
	return e
}

// WithPatternFile extends the configuration's pattern tables from YAML
// data. A malformed file surfaces as an error from the next terminal
// operation rather than interrupting the chain.
func (e *Extractor) WithPatternFile(data []byte) *Extractor {
	if err := e.config.ApplyPatternFile(data); err != nil && e.err == nil {
		e.err = err
	}
	return e
}
