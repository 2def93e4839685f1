package layout

import (
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// Analyzer runs the structure-inference pipeline over decoded pages.
// It holds only immutable configuration; nothing carries over between
// documents, so one Analyzer may serve many documents, concurrently on
// distinct inputs.
type Analyzer struct {
	config Config
}

// NewAnalyzer creates an analyzer with the default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: DefaultConfig()}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// Config returns the analyzer's configuration
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze infers the document structure for one document. The result
// always carries a non-empty title and a non-nil outline; a document
// with no pages, no text, or no qualifying headings resolves to the
// defaults rather than an error.
func (a *Analyzer) Analyze(pages []reader.PageBlocks) *model.ExtractionResult {
	blocks := a.Normalize(pages)
	profile := a.Profile(blocks)
	isForm := a.DetectForm(blocks)

	outline := a.assembleOutline(blocks, profile, isForm)
	title := a.SelectTitle(blocks, isForm, outline)

	result := model.NewExtractionResult(title)
	for _, entry := range outline {
		if entry.Text == title {
			continue
		}
		result.Outline = append(result.Outline, entry)
	}

	return result
}

// assembleOutline runs the classifier over every block in document
// order. Exact-duplicate texts are dropped (first occurrence wins) and
// form documents yield no outline at all. Output order is document
// order; entries are never re-sorted by level.
func (a *Analyzer) assembleOutline(blocks []model.TextBlock, profile model.FontProfile, isForm bool) []model.OutlineEntry {
	if isForm {
		return nil
	}

	seen := make(map[string]bool)
	var outline []model.OutlineEntry

	for _, b := range blocks {
		isHeading, level := a.Classify(b, profile.BodyFontSize)
		if !isHeading || seen[b.Text] {
			continue
		}
		seen[b.Text] = true
		outline = append(outline, model.OutlineEntry{
			Level: level,
			Text:  b.Text,
			Page:  b.Page,
		})
	}

	return outline
}
