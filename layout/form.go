package layout

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// DetectForm decides whether the document is a field-entry form.
//
// Forms carry dense short label/value pairs instead of narrative prose.
// Two signals classify a document as a form: an explicit form-title
// phrase in any early block, or enough early blocks matching field
// signatures to cross the density threshold. The density threshold is
// what separates "a document that happens to contain a few labeled
// fields" from "a document that IS a form".
//
// When a document is a form, outline extraction is suppressed entirely:
// forms have no narrative section hierarchy worth reporting.
func (a *Analyzer) DetectForm(blocks []model.TextBlock) bool {
	if len(blocks) == 0 {
		return false
	}

	window := a.config.FormSampleWindow
	if window > len(blocks) {
		window = len(blocks)
	}
	sample := blocks[:window]

	for _, b := range sample {
		lower := strings.ToLower(b.Text)
		for _, phrase := range a.config.FormTitlePhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}

	matching := 0
	for _, b := range sample {
		if matchesAny(a.config.FieldSignatures, b.Text) {
			matching++
		}
	}

	density := float64(matching) / float64(window)
	return density >= a.config.FormFieldDensity
}
