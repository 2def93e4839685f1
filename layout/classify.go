package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
)

// Classify decides whether one block is a heading and at what level,
// given the document's body font size. The decision is state-free:
// ordered hard rejects run first, then the pattern tiers in priority
// order, then the general capitalized-phrase fallback. The first match
// wins.
func (a *Analyzer) Classify(b model.TextBlock, bodyFontSize float64) (bool, model.Level) {
	text := b.Text
	delta := b.FontSize - bodyFontSize
	emphasized := delta >= a.config.H2Delta || b.Bold()

	if a.rejected(b, emphasized) {
		return false, 0
	}

	for _, rule := range a.config.HeadingRules {
		if rule.NeedsEmphasis && !emphasized {
			continue
		}
		if !rule.Pattern.MatchString(text) {
			continue
		}
		if rule.Scale == ScaleFixed {
			return true, rule.Level
		}
		return true, a.levelForDelta(rule.Scale, delta, b.Bold())
	}

	if a.fallbackHeading(text, emphasized) {
		return true, a.levelForDelta(ScaleGeneral, delta, b.Bold())
	}

	return false, 0
}

// rejected applies the ordered hard rejects; the first hit wins
func (a *Analyzer) rejected(b model.TextBlock, emphasized bool) bool {
	text := b.Text

	if b.Length > a.config.MaxHeadingLength {
		return true
	}
	if b.Length > a.config.SentenceLength && endsInSentencePunctuation(text) {
		return true
	}
	if matchesAny(a.config.DatePatterns, text) {
		return true
	}
	if matchesAny(a.config.IgnorePatterns, text) {
		return true
	}
	if b.Length <= a.config.MinHeadingLength && !emphasized {
		return true
	}
	if matchesAny(a.config.FieldLabelPatterns, text) {
		return true
	}

	return false
}

// levelForDelta assigns the heading level from the font-size delta and
// boldness under the given scale. The numeric thresholds are the single
// tunable surface controlling H1 vs H2 vs H3 assignment.
func (a *Analyzer) levelForDelta(scale LevelScale, delta float64, bold bool) model.Level {
	switch scale {
	case ScaleStrong:
		if delta >= a.config.H1Delta {
			return model.LevelH1
		}
		if delta >= a.config.H2Delta || bold {
			return model.LevelH2
		}
	case ScaleMedium:
		if delta >= a.config.MediumH1Delta {
			return model.LevelH1
		}
		if delta >= a.config.H2Delta || bold {
			return model.LevelH2
		}
	case ScaleGeneral:
		if delta >= a.config.H1Delta {
			return model.LevelH1
		}
		if delta >= a.config.GeneralH2Delta {
			return model.LevelH2
		}
	}
	return model.LevelH3
}

// fallbackHeading is the general rule behind the pattern tiers: a short
// phrase of capitalized words that does not read as a sentence, backed
// by emphasis. Plain-sized uncapitalized prose never qualifies.
func (a *Analyzer) fallbackHeading(text string, emphasized bool) bool {
	if !emphasized {
		return false
	}
	if strings.HasSuffix(text, ".") {
		return false
	}

	words := strings.Fields(text)
	if len(words) < a.config.FallbackMinWords || len(words) > a.config.FallbackMaxWords {
		return false
	}

	for _, word := range words {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLetter(first) && !unicode.IsUpper(first) {
			return false
		}
	}

	return true
}

// endsInSentencePunctuation reports whether text ends in terminal
// punctuation marking running prose
func endsInSentencePunctuation(text string) bool {
	for _, suffix := range []string{".", ":", ";", ",", "!", "?"} {
		if strings.HasSuffix(text, suffix) {
			return true
		}
	}
	return false
}
