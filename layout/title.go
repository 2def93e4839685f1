package layout

import (
	"strings"

	"github.com/tsawler/outliner/model"
)

// titleCandidate pairs a repaired candidate text with its score
type titleCandidate struct {
	text  string
	score float64
}

// SelectTitle picks the single best title string from the early blocks.
//
// Form documents short-circuit: the first early block naming a form is
// returned verbatim. Otherwise candidates are filtered, repaired for
// layout-extraction repetition artifacts, and scored by position, font
// size, page, vertical position, and length. The scorer is a heuristic
// default; a stronger lexical signal (the invitation lexicon) can
// override its top pick. The fallback order is: first H1 outline entry,
// then the configured default literal.
func (a *Analyzer) SelectTitle(blocks []model.TextBlock, isForm bool, outline []model.OutlineEntry) string {
	window := a.config.TitleWindow
	if window > len(blocks) {
		window = len(blocks)
	}
	early := blocks[:window]

	if isForm {
		for _, b := range early {
			if strings.Contains(strings.ToLower(b.Text), "form") && b.Length <= a.config.FormTitleMaxLength {
				return b.Text
			}
		}
		return a.fallbackTitle(outline)
	}

	var candidates []titleCandidate
	for i, b := range early {
		if b.Length < a.config.TitleMinLength || b.Length > a.config.TitleMaxLength {
			continue
		}
		if matchesAny(a.config.TitleExcludePatterns, b.Text) || matchesAny(a.config.DatePatterns, b.Text) {
			continue
		}

		candidates = append(candidates, titleCandidate{
			text:  collapseRepeats(b.Text),
			score: a.scoreTitle(b, i),
		})
	}

	if len(candidates) == 0 {
		return a.fallbackTitle(outline)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score { // ties keep document order
			best = c
		}
	}

	// Informal invitation-style text outranks the scorer by lexical
	// signal: prefer the best-scoring candidate outside the lexicon.
	if a.matchesInvitation(best.text) {
		alt, ok := a.bestExcludingInvitation(candidates)
		if ok {
			return alt.text
		}
	}

	return best.text
}

// scoreTitle computes the heuristic score for one candidate block
func (a *Analyzer) scoreTitle(b model.TextBlock, index int) float64 {
	var score float64

	if index < a.config.TitleEarlyBlocks {
		score += float64(a.config.TitleEarlyBlocks - index)
	}
	score += b.FontSize * a.config.TitleFontWeight
	if b.Page == 1 {
		score += a.config.TitlePageOneBonus
	}
	if b.YPosition < a.config.TitleTopBand {
		score += a.config.TitleTopBonus
	}
	if b.Length >= a.config.TitleLengthLow && b.Length <= a.config.TitleLengthHigh {
		score += a.config.TitleLengthBonus
	}

	return score
}

// fallbackTitle returns the first H1 outline text, else the default
func (a *Analyzer) fallbackTitle(outline []model.OutlineEntry) string {
	for _, entry := range outline {
		if entry.Level == model.LevelH1 {
			return entry.Text
		}
	}
	return a.config.DefaultTitle
}

// matchesInvitation reports whether text hits the invitation lexicon
func (a *Analyzer) matchesInvitation(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range a.config.InvitationWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// bestExcludingInvitation returns the highest-scoring candidate outside
// the invitation lexicon, if any
func (a *Analyzer) bestExcludingInvitation(candidates []titleCandidate) (titleCandidate, bool) {
	var best titleCandidate
	found := false
	for _, c := range candidates {
		if a.matchesInvitation(c.text) {
			continue
		}
		if !found || c.score > best.score {
			best = c
			found = true
		}
	}
	return best, found
}

// collapseRepeats repairs layout-extraction artifacts where the same
// phrase is emitted repeatedly within one block. Immediate word
// stutters are collapsed first, then a whole-phrase repetition (the
// word sequence being n >= 2 exact copies of its leading words) is cut
// to the first copy. Best-effort: pathological partial repeats are left
// alone.
func collapseRepeats(text string) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	deduped := make([]string, 0, len(words))
	deduped = append(deduped, words[0])
	for _, w := range words[1:] {
		if w != deduped[len(deduped)-1] {
			deduped = append(deduped, w)
		}
	}

	for k := len(deduped) / 2; k >= 2; k-- {
		if len(deduped)%k != 0 {
			continue
		}
		if isRepetitionOf(deduped, k) {
			deduped = deduped[:k]
			break
		}
	}

	return strings.Join(deduped, " ")
}

// isRepetitionOf reports whether words consists of exact copies of its
// leading k words
func isRepetitionOf(words []string, k int) bool {
	for i := k; i < len(words); i++ {
		if words[i] != words[i%k] {
			return false
		}
	}
	return true
}
