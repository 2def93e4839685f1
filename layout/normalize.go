package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// Normalize converts raw page content into canonical text blocks:
// zero or one TextBlock per layout block. The transform is pure; a
// page with no blocks simply contributes nothing.
func (a *Analyzer) Normalize(pages []reader.PageBlocks) []model.TextBlock {
	var blocks []model.TextBlock

	for _, page := range pages {
		for _, raw := range page.Blocks {
			block, ok := a.normalizeBlock(raw, page)
			if !ok {
				continue
			}
			blocks = append(blocks, block)
		}
	}

	return blocks
}

// normalizeBlock merges one layout block's runs into a TextBlock.
// Returns false when the block carries no structural signal: empty or
// near-empty text, or text matching the boilerplate table.
func (a *Analyzer) normalizeBlock(raw reader.Block, page reader.PageBlocks) (model.TextBlock, bool) {
	var lineTexts []string
	var sizeSum float64
	var sizeCount int
	flagCounts := make(map[model.StyleFlags]int)
	var flagOrder []model.StyleFlags

	for _, line := range raw.Lines {
		var runTexts []string
		for _, run := range line.Runs {
			text := strings.TrimSpace(run.Text)
			if text == "" {
				continue
			}
			runTexts = append(runTexts, text)
			sizeSum += run.FontSize
			sizeCount++
			if _, seen := flagCounts[run.Flags]; !seen {
				flagOrder = append(flagOrder, run.Flags)
			}
			flagCounts[run.Flags]++
		}
		if len(runTexts) > 0 {
			lineTexts = append(lineTexts, strings.Join(runTexts, " "))
		}
	}

	text := strings.Join(strings.Fields(strings.Join(lineTexts, " ")), " ")
	length := utf8.RuneCountInString(text)
	if length < a.config.MinBlockLength {
		return model.TextBlock{}, false
	}
	if matchesAny(a.config.IgnorePatterns, text) {
		return model.TextBlock{}, false
	}

	fontSize := a.config.DefaultBodyFontSize
	if sizeCount > 0 {
		fontSize = sizeSum / float64(sizeCount)
	}

	return model.TextBlock{
		Text:      text,
		Page:      page.Number,
		FontSize:  fontSize,
		Flags:     majorityFlags(flagCounts, flagOrder),
		Length:    length,
		YPosition: page.Height - raw.BBox.Top(),
		BBox:      raw.BBox,
	}, true
}

// majorityFlags picks the most frequent flag value; ties break toward
// the first-seen value so results stay deterministic.
func majorityFlags(counts map[model.StyleFlags]int, order []model.StyleFlags) model.StyleFlags {
	var best model.StyleFlags
	bestCount := -1
	for _, flags := range order {
		if counts[flags] > bestCount {
			best = flags
			bestCount = counts[flags]
		}
	}
	return best
}
