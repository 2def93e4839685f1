package reader

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// fragment is one raw positioned text run before line assembly
type fragment struct {
	Text     string
	X, Y, W  float64
	FontSize float64
	Flags    model.StyleFlags
}

// wordGapFactor is the fraction of the font size a horizontal gap must
// exceed before two fragments are treated as separate runs rather than
// pieces of one word.
const wordGapFactor = 0.3

// blockGapFactor is the multiple of the line font size a vertical gap
// must exceed before two lines are split into separate blocks.
const blockGapFactor = 1.7

// assembleLines groups fragments into baseline lines. Fragments are
// sorted top-to-bottom, left-to-right; fragments whose baselines fall
// within half the font height belong to the same line. Adjacent
// fragments separated by less than a word gap are merged into a single
// run so split words are not space-joined later.
func assembleLines(frags []fragment) []Line {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if absFloat(yDiff) > sorted[i].FontSize*0.5 {
			return yDiff > 0 // higher Y first (top of page)
		}
		return sorted[i].X < sorted[j].X
	})

	var groups [][]fragment
	var current []fragment
	for _, frag := range sorted {
		if len(current) == 0 {
			current = append(current, frag)
			continue
		}
		last := current[len(current)-1]
		if absFloat(frag.Y-last.Y) <= last.FontSize*0.5 {
			current = append(current, frag)
		} else {
			groups = append(groups, current)
			current = []fragment{frag}
		}
	}
	groups = append(groups, current)

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		lines = append(lines, buildLine(group))
	}
	return lines
}

// buildLine turns one baseline group into a Line, merging fragments
// that abut horizontally with matching style into single runs.
func buildLine(group []fragment) Line {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].X < group[j].X
	})

	var runs []StyledRun
	var lastEndX float64
	for i, frag := range group {
		mergeable := i > 0 &&
			frag.X-lastEndX <= frag.FontSize*wordGapFactor &&
			runs[len(runs)-1].Flags == frag.Flags &&
			runs[len(runs)-1].FontSize == frag.FontSize
		if mergeable {
			runs[len(runs)-1].Text += frag.Text
		} else {
			runs = append(runs, StyledRun{
				Text:     frag.Text,
				FontSize: frag.FontSize,
				Flags:    frag.Flags,
			})
		}
		lastEndX = frag.X + frag.W
	}

	first := group[0]
	last := group[len(group)-1]
	maxSize := first.FontSize
	for _, f := range group {
		if f.FontSize > maxSize {
			maxSize = f.FontSize
		}
	}

	return Line{
		Runs: runs,
		BBox: model.NewBBox(first.X, first.Y, (last.X+last.W)-first.X, maxSize),
	}
}

// assembleBlocks groups consecutive lines into blocks by vertical gap.
// A gap larger than blockGapFactor times the previous line's height
// starts a new block.
func assembleBlocks(lines []Line) []Block {
	if len(lines) == 0 {
		return nil
	}

	var blocks []Block
	current := Block{Lines: []Line{lines[0]}, BBox: lines[0].BBox}

	for _, line := range lines[1:] {
		prev := current.Lines[len(current.Lines)-1]
		gap := prev.BBox.Y - line.BBox.Y
		if gap > prev.BBox.Height*blockGapFactor {
			blocks = append(blocks, current)
			current = Block{Lines: []Line{line}, BBox: line.BBox}
			continue
		}
		current.Lines = append(current.Lines, line)
		current.BBox = current.BBox.Union(line.BBox)
	}
	blocks = append(blocks, current)

	return blocks
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
