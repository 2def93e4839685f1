package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
)

// makeRawBlock builds a one-line raw block from styled runs
func makeRawBlock(top float64, runs ...reader.StyledRun) reader.Block {
	bbox := model.NewBBox(72, top-12, 400, 12)
	return reader.Block{
		Lines: []reader.Line{{Runs: runs, BBox: bbox}},
		BBox:  bbox,
	}
}

func run(text string, size float64, flags model.StyleFlags) reader.StyledRun {
	return reader.StyledRun{Text: text, FontSize: size, Flags: flags}
}

func TestNormalizeJoinsRunsAndLines(t *testing.T) {
	a := NewAnalyzer()

	raw := reader.Block{
		Lines: []reader.Line{
			{Runs: []reader.StyledRun{run("  Revenue ", 12, 0), run("Overview", 12, 0)}},
			{Runs: []reader.StyledRun{run("Fiscal   Year", 12, 0)}},
		},
		BBox: model.NewBBox(72, 680, 400, 24),
	}
	page := reader.PageBlocks{Number: 1, Width: 612, Height: 792, Blocks: []reader.Block{raw}}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "Revenue Overview Fiscal Year" {
		t.Errorf("Text = %q", blocks[0].Text)
	}
	if blocks[0].Page != 1 {
		t.Errorf("Page = %d, want 1", blocks[0].Page)
	}
	if blocks[0].Length != len("Revenue Overview Fiscal Year") {
		t.Errorf("Length = %d", blocks[0].Length)
	}
}

func TestNormalizeMeanFontSize(t *testing.T) {
	a := NewAnalyzer()

	page := reader.PageBlocks{
		Number: 1, Width: 612, Height: 792,
		Blocks: []reader.Block{
			makeRawBlock(700, run("Mixed", 10, 0), run("sizes", 14, 0)),
		},
	}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if blocks[0].FontSize != 12 {
		t.Errorf("FontSize = %v, want 12 (mean of 10 and 14)", blocks[0].FontSize)
	}
}

func TestNormalizeMajorityFlags(t *testing.T) {
	a := NewAnalyzer()

	page := reader.PageBlocks{
		Number: 1, Width: 612, Height: 792,
		Blocks: []reader.Block{
			makeRawBlock(700,
				run("two", 12, model.StyleBold),
				run("bold", 12, model.StyleBold),
				run("one plain", 12, 0)),
			// Tie between bold and plain: first-seen wins.
			makeRawBlock(600,
				run("plain first", 12, 0),
				run("bold after", 12, model.StyleBold)),
		},
	}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if !blocks[0].Bold() {
		t.Error("majority bold block not flagged bold")
	}
	if blocks[1].Bold() {
		t.Error("tie should break toward first-seen (plain)")
	}
}

func TestNormalizeDropsShortBlocks(t *testing.T) {
	a := NewAnalyzer()

	page := reader.PageBlocks{
		Number: 1, Width: 612, Height: 792,
		Blocks: []reader.Block{
			makeRawBlock(700, run("ab", 12, 0)),
			makeRawBlock(650, run("   ", 12, 0)),
			makeRawBlock(600, run("kept", 12, 0)),
		},
	}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 1 || blocks[0].Text != "kept" {
		t.Fatalf("short blocks not dropped: %+v", blocks)
	}
}

func TestNormalizeRejectsBoilerplate(t *testing.T) {
	a := NewAnalyzer()

	page := reader.PageBlocks{
		Number: 2, Width: 612, Height: 792,
		Blocks: []reader.Block{
			makeRawBlock(780, run("Page 2 of 14", 9, 0)),
			makeRawBlock(760, run("17", 9, 0)),
			makeRawBlock(740, run("- 2 -", 9, 0)),
			makeRawBlock(700, run("Actual Content Heading", 16, 0)),
			makeRawBlock(20, run("Copyright 2024 Acme Corp", 8, 0)),
		},
	}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (boilerplate dropped): %+v", len(blocks), blocks)
	}
	if blocks[0].Text != "Actual Content Heading" {
		t.Errorf("survivor = %q", blocks[0].Text)
	}
}

func TestNormalizeYPositionFromPageTop(t *testing.T) {
	a := NewAnalyzer()

	raw := makeRawBlock(700, run("Near the top", 12, 0))
	page := reader.PageBlocks{Number: 1, Width: 612, Height: 792, Blocks: []reader.Block{raw}}

	blocks := a.Normalize([]reader.PageBlocks{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	// Block top is at Y=700 in PDF coordinates on a 792pt page.
	if got := blocks[0].YPosition; got != 92 {
		t.Errorf("YPosition = %v, want 92", got)
	}
}

func TestNormalizeEmptyPages(t *testing.T) {
	a := NewAnalyzer()

	if got := a.Normalize(nil); got != nil {
		t.Errorf("Normalize(nil) = %v, want nil", got)
	}

	empty := reader.PageBlocks{Number: 1, Width: 612, Height: 792}
	if got := a.Normalize([]reader.PageBlocks{empty}); got != nil {
		t.Errorf("empty page produced blocks: %v", got)
	}
}
