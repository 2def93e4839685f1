package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makePositionedBlock creates a block with explicit vertical position
func makePositionedBlock(text string, page int, size float64, y float64) model.TextBlock {
	b := makeBlock(text, page, size, 0)
	b.YPosition = y
	return b
}

func TestSelectTitlePrefersProminentEarlyBlock(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("Understanding Distributed Consensus", 1, 22, 80),
		makePositionedBlock("1. Introduction", 1, 17, 400),
		makePositionedBlock("The problem of agreement among unreliable processes has a long history in systems research and remains central today.", 1, 12, 430),
	}

	title := a.SelectTitle(blocks, false, nil)
	if title != "Understanding Distributed Consensus" {
		t.Errorf("title = %q", title)
	}
}

func TestSelectTitleExcludesBoilerplateCandidates(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("Copyright 2024 Example Press", 1, 18, 60),
		makePositionedBlock("Version 3.2", 1, 18, 90),
		makePositionedBlock("March 15, 2024", 1, 18, 120),
		makePositionedBlock("Field Guide To Alpine Plants", 1, 16, 150),
	}

	title := a.SelectTitle(blocks, false, nil)
	if title != "Field Guide To Alpine Plants" {
		t.Errorf("title = %q", title)
	}
}

func TestSelectTitleTiesKeepDocumentOrder(t *testing.T) {
	a := NewAnalyzer()

	// Identical scores: the earlier block must win.
	blocks := []model.TextBlock{
		makePositionedBlock("Candidate Number One", 2, 14, 500),
		makePositionedBlock("Candidate Number Two", 2, 14, 500),
	}
	// Force equal position scores by placing both outside the early
	// window bonus range.
	filler := make([]model.TextBlock, 5)
	for i := range filler {
		filler[i] = makePositionedBlock("xx", 2, 12, 600) // too short, excluded
	}
	blocks = append(filler, blocks...)

	title := a.SelectTitle(blocks, false, nil)
	if title != "Candidate Number One" {
		t.Errorf("title = %q, want first of tied candidates", title)
	}
}

func TestSelectTitleFormDocument(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("Application Form for Grant of LTC Advance", 1, 16, 70),
		makePositionedBlock("1. Name:", 1, 12, 120),
		makePositionedBlock("2. Date:", 1, 12, 150),
	}

	title := a.SelectTitle(blocks, true, nil)
	if title != "Application Form for Grant of LTC Advance" {
		t.Errorf("form title = %q, want the form block verbatim", title)
	}
}

func TestSelectTitleFormWithoutFormWordFallsBack(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("1. Name:", 1, 12, 120),
		makePositionedBlock("2. Date:", 1, 12, 150),
	}

	if title := a.SelectTitle(blocks, true, nil); title != "Document" {
		t.Errorf("title = %q, want default literal", title)
	}
}

func TestSelectTitleFallbackToFirstH1(t *testing.T) {
	a := NewAnalyzer()

	outline := []model.OutlineEntry{
		{Level: model.LevelH2, Text: "1.1 Scope", Page: 1},
		{Level: model.LevelH1, Text: "1. Overview", Page: 1},
	}

	if title := a.SelectTitle(nil, false, outline); title != "1. Overview" {
		t.Errorf("title = %q, want first H1 text", title)
	}
}

func TestSelectTitleDefaultLiteral(t *testing.T) {
	a := NewAnalyzer()

	if title := a.SelectTitle(nil, false, nil); title != "Document" {
		t.Errorf("title = %q, want Document", title)
	}
}

func TestSelectTitleInvitationOverride(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("You Are Invited To A Party", 1, 24, 60),
		makePositionedBlock("Topjump Trampoline Arena", 1, 14, 300),
	}

	title := a.SelectTitle(blocks, false, nil)
	if title != "Topjump Trampoline Arena" {
		t.Errorf("title = %q, want the non-invitation alternative", title)
	}
}

func TestSelectTitleInvitationOnlyPoolKeepsBest(t *testing.T) {
	a := NewAnalyzer()

	blocks := []model.TextBlock{
		makePositionedBlock("Birthday Party Details Inside", 1, 20, 60),
	}

	// No alternative outside the lexicon: the scorer's pick stands.
	if title := a.SelectTitle(blocks, false, nil); title != "Birthday Party Details Inside" {
		t.Errorf("title = %q", title)
	}
}

func TestCollapseRepeats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no repetition", "Annual Shareholder Report", "Annual Shareholder Report"},
		{"word stutter", "RSVP: RSVP: RSVP:", "RSVP:"},
		{"phrase doubled", "Annual Report Annual Report", "Annual Report"},
		{"phrase tripled", "Hope To See You Hope To See You Hope To See You", "Hope To See You"},
		{"stutter then phrase", "Go Go Gadget Go Go Gadget", "Go Gadget"},
		{"partial repeat left alone", "Annual Report Annual Review", "Annual Report Annual Review"},
		{"single word", "Overview", "Overview"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := collapseRepeats(tt.in); got != tt.want {
			t.Errorf("%s: collapseRepeats(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
