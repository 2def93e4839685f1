package model

// StyleFlags is a bitmask describing the dominant text style of a run
// or block. The bit positions match the span flag conventions used by
// common PDF text extractors, so bold is bit 4.
type StyleFlags int

const (
	// StyleItalic is set when the run's font is italic or oblique
	StyleItalic StyleFlags = 1 << 1

	// StyleBold is set when the run's font is a bold weight
	StyleBold StyleFlags = 1 << 4
)

// Bold reports whether the bold bit is set
func (f StyleFlags) Bold() bool {
	return f&StyleBold != 0
}

// Italic reports whether the italic bit is set
func (f StyleFlags) Italic() bool {
	return f&StyleItalic != 0
}

// TextBlock is one normalized layout block: the canonical unit the
// analysis pipeline operates on. Blocks are immutable after creation
// and consumed read-only downstream.
type TextBlock struct {
	// Text is the trimmed, whitespace-collapsed block text
	Text string

	// Page is the 1-based page number the block appears on
	Page int

	// FontSize is the arithmetic mean of the constituent run sizes
	FontSize float64

	// Flags is the most frequent run-level style flag value in the block
	Flags StyleFlags

	// Length is the rune count of Text
	Length int

	// YPosition is the distance of the block top from the top of the
	// page, in points (0 = top edge)
	YPosition float64

	// BBox is the block bounding box in PDF coordinates
	BBox BBox
}

// Bold reports whether the block's dominant style is bold
func (b TextBlock) Bold() bool {
	return b.Flags.Bold()
}
