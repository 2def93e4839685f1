package model

// FontKey identifies one (font size, style flags) combination. Sizes are
// rounded before keying so sub-point rendering jitter maps to one key.
type FontKey struct {
	Size  float64
	Flags StyleFlags
}

// FontUsage accumulates how much text a font combination carries
type FontUsage struct {
	// Count is the number of blocks using this combination
	Count int

	// Chars is the total character volume carried by this combination
	Chars int
}

// FontProfile is the document-wide font statistics model. It is derived
// once per document from all text blocks.
//
// The body font size is the combination with the greatest total
// character volume: running body prose dominates character count, so
// the most ink identifies body text rather than heading text.
type FontProfile struct {
	// BodyFontSize is the size of the body-text font combination
	BodyFontSize float64

	// HeadingSizes holds the distinct sizes strictly larger than the
	// body size, descending, that are used more than once
	HeadingSizes []float64

	// Usage maps each font combination to its accumulated usage
	Usage map[FontKey]FontUsage
}

// Delta returns the font size delta of a block against the body size,
// the primary signal for heading-level assignment.
func (p FontProfile) Delta(b TextBlock) float64 {
	return b.FontSize - p.BodyFontSize
}
