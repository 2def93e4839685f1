package layout

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// Profile computes the document font profile from all text blocks.
//
// Blocks are grouped by rounded (size, flags) key and the body font
// size is the key carrying the greatest total character volume - a few
// long paragraphs outweigh many short emphasized labels, which
// occurrence counting would get wrong. Heading candidate sizes are the
// distinct sizes strictly above the body size used more than once;
// one-off sizes (a drop cap, a decorative run) are excluded.
func (a *Analyzer) Profile(blocks []model.TextBlock) model.FontProfile {
	profile := model.FontProfile{
		BodyFontSize: a.config.DefaultBodyFontSize,
		Usage:        make(map[model.FontKey]model.FontUsage),
	}
	if len(blocks) == 0 {
		return profile
	}

	for _, b := range blocks {
		key := model.FontKey{
			Size:  a.roundSize(b.FontSize),
			Flags: b.Flags,
		}
		usage := profile.Usage[key]
		usage.Count++
		usage.Chars += b.Length
		profile.Usage[key] = usage
	}

	// Sorted key walk keeps the body-size choice deterministic when
	// two keys tie on character volume.
	keys := make([]model.FontKey, 0, len(profile.Usage))
	for key := range profile.Usage {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Size != keys[j].Size {
			return keys[i].Size < keys[j].Size
		}
		return keys[i].Flags < keys[j].Flags
	})

	bestChars := -1
	for _, key := range keys {
		if chars := profile.Usage[key].Chars; chars > bestChars {
			bestChars = chars
			profile.BodyFontSize = key.Size
		}
	}

	// Total occurrences per size across style variants.
	sizeCounts := make(map[float64]int)
	for _, key := range keys {
		sizeCounts[key.Size] += profile.Usage[key].Count
	}

	var candidates []float64
	for size, count := range sizeCounts {
		if size > profile.BodyFontSize && count > 1 {
			candidates = append(candidates, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(candidates)))
	profile.HeadingSizes = candidates

	return profile
}

// roundSize rounds a font size to the profile bucket granularity
func (a *Analyzer) roundSize(size float64) float64 {
	bucket := a.config.FontSizeBucket
	if bucket <= 0 {
		return size
	}
	return math.Round(size/bucket) * bucket
}
