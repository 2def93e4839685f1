package layout

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/model"
)

// LevelScale selects how a matched heading rule assigns its level
type LevelScale int

const (
	// ScaleFixed uses the rule's fixed level regardless of font
	ScaleFixed LevelScale = iota

	// ScaleStrong assigns H1 at delta >= H1Delta, H2 at delta >= H2Delta
	// or bold, else H3
	ScaleStrong

	// ScaleMedium assigns H1 at delta >= MediumH1Delta, H2 at delta >=
	// H2Delta or bold, else H3
	ScaleMedium

	// ScaleGeneral assigns H1 at delta >= H1Delta, H2 at delta >=
	// GeneralH2Delta, else H3
	ScaleGeneral
)

// HeadingRule is one pattern in a heading tier. Rules are evaluated in
// slice order; the first match decides the outcome.
type HeadingRule struct {
	// Pattern is matched against the block text
	Pattern *regexp.Regexp

	// Level is the fixed level when Scale is ScaleFixed
	Level model.Level

	// Scale selects the delta rule used to pick the level
	Scale LevelScale

	// NeedsEmphasis requires font delta >= H2Delta or bold for the rule
	// to match at all
	NeedsEmphasis bool
}

// Config holds every heuristic table and calibration constant used by
// the Analyzer. Construct it with DefaultConfig and treat it as
// immutable after any adjustments.
type Config struct {
	// MinBlockLength drops normalized blocks shorter than this many
	// runes; they carry no structural signal
	MinBlockLength int

	// IgnorePatterns is the boilerplate table: recurring headers,
	// footers, and page-number markers rejected during normalization
	// and classification
	IgnorePatterns []*regexp.Regexp

	// FontSizeBucket is the rounding granularity for font profile keys
	FontSizeBucket float64

	// DefaultBodyFontSize is used when a document has no font statistics
	DefaultBodyFontSize float64

	// FormSampleWindow is how many early blocks the form detector scans
	FormSampleWindow int

	// FormFieldDensity is the fraction of sampled blocks that must match
	// a field signature for the document to classify as a form
	FormFieldDensity float64

	// FormTitlePhrases are substrings whose presence in any early block
	// classifies the document as a form outright
	FormTitlePhrases []string

	// FieldSignatures match form-field entries (numbered labels, short
	// colon labels, fill-in-the-blank runs, currency endings)
	FieldSignatures []*regexp.Regexp

	// MaxHeadingLength rejects longer blocks outright
	MaxHeadingLength int

	// SentenceLength is the length beyond which terminal punctuation
	// marks a block as prose rather than a heading
	SentenceLength int

	// MinHeadingLength is the length at or below which a block needs
	// strong formatting support to remain a candidate
	MinHeadingLength int

	// DatePatterns reject bare dates
	DatePatterns []*regexp.Regexp

	// FieldLabelPatterns reject field/label/value signatures inside the
	// classifier (currency suffixes, numbered field labels, long
	// colon-terminated labels)
	FieldLabelPatterns []*regexp.Regexp

	// HeadingRules are the pattern tiers in priority order
	HeadingRules []HeadingRule

	// Font-delta thresholds controlling H1 vs H2 vs H3 assignment.
	// These encode the calibration against the visual size hierarchy
	// and must be reproduced exactly for output parity.
	H1Delta        float64 // strong/general tier H1 threshold
	MediumH1Delta  float64 // medium tier H1 threshold
	GeneralH2Delta float64 // general tier H2 threshold
	H2Delta        float64 // emphasis threshold and H2 floor

	// FallbackMinWords and FallbackMaxWords bound the general
	// capitalized-phrase fallback rule
	FallbackMinWords int
	FallbackMaxWords int

	// TitleWindow is how many early blocks the title selector considers
	TitleWindow int

	// TitleMinLength and TitleMaxLength bound title candidates
	TitleMinLength int
	TitleMaxLength int

	// TitleEarlyBlocks is the position window earning a position score
	TitleEarlyBlocks int

	// TitleFontWeight scales the linear font-size score
	TitleFontWeight float64

	// TitlePageOneBonus is the flat bonus for first-page candidates
	TitlePageOneBonus float64

	// TitleTopBand is the distance from the page top (points) under
	// which a candidate earns the top-of-page bonus
	TitleTopBand float64

	// TitleTopBonus is the bonus for candidates within TitleTopBand
	TitleTopBonus float64

	// TitleLengthLow and TitleLengthHigh bound the length window that
	// earns TitleLengthBonus
	TitleLengthLow  int
	TitleLengthHigh int
	TitleLengthBonus float64

	// TitleExcludePatterns reject clear non-titles (copyright lines,
	// version strings, navigation boilerplate)
	TitleExcludePatterns []*regexp.Regexp

	// InvitationWords trigger the informal-document title override
	InvitationWords []string

	// FormTitleMaxLength caps the length of a form-title block
	FormTitleMaxLength int

	// DefaultTitle is the last-resort title literal
	DefaultTitle string
}

// DefaultConfig returns the calibrated configuration
func DefaultConfig() Config {
	return Config{
		MinBlockLength: 3,
		IgnorePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`),
			regexp.MustCompile(`^\d{1,4}$`),
			regexp.MustCompile(`^[-–]\s*\d+\s*[-–]$`),
			regexp.MustCompile(`(?i)^(©|\(c\)\s)?copyright\b`),
			regexp.MustCompile(`(?i)all rights reserved`),
		},

		FontSizeBucket:      0.5,
		DefaultBodyFontSize: 12,

		FormSampleWindow: 25,
		FormFieldDensity: 0.35,
		FormTitlePhrases: []string{
			"application form",
			"form for",
			"claim form",
			"registration form",
			"requisition form",
		},
		FieldSignatures: []*regexp.Regexp{
			regexp.MustCompile(`^\d+\.\s*[A-Z][A-Za-z ]{0,40}$`),
			regexp.MustCompile(`^[^:]{1,40}:$`),
			regexp.MustCompile(`(\.{3,}|_{3,})`),
			regexp.MustCompile(`(?i)(\brs\.?|\binr|\busd|\$|€)\s*$`),
			regexp.MustCompile(`(?i)^whether\b`),
		},

		MaxHeadingLength: 150,
		SentenceLength:   50,
		MinHeadingLength: 3,
		DatePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}$`),
			regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}$`),
			regexp.MustCompile(`(?i)^\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}$`),
		},
		FieldLabelPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\brs\.?|\binr|\busd|\$|€)\s*$`),
			regexp.MustCompile(`(?i)^\d+\.\s*(name|date|age|designation|address|signature|amount|place|relationship|pay|station)\b`),
			regexp.MustCompile(`^.{30,}:$`),
		},

		HeadingRules:     defaultHeadingRules(),
		H1Delta:          4,
		MediumH1Delta:    3,
		GeneralH2Delta:   2,
		H2Delta:          1,
		FallbackMinWords: 2,
		FallbackMaxWords: 10,

		TitleWindow:       25,
		TitleMinLength:    5,
		TitleMaxLength:    200,
		TitleEarlyBlocks:  5,
		TitleFontWeight:   0.5,
		TitlePageOneBonus: 5,
		TitleTopBand:      300,
		TitleTopBonus:     3,
		TitleLengthLow:    10,
		TitleLengthHigh:   80,
		TitleLengthBonus:  2,
		TitleExcludePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(©|\(c\)\s)?copyright\b`),
			regexp.MustCompile(`(?i)all rights reserved`),
			regexp.MustCompile(`(?i)^version\s+\d`),
			regexp.MustCompile(`^v?\d+(\.\d+)+$`),
			regexp.MustCompile(`(?i)^(page\s+\d+|table of contents|contents)$`),
			regexp.MustCompile(`(?i)^(www\.|https?://)`),
		},
		InvitationWords: []string{
			"party",
			"invitation",
			"invited",
			"rsvp",
			"hope to see you",
		},
		FormTitleMaxLength: 100,
		DefaultTitle:       "Document",
	}
}

// defaultHeadingRules builds the pattern tiers in priority order:
// structural, numbered hierarchy, typographic, weak list markers. The
// general capitalized-phrase fallback is coded in the classifier since
// it is word-based rather than pattern-based.
func defaultHeadingRules() []HeadingRule {
	return []HeadingRule{
		// Structural: level fixed by the pattern itself.
		{Pattern: regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\s+\d+`), Level: model.LevelH1, Scale: ScaleFixed},
		{Pattern: regexp.MustCompile(`(?i)^(abstract|introduction|conclusion|conclusions|references|bibliography|acknowledg(e)?ments|table of contents|glossary|index|preface|summary|overview|contents)$`), Level: model.LevelH1, Scale: ScaleFixed},
		{Pattern: regexp.MustCompile(`^[IVXLCDM]+\.\s+[A-Z]`), Level: model.LevelH1, Scale: ScaleFixed},

		// Numbered hierarchy: numbering is itself the structural
		// signal, so the level ignores the font. Deeper patterns first.
		{Pattern: regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+\S`), Level: model.LevelH3, Scale: ScaleFixed},
		{Pattern: regexp.MustCompile(`^\d+\.\d+\.?\s+\S`), Level: model.LevelH2, Scale: ScaleFixed},
		{Pattern: regexp.MustCompile(`^\d+\.\s+[A-Z]`), Level: model.LevelH1, Scale: ScaleFixed},

		// Typographic: ALL-CAPS runs, Title Case, question openers,
		// short capitalized phrases. Level follows the font delta.
		{Pattern: regexp.MustCompile(`^[A-Z][A-Z0-9\s&:,'-]{3,}$`), Scale: ScaleStrong},
		{Pattern: regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+)*$`), Scale: ScaleMedium, NeedsEmphasis: true},
		{Pattern: regexp.MustCompile(`^(What|How|Why|When|Where)\s+[A-Z]`), Scale: ScaleMedium, NeedsEmphasis: true},
		{Pattern: regexp.MustCompile(`^[A-Z][^.]{5,30}$`), Scale: ScaleMedium, NeedsEmphasis: true},

		// Weak list markers: only headings with formatting support,
		// always the lowest level.
		{Pattern: regexp.MustCompile(`^•\s+[A-Z]`), Level: model.LevelH3, Scale: ScaleFixed, NeedsEmphasis: true},
		{Pattern: regexp.MustCompile(`^o\s+[A-Z]`), Level: model.LevelH3, Scale: ScaleFixed, NeedsEmphasis: true},
		{Pattern: regexp.MustCompile(`^\d+\)\s+[A-Z]`), Level: model.LevelH3, Scale: ScaleFixed, NeedsEmphasis: true},
		{Pattern: regexp.MustCompile(`^[a-z]\)\s+[A-Z]`), Level: model.LevelH3, Scale: ScaleFixed, NeedsEmphasis: true},
	}
}

// patternFile is the YAML shape accepted by ApplyPatternFile
type patternFile struct {
	IgnorePatterns  []string `yaml:"ignore_patterns"`
	FieldSignatures []string `yaml:"field_signatures"`
	TitleExcludes   []string `yaml:"title_excludes"`
}

// ApplyPatternFile extends the config's pattern tables from YAML data.
// Additional patterns are appended after the defaults so calibrated
// precedence is preserved. Invalid regular expressions are reported,
// not skipped.
func (c *Config) ApplyPatternFile(data []byte) error {
	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse pattern file: %w", err)
	}

	compile := func(exprs []string) ([]*regexp.Regexp, error) {
		out := make([]*regexp.Regexp, 0, len(exprs))
		for _, expr := range exprs {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", expr, err)
			}
			out = append(out, re)
		}
		return out, nil
	}

	ignores, err := compile(pf.IgnorePatterns)
	if err != nil {
		return err
	}
	fields, err := compile(pf.FieldSignatures)
	if err != nil {
		return err
	}
	excludes, err := compile(pf.TitleExcludes)
	if err != nil {
		return err
	}

	c.IgnorePatterns = append(c.IgnorePatterns, ignores...)
	c.FieldSignatures = append(c.FieldSignatures, fields...)
	c.TitleExcludePatterns = append(c.TitleExcludePatterns, excludes...)
	return nil
}

// matchesAny reports whether text matches any pattern in the table
func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
