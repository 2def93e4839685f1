package model

import (
	"encoding/json"
	"fmt"
)

// Level is an outline heading level (1-3)
type Level int

const (
	// LevelH1 is a top-level heading
	LevelH1 Level = 1
	// LevelH2 is a major section heading
	LevelH2 Level = 2
	// LevelH3 is a subsection heading
	LevelH3 Level = 3
)

// String returns the serialized form ("H1", "H2", "H3")
func (l Level) String() string {
	return fmt.Sprintf("H%d", int(l))
}

// Valid reports whether the level is within the supported range
func (l Level) Valid() bool {
	return l >= LevelH1 && l <= LevelH3
}

// MarshalJSON serializes the level as "H1"/"H2"/"H3"
func (l Level) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid outline level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON parses "H1"/"H2"/"H3"
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var n int
	if _, err := fmt.Sscanf(s, "H%d", &n); err != nil || !Level(n).Valid() {
		return fmt.Errorf("invalid outline level %q", s)
	}
	*l = Level(n)
	return nil
}

// OutlineEntry is one heading record in the structural summary. Text is
// the verbatim block text, never re-cased or truncated.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// ExtractionResult is the sole externally visible artifact of a run.
// Title is never empty (a literal default is used as last resort);
// Outline may be empty but never nil, so it serializes as [].
type ExtractionResult struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// NewExtractionResult returns a result with an empty (non-nil) outline
func NewExtractionResult(title string) *ExtractionResult {
	return &ExtractionResult{
		Title:   title,
		Outline: []OutlineEntry{},
	}
}
