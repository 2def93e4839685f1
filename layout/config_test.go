package layout

import (
	"strings"
	"testing"
)

func TestDefaultConfigSanity(t *testing.T) {
	c := DefaultConfig()

	if c.DefaultBodyFontSize != 12 {
		t.Errorf("DefaultBodyFontSize = %v, want 12", c.DefaultBodyFontSize)
	}
	if c.DefaultTitle != "Document" {
		t.Errorf("DefaultTitle = %q, want Document", c.DefaultTitle)
	}
	if len(c.HeadingRules) == 0 {
		t.Fatal("no heading rules")
	}
	for i, rule := range c.HeadingRules {
		if rule.Pattern == nil {
			t.Errorf("rule %d has nil pattern", i)
		}
		if rule.Scale == ScaleFixed && !rule.Level.Valid() {
			t.Errorf("fixed rule %d carries invalid level %d", i, rule.Level)
		}
	}
	if !(c.H1Delta > c.MediumH1Delta && c.MediumH1Delta > c.GeneralH2Delta && c.GeneralH2Delta > c.H2Delta) {
		t.Errorf("delta thresholds not strictly ordered: %v %v %v %v",
			c.H1Delta, c.MediumH1Delta, c.GeneralH2Delta, c.H2Delta)
	}
	if c.FormFieldDensity <= 0 || c.FormFieldDensity >= 1 {
		t.Errorf("FormFieldDensity = %v outside (0,1)", c.FormFieldDensity)
	}
}

func TestApplyPatternFile(t *testing.T) {
	c := DefaultConfig()
	baseIgnores := len(c.IgnorePatterns)
	baseFields := len(c.FieldSignatures)
	baseExcludes := len(c.TitleExcludePatterns)

	data := []byte(`
ignore_patterns:
  - '(?i)^draft copy$'
field_signatures:
  - '^employee id\s'
title_excludes:
  - '(?i)^confidential$'
`)
	if err := c.ApplyPatternFile(data); err != nil {
		t.Fatalf("ApplyPatternFile: %v", err)
	}

	if len(c.IgnorePatterns) != baseIgnores+1 {
		t.Errorf("IgnorePatterns grew to %d, want %d", len(c.IgnorePatterns), baseIgnores+1)
	}
	if len(c.FieldSignatures) != baseFields+1 {
		t.Errorf("FieldSignatures grew to %d, want %d", len(c.FieldSignatures), baseFields+1)
	}
	if len(c.TitleExcludePatterns) != baseExcludes+1 {
		t.Errorf("TitleExcludePatterns grew to %d, want %d", len(c.TitleExcludePatterns), baseExcludes+1)
	}

	if !matchesAny(c.IgnorePatterns, "Draft Copy") {
		t.Error("added ignore pattern does not match")
	}
	// Defaults keep precedence at the front of the table.
	if !c.IgnorePatterns[0].MatchString("Page 3 of 10") {
		t.Error("default ignore pattern displaced from front")
	}
}

func TestApplyPatternFileBadYAML(t *testing.T) {
	c := DefaultConfig()
	if err := c.ApplyPatternFile([]byte("ignore_patterns: [unclosed")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestApplyPatternFileBadRegexp(t *testing.T) {
	c := DefaultConfig()
	before := len(c.IgnorePatterns)

	err := c.ApplyPatternFile([]byte("ignore_patterns:\n  - '[unclosed'\n"))
	if err == nil {
		t.Fatal("invalid regular expression accepted")
	}
	if !strings.Contains(err.Error(), "[unclosed") {
		t.Errorf("error %q does not name the bad pattern", err)
	}
	if len(c.IgnorePatterns) != before {
		t.Error("failed apply mutated the pattern table")
	}
}

func TestMatchesAny(t *testing.T) {
	c := DefaultConfig()

	if !matchesAny(c.DatePatterns, "March 15, 2024") {
		t.Error("long-form date not matched")
	}
	if matchesAny(c.DatePatterns, "Chapter 15") {
		t.Error("chapter label matched a date pattern")
	}
	if matchesAny(nil, "anything") {
		t.Error("empty table matched")
	}
}
