package regexclean

import (
	"strings"
	"testing"
)

const sampleComponent = "import React from 'react';\n\n      {/* Creation Secret */}\n      {\n        shortenedLink.creationSecret &&\n          renderSecretRow(shortenedLink)\n      }\n\nexport default LinkShortener;\n"

func TestCleaner_RemovesCreationSecretBlock(t *testing.T) {
	c := Default()

	got, err := c.Clean(sampleComponent)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if strings.Contains(got, "{/* Creation Secret */}") {
		t.Errorf("marker comment still present in output: %q", got)
	}
	if strings.Contains(got, "creationSecret") {
		t.Errorf("creationSecret reference still present in output: %q", got)
	}

	want := "import React from 'react';\n\nexport default LinkShortener;\n"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_RemovesFieldDeclaration(t *testing.T) {
	c := Default()

	input := "interface ShortenedLink {\n  id: string;\n  creationSecret?: string;\n  url: string;\n}\n"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if strings.Contains(got, "creationSecret?: string") {
		t.Errorf("field declaration still present in output: %q", got)
	}

	want := "interface ShortenedLink {\n  id: string;\n  url: string;\n}\n"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_NoMatch_Unchanged(t *testing.T) {
	c := Default()

	input := "const unrelated = 42;\nexport { unrelated };\n"
	result := c.CleanWithStats(input)

	if result.Error != nil {
		t.Fatalf("CleanWithStats() error = %v", result.Error)
	}
	if result.Content != input {
		t.Errorf("expected byte-identical output, got %q", result.Content)
	}

	// Zero matches is tolerated but surfaced as warnings, one per rule.
	if len(result.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Stats.TotalMatches() != 0 {
		t.Errorf("expected 0 matches, got %d", result.Stats.TotalMatches())
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	c := Default()

	once, err := c.Clean(sampleComponent)
	if err != nil {
		t.Fatalf("first Clean() error = %v", err)
	}

	twice, err := c.Clean(once)
	if err != nil {
		t.Fatalf("second Clean() error = %v", err)
	}

	if twice != once {
		t.Errorf("second pass changed output:\nfirst:  %q\nsecond: %q", once, twice)
	}
}

func TestCleaner_ConcreteScenario(t *testing.T) {
	c := Default()

	input := "{/* Creation Secret */}\n{\n  shortenedLink.creationSecret &&\n  renderSecret()\n}\ncreationSecret?: string;\n"
	result := c.CleanWithStats(input)

	if result.Error != nil {
		t.Fatalf("CleanWithStats() error = %v", result.Error)
	}
	if strings.Contains(result.Content, "Creation Secret") {
		t.Errorf("conditional block still present: %q", result.Content)
	}
	if strings.Contains(result.Content, "creationSecret") {
		t.Errorf("declaration still present: %q", result.Content)
	}

	if got := result.Stats.RuleMatches[RuleCreationSecretBlock]; got != 1 {
		t.Errorf("block rule matches = %d, want 1", got)
	}
	if got := result.Stats.RuleMatches[RuleCreationSecretField]; got != 1 {
		t.Errorf("field rule matches = %d, want 1", got)
	}
}

func TestCleaner_MultipleOccurrences(t *testing.T) {
	c := Default()

	input := sampleComponent + sampleComponent
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if strings.Contains(got, "Creation Secret") {
		t.Errorf("expected all block occurrences removed, got %q", got)
	}
}

func TestCleaner_CustomRules(t *testing.T) {
	cfg := &Config{
		Rules: []Rule{
			{Name: "todo", Pattern: `// TODO:.*\n`},
			{Name: "redact", Pattern: `secret`, Replace: "[redacted]"},
		},
	}

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	input := "// TODO: remove me\nconst secret = 1;\n"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	want := "const [redacted] = 1;\n"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_StatsTracking(t *testing.T) {
	c := Default()

	result := c.CleanWithStats(sampleComponent)

	if result.Stats.InputBytes != len(sampleComponent) {
		t.Errorf("InputBytes = %d, want %d", result.Stats.InputBytes, len(sampleComponent))
	}
	if result.Stats.OutputBytes != len(result.Content) {
		t.Errorf("OutputBytes = %d, want %d", result.Stats.OutputBytes, len(result.Content))
	}
	if result.Stats.ReductionPercent() <= 0 {
		t.Error("expected positive reduction for matching input")
	}

	// Last-run stats accessible from the cleaner
	if c.Stats() != result.Stats {
		t.Error("Stats() should return stats from the last run")
	}
}

func TestCleaner_Name(t *testing.T) {
	if got := Default().Name(); got != "regexclean" {
		t.Errorf("Name() = %q, want %q", got, "regexclean")
	}
}
