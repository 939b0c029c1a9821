package cleaner

import (
	"errors"
	"strings"
	"testing"
)

// --- NoopCleaner Tests ---

func TestNoopCleaner_Clean(t *testing.T) {
	c := NewNoop()

	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"plain_text", "Hello, World!"},
		{"source_content", "const x = 1;\nexport default x;\n"},
		{"whitespace", "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Errorf("Clean() error = %v, want nil", err)
			}
			if got != tt.input {
				t.Errorf("Clean() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestNoopCleaner_Name(t *testing.T) {
	c := NewNoop()
	if got := c.Name(); got != "noop" {
		t.Errorf("Name() = %q, want %q", got, "noop")
	}
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	input := "unchanged content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestChainCleaner_SingleCleaner(t *testing.T) {
	c := NewChain(NewNoop())

	input := "test content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

// suffixCleaner is a test cleaner that appends a marker to the content.
type suffixCleaner struct {
	suffix string
}

func (c *suffixCleaner) Clean(content string) (string, error) {
	return content + c.suffix, nil
}

func (c *suffixCleaner) Name() string {
	return "suffix"
}

func TestChainCleaner_Order(t *testing.T) {
	c := NewChain(
		&suffixCleaner{suffix: "-first"},
		&suffixCleaner{suffix: "-second"},
	)

	got, err := c.Clean("base")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != "base-first-second" {
		t.Errorf("Clean() = %q, want %q", got, "base-first-second")
	}
}

// errorCleaner is a test cleaner that always returns an error.
type errorCleaner struct{}

func (c *errorCleaner) Clean(content string) (string, error) {
	return "", errors.New("test error")
}

func (c *errorCleaner) Name() string {
	return "error"
}

func TestChainCleaner_ErrorStopsChain(t *testing.T) {
	c := NewChain(&errorCleaner{}, &suffixCleaner{suffix: "-unreached"})

	_, err := c.Clean("content")
	if err == nil {
		t.Fatal("Clean() expected error, got nil")
	}
}

func TestChainCleaner_Name(t *testing.T) {
	c := NewChain(NewNoop(), NewNoop())

	got := c.Name()
	if !strings.HasPrefix(got, "chain(") {
		t.Errorf("Name() = %q, want chain(...) format", got)
	}
	if !strings.Contains(got, "noop->noop") {
		t.Errorf("Name() = %q, want cleaner names joined with ->", got)
	}
}
