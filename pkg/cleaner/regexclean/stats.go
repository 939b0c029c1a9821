package regexclean

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures metrics about what the cleaner did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// RuleMatches maps rule name -> number of matches removed.
	RuleMatches map[string]int `json:"rule_matches"`

	// Timing
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		RuleMatches: make(map[string]int),
	}
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// TotalMatches returns the sum of matches across all rules.
func (s *Stats) TotalMatches() int {
	total := 0
	for _, count := range s.RuleMatches {
		total += count
	}
	return total
}

// RecordMatches records how many times a rule matched.
func (s *Stats) RecordMatches(rule string, count int) {
	s.RuleMatches[rule] += count
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Matches: %d total\n", s.TotalMatches()))

	if len(s.RuleMatches) > 0 {
		names := make([]string, 0, len(s.RuleMatches))
		for name := range s.RuleMatches {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("By rule: ")
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%d", name, s.RuleMatches[name]))
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: total=%v\n",
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during cleaning.
type Warning struct {
	Rule    string `json:"rule"`    // Rule that produced the warning
	Message string `json:"message"` // Human-readable description
}

// String returns a formatted warning message.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Rule, w.Message)
}

// Result contains the output of a cleaning operation.
type Result struct {
	// Content is the cleaned output.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`

	// Error is set only on catastrophic failures.
	Error error `json:"-"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(rule, message string) {
	r.Warnings = append(r.Warnings, Warning{
		Rule:    rule,
		Message: message,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
