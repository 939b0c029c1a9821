// Package srcsnip removes dead code fragments from source files using
// named regular expression rules.
package srcsnip

import (
	"github.com/jmylchreest/srcsnip/pkg/cleaner"
	"github.com/jmylchreest/srcsnip/pkg/cleaner/regexclean"
)

// Default file paths, matching the original LinkShortener cleanup.
const (
	DefaultInputPath  = "LinkShortener.tsx"
	DefaultOutputPath = "LinkShortener_clean.tsx"
)

// Config holds all run configuration.
type Config struct {
	// InputPath is the file to read. It is never modified.
	InputPath string

	// OutputPath is the file to write. Existing content is truncated.
	OutputPath string

	// Rules configures the regex cleaner. Ignored when Cleaner is set.
	Rules *regexclean.Config

	// Cleaner overrides the default regex cleaner entirely.
	Cleaner cleaner.Cleaner

	// DryRun skips the write, leaving the filesystem untouched.
	DryRun bool
}

// DefaultConfig returns the original fixed-path behavior with the
// built-in ruleset.
func DefaultConfig() Config {
	return Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Option configures a run.
type Option func(*Config)

// WithInput sets the input file path.
func WithInput(path string) Option {
	return func(c *Config) {
		c.InputPath = path
	}
}

// WithOutput sets the output file path.
func WithOutput(path string) Option {
	return func(c *Config) {
		c.OutputPath = path
	}
}

// WithRules sets the ruleset for the regex cleaner.
func WithRules(rules *regexclean.Config) Option {
	return func(c *Config) {
		c.Rules = rules
	}
}

// WithCleaner injects a custom cleaner implementation.
func WithCleaner(cl cleaner.Cleaner) Option {
	return func(c *Config) {
		c.Cleaner = cl
	}
}

// WithDryRun disables the output write.
func WithDryRun(enabled bool) Option {
	return func(c *Config) {
		c.DryRun = enabled
	}
}
