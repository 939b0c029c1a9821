package regexclean

import (
	"regexp"
	"time"
)

// Cleaner applies an ordered list of named regex rules to source text.
// It implements the cleaner.Cleaner interface.
type Cleaner struct {
	config *Config
	rules  []compiledRule
	stats  *Stats
}

type compiledRule struct {
	name    string
	re      *regexp.Regexp
	replace string
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) (*Cleaner, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	rules, err := config.compile()
	if err != nil {
		return nil, err
	}
	return &Cleaner{
		config: config,
		rules:  rules,
	}, nil
}

// Default returns a Cleaner with the built-in ruleset.
// The built-in patterns are compile-checked constants, so this cannot fail.
func Default() *Cleaner {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "regexclean"
}

// Clean applies all rules in order and returns the cleaned text.
// This method implements the cleaner.Cleaner interface.
func (c *Cleaner) Clean(content string) (string, error) {
	result := c.CleanWithStats(content)
	return result.Content, result.Error
}

// CleanWithStats applies all rules and returns detailed stats.
// Rules that match nothing leave the text unchanged and produce a
// warning, never an error.
func (c *Cleaner) CleanWithStats(content string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(content)

	for _, rule := range c.rules {
		matches := rule.re.FindAllStringIndex(content, -1)
		result.Stats.RecordMatches(rule.name, len(matches))

		if len(matches) == 0 {
			result.AddWarning(rule.name, "pattern matched nothing, text unchanged")
			continue
		}

		content = rule.re.ReplaceAllString(content, rule.replace)
	}

	result.Content = content
	result.Stats.OutputBytes = len(content)
	result.Stats.TotalDuration = time.Since(startTime)
	c.stats = result.Stats

	return result
}

// Stats returns the stats from the last Clean operation.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}
