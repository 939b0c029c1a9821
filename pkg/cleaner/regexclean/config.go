// Package regexclean provides a rule-driven regular expression cleaner.
// Each rule names a pattern whose matches are removed (or replaced) in the
// input text. Rules are applied sequentially in the order they are defined.
package regexclean

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Rule defines a single named removal pattern.
type Rule struct {
	// Name identifies the rule in stats and warnings.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Pattern is an RE2 regular expression. Every non-overlapping match
	// is replaced. A pattern that matches nothing is not an error.
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`

	// Replace is the replacement text. Empty means the match is removed.
	Replace string `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// Config defines the ordered rule list for a cleaner.
type Config struct {
	Rules []Rule `json:"rules" yaml:"rules" validate:"required,min=1,dive"`
}

// Built-in rule names.
const (
	RuleCreationSecretBlock = "creation-secret-block"
	RuleCreationSecretField = "creation-secret-field"
)

// DefaultConfig returns the built-in ruleset: remove the "Creation Secret"
// conditional UI block and the creationSecret field declaration from a
// LinkShortener component.
//
// The block pattern anchors on the literal marker comment, requires the
// conditional check on the creationSecret field, and spans lazily to the
// closing paren-brace sequence. The field pattern removes the optional
// type-annotated declaration together with its trailing whitespace.
func DefaultConfig() *Config {
	return &Config{
		Rules: []Rule{
			{
				Name:    RuleCreationSecretBlock,
				Pattern: `\s*\{/\* Creation Secret \*/\}\s*\{\s*shortenedLink\.creationSecret &&[\s\S]*?\)\s*\}`,
			},
			{
				Name:    RuleCreationSecretField,
				Pattern: `creationSecret\?:\s*string;?\s*`,
			},
		},
	}
}

// Validate checks the config structure and that every pattern compiles.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, r := range c.Rules {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			return fmt.Errorf("rule %q: invalid pattern: %w", r.Name, err)
		}
	}
	return nil
}

// compile turns the rule list into compiled form. Validate should be
// called first; compile errors here indicate a bypassed validation.
func (c *Config) compile() ([]compiledRule, error) {
	rules := make([]compiledRule, 0, len(c.Rules))
	for _, r := range c.Rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		rules = append(rules, compiledRule{
			name:    r.Name,
			re:      re,
			replace: r.Replace,
		})
	}
	return rules, nil
}

// LoadConfig loads and validates a ruleset from a JSON or YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON rules: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported rules file extension: %s (use .json, .yaml, or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
