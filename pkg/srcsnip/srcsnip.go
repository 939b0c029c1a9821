package srcsnip

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/jmylchreest/srcsnip/internal/logger"
	"github.com/jmylchreest/srcsnip/pkg/cleaner"
	"github.com/jmylchreest/srcsnip/pkg/cleaner/regexclean"
)

// Result describes a completed run.
type Result struct {
	// InputPath is the file that was read.
	InputPath string `json:"input_path"`

	// OutputPath is the file that was written (or would be, on dry run).
	OutputPath string `json:"output_path"`

	// Changed reports whether the output differs from the input.
	Changed bool `json:"changed"`

	// Cleaner is the name of the cleaner that was applied.
	Cleaner string `json:"cleaner"`

	// Stats holds rule-level metrics when the regex cleaner was used.
	Stats *regexclean.Stats `json:"stats,omitempty"`

	// Warnings holds non-fatal issues, e.g. rules that matched nothing.
	Warnings []regexclean.Warning `json:"warnings,omitempty"`
}

// Run reads the input file, cleans it, and writes the result to the
// output path. The input file is never modified. Errors on the read,
// on non-UTF-8 content, or on the write are returned wrapped; a rule
// that matches nothing is not an error.
func Run(opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.InputPath == cfg.OutputPath {
		return nil, fmt.Errorf("input and output must be distinct paths: %s", cfg.InputPath)
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.InputPath, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8", cfg.InputPath)
	}
	content := string(data)

	var cl cleaner.Cleaner = cfg.Cleaner
	if cl == nil {
		cl, err = regexclean.New(cfg.Rules)
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Cleaner:    cl.Name(),
	}

	var cleaned string
	if rc, ok := cl.(*regexclean.Cleaner); ok {
		cleanResult := rc.CleanWithStats(content)
		if cleanResult.Error != nil {
			return nil, fmt.Errorf("cleaning failed: %w", cleanResult.Error)
		}
		cleaned = cleanResult.Content
		result.Stats = cleanResult.Stats
		result.Warnings = cleanResult.Warnings
	} else {
		cleaned, err = cl.Clean(content)
		if err != nil {
			return nil, fmt.Errorf("cleaning failed: %w", err)
		}
	}

	result.Changed = cleaned != content

	logger.Debug("content cleaned",
		"cleaner", cl.Name(),
		"input_size", len(content),
		"output_size", len(cleaned),
		"changed", result.Changed)

	if cfg.DryRun {
		return result, nil
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(cleaned), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}

	return result, nil
}
