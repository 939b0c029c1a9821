package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/srcsnip/internal/logger"
	"github.com/jmylchreest/srcsnip/internal/output"
	"github.com/jmylchreest/srcsnip/pkg/cleaner/regexclean"
	"github.com/jmylchreest/srcsnip/pkg/srcsnip"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a source file and write the result to a new file",
	Long: `Clean reads the input file, applies the ruleset, and writes the
result to the output path. A rule that matches nothing leaves the text
unchanged; the run still succeeds and the output is a verbatim copy.

With no flags this reproduces the original one-shot cleanup: it reads
LinkShortener.tsx, strips the creation secret block and field
declaration, and writes LinkShortener_clean.tsx.

Examples:
  # Default LinkShortener cleanup
  srcsnip clean

  # Custom paths and ruleset
  srcsnip clean -i page.tsx -o page_clean.tsx -r rules.yaml

  # Machine-readable run report
  srcsnip clean --report report.json --format json`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	flags.StringP("input", "i", srcsnip.DefaultInputPath, "input file to read (never modified)")
	flags.StringP("output", "o", srcsnip.DefaultOutputPath, "output file to write")
	flags.StringP("rules", "r", "", "ruleset file (JSON or YAML; default: built-in rules)")

	flags.String("report", "", "write a machine-readable run report to this file")
	flags.String("format", "json", "report format: json, jsonl, yaml")
	flags.Bool("stats", false, "print cleaning stats to stderr")
	flags.Bool("dry-run", false, "clean without writing the output file")
}

func runClean(cmd *cobra.Command, args []string) error {
	// Initialize logger based on flags
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	flags := cmd.Flags()
	inputPath, _ := flags.GetString("input")
	outputPath, _ := flags.GetString("output")
	rulesPath, _ := flags.GetString("rules")
	reportPath, _ := flags.GetString("report")
	formatStr, _ := flags.GetString("format")
	showStats, _ := flags.GetBool("stats")
	dryRun, _ := flags.GetBool("dry-run")

	logger.Debug("clean command starting",
		"input", inputPath,
		"output", outputPath,
		"rules", rulesPath,
		"dry_run", dryRun)

	opts := []srcsnip.Option{
		srcsnip.WithInput(inputPath),
		srcsnip.WithOutput(outputPath),
		srcsnip.WithDryRun(dryRun),
	}

	if rulesPath != "" {
		cfg, err := regexclean.LoadConfig(rulesPath)
		if err != nil {
			logError("%v", err)
			return err
		}
		logger.Debug("ruleset loaded", "path", rulesPath, "rules", len(cfg.Rules))
		opts = append(opts, srcsnip.WithRules(cfg))
	}

	result, err := srcsnip.Run(opts...)
	if err != nil {
		logError("%v", err)
		return err
	}

	for _, w := range result.Warnings {
		logger.Debug("rule warning", "rule", w.Rule, "message", w.Message)
	}

	if showStats && result.Stats != nil {
		fmt.Fprintf(os.Stderr, "\n=== srcsnip stats ===\n")
		fmt.Fprintf(os.Stderr, "Input:  %s (%s)\n",
			result.InputPath, humanize.Bytes(uint64(result.Stats.InputBytes)))
		fmt.Fprintf(os.Stderr, "Output: %s (%s)\n",
			result.OutputPath, humanize.Bytes(uint64(result.Stats.OutputBytes)))
		fmt.Fprintf(os.Stderr, "%s", result.Stats.String())
	}

	if reportPath != "" {
		if err := writeReport(reportPath, output.Format(formatStr), result); err != nil {
			logError("failed to write report: %v", err)
			return err
		}
		logInfo("Report written to %s", reportPath)
	}

	// The fixed success line goes to stdout; everything else is stderr.
	fmt.Println("File cleaned successfully!")
	return nil
}

func writeReport(path string, format output.Format, result *srcsnip.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w, err := output.NewWriter(f, format)
	if err != nil {
		return err
	}
	if err := w.Write(result); err != nil {
		return err
	}
	return w.Close()
}
