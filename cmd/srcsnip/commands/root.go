// Package commands implements the CLI commands for srcsnip.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "srcsnip",
	Short: "Remove dead code fragments from source files with named regex rules",
	Long: `Srcsnip applies an ordered list of named regular expression rules
to a source file and writes the cleaned result to a separate output file.
The input file is never modified.

The built-in ruleset strips the "Creation Secret" conditional UI block
and the creationSecret field declaration from a LinkShortener component.

Examples:
  # Run the built-in LinkShortener cleanup
  srcsnip clean

  # Clean a specific file
  srcsnip clean -i src/LinkShortener.tsx -o src/LinkShortener_clean.tsx

  # Use a custom ruleset
  srcsnip clean -i page.tsx -o page_clean.tsx -r rules.yaml

  # Show what was removed
  srcsnip clean --stats`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.srcsnip.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress diagnostic output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".srcsnip")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("SRCSNIP")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
