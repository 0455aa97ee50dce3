// Package app contains the Cobra command tree for sonder.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sonderlabs/sonder/internal/catalog"
	"github.com/sonderlabs/sonder/internal/config"
	"github.com/sonderlabs/sonder/internal/output"
	"github.com/sonderlabs/sonder/internal/survey"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "sonder",
	Short: "Personality surveys and relationship insights from your terminal",
	Long: `sonder runs short Likert-scale questionnaires grounded in psychological
frameworks, scores the responses per trait dimension, and derives
qualitative insights about how you come across in different working
relationships.

Run 'sonder run' to take the survey.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("sonder", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  models    List the survey models and their questions")
		fmt.Println("  run       Take the survey and see scores and insights")
		fmt.Println("  history   Browse previously saved survey runs")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/sonder/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// applyColorPreference disables styling when asked to, when configured
// off, or when stdout is not a terminal.
func applyColorPreference(cfg *config.Config) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if flagNoColor || !cfg.Output.Color || !tty {
		output.SetNoColor(true)
	}
}

// resolveCatalog returns the models to survey: an explicit --catalog
// flag wins over the configured catalog path, which wins over the
// built-in catalog.
func resolveCatalog(cfg *config.Config, flagPath string) ([]survey.Model, error) {
	path := flagPath
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Models(), nil
	}
	models, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return models, nil
}
