package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonderlabs/sonder/internal/config"
	"github.com/sonderlabs/sonder/internal/output"
	"github.com/sonderlabs/sonder/internal/survey"
)

var modelsFlagCatalog string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the survey models and their questions",
	Long: `Models lists each survey framework with its description and numbered
question prompts, marking reverse-scored items.`,
	RunE: runModels,
}

func init() {
	modelsCmd.Flags().StringVar(&modelsFlagCatalog, "catalog", "", "Path to an alternate model catalog file")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPreference(cfg)

	models, err := resolveCatalog(cfg, modelsFlagCatalog)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderModelsJSON(models)
	}

	for _, model := range models {
		fmt.Println(output.Section(model.Name))
		fmt.Println(" " + output.StyleMuted.Render(model.Description))
		fmt.Println()
		for i, q := range model.Questions {
			note := ""
			if q.ReverseScored {
				note = output.StyleMuted.Render(" (reverse scored)")
			}
			dim := output.StyleMuted.Render(fmt.Sprintf("[%s]", model.Alias(q.Dimension)))
			fmt.Printf("  %2d. %s %s%s\n", i+1, q.Prompt, dim, note)
		}
	}
	fmt.Println()
	return nil
}

// modelListing is the JSON shape for one model in the models command.
type modelListing struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	QuestionCount    int               `json:"question_count"`
	Dimensions       []string          `json:"dimensions"`
	DimensionAliases map[string]string `json:"dimension_aliases,omitempty"`
	Questions        []questionListing `json:"questions"`
}

type questionListing struct {
	Prompt        string `json:"prompt"`
	Dimension     string `json:"dimension"`
	ReverseScored bool   `json:"reverse_scored"`
	ScaleMin      int    `json:"scale_min"`
	ScaleMax      int    `json:"scale_max"`
}

func renderModelsJSON(models []survey.Model) error {
	listings := make([]modelListing, 0, len(models))
	for _, m := range models {
		listing := modelListing{
			Name:             m.Name,
			Description:      m.Description,
			QuestionCount:    len(m.Questions),
			Dimensions:       m.Dimensions(),
			DimensionAliases: m.DimensionAliases,
		}
		for _, q := range m.Questions {
			listing.Questions = append(listing.Questions, questionListing{
				Prompt:        q.Prompt,
				Dimension:     q.Dimension,
				ReverseScored: q.ReverseScored,
				ScaleMin:      q.ScaleMin,
				ScaleMax:      q.ScaleMax,
			})
		}
		listings = append(listings, listing)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}
