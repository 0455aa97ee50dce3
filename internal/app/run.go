package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonderlabs/sonder/internal/config"
	"github.com/sonderlabs/sonder/internal/insight"
	"github.com/sonderlabs/sonder/internal/output"
	"github.com/sonderlabs/sonder/internal/prompt"
	"github.com/sonderlabs/sonder/internal/responses"
	"github.com/sonderlabs/sonder/internal/store"
	"github.com/sonderlabs/sonder/internal/survey"
)

var (
	runFlagResponses string
	runFlagCatalog   string
	runFlagOutput    string
	runFlagSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Take the survey and see scores and insights",
	Long: `Run collects Likert responses for every survey model, either
interactively or from a pre-filled responses file, aggregates them into
normalized per-dimension scores, and derives relationship insights.`,
	RunE: runSurvey,
}

func init() {
	runCmd.Flags().StringVar(&runFlagResponses, "responses-file", "", "Path to a JSON or YAML file with pre-filled Likert responses")
	runCmd.Flags().StringVar(&runFlagCatalog, "catalog", "", "Path to an alternate model catalog file")
	runCmd.Flags().StringVar(&runFlagOutput, "output", "", "Write the scores and insights to a JSON file")
	runCmd.Flags().BoolVar(&runFlagSave, "save", false, "Save this run to the local history database")
	rootCmd.AddCommand(runCmd)
}

// runPayload is the machine-readable result shape, used for --json
// output and --output files.
type runPayload struct {
	AggregatedScores     map[string]map[string]float64 `json:"aggregated_scores"`
	RelationshipInsights map[string]string             `json:"relationship_insights"`
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPreference(cfg)

	models, err := resolveCatalog(cfg, runFlagCatalog)
	if err != nil {
		return err
	}

	var resp map[string][]int
	if runFlagResponses != "" {
		resp, err = responses.Load(runFlagResponses)
		if err != nil {
			return err
		}
	} else {
		resp, err = prompt.Collect(models, cfg.ScaleLabels, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	eng := survey.New(models...)
	aggregated, err := eng.Run(resp)
	if err != nil {
		return fmt.Errorf("scoring responses: %w", err)
	}

	insightEng := insight.NewEngine()
	insights := insightEng.Interpret(aggregated)

	payload := runPayload{
		AggregatedScores:     aggregated,
		RelationshipInsights: insights,
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return err
		}
	} else {
		renderScores(eng.Models(), aggregated)
		renderInsights(insightEng.ContextNames(), insights)
	}

	if runFlagOutput != "" {
		if err := writePayload(runFlagOutput, payload); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flagJSON {
			fmt.Printf("\n Saved results to %s\n", runFlagOutput)
		}
	}

	if runFlagSave {
		if err := saveRun(eng.Models(), aggregated, insightEng.ContextNames(), insights); err != nil {
			return fmt.Errorf("saving run: %w", err)
		}
		if !flagJSON {
			fmt.Println(" Run saved to history.")
		}
	}

	return nil
}

func renderScores(models []survey.Model, aggregated map[string]map[string]float64) {
	for _, model := range models {
		scores := aggregated[model.Name]

		fmt.Println(output.Section(model.Name))
		tbl := output.NewTable("Dimension", "Score")
		for _, dimension := range model.Dimensions() {
			score, ok := scores[dimension]
			if !ok {
				continue
			}
			tbl.AddRow(model.Alias(dimension), output.ScoreBar(score, 10))
		}
		fmt.Println()
		tbl.Print()
	}
}

func renderInsights(contexts []string, insights map[string]string) {
	fmt.Println(output.Section("Relationship Insights"))
	fmt.Println()
	for _, context := range contexts {
		fmt.Printf(" %s\n", output.StyleBold.Render(context))
		fmt.Printf("   %s\n\n", insights[context])
	}
}

func writePayload(path string, payload runPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// saveRun persists scores and insights in deterministic order: models
// in catalog order, dimensions in first-occurrence order, contexts in
// evaluation order.
func saveRun(models []survey.Model, aggregated map[string]map[string]float64, contexts []string, insights map[string]string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runID, _, err := db.CreateRun(appVersion)
	if err != nil {
		return err
	}

	for _, model := range models {
		scores := aggregated[model.Name]
		for _, dimension := range model.Dimensions() {
			score, ok := scores[dimension]
			if !ok {
				continue
			}
			if err := db.InsertDimensionScore(runID, model.Name, dimension, score); err != nil {
				return err
			}
		}
	}

	for _, context := range contexts {
		if err := db.InsertInsight(runID, context, insights[context]); err != nil {
			return err
		}
	}

	return nil
}
