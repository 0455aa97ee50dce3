package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sonderlabs/sonder/internal/config"
	"github.com/sonderlabs/sonder/internal/output"
	"github.com/sonderlabs/sonder/internal/store"
)

var (
	historyFlagLimit int
	historyFlagLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously saved survey runs",
	Long: `History lists survey runs saved with 'run --save'. Use --last to show
the full scores and insights of the most recent run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 0, "Maximum number of runs to list (default from config)")
	historyCmd.Flags().BoolVar(&historyFlagLast, "last", false, "Show the full result of the most recent run")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyColorPreference(cfg)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyFlagLast {
		return renderLastRun(db)
	}

	limit := historyFlagLimit
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}

	runs, err := db.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println(output.StyleMuted.Render(" No saved runs. Use 'sonder run --save' to record one."))
		return nil
	}

	fmt.Println(output.Section("Survey History"))
	fmt.Println()

	tbl := output.NewTable("ID", "Run", "Taken", "Version")
	for _, r := range runs {
		tbl.AddRow(
			fmt.Sprintf("%d", r.ID),
			shortID(r.RunID),
			formatRelativeTime(r.TakenAt),
			r.Version,
		)
	}
	tbl.Print()
	return nil
}

// lastRunPayload is the JSON shape of history --last.
type lastRunPayload struct {
	Run      *store.Run             `json:"run"`
	Scores   []store.DimensionScore `json:"scores"`
	Insights []store.RunInsight     `json:"insights"`
}

func renderLastRun(db *store.DB) error {
	run, err := db.GetLatestRun()
	if err != nil {
		return fmt.Errorf("loading latest run: %w", err)
	}
	if run == nil {
		fmt.Println(output.StyleMuted.Render(" No saved runs. Use 'sonder run --save' to record one."))
		return nil
	}

	scores, err := db.GetDimensionScores(run.ID)
	if err != nil {
		return fmt.Errorf("loading scores: %w", err)
	}
	insights, err := db.GetInsights(run.ID)
	if err != nil {
		return fmt.Errorf("loading insights: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(lastRunPayload{Run: run, Scores: scores, Insights: insights})
	}

	fmt.Println(output.Section(fmt.Sprintf("Run %s (%s)", shortID(run.RunID), formatRelativeTime(run.TakenAt))))

	// Scores are stored in model order; start a new table per model.
	currentModel := ""
	var tbl *output.Table
	for _, ds := range scores {
		if ds.Model != currentModel {
			if tbl != nil {
				tbl.Print()
			}
			currentModel = ds.Model
			fmt.Printf("\n %s\n", output.StyleBold.Render(ds.Model))
			tbl = output.NewTable("Dimension", "Score")
		}
		tbl.AddRow(ds.Dimension, output.ScoreBar(ds.Score, 10))
	}
	if tbl != nil {
		tbl.Print()
	}

	fmt.Println(output.Section("Relationship Insights"))
	fmt.Println()
	for _, ri := range insights {
		fmt.Printf(" %s\n", output.StyleBold.Render(ri.Context))
		fmt.Printf("   %s\n\n", ri.Narrative)
	}
	return nil
}

// shortID returns the first segment of a UUID for compact display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatRelativeTime converts a timestamp to a human-friendly relative
// time string like "2d ago", "12h ago", "just now".
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := time.Since(t)
	switch {
	case d < time.Hour:
		return "just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
