// Package prompt collects Likert responses through interactive
// terminal forms.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/sonderlabs/sonder/internal/survey"
)

// Collect runs one form group per model, with a select field per
// question, and returns the chosen responses keyed by model name.
// labels name the points of the standard agreement scale, lowest
// first; questions on a different scale fall back to numeric labels.
func Collect(models []survey.Model, labels []string, in io.Reader, out io.Writer) (map[string][]int, error) {
	answers := make(map[string][]int, len(models))
	groups := make([]*huh.Group, 0, len(models))

	for _, model := range models {
		values := make([]int, len(model.Questions))
		answers[model.Name] = values

		fields := make([]huh.Field, 0, len(model.Questions))
		for i, q := range model.Questions {
			values[i] = q.ScaleMin
			fields = append(fields, huh.NewSelect[int]().
				Title(fmt.Sprintf("Q%d: %s", i+1, q.Prompt)).
				Options(ScaleOptions(q, labels)...).
				Value(&values[i]))
		}

		groups = append(groups, huh.NewGroup(fields...).
			Title(model.Name).
			Description(model.Description))
	}

	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("collecting responses: %w", err)
	}

	return answers, nil
}

// ScaleOptions builds the select options for one question. When the
// question's scale has exactly as many points as there are labels,
// each point is annotated with its agreement label.
func ScaleOptions(q survey.Question, labels []string) []huh.Option[int] {
	points := q.ScaleMax - q.ScaleMin + 1
	opts := make([]huh.Option[int], 0, points)
	for v := q.ScaleMin; v <= q.ScaleMax; v++ {
		label := fmt.Sprintf("%d", v)
		if points == len(labels) {
			label = fmt.Sprintf("%d (%s)", v, labels[v-q.ScaleMin])
		}
		opts = append(opts, huh.NewOption(label, v))
	}
	return opts
}
