package survey

import "fmt"

// ValidationError reports a response count that does not match a
// model's question count.
type ValidationError struct {
	Model    string
	Expected int
	Received int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("expected %d responses for %s, received %d", e.Expected, e.Model, e.Received)
}

// Engine runs the aggregation step across a configured list of models.
// It holds no mutable state after construction and is safe for
// concurrent use.
type Engine struct {
	models []Model
}

// New creates an engine over the given models. Model order is
// preserved and defines the evaluation order in Run.
func New(models ...Model) *Engine {
	return &Engine{models: models}
}

// Models returns the configured models in order.
func (e *Engine) Models() []Model {
	return e.models
}

// Run aggregates the supplied responses for every configured model.
// A model with no entry in the responses map is treated as having
// received zero responses. Each model's response count must equal its
// question count; the first mismatch aborts the whole run with a
// *ValidationError and no partial result.
func (e *Engine) Run(responses map[string][]int) (map[string]map[string]float64, error) {
	results := make(map[string]map[string]float64, len(e.models))
	for _, model := range e.models {
		modelResponses := responses[model.Name]
		if len(modelResponses) != len(model.Questions) {
			return nil, &ValidationError{
				Model:    model.Name,
				Expected: len(model.Questions),
				Received: len(modelResponses),
			}
		}
		scores, err := model.Aggregate(modelResponses)
		if err != nil {
			return nil, err
		}
		results[model.Name] = scores
	}
	return results, nil
}
