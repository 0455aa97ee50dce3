package insight

// Engine evaluates an ordered list of relationship contexts against a
// set of aggregated scores.
type Engine struct {
	contexts []Context
}

// NewEngine creates an engine with the built-in contexts registered.
func NewEngine() *Engine {
	return &Engine{contexts: defaultContexts()}
}

// ContextNames returns the registered context names in evaluation
// order, for deterministic rendering and persistence.
func (e *Engine) ContextNames() []string {
	names := make([]string, len(e.contexts))
	for i, c := range e.contexts {
		names[i] = c.Name
	}
	return names
}

// Interpret returns one narrative per registered context: the text of
// the first rule whose predicate matches, or the context's fallback
// when none do. It never fails; missing models and dimensions read as
// the 0.5 midpoint, so a partially completed survey still yields a
// fully populated result.
func (e *Engine) Interpret(scores Scores) map[string]string {
	insights := make(map[string]string, len(e.contexts))
	for _, c := range e.contexts {
		insights[c.Name] = evaluate(c, scores)
	}
	return insights
}

func evaluate(c Context, scores Scores) string {
	for _, rule := range c.Rules {
		if rule.When(scores) {
			return rule.Text
		}
	}
	return c.Fallback
}
