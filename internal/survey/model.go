package survey

// Model bundles the ordered question list of one psychological
// framework. Question order defines the positional correspondence with
// raw response slices: responses[i] answers Questions[i].
type Model struct {
	// Name uniquely identifies the model and keys every map in the
	// engine's input and output.
	Name string

	// Description is display text for listings and prompts.
	Description string

	// Questions in presentation order.
	Questions []Question

	// DimensionAliases optionally maps a dimension name to a display
	// alias. Cosmetic only; scoring always uses the dimension name.
	DimensionAliases map[string]string
}

// Aggregate buckets normalized responses by dimension and reduces each
// bucket to its arithmetic mean. Responses pair positionally with the
// question list; when the response slice is shorter, trailing questions
// are skipped rather than treated as an error (the engine's Run
// enforces exact lengths before this method is reached).
func (m Model) Aggregate(responses []int) (map[string]float64, error) {
	n := len(m.Questions)
	if len(responses) < n {
		n = len(responses)
	}

	buckets := make(map[string][]float64)
	for i := 0; i < n; i++ {
		value, err := m.Questions[i].Normalize(responses[i])
		if err != nil {
			return nil, err
		}
		buckets[m.Questions[i].Dimension] = append(buckets[m.Questions[i].Dimension], value)
	}

	scores := make(map[string]float64, len(buckets))
	for dimension, values := range buckets {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		scores[dimension] = sum / float64(len(values))
	}
	return scores, nil
}

// Dimensions returns the model's dimension names in order of first
// occurrence in the question list. Useful for deterministic rendering,
// since Aggregate returns an unordered map.
func (m Model) Dimensions() []string {
	seen := make(map[string]bool, len(m.Questions))
	var ordered []string
	for _, q := range m.Questions {
		if !seen[q.Dimension] {
			seen[q.Dimension] = true
			ordered = append(ordered, q.Dimension)
		}
	}
	return ordered
}

// Alias returns the display alias for a dimension, or the dimension
// name itself when no alias is configured.
func (m Model) Alias(dimension string) string {
	if alias, ok := m.DimensionAliases[dimension]; ok {
		return alias
	}
	return dimension
}
