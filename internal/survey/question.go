// Package survey implements the Likert scoring engine: individual
// questions, framework models, and the aggregation run across models.
package survey

import "fmt"

// Question is a single Likert-scale survey item. It is a value type and
// is never mutated after catalog construction; the same Question can be
// shared across any number of survey runs.
type Question struct {
	// Prompt is the display text shown to the respondent. It plays no
	// part in scoring.
	Prompt string

	// Dimension names the trait this question contributes to.
	Dimension string

	// ReverseScored inverts the normalized value for questions phrased
	// in the opposite sense of their dimension.
	ReverseScored bool

	// ScaleMin and ScaleMax bound the valid raw response range.
	// ScaleMin must be strictly less than ScaleMax.
	ScaleMin int
	ScaleMax int
}

// RangeError reports a raw response outside a question's scale bounds.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("response %d is outside the allowed range [%d, %d]", e.Value, e.Min, e.Max)
}

// Normalize converts a raw Likert response into a value in [0, 1] by
// linearly mapping the scale range, inverting the result for
// reverse-scored questions. Raw values outside the scale bounds fail
// with a *RangeError.
func (q Question) Normalize(raw int) (float64, error) {
	if raw < q.ScaleMin || raw > q.ScaleMax {
		return 0, &RangeError{Value: raw, Min: q.ScaleMin, Max: q.ScaleMax}
	}
	normalized := float64(raw-q.ScaleMin) / float64(q.ScaleMax-q.ScaleMin)
	if q.ReverseScored {
		return 1 - normalized, nil
	}
	return normalized, nil
}
