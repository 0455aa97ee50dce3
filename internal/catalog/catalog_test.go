package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonderlabs/sonder/internal/survey"
)

func TestModels_Composition(t *testing.T) {
	models := Models()
	require.Len(t, models, 3)

	byName := make(map[string]survey.Model, len(models))
	for _, m := range models {
		byName[m.Name] = m
	}

	bigFive, ok := byName["Big Five Snapshot"]
	require.True(t, ok, "Big Five Snapshot missing")
	assert.Len(t, bigFive.Questions, 20)
	assert.ElementsMatch(t,
		[]string{"Extraversion", "Agreeableness", "Conscientiousness", "Emotional Stability", "Openness"},
		bigFive.Dimensions(),
	)
	assert.Equal(t, "Neuroticism (reversed)", bigFive.Alias("Emotional Stability"))

	attachment, ok := byName["Attachment & Trust"]
	require.True(t, ok, "Attachment & Trust missing")
	assert.Len(t, attachment.Questions, 4)
	assert.Equal(t, []string{"Trust Propensity", "Boundary Clarity"}, attachment.Dimensions())

	collaboration, ok := byName["Collaboration Style"]
	require.True(t, ok, "Collaboration Style missing")
	assert.Len(t, collaboration.Questions, 4)
	assert.Equal(t, []string{"Support Orientation", "Structure Preference"}, collaboration.Dimensions())
}

func TestModels_FourQuestionsPerBigFiveTrait(t *testing.T) {
	models := Models()
	counts := make(map[string]int)
	for _, q := range models[0].Questions {
		counts[q.Dimension]++
	}
	for dimension, count := range counts {
		assert.Equalf(t, 4, count, "dimension %s", dimension)
	}
}

func TestModels_StandardScale(t *testing.T) {
	for _, m := range Models() {
		for _, q := range m.Questions {
			require.NotEmpty(t, q.Prompt)
			require.NotEmpty(t, q.Dimension)
			assert.Equal(t, 1, q.ScaleMin)
			assert.Equal(t, 5, q.ScaleMax)
		}
	}
}

func TestModels_EngineRejectsShortBigFive(t *testing.T) {
	models := Models()
	eng := survey.New(models...)

	responses := make(map[string][]int, len(models))
	for _, m := range models {
		values := make([]int, len(m.Questions))
		for i := range values {
			values[i] = 3
		}
		responses[m.Name] = values
	}
	// Drop one Big Five response: 19 supplied, 20 expected.
	responses["Big Five Snapshot"] = responses["Big Five Snapshot"][:19]

	_, err := eng.Run(responses)
	require.Error(t, err)

	var vErr *survey.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Big Five Snapshot", vErr.Model)
	assert.Equal(t, 20, vErr.Expected)
	assert.Equal(t, 19, vErr.Received)
}

func TestModels_FullRunScoresEveryDimension(t *testing.T) {
	models := Models()
	eng := survey.New(models...)

	responses := make(map[string][]int, len(models))
	for _, m := range models {
		values := make([]int, len(m.Questions))
		for i := range values {
			values[i] = 3
		}
		responses[m.Name] = values
	}

	results, err := eng.Run(responses)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// A uniform midpoint answer normalizes to 0.5 everywhere, reversed or not.
	for _, m := range models {
		for _, dimension := range m.Dimensions() {
			assert.InDeltaf(t, 0.5, results[m.Name][dimension], 1e-9, "%s/%s", m.Name, dimension)
		}
	}
}
