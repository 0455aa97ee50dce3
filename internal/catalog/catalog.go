// Package catalog provides the built-in survey models and loading of
// alternate model catalogs from file.
package catalog

import "github.com/sonderlabs/sonder/internal/survey"

// Default Likert bounds for the built-in questions.
const (
	defaultScaleMin = 1
	defaultScaleMax = 5
)

func likert(prompt, dimension string) survey.Question {
	return survey.Question{
		Prompt:    prompt,
		Dimension: dimension,
		ScaleMin:  defaultScaleMin,
		ScaleMax:  defaultScaleMax,
	}
}

func reversed(prompt, dimension string) survey.Question {
	q := likert(prompt, dimension)
	q.ReverseScored = true
	return q
}

// Models builds the default survey catalog: a Big Five inventory, an
// attachment/trust pulse, and a collaboration style pulse. Each call
// returns a fresh slice; the models themselves are plain values and
// safe to share.
func Models() []survey.Model {
	return []survey.Model{
		{
			Name: "Big Five Snapshot",
			Description: "A brief inventory inspired by the Big Five model to gauge core " +
				"personality traits related to social perception.",
			Questions: []survey.Question{
				likert("I make friends easily.", "Extraversion"),
				reversed("I feel little concern for others.", "Agreeableness"),
				likert("I am always prepared.", "Conscientiousness"),
				reversed("I get stressed out easily.", "Emotional Stability"),
				likert("I have a rich vocabulary.", "Openness"),
				reversed("I don't talk a lot.", "Extraversion"),
				likert("I sympathise with others' feelings.", "Agreeableness"),
				reversed("I leave my belongings around.", "Conscientiousness"),
				reversed("I change my mood a lot.", "Emotional Stability"),
				likert("I am quick to understand things.", "Openness"),
				likert("I talk to a lot of different people at parties.", "Extraversion"),
				reversed("I keep in the background.", "Extraversion"),
				likert("I feel others' emotions.", "Agreeableness"),
				reversed("I am not really interested in others.", "Agreeableness"),
				likert("I get chores done right away.", "Conscientiousness"),
				reversed("I often forget to put things back in their proper place.", "Conscientiousness"),
				likert("I am relaxed most of the time.", "Emotional Stability"),
				likert("I seldom feel blue.", "Emotional Stability"),
				likert("I have a vivid imagination.", "Openness"),
				reversed("I do not have a good imagination.", "Openness"),
			},
			DimensionAliases: map[string]string{
				"Emotional Stability": "Neuroticism (reversed)",
			},
		},
		{
			Name: "Attachment & Trust",
			Description: "Questions adapted from adult attachment research highlighting how " +
				"you form trust and manage relational boundaries.",
			Questions: []survey.Question{
				likert("I find it easy to depend on other people.", "Trust Propensity"),
				reversed("I worry that others won't support me.", "Trust Propensity"),
				likert("I communicate boundaries clearly.", "Boundary Clarity"),
				reversed("I prefer solving problems alone.", "Boundary Clarity"),
			},
		},
		{
			Name: "Collaboration Style",
			Description: "A collaboration readiness pulse inspired by agile team health " +
				"checks, focusing on support behaviours and structure preferences.",
			Questions: []survey.Question{
				likert("I enjoy facilitating group retrospectives.", "Support Orientation"),
				likert("I prefer to document plans before acting.", "Structure Preference"),
				likert("I proactively check in on teammates' progress.", "Support Orientation"),
				reversed("I am comfortable when requirements remain flexible.", "Structure Preference"),
			},
		},
	}
}
