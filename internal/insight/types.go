// Package insight derives qualitative relationship narratives from
// aggregated survey scores via ordered decision tables.
package insight

// Model names the insight rules read from. They match the default
// catalog; an alternate catalog can reuse the same names to feed the
// same rules.
const (
	modelBigFive       = "Big Five Snapshot"
	modelAttachment    = "Attachment & Trust"
	modelCollaboration = "Collaboration Style"
)

// Dimension names referenced by the default rules.
const (
	dimExtraversion       = "Extraversion"
	dimAgreeableness      = "Agreeableness"
	dimConscientiousness  = "Conscientiousness"
	dimEmotionalStability = "Emotional Stability"
	dimOpenness           = "Openness"
	dimTrustPropensity    = "Trust Propensity"
	dimBoundaryClarity    = "Boundary Clarity"
	dimSupportOrientation = "Support Orientation"
	dimStructurePref      = "Structure Preference"
)

// Scores is a read-only view over aggregated survey results, keyed by
// model name and then dimension name.
type Scores map[string]map[string]float64

// Dim returns the aggregated value for a dimension within a model,
// falling back to the scale midpoint (0.5) when either the model or
// the dimension was not scored. Partial surveys therefore degrade to
// neutral narratives instead of failing.
func (s Scores) Dim(model, dimension string) float64 {
	if dims, ok := s[model]; ok {
		if v, ok := dims[dimension]; ok {
			return v
		}
	}
	return 0.5
}

// Rule pairs a threshold predicate with the narrative returned when it
// matches.
type Rule struct {
	When func(s Scores) bool
	Text string
}

// Context is one relationship setting: an ordered rule cascade plus a
// mandatory fallback narrative. Rules are evaluated in order and the
// first match wins.
type Context struct {
	Name     string
	Rules    []Rule
	Fallback string
}
