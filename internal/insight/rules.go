package insight

// Context names produced by the default rule set.
const (
	ContextGeneralLiking = "General Liking"
	ContextTechnical     = "Technical Collaboration"
	ContextManager       = "Manager Relationship"
	ContextPeer          = "Peer Relationship"
	ContextMentorLead    = "Mentor/Lead Relationship"
	ContextLearning      = "Learning Community"
	ContextCodeReview    = "Code Review Dynamics"
)

// defaultContexts builds the built-in decision tables. Thresholds and
// narratives are fixed constants; predicates read dimensions through
// Scores.Dim so a missing model or dimension evaluates at the neutral
// midpoint.
func defaultContexts() []Context {
	return []Context{
		{
			Name: ContextGeneralLiking,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimAgreeableness) > 0.7 &&
							s.Dim(modelBigFive, dimExtraversion) > 0.6
					},
					Text: "People are likely to perceive you as warm and approachable. " +
						"Expect positive first impressions in casual settings.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimEmotionalStability) < 0.4
					},
					Text: "Your calm demeanour encourages trust even if you are more reserved.",
				},
			},
			Fallback: "Mixed signals may arise; focus on active listening to reinforce rapport.",
		},
		{
			Name: ContextTechnical,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimConscientiousness) > 0.7 &&
							s.Dim(modelCollaboration, dimStructurePref) > 0.6
					},
					Text: "As an engineer you project reliability and a preference for well-defined " +
						"processes. Teammates will appreciate clear plans and retrospectives.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimOpenness) > 0.6
					},
					Text: "You thrive in exploratory technical discussions—lean into design spikes " +
						"and brainstorming sessions.",
				},
			},
			Fallback: "Balance structure with curiosity to strengthen technical collaborations.",
		},
		{
			Name: ContextManager,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelAttachment, dimTrustPropensity) > 0.7 &&
							s.Dim(modelCollaboration, dimSupportOrientation) > 0.6
					},
					Text: "Managers are likely to see you as a dependable partner who escalates " +
						"risks early and seeks joint solutions.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelAttachment, dimTrustPropensity) < 0.4
					},
					Text: "Clarify expectations frequently to avoid misunderstandings with managers.",
				},
			},
			Fallback: "Share progress rhythms and decision logs to reinforce confidence upward.",
		},
		{
			Name: ContextPeer,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimAgreeableness) > 0.7 &&
							s.Dim(modelCollaboration, dimSupportOrientation) > 0.6
					},
					Text: "Peers will value pairing sessions and shared ownership with you.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelCollaboration, dimSupportOrientation) < 0.4
					},
					Text: "Proactively offer feedback rounds to counter perceptions of distance.",
				},
			},
			Fallback: "Keep communication cadences steady to deepen peer rapport.",
		},
		{
			Name: ContextMentorLead,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelCollaboration, dimStructurePref) > 0.7 &&
							s.Dim(modelBigFive, dimOpenness) > 0.5
					},
					Text: "Direct reports will benefit from your organised onboarding and " +
						"willingness to adapt to their learning styles.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelCollaboration, dimStructurePref) < 0.4
					},
					Text: "Define check-ins and role clarity to avoid ambiguity with mentees.",
				},
			},
			Fallback: "Blend documented guidance with exploratory growth conversations.",
		},
		{
			Name: ContextLearning,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimExtraversion) > 0.6 &&
							s.Dim(modelBigFive, dimOpenness) > 0.6
					},
					Text: "In study groups you naturally catalyse discussion and share resources.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelAttachment, dimTrustPropensity) < 0.4
					},
					Text: "Start with asynchronous contributions to build familiarity before " +
						"facilitating live sessions.",
				},
			},
			Fallback: "Consistent summaries and question prompts will keep chatrooms engaged.",
		},
		{
			Name: ContextCodeReview,
			Rules: []Rule{
				{
					When: func(s Scores) bool {
						return s.Dim(modelBigFive, dimConscientiousness) > 0.7 &&
							s.Dim(modelBigFive, dimAgreeableness) > 0.6
					},
					Text: "Your reviews will read as thorough and generous. Authors are likely to " +
						"seek you out for early feedback rather than dreading your comments.",
				},
				{
					When: func(s Scores) bool {
						return s.Dim(modelAttachment, dimBoundaryClarity) < 0.4
					},
					Text: "Agree review scope and turnaround expectations up front; unclear " +
						"boundaries tend to surface as hedged or delayed review comments.",
				},
			},
			Fallback: "Pair direct observations with suggested alternatives to keep reviews constructive.",
		},
	}
}
