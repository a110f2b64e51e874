package types

// Hashtag candidate source categories.
const (
	SourceTrending = "trending"
	SourceIndustry = "industry"
	SourceAudience = "audience"
	SourcePlatform = "platform"
	SourceBranded  = "branded"
	SourceContent  = "content"
)

// HashtagCandidate is one scored hashtag drawn from a source pool.
type HashtagCandidate struct {
	Tag            string `json:"tag"`
	SourceCategory string `json:"source_category"`
	RelevanceScore int    `json:"relevance_score"`
}

// HashtagWindow is the [min,max] hashtag count window for one platform.
type HashtagWindow struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ComplianceCheck is one pass/fail compliance rule with remediation text.
type ComplianceCheck struct {
	Passed      bool   `json:"passed"`
	Remediation string `json:"remediation,omitempty"`
}

// ComplianceReport breaks down a hashtag set against platform rules.
type ComplianceReport struct {
	CountCompliance           ComplianceCheck `json:"count_compliance"`
	AppropriatenessCompliance ComplianceCheck `json:"appropriateness_compliance"`
	AvoidListCompliance       ComplianceCheck `json:"avoid_list_compliance"`
	BestPracticeAdherence     ComplianceCheck `json:"best_practice_adherence"`
	OverallCompliance         bool            `json:"overall_compliance"`
}

// HashtagRecommendation is the per-post hashtag artifact. Recomputed when
// the post changes.
type HashtagRecommendation struct {
	Day                 int                 `json:"day"`
	Platform            string              `json:"platform"`
	ContentKeywords     []string            `json:"content_keywords"`
	FinalSet            []HashtagCandidate  `json:"final_set"`
	BreakdownByCategory map[string][]string `json:"breakdown_by_category"`
	Window              HashtagWindow       `json:"window"`
	Compliance          *ComplianceReport   `json:"compliance_report,omitempty"`
	Underfilled         bool                `json:"underfilled,omitempty"`
}

// Tags returns the final set as plain tag strings in ranked order.
func (r *HashtagRecommendation) Tags() []string {
	tags := make([]string, 0, len(r.FinalSet))
	for _, c := range r.FinalSet {
		tags = append(tags, c.Tag)
	}
	return tags
}
