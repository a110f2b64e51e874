package types

import "time"

// RankedContentType is one recommended content type with its combined pool
// frequency and fixed annotation text.
type RankedContentType struct {
	Type                string `json:"type"`
	Frequency           int    `json:"frequency"`
	Rationale           string `json:"rationale"`
	TimingSuggestion    string `json:"timing_suggestion"`
	EngagementPotential string `json:"engagement_potential"`
}

// ContentTypeRecommendations holds the top ranked content types for one
// platform and day.
type ContentTypeRecommendations struct {
	Platform    string              `json:"platform"`
	Day         int                 `json:"day"`
	Recommended []RankedContentType `json:"recommended"`
	GeneratedAt time.Time           `json:"generated_at"`
}
