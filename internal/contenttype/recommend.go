package contenttype

import (
	"sort"
	"strings"
	"time"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the content type stage at the gate.
const StageName = "content_type_recommender"

// maxRecommendations caps the ranked output.
const maxRecommendations = 5

// Recommend gathers candidate content types from the platform, industry,
// goal, and audience pools, ranks them by combined frequency with first-seen
// tie-breaking, and writes the top five under the recommendations key. Goal
// context comes from the stored StrategyFramework.
func Recommend(s *store.ContextStore, industry, audience, platform string, day int) (*types.ContentTypeRecommendations, error) {
	if err := s.Precondition(StageName, store.KeyStrategyFramework); err != nil {
		return nil, err
	}
	if !types.IsValidPlatform(platform) {
		return nil, &types.ValidationError{Field: "platform", Message: "unsupported platform: " + platform}
	}

	frameworkVal, _ := s.Get(store.KeyStrategyFramework)
	framework := frameworkVal.(*types.StrategyFramework)

	counts := make(map[string]int)
	var order []string
	tally := func(pool []string) {
		for _, name := range pool {
			if counts[name] == 0 {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	tally(platformTrends[platform])
	tally(industryTrends[industryCategory(industry)])
	for _, objective := range framework.GoalsAnalysis.ContentPriorities {
		tally(goalPreferences[objective])
	}
	tally(audienceTypePreferences[audienceType(audience)])
	tally(agePreferences[ageGroup(audience)])

	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}

	recs := &types.ContentTypeRecommendations{
		Platform:    platform,
		Day:         day,
		Recommended: make([]types.RankedContentType, 0, len(ranked)),
		GeneratedAt: time.Now().UTC(),
	}
	for _, name := range ranked {
		recs.Recommended = append(recs.Recommended, types.RankedContentType{
			Type:                name,
			Frequency:           counts[name],
			Rationale:           lookupOrDefault(rationales, name, defaultRationale),
			TimingSuggestion:    lookupOrDefault(timingGuidelines, name, "Consistent posting schedule based on audience activity"),
			EngagementPotential: lookupOrDefault(engagementAssessments, name, defaultEngagement),
		})
	}

	s.Set(store.KeyContentTypeRecs, recs)
	return recs, nil
}

func lookupOrDefault(table map[string]string, key, fallback string) string {
	if text, ok := table[key]; ok {
		return text
	}
	return fallback
}

// industryCategory resolves free-text industry to a trend table category by
// substring match, falling back to professional_services.
func industryCategory(industry string) string {
	lowered := strings.ToLower(industry)
	for alias, category := range industryAliases {
		if strings.Contains(lowered, alias) {
			return category
		}
	}
	return "professional_services"
}

// audienceType classifies the audience description into a preference
// category. Business and professional audiences are the default.
func audienceType(audience string) string {
	lowered := strings.ToLower(audience)
	switch {
	case strings.Contains(lowered, "consumer"), strings.Contains(lowered, "customer"), strings.Contains(lowered, "shopper"):
		return "consumer"
	case strings.Contains(lowered, "student"), strings.Contains(lowered, "learner"), strings.Contains(lowered, "beginner"):
		return "educational"
	default:
		return "professional"
	}
}

// ageRules maps audience description markers to an age group, checked in
// order; the first rule with a matching marker wins.
var ageRules = []struct {
	markers []string
	group   string
}{
	{[]string{"25-45", "millennial", "young"}, "millennial"},
	{[]string{"45+", "senior", "mature"}, "mature"},
}

// ageGroup classifies the audience description into an age preference group
// by substring markers. Descriptions matching no rule are mixed.
func ageGroup(audience string) string {
	lowered := strings.ToLower(audience)
	for _, rule := range ageRules {
		for _, marker := range rule.markers {
			if strings.Contains(lowered, marker) {
				return rule.group
			}
		}
	}
	return "mixed"
}
