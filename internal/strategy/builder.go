package strategy

import (
	"strings"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the strategy stage at the gate.
const StageName = "strategy_builder"

// BuildFramework derives the StrategyFramework from the stored input
// profiles and writes it under the strategy key. It performs no writes when
// the gate fails.
func BuildFramework(s *store.ContextStore) (*types.StrategyFramework, error) {
	if err := s.Precondition(StageName,
		store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyPlatformSelection); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	brandVal, _ := s.Get(store.KeyBrandProfile)
	selectionVal, _ := s.Get(store.KeyPlatformSelection)

	business := businessVal.(*types.BusinessProfile)
	brand := brandVal.(*types.BrandProfile)
	selection := selectionVal.(*types.PlatformSelection)

	themes := selectThemes(business.Industry)
	framework := &types.StrategyFramework{
		GoalsAnalysis:      analyzeGoals(business.BusinessGoals),
		ChallengesAnalysis: analyzeChallenges(business.CurrentChallenges),
		Themes:             themes,
		PlatformPostTypes:  recommendPostTypes(selection.Platforms, brand.Voice),
		WeeklyStructure:    buildWeeklyStructure(themes),
		ContentMix:         recommendContentMix(),
		SuccessMetrics:     defineSuccessMetrics(business.BusinessGoals),
	}

	s.Set(store.KeyStrategyFramework, framework)
	return framework, nil
}

// matchCategories applies an ordered rule table to lowercased text and
// returns every matching category in rule order.
func matchCategories(rules []keywordRule, text string) []string {
	lowered := strings.ToLower(text)
	var matched []string
	for _, rule := range rules {
		for _, word := range rule.words {
			if strings.Contains(lowered, word) {
				matched = append(matched, rule.category)
				break
			}
		}
	}
	return matched
}

// analyzeGoals classifies the goals text into content priorities. Focus
// areas keep at most the first two priorities.
func analyzeGoals(goals string) types.GoalsAnalysis {
	priorities := matchCategories(goalRules, goals)
	focus := priorities
	if len(focus) > 2 {
		focus = focus[:2]
	}
	return types.GoalsAnalysis{
		PrimaryGoals:      goals,
		ContentPriorities: priorities,
		FocusAreas:        focus,
	}
}

// analyzeChallenges classifies the challenges text into content solutions.
func analyzeChallenges(challenges string) types.ChallengesAnalysis {
	solutions := matchCategories(challengeRules, challenges)
	return types.ChallengesAnalysis{
		CurrentChallenges:   challenges,
		ContentSolutions:    solutions,
		StrategyAdjustments: solutions,
	}
}

// selectThemes returns the three universal themes plus at most one
// industry-specific theme found by substring match, capped at maxThemes.
func selectThemes(industry string) []types.Theme {
	themes := make([]types.Theme, len(universalThemes))
	copy(themes, universalThemes)

	loweredIndustry := strings.ToLower(industry)
	for key, theme := range industryThemes {
		if strings.Contains(loweredIndustry, key) {
			themes = append(themes, theme)
			break
		}
	}

	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}

// recommendPostTypes builds per-platform post type lists, dropping casual
// types when the brand voice reads professional or formal.
func recommendPostTypes(platforms []string, voice string) map[string][]string {
	loweredVoice := strings.ToLower(voice)
	professional := strings.Contains(loweredVoice, "professional") || strings.Contains(loweredVoice, "formal")

	result := make(map[string][]string, len(platforms))
	for _, platform := range platforms {
		base := basePostTypes[platform]
		var kept []string
		for _, postType := range base {
			if professional && casualPostTypes[postType] {
				continue
			}
			kept = append(kept, postType)
		}
		result[platform] = kept
	}
	return result
}

// buildWeeklyStructure assigns themes to the seven weekdays cyclically by
// index modulo theme count, with focus areas cycled from the fixed list.
func buildWeeklyStructure(themes []types.Theme) map[string]types.DayPlan {
	structure := make(map[string]types.DayPlan, 7)
	for i, day := range types.WeekDays() {
		theme := themes[i%len(themes)]
		structure[day] = types.DayPlan{
			PrimaryTheme:     theme.Name,
			ThemeDescription: theme.Description,
			FocusArea:        focusAreas[i%len(focusAreas)],
		}
	}
	return structure
}

// recommendContentMix returns a copy of the fixed content mix table.
func recommendContentMix() map[string]int {
	mix := make(map[string]int, len(contentMix))
	for category, percent := range contentMix {
		mix[category] = percent
	}
	return mix
}

// defineSuccessMetrics returns the base metrics plus conditional additions
// triggered by keyword matches in the goals text.
func defineSuccessMetrics(goals string) []string {
	metrics := make([]string, len(baseMetrics))
	copy(metrics, baseMetrics)
	metrics = append(metrics, matchCategories(metricRules, goals)...)
	return metrics
}
