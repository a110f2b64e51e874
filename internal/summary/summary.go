// Package summary reshapes the prior artifacts into the executive rollup.
// No new algorithms live here.
package summary

import (
	"strings"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the summary stage at the gate.
const StageName = "summary_assembler"

// AssembleSummary rolls the four inputs, the framework, and the calendar up
// into the StrategySummary and writes it under the summary key. The calendar
// must carry exactly seven posts.
func AssembleSummary(s *store.ContextStore) (*types.StrategySummary, error) {
	if err := s.Precondition(StageName,
		store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyPlatformSelection,
		store.KeyStrategyFramework, store.KeyContentCalendar); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	brandVal, _ := s.Get(store.KeyBrandProfile)
	selectionVal, _ := s.Get(store.KeyPlatformSelection)
	frameworkVal, _ := s.Get(store.KeyStrategyFramework)
	calendarVal, _ := s.Get(store.KeyContentCalendar)

	business := businessVal.(*types.BusinessProfile)
	brand := brandVal.(*types.BrandProfile)
	selection := selectionVal.(*types.PlatformSelection)
	framework := frameworkVal.(*types.StrategyFramework)
	cal := calendarVal.(*types.ContentCalendar)

	if len(cal.DailyPosts) != 7 {
		return nil, &types.ValidationError{
			Field:   "content_calendar",
			Message: "calendar must contain exactly 7 posts",
		}
	}

	built := &types.StrategySummary{
		ExecutiveSummary: types.ExecutiveSummary{
			BusinessOverview: types.BusinessOverview{
				Industry:       business.Industry,
				TargetAudience: business.TargetAudience,
				PrimaryGoals:   business.BusinessGoals,
				KeyChallenges:  business.CurrentChallenges,
			},
			BrandIdentity: types.BrandIdentity{
				Voice:      brand.Voice,
				Tone:       brand.Tone,
				CoreValues: brand.CoreValues,
			},
			PlatformStrategy: types.PlatformStrategy{
				SelectedPlatforms: selection.Platforms,
				Priorities:        selection.Priorities,
			},
		},
		StrategyOverview: types.StrategyOverview{
			PrimaryThemes:   themeNames(framework.Themes),
			ContentMix:      framework.ContentMix,
			WeeklyStructure: framework.WeeklyStructure,
		},
		CalendarSummary:        summarizeCalendar(cal),
		ImplementationGuidance: buildGuidance(business.Industry),
		NextSteps:              buildNextSteps(),
	}

	s.Set(store.KeyStrategySummary, built)
	return built, nil
}

func themeNames(themes []types.Theme) []string {
	names := make([]string, 0, len(themes))
	for _, theme := range themes {
		names = append(names, theme.Name)
	}
	return names
}

// summarizeCalendar reshapes the calendar into the day-by-platform posting
// schedule plus the existing distributions.
func summarizeCalendar(cal *types.ContentCalendar) types.CalendarSummary {
	schedule := make(map[string]map[string]types.ScheduledPost, len(cal.DailyPosts))
	for _, post := range cal.DailyPosts {
		if schedule[post.DayName] == nil {
			schedule[post.DayName] = make(map[string]types.ScheduledPost)
		}
		schedule[post.DayName][post.Platform] = types.ScheduledPost{
			Title: post.Title,
			Type:  post.PostType,
			Goal:  post.Goal,
		}
	}
	return types.CalendarSummary{
		TotalPosts:              cal.Statistics.TotalPosts,
		PlatformDistribution:    cal.Statistics.PlatformDistribution,
		ContentTypeDistribution: cal.Statistics.ContentTypeDistribution,
		PostingSchedule:         schedule,
	}
}

// buildGuidance returns the fixed advisory lists with an industry-specific
// engagement row added when the industry is recognized.
func buildGuidance(industry string) types.ImplementationGuidance {
	guidance := types.ImplementationGuidance{
		KeySuccessFactors: []string{
			"Consistent posting according to the weekly schedule",
			"Authentic brand voice across every post",
			"Active engagement with comments within the first two hours",
			"Hashtag sets tailored per platform window",
		},
		ContentCreationTips: []string{
			"Batch-produce visuals using the per-post design concepts",
			"Adapt captions per platform rather than cross-posting verbatim",
			"Keep calls-to-action aligned with each post's stated goal",
		},
		EngagementStrategies: map[string][]string{
			"general": {
				"Respond to every comment within 24 hours",
				"Re-share strong user-generated content with credit",
				"Rotate interactive formats weekly",
			},
		},
		PerformanceTracking: types.PerformanceTracking{
			KeyMetrics: []string{
				"Engagement rate per post",
				"Reach and impressions per platform",
				"Follower growth week over week",
				"Goal-specific conversions",
			},
			TrackingFrequency: "Weekly performance review, monthly comprehensive analysis",
			ToolsRecommended: []string{
				"Platform native analytics",
				"Social media management tools",
				"Manual performance monitoring",
			},
			SuccessBenchmarks: map[string]string{
				"engagement_rate": "Above platform average",
				"reach_growth":    "Month-over-month increase",
			},
		},
	}

	lowered := strings.ToLower(industry)
	switch {
	case strings.Contains(lowered, "technology"):
		guidance.EngagementStrategies["industry"] = []string{
			"Lead with thought leadership content on product and trend topics",
			"Engage in technical discussions to demonstrate expertise",
		}
	case strings.Contains(lowered, "healthcare"):
		guidance.EngagementStrategies["industry"] = []string{
			"Prioritize trust-building content and credentialed voices",
			"Respond to health questions with care and appropriate disclaimers",
		}
	case strings.Contains(lowered, "e-commerce"):
		guidance.EngagementStrategies["industry"] = []string{
			"Amplify social proof through reviews and customer stories",
			"Pair product showcases with clear purchase paths",
		}
	}
	return guidance
}

func buildNextSteps() types.NextSteps {
	return types.NextSteps{
		ImmediateActions: []string{
			"Review and approve the weekly content calendar",
			"Prepare visual assets per the design concepts",
			"Load posts and hashtag sets into a scheduling tool",
		},
		OngoingActivities: []string{
			"Monitor engagement and adjust posting times",
			"Refresh hashtag sets based on performance",
			"Plan the following week from the same strategy framework",
		},
	}
}
