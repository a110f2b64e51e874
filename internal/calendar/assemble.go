// Package calendar assembles the seven daily posts into the weekly
// ContentCalendar, filling gaps with placeholder posts.
package calendar

import (
	"fmt"
	"time"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the calendar stage at the gate.
const StageName = "calendar_assembler"

// AssembleCalendar collects the stored daily posts, synthesizes placeholders
// for missing days so the calendar always holds exactly seven posts, derives
// the aggregate views, and writes the result under the calendar key.
func AssembleCalendar(s *store.ContextStore) (*types.ContentCalendar, error) {
	if err := s.Precondition(StageName,
		store.KeyBusinessProfile, store.KeyBrandProfile,
		store.KeyPlatformSelection, store.KeyStrategyFramework); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	brandVal, _ := s.Get(store.KeyBrandProfile)
	selectionVal, _ := s.Get(store.KeyPlatformSelection)

	business := businessVal.(*types.BusinessProfile)
	brand := brandVal.(*types.BrandProfile)
	selection := selectionVal.(*types.PlatformSelection)

	posts := collectDailyPosts(s)
	themes := make([]string, len(posts))
	for i, post := range posts {
		themes[i] = post.ContentTheme
	}

	built := &types.ContentCalendar{
		Overview: types.CalendarOverview{
			TotalPosts:       len(posts),
			PlatformsCovered: selection.Platforms,
			ContentThemes:    themes,
			CalendarPeriod:   "1 week",
			GeneratedAt:      time.Now().UTC(),
		},
		BusinessContext: types.BusinessContext{
			Industry:       business.Industry,
			TargetAudience: business.TargetAudience,
			BusinessGoals:  business.BusinessGoals,
			BrandVoice:     brand.Voice,
			BrandTone:      brand.Tone,
		},
		DailyPosts:          posts,
		Statistics:          calculateStatistics(posts),
		PlatformSummaries:   summarizePlatforms(posts),
		ThemeAnalysis:       analyzeThemes(posts),
		ImplementationGuide: buildImplementationGuide(selection.Platforms),
		Table:               buildTable(posts),
	}

	s.Set(store.KeyContentCalendar, built)
	return built, nil
}

// collectDailyPosts reads days 1 through 7 in order, substituting a
// placeholder for any day without a stored post.
func collectDailyPosts(s *store.ContextStore) []types.DailyPost {
	posts := make([]types.DailyPost, 0, 7)
	for day := 1; day <= 7; day++ {
		if val, ok := s.Get(store.DayPostKey(day)); ok {
			posts = append(posts, *val.(*types.DailyPost))
			continue
		}
		posts = append(posts, placeholderPost(day))
	}
	return posts
}

// placeholderPost fills a calendar gap with safe defaults.
func placeholderPost(day int) types.DailyPost {
	return types.DailyPost{
		Day:            day,
		DayName:        types.DayName(day),
		Platform:       types.PlatformInstagram,
		Goal:           "Increase audience engagement",
		PostType:       "Image Post",
		Title:          fmt.Sprintf("Day %d Content", day),
		Caption:        "Content placeholder - please generate specific content for this day.",
		ContentTheme:   types.PlaceholderTheme,
		TargetAudience: "General audience",
		GeneratedAt:    time.Now().UTC(),
	}
}

func calculateStatistics(posts []types.DailyPost) types.CalendarStatistics {
	stats := types.CalendarStatistics{
		ContentTypeDistribution: make(map[string]int),
		PlatformDistribution:    make(map[string]int),
		ThemeDistribution:       make(map[string]int),
		GoalDistribution:        make(map[string]int),
		TotalPosts:              len(posts),
	}
	for _, post := range posts {
		stats.ContentTypeDistribution[post.PostType]++
		stats.PlatformDistribution[post.Platform]++
		stats.ThemeDistribution[post.ContentTheme]++
		stats.GoalDistribution[post.Goal]++
	}
	stats.UniquePlatforms = len(stats.PlatformDistribution)
	stats.UniqueThemes = len(stats.ThemeDistribution)
	return stats
}

func summarizePlatforms(posts []types.DailyPost) map[string]types.PlatformSummary {
	summaries := make(map[string]types.PlatformSummary)
	for _, post := range posts {
		summary, ok := summaries[post.Platform]
		if !ok {
			summary = types.PlatformSummary{
				ContentTypes:    make(map[string]int),
				Themes:          make(map[string]int),
				PostingSchedule: make(map[string]int),
			}
		}
		summary.TotalPosts++
		summary.ContentTypes[post.PostType]++
		summary.Themes[post.ContentTheme]++
		summary.PostingSchedule[post.DayName]++
		summaries[post.Platform] = summary
	}
	return summaries
}

// analyzeThemes tracks theme usage and scores goal consistency. A theme
// carrying at most two distinct goals scores 1.0, otherwise 0.5.
func analyzeThemes(posts []types.DailyPost) types.ThemeAnalysis {
	analysis := types.ThemeAnalysis{
		ThemeFrequency:   make(map[string]int),
		ThemeGoals:       make(map[string][]string),
		ThemePlatforms:   make(map[string][]string),
		ThemeConsistency: make(map[string]types.ThemeConsistency),
	}
	for _, post := range posts {
		analysis.ThemeFrequency[post.ContentTheme]++
		analysis.ThemeGoals[post.ContentTheme] = append(analysis.ThemeGoals[post.ContentTheme], post.Goal)
		analysis.ThemePlatforms[post.ContentTheme] = append(analysis.ThemePlatforms[post.ContentTheme], post.Platform)
	}
	for theme, goals := range analysis.ThemeGoals {
		unique := make(map[string]struct{}, len(goals))
		for _, goal := range goals {
			unique[goal] = struct{}{}
		}
		score := 1.0
		if len(unique) > 2 {
			score = 0.5
		}
		analysis.ThemeConsistency[theme] = types.ThemeConsistency{
			GoalDiversity:    len(unique),
			ConsistencyScore: score,
		}
	}
	return analysis
}

// optimalTimes per platform for the implementation guide.
var optimalTimes = map[string]string{
	types.PlatformFacebook:  "9 AM - 3 PM, Tuesday-Thursday",
	types.PlatformInstagram: "11 AM - 1 PM, 5 PM - 7 PM, Monday-Friday",
	types.PlatformLinkedIn:  "8 AM - 10 AM, 12 PM - 2 PM, Tuesday-Thursday",
}

func buildImplementationGuide(platforms []string) types.ImplementationGuide {
	times := make(map[string]string, len(platforms))
	for _, platform := range platforms {
		if t, ok := optimalTimes[platform]; ok {
			times[platform] = t
		} else {
			times[platform] = "Check platform analytics for optimal times"
		}
	}
	return types.ImplementationGuide{
		PreLaunchChecklist: []string{
			"Review all content for brand voice alignment",
			"Prepare visual assets according to design suggestions",
			"Set up scheduling tools for each platform",
			"Prepare hashtag lists for easy copy-paste",
			"Create content approval workflow",
		},
		PostingSchedule: types.PostingSchedule{
			Frequency:            "Daily posting across selected platforms",
			OptimalTimes:         times,
			ContentPreparation:   "Prepare content 2-3 days in advance",
			EngagementMonitoring: "Monitor comments and engagement for 2 hours after posting",
		},
		QualityAssurance: []string{
			"Ensure all content aligns with brand voice and tone",
			"Verify hashtags are relevant and not overused",
			"Check visual quality and brand consistency",
			"Test links and call-to-actions",
			"Review for grammar and spelling",
		},
		PerformanceTracking: []string{
			"Track engagement rates for each post",
			"Monitor reach and impressions",
			"Analyze which content types perform best",
			"Track hashtag performance",
			"Measure goal achievement (awareness, leads, etc.)",
		},
	}
}

// buildTable projects the week into flat rows, truncating long titles and
// goals for display.
func buildTable(posts []types.DailyPost) []types.CalendarRow {
	rows := make([]types.CalendarRow, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, types.CalendarRow{
			Day:      post.DayName,
			Platform: post.Platform,
			Type:     post.PostType,
			Title:    truncate(post.Title, 50),
			Goal:     truncate(post.Goal, 30),
			Theme:    post.ContentTheme,
		})
	}
	return rows
}

func truncate(text string, max int) string {
	if len(text) > max {
		return text[:max] + "..."
	}
	return text
}
