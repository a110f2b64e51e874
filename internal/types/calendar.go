package types

import "time"

// CalendarOverview summarizes the planning window and covered platforms.
type CalendarOverview struct {
	TotalPosts       int       `json:"total_posts"`
	PlatformsCovered []string  `json:"platforms_covered"`
	ContentThemes    []string  `json:"content_themes"`
	CalendarPeriod   string    `json:"calendar_period"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// BusinessContext echoes the inputs the calendar was planned against.
type BusinessContext struct {
	Industry       string `json:"industry"`
	TargetAudience string `json:"target_audience"`
	BusinessGoals  string `json:"business_goals"`
	BrandVoice     string `json:"brand_voice"`
	BrandTone      string `json:"brand_tone"`
}

// CalendarStatistics aggregates per-category counts across the week.
type CalendarStatistics struct {
	ContentTypeDistribution map[string]int `json:"content_type_distribution"`
	PlatformDistribution    map[string]int `json:"platform_distribution"`
	ThemeDistribution       map[string]int `json:"theme_distribution"`
	GoalDistribution        map[string]int `json:"goal_distribution"`
	TotalPosts              int            `json:"total_posts"`
	UniquePlatforms         int            `json:"unique_platforms"`
	UniqueThemes            int            `json:"unique_themes"`
}

// PlatformSummary rolls up one platform's share of the calendar.
type PlatformSummary struct {
	TotalPosts      int            `json:"total_posts"`
	ContentTypes    map[string]int `json:"content_types"`
	Themes          map[string]int `json:"themes"`
	PostingSchedule map[string]int `json:"posting_schedule"`
}

// ThemeConsistency scores how focused a theme's goals are. The score is a
// binary heuristic: 1.0 when a theme carries at most two distinct goals,
// otherwise 0.5.
type ThemeConsistency struct {
	GoalDiversity    int     `json:"goal_diversity"`
	ConsistencyScore float64 `json:"consistency_score"`
}

// ThemeAnalysis tracks how themes are used across the calendar.
type ThemeAnalysis struct {
	ThemeFrequency   map[string]int              `json:"theme_frequency"`
	ThemeGoals       map[string][]string         `json:"theme_goals"`
	ThemePlatforms   map[string][]string         `json:"theme_platforms"`
	ThemeConsistency map[string]ThemeConsistency `json:"theme_consistency"`
}

// PostingSchedule captures the fixed posting guidance attached to the guide.
type PostingSchedule struct {
	Frequency            string            `json:"frequency"`
	OptimalTimes         map[string]string `json:"optimal_times"`
	ContentPreparation   string            `json:"content_preparation"`
	EngagementMonitoring string            `json:"engagement_monitoring"`
}

// ImplementationGuide is the static operator checklist attached to every
// calendar.
type ImplementationGuide struct {
	PreLaunchChecklist  []string        `json:"pre_launch_checklist"`
	PostingSchedule     PostingSchedule `json:"posting_schedule"`
	QualityAssurance    []string        `json:"quality_assurance"`
	PerformanceTracking []string        `json:"performance_tracking"`
}

// CalendarRow is one line of the flat per-day table projection.
type CalendarRow struct {
	Day      string `json:"day"`
	Platform string `json:"platform"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Goal     string `json:"goal"`
	Theme    string `json:"theme"`
}

// ContentCalendar holds exactly 7 daily posts ordered by day, plus derived
// statistics. Assembled once, then read-only. The 7-post invariant holds
// even when upstream days are missing; gaps are filled with placeholders.
type ContentCalendar struct {
	Overview            CalendarOverview           `json:"calendar_overview"`
	BusinessContext     BusinessContext            `json:"business_context"`
	DailyPosts          []DailyPost                `json:"daily_posts"`
	Statistics          CalendarStatistics         `json:"calendar_statistics"`
	PlatformSummaries   map[string]PlatformSummary `json:"platform_distribution"`
	ThemeAnalysis       ThemeAnalysis              `json:"theme_analysis"`
	ImplementationGuide ImplementationGuide        `json:"implementation_guide"`
	Table               []CalendarRow              `json:"content_calendar_table"`
}
