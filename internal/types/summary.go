package types

// BusinessOverview is the business slice of the executive summary.
type BusinessOverview struct {
	Industry       string `json:"industry"`
	TargetAudience string `json:"target_audience"`
	PrimaryGoals   string `json:"primary_goals"`
	KeyChallenges  string `json:"key_challenges"`
}

// BrandIdentity is the brand slice of the executive summary.
type BrandIdentity struct {
	Voice      string `json:"voice"`
	Tone       string `json:"tone"`
	CoreValues string `json:"core_values"`
}

// PlatformStrategy is the platform slice of the executive summary.
type PlatformStrategy struct {
	SelectedPlatforms []string `json:"selected_platforms"`
	Priorities        string   `json:"priorities"`
}

// ExecutiveSummary groups the three input views for the executive reader.
type ExecutiveSummary struct {
	BusinessOverview BusinessOverview `json:"business_overview"`
	BrandIdentity    BrandIdentity    `json:"brand_identity"`
	PlatformStrategy PlatformStrategy `json:"platform_strategy"`
}

// StrategyOverview reshapes the framework for the summary.
type StrategyOverview struct {
	PrimaryThemes   []string           `json:"primary_themes"`
	ContentMix      map[string]int     `json:"content_mix"`
	WeeklyStructure map[string]DayPlan `json:"weekly_structure"`
}

// ScheduledPost is one entry in the summary's posting schedule.
type ScheduledPost struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Goal  string `json:"goal"`
}

// CalendarSummary rolls up the calendar for the summary.
type CalendarSummary struct {
	TotalPosts              int                                 `json:"total_posts"`
	PlatformDistribution    map[string]int                      `json:"platform_distribution"`
	ContentTypeDistribution map[string]int                      `json:"content_type_distribution"`
	PostingSchedule         map[string]map[string]ScheduledPost `json:"posting_schedule"`
}

// ImplementationGuidance carries the fixed advisory lists, with
// industry-conditional additions.
type ImplementationGuidance struct {
	KeySuccessFactors    []string            `json:"key_success_factors"`
	ContentCreationTips  []string            `json:"content_creation_tips"`
	EngagementStrategies map[string][]string `json:"engagement_strategies"`
	PerformanceTracking  PerformanceTracking `json:"performance_tracking"`
}

// PerformanceTracking defines how the plan's success metrics are followed up.
type PerformanceTracking struct {
	KeyMetrics        []string          `json:"key_metrics"`
	TrackingFrequency string            `json:"tracking_frequency"`
	ToolsRecommended  []string          `json:"tools_recommended"`
	SuccessBenchmarks map[string]string `json:"success_benchmarks"`
}

// NextSteps lists immediate and ongoing follow-up actions.
type NextSteps struct {
	ImmediateActions  []string `json:"immediate_actions"`
	OngoingActivities []string `json:"ongoing_activities"`
}

// StrategySummary is the read-only executive rollup of all prior artifacts.
type StrategySummary struct {
	ExecutiveSummary       ExecutiveSummary       `json:"executive_summary"`
	StrategyOverview       StrategyOverview       `json:"content_strategy_overview"`
	CalendarSummary        CalendarSummary        `json:"content_calendar_summary"`
	ImplementationGuidance ImplementationGuidance `json:"implementation_guidance"`
	NextSteps              NextSteps              `json:"next_steps"`
}
