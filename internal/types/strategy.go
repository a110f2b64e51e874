package types

// Theme is a named content category with a description and strategic
// alignment notes.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Alignment   string `json:"alignment"`
}

// GoalsAnalysis classifies the business goals text into content priorities.
type GoalsAnalysis struct {
	PrimaryGoals      string   `json:"primary_goals"`
	ContentPriorities []string `json:"content_priorities"`
	FocusAreas        []string `json:"focus_areas"`
}

// ChallengesAnalysis classifies the current challenges text into content
// solutions.
type ChallengesAnalysis struct {
	CurrentChallenges   string   `json:"current_challenges"`
	ContentSolutions    []string `json:"content_solutions"`
	StrategyAdjustments []string `json:"strategy_adjustments"`
}

// DayPlan assigns a theme and focus area to one weekday.
type DayPlan struct {
	PrimaryTheme     string `json:"primary_theme"`
	ThemeDescription string `json:"theme_description"`
	FocusArea        string `json:"focus_area"`
}

// StrategyFramework is the derived strategy artifact read by every later
// stage. Derived once per run, read many times.
type StrategyFramework struct {
	GoalsAnalysis      GoalsAnalysis       `json:"goals_analysis"`
	ChallengesAnalysis ChallengesAnalysis  `json:"challenges_analysis"`
	Themes             []Theme             `json:"themes"`
	PlatformPostTypes  map[string][]string `json:"platform_post_types"`
	WeeklyStructure    map[string]DayPlan  `json:"weekly_structure"`
	ContentMix         map[string]int      `json:"content_mix"`
	SuccessMetrics     []string            `json:"success_metrics"`
}
