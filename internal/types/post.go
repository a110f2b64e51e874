package types

import "time"

// weekDays is the fixed Monday-start weekday sequence used across the plan.
var weekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekDays returns the Monday-start weekday names in order.
func WeekDays() []string {
	out := make([]string, len(weekDays))
	copy(out, weekDays)
	return out
}

// DayName converts a day number in [1,7] to its Monday-start weekday name.
// Returns empty string for out-of-range days.
func DayName(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return weekDays[day-1]
}

// PlatformOptimization holds static per-platform posting recommendations.
type PlatformOptimization struct {
	BestPostingTimes      string `json:"best_posting_times,omitempty"`
	OptimalLength         string `json:"optimal_length,omitempty"`
	EngagementTips        string `json:"engagement_tips,omitempty"`
	VisualRecommendations string `json:"visual_recommendations,omitempty"`
}

// BrandAlignment records the brand attributes a post was written against.
type BrandAlignment struct {
	Voice  string `json:"voice,omitempty"`
	Tone   string `json:"tone,omitempty"`
	Values string `json:"values,omitempty"`
}

// DailyPost is the per-day content artifact. Created once per day by the
// assembler, then read-only.
type DailyPost struct {
	Day                  int                  `json:"day"`
	DayName              string               `json:"day_name"`
	Platform             string               `json:"platform"`
	Goal                 string               `json:"goal"`
	PostType             string               `json:"post_type"`
	Title                string               `json:"title"`
	Caption              string               `json:"caption"`
	ContentTheme         string               `json:"content_theme"`
	PlatformOptimization PlatformOptimization `json:"platform_optimization"`
	BrandAlignment       BrandAlignment       `json:"brand_alignment"`
	TargetAudience       string               `json:"target_audience"`
	GeneratedAt          time.Time            `json:"generated_at"`
}

// PlaceholderTheme marks synthesized placeholder posts in the calendar.
const PlaceholderTheme = "General Content"

// IsPlaceholder reports whether the post was synthesized to fill a calendar gap.
func (p *DailyPost) IsPlaceholder() bool {
	return p.ContentTheme == PlaceholderTheme
}
