package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/content-planner/internal/types"
)

func TestPrintStrategyFramework(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	framework := &types.StrategyFramework{
		Themes: []types.Theme{
			{Name: "Educational Content"},
			{Name: "Behind-the-Scenes"},
		},
		GoalsAnalysis: types.GoalsAnalysis{
			ContentPriorities: []string{"brand_awareness", "engagement"},
		},
		ContentMix: map[string]int{"educational": 40, "promotional": 10},
	}

	p.PrintStrategyFramework(framework)
	output := buf.String()

	assert.Contains(t, output, "STRATEGY FRAMEWORK")
	assert.Contains(t, output, "Educational Content")
	assert.Contains(t, output, "brand_awareness, engagement")
	assert.Contains(t, output, "educational: 40%")
}

func TestPrintStrategyFramework_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrategyFramework(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDailyPost(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	post := &types.DailyPost{
		Day:          3,
		DayName:      "Wednesday",
		Platform:     types.PlatformInstagram,
		PostType:     "Reel",
		ContentTheme: "Behind-the-Scenes",
		Title:        "Inside our process",
		Goal:         "Humanize the brand",
	}

	p.PrintDailyPost(post)
	output := buf.String()

	assert.Contains(t, output, "DAILY POST")
	assert.Contains(t, output, "Day 3 (Wednesday) on Instagram")
	assert.Contains(t, output, "Inside our process")
	assert.Contains(t, output, "Humanize the brand")
}

func TestPrintCalendar(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cal := &types.ContentCalendar{
		DailyPosts: []types.DailyPost{{Day: 1}},
		Statistics: types.CalendarStatistics{
			TotalPosts:      7,
			UniquePlatforms: 2,
			UniqueThemes:    3,
		},
		Table: []types.CalendarRow{
			{Day: "Monday", Platform: types.PlatformLinkedIn, Title: "Industry outlook"},
			{Day: "Tuesday", Platform: types.PlatformInstagram, Title: "Quick tips"},
		},
	}

	p.PrintCalendar(cal)
	output := buf.String()

	assert.Contains(t, output, "CONTENT CALENDAR")
	assert.Contains(t, output, "Total posts: 7")
	assert.Contains(t, output, "Monday")
	assert.Contains(t, output, "Industry outlook")
}

func TestPrintCalendar_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCalendar(&types.ContentCalendar{})

	assert.Empty(t, buf.String())
}

func TestPrintHashtagRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.HashtagRecommendation{
		Day:      2,
		Platform: types.PlatformLinkedIn,
		Window:   types.HashtagWindow{Min: 3, Max: 5},
		FinalSet: []types.HashtagCandidate{
			{Tag: "#industry"},
			{Tag: "#insights"},
			{Tag: "#growth"},
		},
		Compliance: &types.ComplianceReport{OverallCompliance: true},
	}

	p.PrintHashtagRecommendation(rec)
	output := buf.String()

	assert.Contains(t, output, "HASHTAG RECOMMENDATION")
	assert.Contains(t, output, "window 3-5")
	assert.Contains(t, output, "#industry")
	assert.Contains(t, output, "Compliance: passed")
}

func TestPrintVisualConcept(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	concept := &types.VisualConcept{
		Day:               4,
		Platform:          types.PlatformFacebook,
		ContentType:       "Image Post",
		PlatformSpec:      types.PlatformDesignSpec{Dimensions: "1200x630px"},
		VisualPersonality: "professional_authority",
		Mood:              "confident",
		DesignApproach:    "Clean, informative layout with clear hierarchy",
	}

	p.PrintVisualConcept(concept)
	output := buf.String()

	assert.Contains(t, output, "VISUAL CONCEPT")
	assert.Contains(t, output, "1200x630px")
	assert.Contains(t, output, "professional_authority")
}

func TestPrintStrategySummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := &types.StrategySummary{
		ExecutiveSummary: types.ExecutiveSummary{
			BusinessOverview: types.BusinessOverview{Industry: "Technology"},
			PlatformStrategy: types.PlatformStrategy{
				SelectedPlatforms: []string{types.PlatformInstagram, types.PlatformLinkedIn},
			},
		},
		StrategyOverview: types.StrategyOverview{
			PrimaryThemes: []string{"Educational Content"},
		},
		CalendarSummary: types.CalendarSummary{TotalPosts: 7},
	}

	p.PrintStrategySummary(summary)
	output := buf.String()

	assert.Contains(t, output, "STRATEGY SUMMARY")
	assert.Contains(t, output, "Technology")
	assert.Contains(t, output, "Instagram, LinkedIn")
	assert.Contains(t, output, "Posts:     7")
}
