package summary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

func seedAll(t *testing.T, industry string, postCount int) *store.ContextStore {
	t.Helper()
	s := store.New()
	s.Set(store.KeyBusinessProfile, &types.BusinessProfile{
		Industry:          industry,
		TargetAudience:    "Small business owners aged 25-45",
		BusinessGoals:     "Increase brand awareness and generate leads",
		CurrentChallenges: "Low engagement rates",
	})
	s.Set(store.KeyBrandProfile, &types.BrandProfile{
		Voice:      "Professional and authoritative",
		Tone:       "Encouraging and supportive",
		CoreValues: "Innovation, quality, customer-first",
	})
	s.Set(store.KeyPlatformSelection, &types.PlatformSelection{
		Platforms:  []string{types.PlatformInstagram, types.PlatformLinkedIn},
		Priorities: "Primary focus on Instagram",
	})
	s.Set(store.KeyStrategyFramework, &types.StrategyFramework{
		Themes:     []types.Theme{{Name: "Educational Content"}, {Name: "Behind-the-Scenes"}},
		ContentMix: map[string]int{"educational": 40, "promotional": 60},
	})

	posts := make([]types.DailyPost, 0, postCount)
	stats := types.CalendarStatistics{
		PlatformDistribution:    map[string]int{types.PlatformInstagram: postCount},
		ContentTypeDistribution: map[string]int{"Feed Post": postCount},
		TotalPosts:              postCount,
	}
	for day := 1; day <= postCount; day++ {
		posts = append(posts, types.DailyPost{
			Day:      day,
			DayName:  types.DayName(day),
			Platform: types.PlatformInstagram,
			PostType: "Feed Post",
			Title:    "Post title",
			Goal:     "Increase audience engagement",
		})
	}
	s.Set(store.KeyContentCalendar, &types.ContentCalendar{DailyPosts: posts, Statistics: stats})
	return s
}

func TestAssembleSummary_GateFailure(t *testing.T) {
	s := store.New()
	_, err := AssembleSummary(s)
	require.Error(t, err)

	var missingErr *store.MissingArtifactError
	require.True(t, errors.As(err, &missingErr))
	assert.Len(t, missingErr.MissingKeys, 5)
	assert.False(t, s.Has(store.KeyStrategySummary))
}

func TestAssembleSummary_RequiresSevenPosts(t *testing.T) {
	s := seedAll(t, "Technology", 5)
	_, err := AssembleSummary(s)

	var vErr *types.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.False(t, s.Has(store.KeyStrategySummary))
}

func TestAssembleSummary_Rollup(t *testing.T) {
	s := seedAll(t, "Technology", 7)
	built, err := AssembleSummary(s)
	require.NoError(t, err)

	assert.Equal(t, "Technology", built.ExecutiveSummary.BusinessOverview.Industry)
	assert.Equal(t, "Professional and authoritative", built.ExecutiveSummary.BrandIdentity.Voice)
	assert.Equal(t, []string{"Educational Content", "Behind-the-Scenes"}, built.StrategyOverview.PrimaryThemes)
	assert.Equal(t, 7, built.CalendarSummary.TotalPosts)

	monday := built.CalendarSummary.PostingSchedule["Monday"][types.PlatformInstagram]
	assert.Equal(t, "Post title", monday.Title)
	assert.Equal(t, "Feed Post", monday.Type)

	stored, ok := s.Get(store.KeyStrategySummary)
	require.True(t, ok)
	assert.Equal(t, built, stored)
}

func TestAssembleSummary_IndustryGuidance(t *testing.T) {
	tech, err := AssembleSummary(seedAll(t, "Technology", 7))
	require.NoError(t, err)
	require.Contains(t, tech.ImplementationGuidance.EngagementStrategies, "industry")
	assert.Contains(t, tech.ImplementationGuidance.EngagementStrategies["industry"][0], "thought leadership")

	health, err := AssembleSummary(seedAll(t, "Healthcare services", 7))
	require.NoError(t, err)
	assert.Contains(t, health.ImplementationGuidance.EngagementStrategies["industry"][0], "trust-building")

	other, err := AssembleSummary(seedAll(t, "Agriculture", 7))
	require.NoError(t, err)
	assert.NotContains(t, other.ImplementationGuidance.EngagementStrategies, "industry")
	assert.Contains(t, other.ImplementationGuidance.EngagementStrategies, "general")
}
