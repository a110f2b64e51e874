package hashtag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

func seedProfiles(t *testing.T) *store.ContextStore {
	t.Helper()
	s := store.New()
	s.Set(store.KeyBusinessProfile, &types.BusinessProfile{
		Industry:       "Technology",
		TargetAudience: "Small business owners aged 25-45",
		BusinessGoals:  "Increase brand awareness and generate leads",
	})
	s.Set(store.KeyBrandProfile, &types.BrandProfile{
		Voice: "Professional and authoritative",
		Tone:  "Encouraging and supportive",
	})
	return s
}

func samplePost(day int, platform string) *types.DailyPost {
	return &types.DailyPost{
		Day:          day,
		DayName:      types.DayName(day),
		Platform:     platform,
		Goal:         "Educate audience about industry topics",
		PostType:     "Feed Post",
		Title:        "How to Optimize Your Social Media Strategy",
		Caption:      "Learn the best practices for social media optimization",
		ContentTheme: "Educational Content",
	}
}

func TestExtractKeywords(t *testing.T) {
	keywords := ExtractKeywords(
		"How to Optimize Your Social Media Strategy",
		"Learn the best practices for social media optimization",
	)

	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 15)
	// "social" and "media" occur twice each and must lead.
	assert.Equal(t, "social", keywords[0])
	assert.Equal(t, "media", keywords[1])
	assert.NotContains(t, keywords, "the", "stop words are dropped")
	assert.NotContains(t, keywords, "how", "words of three letters or fewer are dropped")
	assert.Contains(t, keywords, "practices")
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords("", "to the and"))
}

func TestRecommend_GateFailure(t *testing.T) {
	s := store.New()
	_, err := Recommend(s, samplePost(1, types.PlatformInstagram), nil)
	require.Error(t, err)

	var missingErr *store.MissingArtifactError
	require.True(t, errors.As(err, &missingErr))
	assert.Len(t, missingErr.MissingKeys, 2)
}

func TestRecommend_FinalSetWithinWindowNoDuplicates(t *testing.T) {
	for _, platform := range types.ValidPlatforms {
		s := seedProfiles(t)
		rec, err := Recommend(s, samplePost(2, platform), []string{"#MyBrand", "#BrandStrategy"})
		require.NoError(t, err, platform)

		window := Window(platform)
		assert.GreaterOrEqual(t, len(rec.FinalSet), window.Min, platform)
		assert.LessOrEqual(t, len(rec.FinalSet), window.Max, platform)

		seen := make(map[string]bool)
		for _, c := range rec.FinalSet {
			key := strings.ToLower(c.Tag)
			assert.False(t, seen[key], "duplicate tag %s on %s", c.Tag, platform)
			seen[key] = true
			assert.True(t, strings.HasPrefix(c.Tag, "#"))
		}

		stored, ok := s.Get(store.HashtagKey(2))
		require.True(t, ok)
		assert.Equal(t, rec, stored)
	}
}

func TestRecommend_EmptyKeywordsFallsBackToPools(t *testing.T) {
	s := seedProfiles(t)
	post := &types.DailyPost{
		Day:      4,
		Platform: types.PlatformInstagram,
		PostType: "Feed Post",
	}

	rec, err := Recommend(s, post, nil)
	require.NoError(t, err)
	assert.Empty(t, rec.ContentKeywords)
	assert.GreaterOrEqual(t, len(rec.FinalSet), Window(types.PlatformInstagram).Min)

	for _, c := range rec.FinalSet {
		assert.NotEqual(t, types.SourceContent, c.SourceCategory,
			"no content-derived tags without keywords")
	}
}

func TestRecommend_RanksByKeywordOverlap(t *testing.T) {
	s := seedProfiles(t)
	rec, err := Recommend(s, samplePost(1, types.PlatformInstagram), nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rec.FinalSet), 2)

	for i := 1; i < len(rec.FinalSet); i++ {
		assert.GreaterOrEqual(t, rec.FinalSet[i-1].RelevanceScore, rec.FinalSet[i].RelevanceScore,
			"final set must be ranked descending")
	}
}

func TestGatherCandidates_QuotasAreUpperBounds(t *testing.T) {
	business := &types.BusinessProfile{
		Industry:       "Technology",
		TargetAudience: "Small business owners aged 25-45",
	}
	keywords := []string{"social", "media", "strategy", "optimization"}
	branded := []string{"#One", "#Two", "#Three"}

	maxCount := Window(types.PlatformInstagram).Max
	candidates := gatherCandidates(business, types.PlatformInstagram, keywords, branded, maxCount)

	counts := make(map[string]int)
	for _, c := range candidates {
		counts[c.SourceCategory]++
	}

	// Trending and platform pools share the popular budget; industry and
	// audience pools share the niche budget.
	assert.LessOrEqual(t, counts[types.SourceTrending]+counts[types.SourcePlatform], quota(maxCount, popularQuotaPct))
	assert.LessOrEqual(t, counts[types.SourceIndustry]+counts[types.SourceAudience], quota(maxCount, nicheQuotaPct))
	assert.LessOrEqual(t, counts[types.SourceBranded], 2)
	assert.LessOrEqual(t, counts[types.SourceContent], quota(maxCount, contentQuotaPct))
}

func TestRecommend_BrandedCapAtTwo(t *testing.T) {
	s := seedProfiles(t)
	rec, err := Recommend(s, samplePost(3, types.PlatformInstagram),
		[]string{"#One", "#Two", "#Three", "#Four"})
	require.NoError(t, err)

	branded := 0
	for _, c := range rec.FinalSet {
		if c.SourceCategory == types.SourceBranded {
			branded++
		}
	}
	assert.LessOrEqual(t, branded, 2)
}
