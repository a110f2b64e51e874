package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

func validBusiness() types.BusinessProfile {
	return types.BusinessProfile{
		Industry:          "Technology",
		TargetAudience:    "Small business owners aged 25-45",
		BusinessGoals:     "Increase brand awareness and generate leads",
		CurrentChallenges: "Low engagement rates and difficulty reaching target audience",
	}
}

func TestCollectBusinessProfile_TrimsAndStores(t *testing.T) {
	s := store.New()
	in := validBusiness()
	in.Industry = "  Technology  "

	profile, err := CollectBusinessProfile(s, in)
	require.NoError(t, err)
	assert.Equal(t, "Technology", profile.Industry)
	assert.False(t, profile.CreatedAt.IsZero())

	stored, ok := s.Get(store.KeyBusinessProfile)
	require.True(t, ok)
	assert.Equal(t, profile, stored)
}

func TestCollectBusinessProfile_EmptyAfterTrim_NoWrite(t *testing.T) {
	s := store.New()
	in := validBusiness()
	in.BusinessGoals = "   "

	_, err := CollectBusinessProfile(s, in)
	require.Error(t, err)

	var vErr *types.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.False(t, s.Has(store.KeyBusinessProfile), "failed intake must not write an artifact")
}

func TestCollectBrandProfile_Valid(t *testing.T) {
	s := store.New()
	profile, err := CollectBrandProfile(s, types.BrandProfile{
		Voice:                 "Professional and authoritative",
		Tone:                  "Encouraging and supportive",
		CoreValues:            "Innovation, quality, customer-first",
		PersonalityAdjectives: "trustworthy, innovative, reliable",
	})
	require.NoError(t, err)
	assert.True(t, s.Has(store.KeyBrandProfile))
	assert.Equal(t, "Professional and authoritative", profile.Voice)
}

func TestCollectBrandProfile_MissingTone(t *testing.T) {
	s := store.New()
	_, err := CollectBrandProfile(s, types.BrandProfile{
		Voice:                 "Friendly",
		CoreValues:            "Trust",
		PersonalityAdjectives: "warm",
	})
	require.Error(t, err)
	assert.False(t, s.Has(store.KeyBrandProfile))
}

func TestSelectPlatforms_Valid(t *testing.T) {
	s := store.New()
	sel, err := SelectPlatforms(s, types.PlatformSelection{
		Platforms:  []string{"Instagram", "LinkedIn"},
		Priorities: "Primary focus on Instagram, secondary on LinkedIn",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Instagram", "LinkedIn"}, sel.Platforms)
	assert.True(t, s.Has(store.KeyPlatformSelection))
}

func TestSelectPlatforms_DefaultPriorities(t *testing.T) {
	s := store.New()
	sel, err := SelectPlatforms(s, types.PlatformSelection{Platforms: []string{"Facebook"}})
	require.NoError(t, err)
	assert.Equal(t, "Equal focus on all selected platforms", sel.Priorities)
}

func TestSelectPlatforms_DeduplicatesEntries(t *testing.T) {
	s := store.New()
	sel, err := SelectPlatforms(s, types.PlatformSelection{
		Platforms: []string{"Instagram", " Instagram ", "LinkedIn", "Instagram"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Instagram", "LinkedIn"}, sel.Platforms)
}

func TestSelectPlatforms_RejectsUnknownPlatform(t *testing.T) {
	s := store.New()
	_, err := SelectPlatforms(s, types.PlatformSelection{Platforms: []string{"TikTok"}})
	require.Error(t, err)

	var vErr *types.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "TikTok")
	assert.False(t, s.Has(store.KeyPlatformSelection))
}

func TestSelectPlatforms_RejectsEmptySet(t *testing.T) {
	s := store.New()
	_, err := SelectPlatforms(s, types.PlatformSelection{Platforms: nil})
	require.Error(t, err)
	assert.False(t, s.Has(store.KeyPlatformSelection))
}
