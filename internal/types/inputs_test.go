package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessProfile_Validate(t *testing.T) {
	profile := &BusinessProfile{
		Industry:          "Technology",
		TargetAudience:    "Small business owners aged 25-45",
		BusinessGoals:     "Increase brand awareness and generate leads",
		CurrentChallenges: "Low engagement rates",
	}
	assert.NoError(t, profile.Validate())
}

func TestBusinessProfile_Validate_MissingField(t *testing.T) {
	profile := &BusinessProfile{
		Industry:       "Technology",
		TargetAudience: "Small business owners",
	}
	assert.Error(t, profile.Validate())
}

func TestBrandProfile_Validate(t *testing.T) {
	profile := &BrandProfile{
		Voice:                 "Professional and authoritative",
		Tone:                  "Encouraging and supportive",
		CoreValues:            "Innovation, quality, customer-first",
		PersonalityAdjectives: "trustworthy, innovative, reliable",
	}
	assert.NoError(t, profile.Validate())

	profile.Voice = ""
	assert.Error(t, profile.Validate())
}

func TestPlatformSelection_Validate(t *testing.T) {
	sel := &PlatformSelection{
		Platforms:  []string{PlatformInstagram, PlatformLinkedIn},
		Priorities: "Primary focus on Instagram, secondary on LinkedIn",
	}
	assert.NoError(t, sel.Validate())
}

func TestPlatformSelection_Validate_RejectsUnknownPlatform(t *testing.T) {
	sel := &PlatformSelection{
		Platforms: []string{"TikTok"},
	}
	assert.Error(t, sel.Validate())
}

func TestPlatformSelection_Validate_RejectsEmptySet(t *testing.T) {
	sel := &PlatformSelection{Platforms: []string{}}
	assert.Error(t, sel.Validate())
}

func TestPlatformSelection_Contains(t *testing.T) {
	sel := &PlatformSelection{Platforms: []string{PlatformFacebook}}
	assert.True(t, sel.Contains(PlatformFacebook))
	assert.False(t, sel.Contains(PlatformLinkedIn))
}

func TestIsValidPlatform(t *testing.T) {
	for _, p := range ValidPlatforms {
		assert.True(t, IsValidPlatform(p))
	}
	assert.False(t, IsValidPlatform("Twitter"))
	assert.False(t, IsValidPlatform(""))
}

func TestDayName_MondayStartSequence(t *testing.T) {
	expected := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for day := 1; day <= 7; day++ {
		assert.Equal(t, expected[day-1], DayName(day))
	}
}

func TestDayName_OutOfRange(t *testing.T) {
	assert.Equal(t, "", DayName(0))
	assert.Equal(t, "", DayName(8))
	assert.Equal(t, "", DayName(-1))
}

func TestDailyPost_IsPlaceholder(t *testing.T) {
	post := &DailyPost{ContentTheme: PlaceholderTheme}
	assert.True(t, post.IsPlaceholder())

	post.ContentTheme = "Educational Content"
	assert.False(t, post.IsPlaceholder())
}

func TestResult_Envelopes(t *testing.T) {
	ok := SuccessResult("done", map[string]int{"posts": 7})
	assert.Equal(t, StatusSuccess, ok.Status)
	assert.NotNil(t, ok.Data)

	failed := ErrorResult(&ValidationError{Field: "day", Message: "day out of range"})
	require.Equal(t, StatusError, failed.Status)
	assert.Contains(t, failed.Message, "day out of range")
	assert.Nil(t, failed.Data)
}
