package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStore_GetSet(t *testing.T) {
	s := New()

	_, ok := s.Get(KeyBusinessProfile)
	assert.False(t, ok)

	s.Set(KeyBusinessProfile, "profile")
	v, ok := s.Get(KeyBusinessProfile)
	require.True(t, ok)
	assert.Equal(t, "profile", v)
}

func TestContextStore_SetOverwrites(t *testing.T) {
	s := New()
	s.Set(KeyStrategyFramework, 1)
	s.Set(KeyStrategyFramework, 2)

	v, ok := s.Get(KeyStrategyFramework)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestPrecondition_AllPresent(t *testing.T) {
	s := New()
	s.Set(KeyBusinessProfile, struct{}{})
	s.Set(KeyBrandProfile, struct{}{})

	err := s.Precondition("strategy_builder", KeyBusinessProfile, KeyBrandProfile)
	assert.NoError(t, err)
}

func TestPrecondition_ListsEveryMissingKey(t *testing.T) {
	s := New()
	s.Set(KeyBrandProfile, struct{}{})

	err := s.Precondition("strategy_builder",
		KeyBusinessProfile, KeyBrandProfile, KeyPlatformSelection)
	require.Error(t, err)

	var missingErr *MissingArtifactError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "strategy_builder", missingErr.Stage)
	assert.Equal(t, []string{KeyBusinessProfile, KeyPlatformSelection}, missingErr.MissingKeys)
}

func TestDayScopedKeys(t *testing.T) {
	assert.Equal(t, "day_1_post", DayPostKey(1))
	assert.Equal(t, "day_7_post", DayPostKey(7))
	assert.Equal(t, "hashtag_recommendations_day_3", HashtagKey(3))
	assert.Equal(t, "visual_concept_day_5", VisualKey(5))
}
