package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/archive"
	"github.com/jonathan/content-planner/internal/store"
)

func TestStageRegistry(t *testing.T) {
	expectedStages := []string{
		StageStrategyBuilder, StageContentTypeRecommender,
		StageDailyPostAssembler, StageCalendarAssembler,
		StageHashtagRecommender, StagePlatformHashtagOptimizer,
		StageVisualConceptRecommender, StageSummaryAssembler,
	}

	for _, stageName := range expectedStages {
		def, ok := StageRegistry[stageName]
		require.True(t, ok, "Stage %s should be in registry", stageName)
		assert.Equal(t, stageName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
	assert.Len(t, StageRegistry, len(expectedStages))
}

func TestStageRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		archive.CategoryStrategy: {StageStrategyBuilder},
		archive.CategoryContent:  {StageContentTypeRecommender, StageDailyPostAssembler, StageCalendarAssembler},
		archive.CategoryHashtags: {StageHashtagRecommender, StagePlatformHashtagOptimizer},
		archive.CategoryVisual:   {StageVisualConceptRecommender},
		archive.CategorySummary:  {StageSummaryAssembler},
	}

	for category, stageNames := range categories {
		for _, stageName := range stageNames {
			def, ok := StageRegistry[stageName]
			require.True(t, ok)
			assert.Equal(t, category, def.Category, "Stage %s should be in category %s", stageName, category)
		}
	}
}

func TestRequirements_DayScoped(t *testing.T) {
	keys, err := Requirements(StageVisualConceptRecommender, 4)
	require.NoError(t, err)
	assert.Contains(t, keys, store.KeyBusinessProfile)
	assert.Contains(t, keys, store.KeyBrandProfile)
	assert.Contains(t, keys, store.DayPostKey(4))
}

func TestRequirements_UnknownStage(t *testing.T) {
	_, err := Requirements("publish_posts", 1)
	assert.Error(t, err)
}

func TestValidate_ReportsAllMissingKeys(t *testing.T) {
	s := store.New()

	err := Validate(s, StageSummaryAssembler, 0)
	require.Error(t, err)

	var missingErr *store.MissingArtifactError
	require.True(t, errors.As(err, &missingErr))
	assert.Len(t, missingErr.MissingKeys, 5)
}

func TestAvailable(t *testing.T) {
	s := store.New()
	assert.Empty(t, Available(s, 1))

	s.Set(store.KeyBusinessProfile, struct{}{})
	s.Set(store.KeyBrandProfile, struct{}{})
	s.Set(store.KeyPlatformSelection, struct{}{})

	available := Available(s, 1)
	assert.Contains(t, available, StageStrategyBuilder)
	assert.Contains(t, available, StageHashtagRecommender)
	assert.NotContains(t, available, StageCalendarAssembler)
	assert.NotContains(t, available, StageSummaryAssembler)
}
