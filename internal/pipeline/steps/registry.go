// Package steps provides stage definitions and precondition validation for
// the content planning pipeline.
package steps

import (
	"fmt"

	"github.com/jonathan/content-planner/internal/archive"
	"github.com/jonathan/content-planner/internal/store"
)

// StageDefinition defines metadata for a pipeline stage.
type StageDefinition struct {
	Name     string
	Category string
	// Requires lists the run-scoped artifact keys the stage gate checks.
	Requires []string
	// PerDay marks stages invoked once per calendar day.
	PerDay bool
	// RequiresDayPost marks per-day stages that additionally gate on the
	// day's post artifact.
	RequiresDayPost bool
}

// Stage names, matching the StageName constants of each package.
const (
	StageStrategyBuilder          = "strategy_builder"
	StageContentTypeRecommender   = "content_type_recommender"
	StageDailyPostAssembler       = "daily_post_assembler"
	StageCalendarAssembler        = "calendar_assembler"
	StageHashtagRecommender       = "hashtag_recommender"
	StagePlatformHashtagOptimizer = "platform_hashtag_optimizer"
	StageVisualConceptRecommender = "visual_concept_recommender"
	StageSummaryAssembler         = "summary_assembler"
)

// StageRegistry holds all stage definitions keyed by stage name.
var StageRegistry = map[string]StageDefinition{
	StageStrategyBuilder: {
		Name:     StageStrategyBuilder,
		Category: archive.CategoryStrategy,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyPlatformSelection},
	},
	StageContentTypeRecommender: {
		Name:     StageContentTypeRecommender,
		Category: archive.CategoryContent,
		Requires: []string{store.KeyStrategyFramework},
	},
	StageDailyPostAssembler: {
		Name:     StageDailyPostAssembler,
		Category: archive.CategoryContent,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyStrategyFramework},
		PerDay:   true,
	},
	StageCalendarAssembler: {
		Name:     StageCalendarAssembler,
		Category: archive.CategoryContent,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyPlatformSelection, store.KeyStrategyFramework},
	},
	StageHashtagRecommender: {
		Name:     StageHashtagRecommender,
		Category: archive.CategoryHashtags,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile},
		PerDay:   true,
	},
	StagePlatformHashtagOptimizer: {
		Name:     StagePlatformHashtagOptimizer,
		Category: archive.CategoryHashtags,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile},
		PerDay:   true,
	},
	StageVisualConceptRecommender: {
		Name:            StageVisualConceptRecommender,
		Category:        archive.CategoryVisual,
		Requires:        []string{store.KeyBusinessProfile, store.KeyBrandProfile},
		PerDay:          true,
		RequiresDayPost: true,
	},
	StageSummaryAssembler: {
		Name:     StageSummaryAssembler,
		Category: archive.CategorySummary,
		Requires: []string{store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyPlatformSelection, store.KeyStrategyFramework, store.KeyContentCalendar},
	},
}

// Requirements expands a stage's required artifact keys for the given day.
// The day is ignored for run-scoped stages.
func Requirements(stageName string, day int) ([]string, error) {
	def, ok := StageRegistry[stageName]
	if !ok {
		return nil, fmt.Errorf("unknown stage: %s", stageName)
	}

	keys := make([]string, len(def.Requires))
	copy(keys, def.Requires)
	if def.RequiresDayPost {
		keys = append(keys, store.DayPostKey(day))
	}
	return keys, nil
}

// Validate checks a stage's gate against the store without running it.
// Returns the same MissingArtifactError the stage itself would return.
func Validate(s *store.ContextStore, stageName string, day int) error {
	keys, err := Requirements(stageName, day)
	if err != nil {
		return err
	}
	return s.Precondition(stageName, keys...)
}

// Available returns the names of stages whose gates currently pass, for
// operators inspecting a partially-built run.
func Available(s *store.ContextStore, day int) []string {
	var available []string
	for _, name := range stageOrder {
		if Validate(s, name, day) == nil {
			available = append(available, name)
		}
	}
	return available
}

// stageOrder fixes the iteration order for Available.
var stageOrder = []string{
	StageStrategyBuilder,
	StageContentTypeRecommender,
	StageDailyPostAssembler,
	StageCalendarAssembler,
	StageHashtagRecommender,
	StagePlatformHashtagOptimizer,
	StageVisualConceptRecommender,
	StageSummaryAssembler,
}
