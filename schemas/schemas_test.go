package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/calendar"
	"github.com/jonathan/content-planner/internal/contenttype"
	"github.com/jonathan/content-planner/internal/hashtag"
	"github.com/jonathan/content-planner/internal/intake"
	"github.com/jonathan/content-planner/internal/post"
	"github.com/jonathan/content-planner/internal/schemas"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/strategy"
	"github.com/jonathan/content-planner/internal/summary"
	"github.com/jonathan/content-planner/internal/types"
	"github.com/jonathan/content-planner/internal/visual"
)

var allSchemaFiles = []string{
	"business_profile.schema.json",
	"brand_profile.schema.json",
	"platform_selection.schema.json",
	"strategy_framework.schema.json",
	"content_type_recommendations.schema.json",
	"daily_post.schema.json",
	"content_calendar.schema.json",
	"hashtag_recommendation.schema.json",
	"visual_concept.schema.json",
	"strategy_summary.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range allSchemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range allSchemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare type, $schema, and properties")
		})
	}
}

// validateAgainst marshals an artifact and validates it against the named
// schema file in this directory.
func validateAgainst(t *testing.T, schemaFile string, artifact any) {
	t.Helper()

	schemaData, err := os.ReadFile(filepath.Join(".", schemaFile))
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(artifact)
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), string(jsonBytes))
	assert.NoError(t, err, "artifact should satisfy %s", schemaFile)
}

// TestArtifacts_SatisfySchemas runs the real stages end to end and checks
// that every exchanged record marshals to JSON its schema accepts.
func TestArtifacts_SatisfySchemas(t *testing.T) {
	s := store.New()

	business, err := intake.CollectBusinessProfile(s, types.BusinessProfile{
		Industry:          "Technology",
		TargetAudience:    "Small business owners aged 25-45",
		BusinessGoals:     "Increase brand awareness and generate leads",
		CurrentChallenges: "Low engagement rates and inconsistent posting",
	})
	require.NoError(t, err)
	validateAgainst(t, "business_profile.schema.json", business)

	brand, err := intake.CollectBrandProfile(s, types.BrandProfile{
		Voice:                 "Professional and authoritative",
		Tone:                  "Encouraging and supportive",
		CoreValues:            "Innovation, quality, customer-first",
		PersonalityAdjectives: "Expert, approachable, reliable",
	})
	require.NoError(t, err)
	validateAgainst(t, "brand_profile.schema.json", brand)

	selection, err := intake.SelectPlatforms(s, types.PlatformSelection{
		Platforms:  []string{types.PlatformInstagram, types.PlatformLinkedIn},
		Priorities: "Primary focus on Instagram",
	})
	require.NoError(t, err)
	validateAgainst(t, "platform_selection.schema.json", selection)

	framework, err := strategy.BuildFramework(s)
	require.NoError(t, err)
	validateAgainst(t, "strategy_framework.schema.json", framework)

	recs, err := contenttype.Recommend(s, business.Industry, business.TargetAudience, types.PlatformInstagram, 1)
	require.NoError(t, err)
	validateAgainst(t, "content_type_recommendations.schema.json", recs)

	picker := post.NewSeededPicker(42)
	for day := 1; day <= 7; day++ {
		platform := types.PlatformInstagram
		if day%2 == 0 {
			platform = types.PlatformLinkedIn
		}
		plan := framework.WeeklyStructure[types.DayName(day)]
		built, err := post.AssembleDailyPost(s, picker, post.Request{
			Day:          day,
			ContentTheme: plan.PrimaryTheme,
			PostType:     "Image Post",
			Platform:     platform,
		})
		require.NoError(t, err)
		validateAgainst(t, "daily_post.schema.json", built)
	}

	cal, err := calendar.AssembleCalendar(s)
	require.NoError(t, err)
	validateAgainst(t, "content_calendar.schema.json", cal)

	dayOneVal, ok := s.Get(store.DayPostKey(1))
	require.True(t, ok)
	dayOne := dayOneVal.(*types.DailyPost)

	rec, err := hashtag.Recommend(s, dayOne, []string{"#acme"})
	require.NoError(t, err)
	validateAgainst(t, "hashtag_recommendation.schema.json", rec)

	optimized, err := hashtag.Optimize(s, rec, dayOne.PostType)
	require.NoError(t, err)
	validateAgainst(t, "hashtag_recommendation.schema.json", optimized)

	concept, err := visual.RecommendConcept(s, 1)
	require.NoError(t, err)
	validateAgainst(t, "visual_concept.schema.json", concept)

	rollup, err := summary.AssembleSummary(s)
	require.NoError(t, err)
	validateAgainst(t, "strategy_summary.schema.json", rollup)
}
