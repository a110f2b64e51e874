package visual

import (
	"strings"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the visual concept stage at the gate.
const StageName = "visual_concept_recommender"

// AnalyzeBrandVisual classifies the brand's voice and tone into a visual
// personality and mood, and translates matched core values into visual
// guidance. Pure lookup, no store access.
func AnalyzeBrandVisual(brand *types.BrandProfile, industry string) types.BrandVisualProfile {
	return types.BrandVisualProfile{
		VisualPersonality: classifyPersonality(brand.Voice),
		Mood:              classifyMood(brand.Tone),
		ValueTranslations: translateValues(brand.CoreValues),
		IndustryStyle:     industryStyle(industry),
	}
}

// RecommendConcept builds the design concept for one post from the stored
// profiles and the post's day artifact, and writes it under the day-scoped
// visual key.
func RecommendConcept(s *store.ContextStore, day int) (*types.VisualConcept, error) {
	if err := s.Precondition(StageName,
		store.KeyBusinessProfile, store.KeyBrandProfile, store.DayPostKey(day)); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	brandVal, _ := s.Get(store.KeyBrandProfile)
	postVal, _ := s.Get(store.DayPostKey(day))

	business := businessVal.(*types.BusinessProfile)
	brand := brandVal.(*types.BrandProfile)
	post := postVal.(*types.DailyPost)

	profile := AnalyzeBrandVisual(brand, business.Industry)
	design := lookupThemeDesign(post.ContentTheme)

	concept := &types.VisualConcept{
		Day:                 post.Day,
		Title:               post.Title,
		ContentTheme:        post.ContentTheme,
		Platform:            post.Platform,
		ContentType:         post.PostType,
		PlatformSpec:        platformSpec(post.Platform, post.PostType),
		DesignApproach:      design.approach,
		KeyElements:         design.keyElements,
		Composition:         design.composition,
		ContentTypeGuidance: lookupContentTypeGuidance(post.PostType),
		VisualPersonality:   profile.VisualPersonality,
		Mood:                profile.Mood,
	}

	s.Set(store.VisualKey(day), concept)
	return concept, nil
}

func classifyPersonality(voice string) string {
	lowered := strings.ToLower(voice)
	for _, rule := range personalityRules {
		for _, word := range rule.words {
			if strings.Contains(lowered, word) {
				return rule.personality
			}
		}
	}
	return PersonalityBalancedVersatile
}

func classifyMood(tone string) string {
	lowered := strings.ToLower(tone)
	for _, rule := range moodRules {
		for _, word := range rule.words {
			if strings.Contains(lowered, word) {
				return rule.mood
			}
		}
	}
	return defaultMood
}

// translateValues returns guidance for every core value that matches a
// known translation, or the general row when nothing matches.
func translateValues(coreValues string) map[string]types.ValueTranslation {
	lowered := strings.ToLower(coreValues)
	matched := make(map[string]types.ValueTranslation)
	for value, translation := range valueTranslations {
		if strings.Contains(lowered, value) {
			matched[value] = translation
		}
	}
	if len(matched) == 0 {
		matched["general"] = generalValueTranslation
	}
	return matched
}

func industryStyle(industry string) types.IndustryVisualStyle {
	lowered := strings.ToLower(industry)
	for _, key := range industryStyleKeys {
		if strings.Contains(lowered, key) {
			return industryStyles[key]
		}
	}
	return defaultIndustryStyle
}

// platformSpec returns the platform constraints, with vertical dimensions
// for full-screen post types.
func platformSpec(platform, postType string) types.PlatformDesignSpec {
	spec, ok := platformSpecs[platform]
	if !ok {
		spec = platformSpecs[types.PlatformFacebook]
	}
	if verticalPostTypes[postType] {
		spec.Dimensions = verticalDimensions
	}
	return spec
}

func lookupThemeDesign(theme string) themeDesign {
	if design, ok := themeDesigns[theme]; ok {
		return design
	}
	return themeDesigns[themeDesignFallback]
}

func lookupContentTypeGuidance(postType string) []string {
	key := strings.ToLower(postType)
	if guidance, ok := contentTypeGuidance[key]; ok {
		return guidance
	}
	return contentTypeGuidance[contentTypeFallback]
}
