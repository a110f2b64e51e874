// Package strategy derives the StrategyFramework from the three input
// profiles using fixed, auditable rule tables.
package strategy

import "github.com/jonathan/content-planner/internal/types"

// keywordRule maps a set of trigger words to a category tag. Rules are
// evaluated in order; multiple rules may match the same text.
type keywordRule struct {
	category string
	words    []string
}

// goalRules classifies business goals text into content priorities.
var goalRules = []keywordRule{
	{category: "brand_awareness", words: []string{"awareness", "visibility", "brand"}},
	{category: "lead_generation", words: []string{"lead", "generate", "prospect"}},
	{category: "engagement", words: []string{"engagement", "community", "interaction"}},
	{category: "conversion", words: []string{"sales", "conversion", "revenue"}},
}

// challengeRules classifies current challenges text into content solutions.
var challengeRules = []keywordRule{
	{category: "interactive_content", words: []string{"engagement", "interaction", "response"}},
	{category: "audience_focused_content", words: []string{"audience", "reach", "visibility"}},
	{category: "diverse_content_types", words: []string{"content", "ideas", "creativity"}},
}

// universalThemes apply to every industry and goal set.
var universalThemes = []types.Theme{
	{
		Name:        "Educational Content",
		Description: "Share industry insights, tips, and knowledge to establish authority",
		Alignment:   "Works for all industries and goals",
	},
	{
		Name:        "Behind-the-Scenes",
		Description: "Show company culture, processes, and team to build trust",
		Alignment:   "Great for brand awareness and engagement",
	},
	{
		Name:        "Problem-Solution",
		Description: "Address customer pain points and showcase solutions",
		Alignment:   "Perfect for lead generation and conversion",
	},
}

// industryThemes are matched by substring against the lowercased industry
// name. At most one industry theme is added; no match means none.
var industryThemes = map[string]types.Theme{
	"technology": {
		Name:        "Innovation & Trends",
		Description: "Share latest tech trends and innovations",
		Alignment:   "Establishes thought leadership",
	},
	"healthcare": {
		Name:        "Health & Wellness",
		Description: "Educational health content and wellness tips",
		Alignment:   "Builds trust and authority",
	},
	"e-commerce": {
		Name:        "Product Showcase",
		Description: "Highlight products and customer success stories",
		Alignment:   "Drives sales and engagement",
	},
}

// maxThemes caps the theme list.
const maxThemes = 4

// basePostTypes lists the post types available per platform before brand
// voice adjustments.
var basePostTypes = map[string][]string{
	types.PlatformFacebook:  {"Image Post", "Video", "Link Share", "Text Post", "Carousel"},
	types.PlatformInstagram: {"Feed Post", "Story", "Reel", "IGTV", "Carousel", "Live"},
	types.PlatformLinkedIn:  {"Article", "Image Post", "Video", "Text Post", "Poll", "Document Share"},
}

// casualPostTypes are removed when the brand voice reads professional or formal.
var casualPostTypes = map[string]bool{
	"Story": true,
	"Reel":  true,
	"Live":  true,
}

// focusAreas are assigned to weekdays cyclically.
var focusAreas = []string{"engagement", "education", "brand_awareness"}

// contentMix is a fixed percentage table. It is deliberately
// industry-agnostic; the values must sum to 100.
var contentMix = map[string]int{
	"educational":    40,
	"promotional":    20,
	"behind_scenes":  20,
	"user_generated": 10,
	"trending":       10,
}

// baseMetrics are always reported; metricRules add conditional metrics
// triggered by keywords in the goals text.
var baseMetrics = []string{"engagement_rate", "reach", "impressions"}

var metricRules = []keywordRule{
	{category: "lead_generation", words: []string{"lead"}},
	{category: "conversion_rate", words: []string{"sales", "conversion"}},
	{category: "brand_mention_increase", words: []string{"awareness"}},
}
