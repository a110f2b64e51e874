package hashtag

import (
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

// industryKeys is the fixed lookup order for industry pool matching.
var industryKeys = []string{"technology", "healthcare", "e-commerce", "finance", "education"}

// windows are the per-platform [min,max] hashtag count limits.
var windows = map[string]types.HashtagWindow{
	types.PlatformFacebook:  {Min: 1, Max: 3},
	types.PlatformInstagram: {Min: 5, Max: 15},
	types.PlatformLinkedIn:  {Min: 3, Max: 5},
}

// Window returns the hashtag count window for a platform. Unknown platforms
// get the Facebook window, the most conservative one.
func Window(platform string) types.HashtagWindow {
	if w, ok := windows[platform]; ok {
		return w
	}
	return windows[types.PlatformFacebook]
}

// Final set quota percentages by candidate category.
const (
	popularQuotaPct = 30
	nicheQuotaPct   = 50
	brandedQuotaPct = 10
	contentQuotaPct = 10
)

// generalTrending are high-reach tags that fit any business.
var generalTrending = []string{"#business", "#marketing", "#entrepreneur", "#growth", "#success"}

// industryTrending are the trending tags per industry category.
var industryTrending = map[string][]string{
	"technology": {"#tech", "#innovation", "#digital", "#software"},
	"healthcare": {"#healthcare", "#health", "#wellness", "#medical"},
	"e-commerce": {"#ecommerce", "#retail", "#online", "#shopping"},
}

var defaultIndustryTrending = []string{"#business", "#professional", "#industry"}

// industryPool holds tiered industry hashtags; the niche tier feeds the
// niche quota.
type industryPool struct {
	primary   []string
	secondary []string
	niche     []string
}

var industryPools = map[string]industryPool{
	"technology": {
		primary:   []string{"#tech", "#technology", "#innovation", "#digital", "#software"},
		secondary: []string{"#startup", "#SaaS", "#AI", "#automation", "#cloud"},
		niche:     []string{"#techtrends", "#digitaltransformation", "#techinnovation", "#softwaredevelopment"},
	},
	"healthcare": {
		primary:   []string{"#healthcare", "#health", "#medical", "#wellness", "#medicine"},
		secondary: []string{"#patientcare", "#healthtech", "#medicalinnovation", "#fitness"},
		niche:     []string{"#healthcareinnovation", "#digitalhealth", "#telemedicine", "#healthtech"},
	},
	"e-commerce": {
		primary:   []string{"#ecommerce", "#retail", "#online", "#shopping", "#business"},
		secondary: []string{"#onlinestore", "#digitalcommerce", "#retailtech", "#customerservice"},
		niche:     []string{"#ecommercegrowth", "#onlineretail", "#digitalretail", "#ecommercetips"},
	},
	"finance": {
		primary:   []string{"#finance", "#fintech", "#banking", "#investment", "#money"},
		secondary: []string{"#financialplanning", "#wealthmanagement", "#fintechinnovation", "#bankingtech"},
		niche:     []string{"#financialfreedom", "#investing", "#personalfinance", "#fintech"},
	},
	"education": {
		primary:   []string{"#education", "#learning", "#teaching", "#training", "#knowledge"},
		secondary: []string{"#edtech", "#onlinelearning", "#professionaldevelopment", "#skills"},
		niche:     []string{"#educationinnovation", "#digitallearning", "#skilldevelopment", "#lifelonglearning"},
	},
}

var defaultIndustryPool = industryPool{
	primary:   []string{"#business", "#professional", "#industry", "#growth", "#success"},
	secondary: []string{"#entrepreneur", "#leadership", "#strategy", "#innovation", "#marketing"},
	niche:     []string{"#businessgrowth", "#professionaldevelopment", "#industryinsights", "#businessstrategy"},
}

// audiencePools are tiered tags per audience classification.
var audiencePools = map[string]industryPool{
	"professional": {
		primary:   []string{"#professional", "#career", "#leadership", "#business", "#networking"},
		secondary: []string{"#professionaldevelopment", "#careergrowth", "#businessnetworking"},
		niche:     []string{"#executivecoaching", "#businessstrategy", "#professionalgrowth", "#careeradvancement"},
	},
	"entrepreneur": {
		primary:   []string{"#entrepreneur", "#startup", "#businessowner", "#smallbusiness", "#hustle"},
		secondary: []string{"#entrepreneurlife", "#startuplife", "#businessgrowth", "#entrepreneurmindset"},
		niche:     []string{"#startupjourney", "#entrepreneurial", "#businessbuilding", "#startupgrowth"},
	},
	"student": {
		primary:   []string{"#student", "#learning", "#education", "#study", "#knowledge"},
		secondary: []string{"#studentlife", "#academic", "#studytips"},
		niche:     []string{"#studymotivation", "#academiclife", "#learningjourney", "#education"},
	},
	"general": {
		primary:   []string{"#business", "#growth", "#success", "#motivation", "#inspiration"},
		secondary: []string{"#businessgrowth", "#personalgrowth", "#successmindset"},
		niche:     []string{"#businessinsights", "#growthmindset", "#successstory", "#motivation"},
	},
}

// platformTrending are trending tags per platform.
var platformTrending = map[string][]string{
	types.PlatformFacebook:  {"#business", "#community"},
	types.PlatformInstagram: {"#business", "#entrepreneur", "#marketing"},
	types.PlatformLinkedIn:  {"#business", "#professional", "#career"},
}

// inappropriateKeywords are substrings that disqualify a tag on a platform.
var inappropriateKeywords = map[string][]string{
	types.PlatformFacebook:  {"casual", "personal", "trending", "viral"},
	types.PlatformInstagram: {"spam", "fake", "irrelevant"},
	types.PlatformLinkedIn:  {"casual", "personal", "fun", "entertainment", "lifestyle"},
}

// platformRankCriteria boost tags containing platform-flavored substrings
// during the optimizer re-rank.
var platformRankCriteria = map[string][]string{
	types.PlatformFacebook:  {"community", "local", "discussion", "engagement"},
	types.PlatformInstagram: {"visual", "trending", "lifestyle", "creative"},
	types.PlatformLinkedIn:  {"professional", "career", "industry", "networking"},
}

// backfillByIndustry feeds the minimum-count backfill before the general
// list is used.
var backfillByIndustry = map[string][]string{
	"technology": {"#tech", "#innovation", "#digital"},
	"healthcare": {"#health", "#wellness", "#medical"},
	"finance":    {"#finance", "#investment", "#money"},
	"education":  {"#education", "#learning", "#knowledge"},
	"e-commerce": {"#ecommerce", "#retail", "#online"},
}

var generalBackfill = []string{"#business", "#professional", "#growth", "#success", "#marketing"}

// contentTypeWindows adjust the count window per post type, expressed as
// "min-max" strings.
var contentTypeWindows = map[string]map[string]string{
	types.PlatformFacebook: {
		"Image Post": "1-2",
		"Video":      "2-3",
		"Link Share": "1-2",
	},
	types.PlatformInstagram: {
		"Feed Post": "10-15",
		"Story":     "1-3",
		"Reel":      "8-12",
		"IGTV":      "5-10",
	},
	types.PlatformLinkedIn: {
		"Article":    "3-5",
		"Image Post": "3-4",
		"Video":      "4-5",
		"Text Post":  "3-5",
	},
}

// bestPractices are the per-platform practices checked by the compliance
// report; at least 70% must hold.
var bestPractices = map[string][]string{
	types.PlatformFacebook: {
		"Use sparingly to avoid appearing spammy",
		"Focus on community and local hashtags",
		"Use relevant hashtags",
	},
	types.PlatformInstagram: {
		"Mix popular and niche hashtags",
		"Use relevant hashtags",
		"Include branded hashtags",
	},
	types.PlatformLinkedIn: {
		"Focus on professional and industry hashtags",
		"Use relevant hashtags",
		"Use sparingly to avoid appearing spammy",
	},
}

// professionalKeywords and casualKeywords drive the appropriateness balance
// check.
var professionalKeywords = []string{"business", "professional", "career", "industry", "leadership"}
var casualKeywords = []string{"fun", "party", "casual", "personal", "lifestyle"}

// industryCategory resolves free-text industry to a pool key by substring
// match in fixed order.
func industryCategory(industry string) (string, bool) {
	lowered := strings.ToLower(industry)
	for _, key := range industryKeys {
		if strings.Contains(lowered, key) {
			return key, true
		}
	}
	return "", false
}

// audienceCategory classifies the audience description into a pool key.
func audienceCategory(audience string) string {
	lowered := strings.ToLower(audience)
	switch {
	case strings.Contains(lowered, "professional"), strings.Contains(lowered, "business"), strings.Contains(lowered, "executive"):
		return "professional"
	case strings.Contains(lowered, "entrepreneur"), strings.Contains(lowered, "startup"):
		return "entrepreneur"
	case strings.Contains(lowered, "student"), strings.Contains(lowered, "learner"), strings.Contains(lowered, "education"):
		return "student"
	default:
		return "general"
	}
}
