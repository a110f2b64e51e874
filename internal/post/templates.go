package post

import (
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

// goalByFocus maps a weekday focus area to the post goal text.
var goalByFocus = map[string]string{
	"engagement":      "Increase audience engagement and interaction",
	"education":       "Educate audience about industry topics and solutions",
	"brand_awareness": "Build brand visibility and recognition",
	"lead_generation": "Generate qualified leads and prospects",
	"conversion":      "Drive sales and conversions",
}

const defaultGoal = "Increase audience engagement and interaction"

// goalByTheme overrides the weekday focus for the universal themes.
var goalByTheme = map[string]string{
	"Educational Content": "Educate audience about industry topics and establish thought leadership",
	"Behind-the-Scenes":   "Build trust and humanize the brand through authentic content",
	"Problem-Solution":    "Address customer pain points and showcase solution value",
}

// themeActions feed the LinkedIn title template.
var themeActions = map[string]string{
	"Educational Content": "Stay Informed",
	"Behind-the-Scenes":   "See the Process",
	"Problem-Solution":    "Solve Problems",
}

const defaultThemeAction = "Stay Ahead"

// voiceAdjective reduces the brand voice to a single title adjective.
func voiceAdjective(voice string) string {
	lowered := strings.ToLower(voice)
	switch {
	case strings.Contains(lowered, "professional"):
		return "Professional"
	case strings.Contains(lowered, "casual"):
		return "Casual"
	case strings.Contains(lowered, "playful"):
		return "Playful"
	default:
		return "Effective"
	}
}

// titleTemplates returns the platform's title family, already filled in.
func titleTemplates(theme, audience, voice, platform string) []string {
	audienceLead := strings.TrimSpace(strings.Split(audience, ",")[0])
	switch platform {
	case types.PlatformLinkedIn:
		return []string{
			"How Industry Professionals Can " + lookupAction(theme),
			"The " + voiceAdjective(voice) + " Guide to " + theme,
			"Why " + audienceLead + " Need to Know About " + theme,
		}
	case types.PlatformInstagram:
		return []string{
			theme + ": What You Need to Know",
			"Behind the Scenes: " + theme + " Edition",
			"The " + voiceAdjective(voice) + " Way to " + theme,
		}
	default: // Facebook
		return []string{
			"Let's Talk About " + theme,
			"Your " + theme + " Questions Answered",
			"The Truth About " + theme + " for " + audienceLead,
		}
	}
}

func lookupAction(theme string) string {
	if action, ok := themeActions[theme]; ok {
		return action
	}
	return defaultThemeAction
}

// hooks are the caption opening lines per theme. Unknown themes use the
// educational family.
var hooks = map[string][]string{
	"Educational Content": {
		"Did you know that...",
		"Here's something most people don't realize...",
		"Quick question for you...",
	},
	"Behind-the-Scenes": {
		"Ever wondered what goes on behind the scenes?",
		"Today we're pulling back the curtain...",
		"Here's what a typical day looks like...",
	},
	"Problem-Solution": {
		"We hear this challenge all the time...",
		"You're not alone in facing this.",
		"If this sounds familiar, this one is for you.",
	},
}

const hookFallbackTheme = "Educational Content"

// mainContent builds the caption body from the profiles.
func mainContent(theme string, business *types.BusinessProfile, brand *types.BrandProfile) string {
	switch theme {
	case "Educational Content":
		return "As " + business.Industry + " professionals, it's crucial to stay informed about industry trends and best practices. Here are three key insights that can help " + business.TargetAudience + " stay ahead of the curve."
	case "Behind-the-Scenes":
		return "At our company, we believe in " + brand.CoreValues + ". Today, we're sharing a glimpse into our process and the people who make it all possible."
	case "Problem-Solution":
		return "We understand that " + business.CurrentChallenges + " can be challenging. That's why we've developed solutions specifically designed for " + business.TargetAudience + "."
	default:
		return "Our approach is rooted in " + brand.CoreValues + ", ensuring we deliver value to " + business.TargetAudience + "."
	}
}

// callsToAction per platform.
var callsToAction = map[string][]string{
	types.PlatformLinkedIn: {
		"What are your thoughts on this? Share your experience in the comments below.",
		"Have you faced similar challenges? Let's discuss in the comments.",
		"I'd love to hear your perspective on this topic.",
	},
	types.PlatformInstagram: {
		"Double tap if you agree!",
		"What's your take on this? Let us know below!",
		"Tag someone who needs to see this!",
	},
	types.PlatformFacebook: {
		"What do you think? Share your thoughts below!",
		"Have you experienced this? Tell us your story!",
		"We'd love to hear from you - comment below!",
	},
}

// platformOptimizations are static posting recommendations per platform.
var platformOptimizations = map[string]types.PlatformOptimization{
	types.PlatformFacebook: {
		BestPostingTimes:      "9 AM - 3 PM",
		OptimalLength:         "40-80 characters for titles",
		EngagementTips:        "Ask questions, share relatable content",
		VisualRecommendations: "High-quality images, 1200x630px for link previews",
	},
	types.PlatformInstagram: {
		BestPostingTimes:      "11 AM - 1 PM, 5 PM - 7 PM",
		OptimalLength:         "125 characters for captions",
		EngagementTips:        "Use Stories, engage with comments quickly",
		VisualRecommendations: "Square images 1080x1080px, high contrast",
	},
	types.PlatformLinkedIn: {
		BestPostingTimes:      "8 AM - 10 AM, 12 PM - 2 PM",
		OptimalLength:         "150-300 characters for optimal engagement",
		EngagementTips:        "Share professional insights, comment thoughtfully",
		VisualRecommendations: "Professional images, 1200x627px for articles",
	},
}
