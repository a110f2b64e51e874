// Package visual derives brand visual profiles and per-post design concepts
// from fixed lookup tables. Everything here is deterministic.
package visual

import "github.com/jonathan/content-planner/internal/types"

// Visual personality classifications.
const (
	PersonalityProfessionalAuthority = "professional_authority"
	PersonalityFriendlyApproachable  = "friendly_approachable"
	PersonalityInnovativeModern      = "innovative_modern"
	PersonalityPlayfulEnergetic      = "playful_energetic"
	PersonalityTrustworthyReliable   = "trustworthy_reliable"
	PersonalityBalancedVersatile     = "balanced_versatile"
)

// personalityRules classify the brand voice in order; first match wins.
var personalityRules = []struct {
	personality string
	words       []string
}{
	{PersonalityProfessionalAuthority, []string{"professional", "authoritative", "expert", "formal"}},
	{PersonalityFriendlyApproachable, []string{"friendly", "approachable", "casual", "welcoming"}},
	{PersonalityInnovativeModern, []string{"innovative", "cutting-edge", "modern", "forward-thinking"}},
	{PersonalityPlayfulEnergetic, []string{"playful", "energetic", "fun", "dynamic"}},
	{PersonalityTrustworthyReliable, []string{"trustworthy", "reliable", "consistent", "stable"}},
}

// moodRules classify the brand tone in order; first match wins, default
// neutral.
var moodRules = []struct {
	mood  string
	words []string
}{
	{"uplifting", []string{"encouraging", "inspiring", "motivating"}},
	{"warm", []string{"supportive", "friendly", "caring", "welcoming"}},
	{"confident", []string{"confident", "bold", "assertive"}},
	{"neutral", []string{"professional", "formal"}},
}

const defaultMood = "neutral"

// valueTranslations map matched core values to visual guidance rows.
var valueTranslations = map[string]types.ValueTranslation{
	"innovation": {
		VisualCharacteristics: []string{"Modern design elements", "Forward-thinking layouts", "Creative compositions"},
		ColorAssociations:     []string{"Blue (trust)", "Purple (creativity)", "Silver (innovation)"},
		TypographyStyle:       []string{"Modern sans-serif", "Clean lines", "Contemporary feel"},
	},
	"quality": {
		VisualCharacteristics: []string{"High-resolution imagery", "Premium feel", "Attention to detail"},
		ColorAssociations:     []string{"Gold (premium)", "Deep blue (reliability)", "White (purity)"},
		TypographyStyle:       []string{"Refined fonts", "Elegant spacing", "Professional appearance"},
	},
	"trust": {
		VisualCharacteristics: []string{"Professional photography", "Consistent branding", "Authentic imagery"},
		ColorAssociations:     []string{"Blue (trust)", "Green (stability)", "Neutral tones"},
		TypographyStyle:       []string{"Readable fonts", "Consistent hierarchy", "Professional styling"},
	},
	"customer-first": {
		VisualCharacteristics: []string{"People-focused imagery", "Customer testimonials", "Service-oriented visuals"},
		ColorAssociations:     []string{"Warm colors", "Approachable tones", "Inviting palette"},
		TypographyStyle:       []string{"Friendly fonts", "Approachable styling", "Readable design"},
	},
	"transparency": {
		VisualCharacteristics: []string{"Clean layouts", "Honest imagery", "Straightforward design"},
		ColorAssociations:     []string{"Clear whites", "Honest blues", "Transparent elements"},
		TypographyStyle:       []string{"Clear fonts", "Open spacing", "Honest presentation"},
	},
	"sustainability": {
		VisualCharacteristics: []string{"Natural imagery", "Eco-friendly elements", "Organic shapes"},
		ColorAssociations:     []string{"Green tones", "Natural colors", "Earth tones"},
		TypographyStyle:       []string{"Organic fonts", "Natural feel", "Eco-conscious design"},
	},
}

var generalValueTranslation = types.ValueTranslation{
	VisualCharacteristics: []string{"Professional appearance", "Consistent branding", "Quality imagery"},
	ColorAssociations:     []string{"Brand colors", "Professional palette", "Consistent tones"},
	TypographyStyle:       []string{"Readable fonts", "Professional styling", "Consistent hierarchy"},
}

// industryStyles are fixed per-industry visual conventions, matched by
// substring in order; professional services is the default.
var industryStyleKeys = []string{"technology", "healthcare", "e-commerce"}

var industryStyles = map[string]types.IndustryVisualStyle{
	"technology": {
		StylePreferences: []string{"Modern, clean, tech-forward", "Minimalism", "Flat design", "Clean layouts"},
		Avoid:            []string{"Outdated design patterns", "Overly decorative elements"},
	},
	"healthcare": {
		StylePreferences: []string{"Clean, trustworthy, professional", "Professional photography", "Trust-building design"},
		Avoid:            []string{"Overly flashy designs", "Unprofessional imagery"},
	},
	"e-commerce": {
		StylePreferences: []string{"Product-focused, conversion-optimized", "Product showcases", "Social proof", "Clear CTAs"},
		Avoid:            []string{"Cluttered layouts", "Poor product photography"},
	},
}

var defaultIndustryStyle = types.IndustryVisualStyle{
	StylePreferences: []string{"Professional, authoritative, trustworthy", "Clean layouts", "Trust-building elements"},
	Avoid:            []string{"Casual design elements", "Unprofessional imagery"},
}

// platformSpecs are the fixed per-platform design constraints. Story and
// reel formats get the vertical dimensions.
var platformSpecs = map[string]types.PlatformDesignSpec{
	types.PlatformFacebook: {
		Dimensions:     "1200x630px",
		OptimalFormats: []string{"JPEG", "PNG"},
		TextGuidelines: "Keep text minimal, use large fonts for mobile viewing",
		Considerations: []string{
			"Text overlay should be readable on mobile",
			"Use high contrast for better visibility",
			"Consider how content appears in news feed",
			"Include clear call-to-action elements",
		},
	},
	types.PlatformInstagram: {
		Dimensions:     "1080x1080px (square) or 1080x1350px (portrait)",
		OptimalFormats: []string{"JPEG", "PNG", "MP4"},
		TextGuidelines: "Minimal text overlay, let visuals speak",
		Considerations: []string{
			"High visual impact is crucial",
			"Use vibrant colors and high contrast",
			"Ensure mobile-first design",
			"Consider the platform's visual aesthetic",
		},
	},
	types.PlatformLinkedIn: {
		Dimensions:     "1200x627px",
		OptimalFormats: []string{"JPEG", "PNG"},
		TextGuidelines: "Professional typography, clear messaging",
		Considerations: []string{
			"Professional and clean aesthetic",
			"Business-appropriate imagery",
			"Clear, readable text",
			"Professional color schemes",
		},
	},
}

// verticalDimensions override the platform default for full-screen formats.
const verticalDimensions = "1080x1920px"

var verticalPostTypes = map[string]bool{
	"Story": true,
	"Reel":  true,
}

// themeDesigns map content themes to a design approach; unknown themes use
// the educational row.
type themeDesign struct {
	approach    string
	keyElements []string
	composition string
}

var themeDesigns = map[string]themeDesign{
	"Educational Content": {
		approach:    "Clean, informative layout with clear hierarchy",
		keyElements: []string{"Infographic elements", "Step-by-step visuals", "Data visualization"},
		composition: "Use grids and structured layouts for easy reading",
	},
	"Behind-the-Scenes": {
		approach:    "Authentic, candid photography with natural lighting",
		keyElements: []string{"Team photos", "Process shots", "Workspace imagery"},
		composition: "Use documentary-style photography with natural compositions",
	},
	"Problem-Solution": {
		approach:    "Before/after comparisons or solution-focused imagery",
		keyElements: []string{"Comparison visuals", "Solution highlights", "Benefit demonstrations"},
		composition: "Use split-screen or sequential layouts",
	},
}

const themeDesignFallback = "Educational Content"

// contentTypeGuidance gives design notes per post type; image post is the
// fallback.
var contentTypeGuidance = map[string][]string{
	"image post": {
		"Use high-quality, eye-catching imagery",
		"Ensure proper composition and focal point",
		"Consider rule of thirds for layout",
	},
	"video": {
		"Create engaging thumbnail image",
		"Use captions for accessibility",
		"Keep opening 3 seconds compelling",
	},
	"story": {
		"Design for vertical viewing",
		"Use bold, readable text",
		"Create immersive, full-screen experience",
	},
	"reel": {
		"Design for vertical, mobile-first viewing",
		"Create hook in first 3 seconds",
		"Use trending audio and effects",
	},
	"carousel": {
		"Design cohesive visual story across slides",
		"Use consistent branding elements",
		"Create clear progression and narrative",
	},
}

const contentTypeFallback = "image post"
