package types

// ValueTranslation maps one matched core value to fixed visual guidance rows.
type ValueTranslation struct {
	VisualCharacteristics []string `json:"visual_characteristics"`
	ColorAssociations     []string `json:"color_associations"`
	TypographyStyle       []string `json:"typography_style"`
}

// BrandVisualProfile classifies a brand's voice and tone into a visual
// personality used by per-post visual concepts.
type BrandVisualProfile struct {
	VisualPersonality string                      `json:"visual_personality"`
	Mood              string                      `json:"mood"`
	ValueTranslations map[string]ValueTranslation `json:"value_translations"`
	IndustryStyle     IndustryVisualStyle         `json:"industry_style"`
}

// IndustryVisualStyle holds the fixed per-industry visual conventions.
type IndustryVisualStyle struct {
	StylePreferences []string `json:"style_preferences"`
	Avoid            []string `json:"avoid"`
}

// PlatformDesignSpec holds the fixed per-platform design constraints.
type PlatformDesignSpec struct {
	Dimensions     string   `json:"dimensions"`
	OptimalFormats []string `json:"optimal_formats"`
	TextGuidelines string   `json:"text_guidelines"`
	Considerations []string `json:"design_considerations"`
}

// VisualConcept is the per-post design recommendation artifact. Pure lookup
// plus assembly; recomputed when the post changes.
type VisualConcept struct {
	Day                 int                `json:"day"`
	Title               string             `json:"title"`
	ContentTheme        string             `json:"content_theme"`
	Platform            string             `json:"platform"`
	ContentType         string             `json:"content_type"`
	PlatformSpec        PlatformDesignSpec `json:"platform_spec"`
	DesignApproach      string             `json:"design_approach"`
	KeyElements         []string           `json:"key_elements"`
	Composition         string             `json:"composition"`
	ContentTypeGuidance []string           `json:"content_type_guidance"`
	VisualPersonality   string             `json:"visual_personality"`
	Mood                string             `json:"mood"`
}
