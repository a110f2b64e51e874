// Package intake validates and structures the three input profiles that
// anchor a planning run. Each profile is trimmed, validated, stamped, and
// written to the store exactly once.
package intake

import (
	"strings"
	"time"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// CollectBusinessProfile trims, validates, and stores the business profile.
// No artifact is written when validation fails.
func CollectBusinessProfile(s *store.ContextStore, in types.BusinessProfile) (*types.BusinessProfile, error) {
	profile := types.BusinessProfile{
		Industry:          strings.TrimSpace(in.Industry),
		TargetAudience:    strings.TrimSpace(in.TargetAudience),
		BusinessGoals:     strings.TrimSpace(in.BusinessGoals),
		CurrentChallenges: strings.TrimSpace(in.CurrentChallenges),
		CreatedAt:         time.Now().UTC(),
	}

	if err := requireFields(map[string]string{
		"industry":           profile.Industry,
		"target_audience":    profile.TargetAudience,
		"business_goals":     profile.BusinessGoals,
		"current_challenges": profile.CurrentChallenges,
	}); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, &types.ValidationError{Message: err.Error()}
	}

	s.Set(store.KeyBusinessProfile, &profile)
	return &profile, nil
}

// CollectBrandProfile trims, validates, and stores the brand profile.
func CollectBrandProfile(s *store.ContextStore, in types.BrandProfile) (*types.BrandProfile, error) {
	profile := types.BrandProfile{
		Voice:                 strings.TrimSpace(in.Voice),
		Tone:                  strings.TrimSpace(in.Tone),
		CoreValues:            strings.TrimSpace(in.CoreValues),
		PersonalityAdjectives: strings.TrimSpace(in.PersonalityAdjectives),
		CreatedAt:             time.Now().UTC(),
	}

	if err := requireFields(map[string]string{
		"voice":                  profile.Voice,
		"tone":                   profile.Tone,
		"core_values":            profile.CoreValues,
		"personality_adjectives": profile.PersonalityAdjectives,
	}); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, &types.ValidationError{Message: err.Error()}
	}

	s.Set(store.KeyBrandProfile, &profile)
	return &profile, nil
}

// SelectPlatforms validates the platform selection and stores it. Unknown
// platforms and empty selections are rejected before any write.
func SelectPlatforms(s *store.ContextStore, in types.PlatformSelection) (*types.PlatformSelection, error) {
	selection := types.PlatformSelection{
		Priorities: strings.TrimSpace(in.Priorities),
		CreatedAt:  time.Now().UTC(),
	}
	// Platforms form a set: repeated entries collapse to the first occurrence.
	seen := make(map[string]struct{}, len(in.Platforms))
	for _, p := range in.Platforms {
		trimmed := strings.TrimSpace(p)
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		selection.Platforms = append(selection.Platforms, trimmed)
	}

	if len(selection.Platforms) == 0 {
		return nil, &types.ValidationError{Field: "platforms", Message: "at least one platform must be selected"}
	}
	for _, p := range selection.Platforms {
		if !types.IsValidPlatform(p) {
			return nil, &types.ValidationError{Field: "platforms", Message: "unknown platform: " + p}
		}
	}
	if selection.Priorities == "" {
		selection.Priorities = "Equal focus on all selected platforms"
	}
	if err := selection.Validate(); err != nil {
		return nil, &types.ValidationError{Message: err.Error()}
	}

	s.Set(store.KeyPlatformSelection, &selection)
	return &selection, nil
}

// requireFields rejects any field that is empty after trimming.
func requireFields(fields map[string]string) error {
	// Deterministic order is not required here; the first empty field found
	// is reported and the caller aborts.
	for name, value := range fields {
		if value == "" {
			return &types.ValidationError{Field: name, Message: "required field is empty"}
		}
	}
	return nil
}
