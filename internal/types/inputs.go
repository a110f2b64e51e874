// Package types provides type definitions for structured data exchanged between
// the content planning pipeline and its external orchestrator.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported social media platforms.
const (
	PlatformFacebook  = "Facebook"
	PlatformInstagram = "Instagram"
	PlatformLinkedIn  = "LinkedIn"
)

// ValidPlatforms is the closed set of platforms the planner understands.
var ValidPlatforms = []string{PlatformFacebook, PlatformInstagram, PlatformLinkedIn}

// IsValidPlatform reports whether name is one of the supported platforms.
func IsValidPlatform(name string) bool {
	for _, p := range ValidPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

// BusinessProfile holds the business context collected at intake.
// Immutable once created.
type BusinessProfile struct {
	Industry          string    `json:"industry" validate:"required,min=1"`
	TargetAudience    string    `json:"target_audience" validate:"required,min=1"`
	BusinessGoals     string    `json:"business_goals" validate:"required,min=1"`
	CurrentChallenges string    `json:"current_challenges" validate:"required,min=1"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
}

// BrandProfile holds the brand personality collected at intake.
// Immutable once created.
type BrandProfile struct {
	Voice                 string    `json:"voice" validate:"required,min=1"`
	Tone                  string    `json:"tone" validate:"required,min=1"`
	CoreValues            string    `json:"core_values" validate:"required,min=1"`
	PersonalityAdjectives string    `json:"personality_adjectives" validate:"required,min=1"`
	CreatedAt             time.Time `json:"created_at,omitempty"`
}

// PlatformSelection holds the platforms a plan targets and their priorities.
// Immutable once created.
type PlatformSelection struct {
	Platforms  []string  `json:"platforms" validate:"required,min=1,dive,oneof=Facebook Instagram LinkedIn"`
	Priorities string    `json:"priorities,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Contains reports whether the selection includes the given platform.
func (s *PlatformSelection) Contains(platform string) bool {
	for _, p := range s.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Validate validates the BusinessProfile using the validator.
func (p *BusinessProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the BrandProfile using the validator.
func (p *BrandProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates the PlatformSelection using the validator.
func (s *PlatformSelection) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
