// Package store provides the run-scoped artifact store and the stage gate
// that checks artifact preconditions before a stage computes.
package store

import (
	"fmt"
	"sync"
)

// Artifact keys for the closed per-run key set. Day-scoped keys are built
// with DayPostKey, HashtagKey, and VisualKey.
const (
	KeyBusinessProfile   = "business_profile"
	KeyBrandProfile      = "brand_profile"
	KeyPlatformSelection = "platform_selection"
	KeyStrategyFramework = "strategy_framework"
	KeyContentTypeRecs   = "content_type_recommendations"
	KeyContentCalendar   = "content_calendar"
	KeyStrategySummary   = "strategy_summary"
)

// DayPostKey returns the artifact key for day n's post (n in 1..7).
func DayPostKey(day int) string {
	return fmt.Sprintf("day_%d_post", day)
}

// HashtagKey returns the artifact key for day n's hashtag recommendation.
func HashtagKey(day int) string {
	return fmt.Sprintf("hashtag_recommendations_day_%d", day)
}

// VisualKey returns the artifact key for day n's visual concept.
func VisualKey(day int) string {
	return fmt.Sprintf("visual_concept_day_%d", day)
}

// ContextStore is the keyed artifact map for one planning run. Each key has
// exactly one writer and zero-or-more later readers; the mutex makes the
// day-scoped writers safe to run concurrently.
type ContextStore struct {
	mu        sync.RWMutex
	artifacts map[string]any
}

// New creates an empty ContextStore for one planning run.
func New() *ContextStore {
	return &ContextStore{artifacts: make(map[string]any)}
}

// Get returns the artifact stored under key, or ok=false when absent.
func (s *ContextStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.artifacts[key]
	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (s *ContextStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[key] = value
}

// Has reports whether key holds an artifact.
func (s *ContextStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.artifacts[key]
	return ok
}

// Precondition checks that every required key holds an artifact. It returns
// a MissingArtifactError listing every missing key, not just the first, so
// the caller sees the full gap at once. A stage that fails the gate performs
// no writes.
func (s *ContextStore) Precondition(stage string, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if !s.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingArtifactError{Stage: stage, MissingKeys: missing}
	}
	return nil
}
