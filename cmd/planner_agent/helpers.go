package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/content-planner/internal/schemas"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// The stage subcommands exchange artifacts through a run directory: one JSON
// file per artifact key, named <key>.json. Later stages load the keys their
// gate requires and write their own key back.

// artifactPath returns the file path for an artifact key inside a run directory.
func artifactPath(dir, key string) string {
	return filepath.Join(dir, key+".json")
}

// readArtifactFile unmarshals one artifact file into out.
func readArtifactFile(dir, key string, out any) error {
	data, err := os.ReadFile(artifactPath(dir, key))
	if err != nil {
		return fmt.Errorf("failed to read artifact %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse artifact %s: %w", key, err)
	}
	return nil
}

// writeArtifactFile writes an artifact to its file in the run directory,
// validating it against the named schema first. Schema load problems are
// reported as warnings; actual validation failures abort the write.
func writeArtifactFile(dir, key, schemaName string, artifact any) error {
	if err := schemas.ValidateArtifact(schemaName, artifact); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("artifact %s does not validate against its schema: %w", key, err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate %s against schema: %v\n", key, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact %s: %w", key, err)
	}
	if err := os.WriteFile(artifactPath(dir, key), jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", key, err)
	}
	return nil
}

// loadInputProfiles loads the three intake artifacts from the run directory
// into a fresh store.
func loadInputProfiles(dir string) (*store.ContextStore, error) {
	s := store.New()

	var business types.BusinessProfile
	if err := readArtifactFile(dir, store.KeyBusinessProfile, &business); err != nil {
		return nil, err
	}
	s.Set(store.KeyBusinessProfile, &business)

	var brand types.BrandProfile
	if err := readArtifactFile(dir, store.KeyBrandProfile, &brand); err != nil {
		return nil, err
	}
	s.Set(store.KeyBrandProfile, &brand)

	var selection types.PlatformSelection
	if err := readArtifactFile(dir, store.KeyPlatformSelection, &selection); err != nil {
		return nil, err
	}
	s.Set(store.KeyPlatformSelection, &selection)

	return s, nil
}

// loadFramework adds the strategy framework artifact to the store.
func loadFramework(dir string, s *store.ContextStore) (*types.StrategyFramework, error) {
	var framework types.StrategyFramework
	if err := readArtifactFile(dir, store.KeyStrategyFramework, &framework); err != nil {
		return nil, err
	}
	s.Set(store.KeyStrategyFramework, &framework)
	return &framework, nil
}

// loadDayPost adds one day's post artifact to the store.
func loadDayPost(dir string, s *store.ContextStore, day int) (*types.DailyPost, error) {
	var post types.DailyPost
	if err := readArtifactFile(dir, store.DayPostKey(day), &post); err != nil {
		return nil, err
	}
	s.Set(store.DayPostKey(day), &post)
	return &post, nil
}

// loadDayPosts adds every present day post to the store. Missing days are
// fine; the calendar assembler fills gaps with placeholders.
func loadDayPosts(dir string, s *store.ContextStore) {
	for day := 1; day <= 7; day++ {
		var post types.DailyPost
		if err := readArtifactFile(dir, store.DayPostKey(day), &post); err != nil {
			continue
		}
		s.Set(store.DayPostKey(day), &post)
	}
}

// printResult reports a command's outcome on stdout. With --json the message
// and artifact are wrapped in the tagged result envelope; otherwise the plain
// message is printed.
func printResult(message string, data any) error {
	if jsonOutput {
		envelope, err := json.MarshalIndent(types.SuccessResult(message, data), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(envelope))
		return nil
	}
	fmt.Println(message)
	return nil
}

// requireDay validates the --day flag.
func requireDay(day int) error {
	if day < 1 || day > 7 {
		return fmt.Errorf("--day must be between 1 and 7, got %d", day)
	}
	return nil
}
