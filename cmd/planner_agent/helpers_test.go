package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

func TestArtifactPath(t *testing.T) {
	path := artifactPath("/tmp/run", store.KeyBusinessProfile)
	assert.Equal(t, filepath.Join("/tmp/run", "business_profile.json"), path)
}

func TestWriteAndReadArtifactFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	business := &types.BusinessProfile{
		Industry:          "Technology",
		TargetAudience:    "Small business owners",
		BusinessGoals:     "Increase brand awareness",
		CurrentChallenges: "Low engagement rates",
	}
	err := writeArtifactFile(dir, store.KeyBusinessProfile, "business_profile", business)
	require.NoError(t, err)

	var loaded types.BusinessProfile
	err = readArtifactFile(dir, store.KeyBusinessProfile, &loaded)
	require.NoError(t, err)
	assert.Equal(t, *business, loaded)
}

func TestWriteArtifactFile_RejectsInvalidArtifact(t *testing.T) {
	dir := t.TempDir()

	// Missing three of the four required profile fields
	invalid := &types.BusinessProfile{Industry: "Technology"}
	err := writeArtifactFile(dir, store.KeyBusinessProfile, "business_profile", invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not validate")

	// The rejected artifact should not have been written
	var loaded types.BusinessProfile
	err = readArtifactFile(dir, store.KeyBusinessProfile, &loaded)
	assert.Error(t, err)
}

func TestWriteArtifactFile_UnknownSchemaIsAdvisory(t *testing.T) {
	dir := t.TempDir()

	err := writeArtifactFile(dir, "scratch_note", "no_such_schema", map[string]string{"a": "b"})
	require.NoError(t, err)

	var loaded map[string]string
	err = readArtifactFile(dir, "scratch_note", &loaded)
	require.NoError(t, err)
	assert.Equal(t, "b", loaded["a"])
}

func TestReadArtifactFile_MissingFile(t *testing.T) {
	var out types.BusinessProfile
	err := readArtifactFile(t.TempDir(), store.KeyBusinessProfile, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read artifact")
}

func TestRequireDay(t *testing.T) {
	assert.NoError(t, requireDay(1))
	assert.NoError(t, requireDay(7))
	assert.Error(t, requireDay(0))
	assert.Error(t, requireDay(8))
}

func TestLoadInputProfiles(t *testing.T) {
	dir := t.TempDir()

	business := &types.BusinessProfile{
		Industry:          "Technology",
		TargetAudience:    "Small business owners",
		BusinessGoals:     "Increase brand awareness",
		CurrentChallenges: "Low engagement rates",
	}
	brand := &types.BrandProfile{
		Voice:                 "professional and friendly",
		Tone:                  "encouraging",
		CoreValues:            "innovation, trust",
		PersonalityAdjectives: "approachable, expert",
	}
	selection := &types.PlatformSelection{
		Platforms:  []string{"Instagram", "LinkedIn"},
		Priorities: "engagement first",
	}
	require.NoError(t, writeArtifactFile(dir, store.KeyBusinessProfile, "business_profile", business))
	require.NoError(t, writeArtifactFile(dir, store.KeyBrandProfile, "brand_profile", brand))
	require.NoError(t, writeArtifactFile(dir, store.KeyPlatformSelection, "platform_selection", selection))

	s, err := loadInputProfiles(dir)
	require.NoError(t, err)

	loaded, ok := s.Get(store.KeyBusinessProfile)
	require.True(t, ok)
	assert.Equal(t, "Technology", loaded.(*types.BusinessProfile).Industry)
	assert.True(t, s.Has(store.KeyBrandProfile))
	assert.True(t, s.Has(store.KeyPlatformSelection))
}
