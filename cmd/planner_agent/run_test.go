package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestProfiles(t *testing.T, dir string) (businessPath, brandPath string) {
	t.Helper()

	businessPath = filepath.Join(dir, "business.json")
	businessJSON := `{
  "industry": "Technology",
  "target_audience": "Small business owners",
  "business_goals": "Increase brand awareness",
  "current_challenges": "Low engagement rates"
}`
	require.NoError(t, os.WriteFile(businessPath, []byte(businessJSON), 0644))

	brandPath = filepath.Join(dir, "brand.json")
	brandJSON := `{
  "voice": "professional and friendly",
  "tone": "encouraging",
  "core_values": "innovation, trust",
  "personality_adjectives": "approachable, expert"
}`
	require.NoError(t, os.WriteFile(brandPath, []byte(brandJSON), 0644))

	return businessPath, brandPath
}

func TestRunCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// Missing all required flags for 'run'
	cmd := exec.Command(binaryPath, "run")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--business is required")
}

func TestRunCommand_UnknownPlatform(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	businessPath, brandPath := writeTestProfiles(t, tmpDir)

	cmd := exec.Command(binaryPath, "run",
		"--business", businessPath,
		"--brand", brandPath,
		"--platforms", "TikTok")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "platform selection failed")
}

func TestRunCommand_EndToEnd(t *testing.T) {
	// The planner runs offline, so a full end-to-end run works without any
	// external service or database.
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	businessPath, brandPath := writeTestProfiles(t, tmpDir)
	outPath := filepath.Join(tmpDir, "plan.json")

	cmd := exec.Command(binaryPath, "run",
		"--business", businessPath,
		"--brand", brandPath,
		"--platforms", "Instagram,LinkedIn",
		"--branded", "#acme",
		"--seed", "42",
		"--out", outPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "run failed: %s", string(output))
	assert.Contains(t, string(output), "Step 1/7: Collecting input profiles")
	assert.Contains(t, string(output), "Done! Weekly content plan assembled.")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var plan map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Contains(t, plan, "strategy_framework")
	assert.Contains(t, plan, "content_calendar")
	assert.Contains(t, plan, "hashtag_recommendations")
	assert.Contains(t, plan, "visual_concepts")
	assert.Contains(t, plan, "strategy_summary")
}
