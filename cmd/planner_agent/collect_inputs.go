package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/intake"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

var collectInputsCmd = &cobra.Command{
	Use:   "collect-inputs",
	Short: "Validate and store the three input profiles for a planning run",
	Long:  "Validate the business profile, brand profile, and platform selection, then write the three intake artifacts into the run directory.",
	RunE:  runCollectInputs,
}

var (
	collectBusinessFile string
	collectBrandFile    string
	collectPlatforms    []string
	collectPriorities   string
	collectDir          string
)

func init() {
	collectInputsCmd.Flags().StringVarP(&collectBusinessFile, "business", "b", "", "Path to business profile JSON (required)")
	collectInputsCmd.Flags().StringVar(&collectBrandFile, "brand", "", "Path to brand profile JSON (required)")
	collectInputsCmd.Flags().StringSliceVarP(&collectPlatforms, "platforms", "p", nil, "Target platforms (required)")
	collectInputsCmd.Flags().StringVar(&collectPriorities, "priorities", "", "Platform priority notes")
	collectInputsCmd.Flags().StringVarP(&collectDir, "dir", "d", ".", "Run directory to write artifacts to")

	if err := collectInputsCmd.MarkFlagRequired("business"); err != nil {
		panic(err)
	}
	if err := collectInputsCmd.MarkFlagRequired("brand"); err != nil {
		panic(err)
	}
	if err := collectInputsCmd.MarkFlagRequired("platforms"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(collectInputsCmd)
}

func runCollectInputs(_ *cobra.Command, _ []string) error {
	var businessIn types.BusinessProfile
	if err := readProfileFile(collectBusinessFile, &businessIn); err != nil {
		return err
	}
	var brandIn types.BrandProfile
	if err := readProfileFile(collectBrandFile, &brandIn); err != nil {
		return err
	}

	s := store.New()
	business, err := intake.CollectBusinessProfile(s, businessIn)
	if err != nil {
		return fmt.Errorf("business intake failed: %w", err)
	}
	brand, err := intake.CollectBrandProfile(s, brandIn)
	if err != nil {
		return fmt.Errorf("brand intake failed: %w", err)
	}
	selection, err := intake.SelectPlatforms(s, types.PlatformSelection{
		Platforms:  collectPlatforms,
		Priorities: collectPriorities,
	})
	if err != nil {
		return fmt.Errorf("platform selection failed: %w", err)
	}

	if err := writeArtifactFile(collectDir, store.KeyBusinessProfile, "business_profile", business); err != nil {
		return err
	}
	if err := writeArtifactFile(collectDir, store.KeyBrandProfile, "brand_profile", brand); err != nil {
		return err
	}
	if err := writeArtifactFile(collectDir, store.KeyPlatformSelection, "platform_selection", selection); err != nil {
		return err
	}

	return printResult(
		fmt.Sprintf("Collected input profiles for %s targeting %v", business.Industry, selection.Platforms),
		map[string]any{
			store.KeyBusinessProfile:   business,
			store.KeyBrandProfile:      brand,
			store.KeyPlatformSelection: selection,
		})
}

// readProfileFile reads a raw (pre-intake) profile JSON file.
func readProfileFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return nil
}
