package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/contenttype"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

var recommendTypesCmd = &cobra.Command{
	Use:   "recommend-types",
	Short: "Rank content types for one platform and day",
	RunE:  runRecommendTypes,
}

var (
	recommendTypesDir      string
	recommendTypesPlatform string
	recommendTypesDay      int
)

func init() {
	recommendTypesCmd.Flags().StringVarP(&recommendTypesDir, "dir", "d", ".", "Run directory holding the framework artifact")
	recommendTypesCmd.Flags().StringVarP(&recommendTypesPlatform, "platform", "p", "", "Platform to rank content types for (defaults to the first selected platform)")
	recommendTypesCmd.Flags().IntVar(&recommendTypesDay, "day", 1, "Day of the week (1-7)")

	rootCmd.AddCommand(recommendTypesCmd)
}

func runRecommendTypes(_ *cobra.Command, _ []string) error {
	if err := requireDay(recommendTypesDay); err != nil {
		return err
	}

	s, err := loadInputProfiles(recommendTypesDir)
	if err != nil {
		return err
	}
	if _, err := loadFramework(recommendTypesDir, s); err != nil {
		return err
	}

	business, _ := s.Get(store.KeyBusinessProfile)
	selection, _ := s.Get(store.KeyPlatformSelection)
	profile := business.(*types.BusinessProfile)

	platform := recommendTypesPlatform
	if platform == "" {
		platform = selection.(*types.PlatformSelection).Platforms[0]
	}

	recs, err := contenttype.Recommend(s, profile.Industry, profile.TargetAudience, platform, recommendTypesDay)
	if err != nil {
		return fmt.Errorf("content type recommendation failed: %w", err)
	}

	if err := writeArtifactFile(recommendTypesDir, store.KeyContentTypeRecs, "content_type_recommendations", recs); err != nil {
		return err
	}

	return printResult(fmt.Sprintf("Recommended %d content types for %s", len(recs.Recommended), recs.Platform), recs)
}
