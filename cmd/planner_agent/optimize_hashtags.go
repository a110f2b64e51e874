package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/hashtag"
	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

var optimizeHashtagsCmd = &cobra.Command{
	Use:   "optimize-hashtags",
	Short: "Tune a day's hashtag set to its platform window and check compliance",
	Long:  "Re-window an existing hashtag recommendation for its platform and content type, run the compliance checks, and overwrite the day's hashtag artifact.",
	RunE:  runOptimizeHashtags,
}

var (
	optimizeHashtagsDir     string
	optimizeHashtagsDay     int
	optimizeHashtagsVerbose bool
)

func init() {
	optimizeHashtagsCmd.Flags().StringVarP(&optimizeHashtagsDir, "dir", "d", ".", "Run directory holding the hashtag artifact")
	optimizeHashtagsCmd.Flags().IntVar(&optimizeHashtagsDay, "day", 0, "Day of the week (1-7, required)")
	optimizeHashtagsCmd.Flags().BoolVarP(&optimizeHashtagsVerbose, "verbose", "v", false, "Print the optimized recommendation")

	if err := optimizeHashtagsCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(optimizeHashtagsCmd)
}

func runOptimizeHashtags(_ *cobra.Command, _ []string) error {
	if err := requireDay(optimizeHashtagsDay); err != nil {
		return err
	}

	s, err := loadInputProfiles(optimizeHashtagsDir)
	if err != nil {
		return err
	}
	dayPost, err := loadDayPost(optimizeHashtagsDir, s, optimizeHashtagsDay)
	if err != nil {
		return err
	}

	var rec types.HashtagRecommendation
	if err := readArtifactFile(optimizeHashtagsDir, store.HashtagKey(optimizeHashtagsDay), &rec); err != nil {
		return err
	}

	optimized, err := hashtag.Optimize(s, &rec, dayPost.PostType)
	if err != nil {
		return fmt.Errorf("hashtag optimization for day %d failed: %w", optimizeHashtagsDay, err)
	}

	if err := writeArtifactFile(optimizeHashtagsDir, store.HashtagKey(optimizeHashtagsDay), "hashtag_recommendation", optimized); err != nil {
		return err
	}

	if optimizeHashtagsVerbose {
		observability.NewPrinter(os.Stdout).PrintHashtagRecommendation(optimized)
	}
	status := "passed"
	if optimized.Compliance != nil && !optimized.Compliance.OverallCompliance {
		status = "has issues"
	}
	return printResult(
		fmt.Sprintf("Optimized day %d hashtags to %d tags (window %d-%d, compliance %s)",
			optimized.Day, len(optimized.FinalSet), optimized.Window.Min, optimized.Window.Max, status),
		optimized)
}
