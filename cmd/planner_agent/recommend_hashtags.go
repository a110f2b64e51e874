package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/hashtag"
	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
)

var recommendHashtagsCmd = &cobra.Command{
	Use:   "recommend-hashtags",
	Short: "Recommend a hashtag set for one day's post",
	RunE:  runRecommendHashtags,
}

var (
	recommendHashtagsDir     string
	recommendHashtagsDay     int
	recommendHashtagsBranded []string
	recommendHashtagsVerbose bool
)

func init() {
	recommendHashtagsCmd.Flags().StringVarP(&recommendHashtagsDir, "dir", "d", ".", "Run directory holding the day post artifact")
	recommendHashtagsCmd.Flags().IntVar(&recommendHashtagsDay, "day", 0, "Day of the week (1-7, required)")
	recommendHashtagsCmd.Flags().StringSliceVar(&recommendHashtagsBranded, "branded", nil, "Branded hashtags to include (e.g. #acme)")
	recommendHashtagsCmd.Flags().BoolVarP(&recommendHashtagsVerbose, "verbose", "v", false, "Print the recommendation")

	if err := recommendHashtagsCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(recommendHashtagsCmd)
}

func runRecommendHashtags(_ *cobra.Command, _ []string) error {
	if err := requireDay(recommendHashtagsDay); err != nil {
		return err
	}

	s, err := loadInputProfiles(recommendHashtagsDir)
	if err != nil {
		return err
	}
	dayPost, err := loadDayPost(recommendHashtagsDir, s, recommendHashtagsDay)
	if err != nil {
		return err
	}

	rec, err := hashtag.Recommend(s, dayPost, recommendHashtagsBranded)
	if err != nil {
		return fmt.Errorf("hashtag recommendation for day %d failed: %w", recommendHashtagsDay, err)
	}

	if err := writeArtifactFile(recommendHashtagsDir, store.HashtagKey(recommendHashtagsDay), "hashtag_recommendation", rec); err != nil {
		return err
	}

	if recommendHashtagsVerbose {
		observability.NewPrinter(os.Stdout).PrintHashtagRecommendation(rec)
	}
	return printResult(
		fmt.Sprintf("Recommended %d hashtags for day %d on %s: %s",
			len(rec.FinalSet), rec.Day, rec.Platform, strings.Join(rec.Tags(), " ")),
		rec)
}
