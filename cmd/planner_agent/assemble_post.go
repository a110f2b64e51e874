package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/post"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

var assemblePostCmd = &cobra.Command{
	Use:   "assemble-post",
	Short: "Assemble one day's post from the strategy framework",
	Long:  "Assemble the post for one day of the week. Theme, post type, and platform default to the framework's weekly structure but can be overridden per flag.",
	RunE:  runAssemblePost,
}

var (
	assemblePostDir      string
	assemblePostDay      int
	assemblePostTheme    string
	assemblePostType     string
	assemblePostPlatform string
	assemblePostSeed     int64
	assemblePostVerbose  bool
)

func init() {
	assemblePostCmd.Flags().StringVarP(&assemblePostDir, "dir", "d", ".", "Run directory holding the framework artifact")
	assemblePostCmd.Flags().IntVar(&assemblePostDay, "day", 0, "Day of the week (1-7, required)")
	assemblePostCmd.Flags().StringVar(&assemblePostTheme, "theme", "", "Content theme override")
	assemblePostCmd.Flags().StringVar(&assemblePostType, "post-type", "", "Post type override")
	assemblePostCmd.Flags().StringVarP(&assemblePostPlatform, "platform", "p", "", "Platform override")
	assemblePostCmd.Flags().Int64Var(&assemblePostSeed, "seed", 0, "Template picker seed (0 picks the first template)")
	assemblePostCmd.Flags().BoolVarP(&assemblePostVerbose, "verbose", "v", false, "Print the assembled post")

	if err := assemblePostCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(assemblePostCmd)
}

func runAssemblePost(_ *cobra.Command, _ []string) error {
	if err := requireDay(assemblePostDay); err != nil {
		return err
	}

	s, err := loadInputProfiles(assemblePostDir)
	if err != nil {
		return err
	}
	framework, err := loadFramework(assemblePostDir, s)
	if err != nil {
		return err
	}

	selectionAny, _ := s.Get(store.KeyPlatformSelection)
	selection := selectionAny.(*types.PlatformSelection)

	platform := assemblePostPlatform
	if platform == "" {
		platform = selection.Platforms[(assemblePostDay-1)%len(selection.Platforms)]
	}
	postType := assemblePostType
	if postType == "" {
		postType = "Image Post"
		if postTypes := framework.PlatformPostTypes[platform]; len(postTypes) > 0 {
			postType = postTypes[(assemblePostDay-1)%len(postTypes)]
		}
	}
	theme := assemblePostTheme
	if theme == "" {
		if plan, ok := framework.WeeklyStructure[types.DayName(assemblePostDay)]; ok {
			theme = plan.PrimaryTheme
		}
	}

	var picker post.Picker
	if assemblePostSeed != 0 {
		picker = post.NewSeededPicker(assemblePostSeed + int64(assemblePostDay))
	}

	built, err := post.AssembleDailyPost(s, picker, post.Request{
		Day:          assemblePostDay,
		ContentTheme: theme,
		PostType:     postType,
		Platform:     platform,
	})
	if err != nil {
		return fmt.Errorf("assembling day %d post failed: %w", assemblePostDay, err)
	}

	if err := writeArtifactFile(assemblePostDir, store.DayPostKey(assemblePostDay), "daily_post", built); err != nil {
		return err
	}

	if assemblePostVerbose {
		observability.NewPrinter(os.Stdout).PrintDailyPost(built)
	}
	return printResult(
		fmt.Sprintf("Assembled %s post for day %d (%s) on %s", built.PostType, built.Day, built.DayName, built.Platform),
		built)
}
