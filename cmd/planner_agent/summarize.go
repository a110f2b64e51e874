package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/summary"
	"github.com/jonathan/content-planner/internal/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Assemble the executive strategy summary",
	Long:  "Roll every prior artifact up into the executive strategy summary. Requires all seven day posts and the calendar in the run directory.",
	RunE:  runSummarize,
}

var (
	summarizeDir     string
	summarizeVerbose bool
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeDir, "dir", "d", ".", "Run directory holding the planning artifacts")
	summarizeCmd.Flags().BoolVarP(&summarizeVerbose, "verbose", "v", false, "Print the summary")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, _ []string) error {
	s, err := loadInputProfiles(summarizeDir)
	if err != nil {
		return err
	}
	if _, err := loadFramework(summarizeDir, s); err != nil {
		return err
	}
	for day := 1; day <= 7; day++ {
		if _, err := loadDayPost(summarizeDir, s, day); err != nil {
			return err
		}
	}

	var cal types.ContentCalendar
	if err := readArtifactFile(summarizeDir, store.KeyContentCalendar, &cal); err != nil {
		return err
	}
	s.Set(store.KeyContentCalendar, &cal)

	rollup, err := summary.AssembleSummary(s)
	if err != nil {
		return fmt.Errorf("assembling summary failed: %w", err)
	}

	if err := writeArtifactFile(summarizeDir, store.KeyStrategySummary, "strategy_summary", rollup); err != nil {
		return err
	}

	if summarizeVerbose {
		observability.NewPrinter(os.Stdout).PrintStrategySummary(rollup)
	}
	return printResult(
		fmt.Sprintf("Assembled strategy summary for %s (%d posts)",
			rollup.ExecutiveSummary.BusinessOverview.Industry, rollup.CalendarSummary.TotalPosts),
		rollup)
}
