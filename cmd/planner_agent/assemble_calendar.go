package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/calendar"
	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
)

var assembleCalendarCmd = &cobra.Command{
	Use:   "assemble-calendar",
	Short: "Roll the daily posts up into the weekly content calendar",
	Long:  "Assemble the weekly calendar from whatever day posts exist in the run directory. Missing days are filled with placeholder posts.",
	RunE:  runAssembleCalendar,
}

var (
	assembleCalendarDir     string
	assembleCalendarVerbose bool
)

func init() {
	assembleCalendarCmd.Flags().StringVarP(&assembleCalendarDir, "dir", "d", ".", "Run directory holding the day post artifacts")
	assembleCalendarCmd.Flags().BoolVarP(&assembleCalendarVerbose, "verbose", "v", false, "Print the assembled calendar")

	rootCmd.AddCommand(assembleCalendarCmd)
}

func runAssembleCalendar(_ *cobra.Command, _ []string) error {
	s, err := loadInputProfiles(assembleCalendarDir)
	if err != nil {
		return err
	}
	if _, err := loadFramework(assembleCalendarDir, s); err != nil {
		return err
	}
	loadDayPosts(assembleCalendarDir, s)

	cal, err := calendar.AssembleCalendar(s)
	if err != nil {
		return fmt.Errorf("assembling calendar failed: %w", err)
	}

	if err := writeArtifactFile(assembleCalendarDir, store.KeyContentCalendar, "content_calendar", cal); err != nil {
		return err
	}

	if assembleCalendarVerbose {
		observability.NewPrinter(os.Stdout).PrintCalendar(cal)
	}
	return printResult(
		fmt.Sprintf("Assembled calendar with %d posts across %d platforms",
			cal.Statistics.TotalPosts, len(cal.Statistics.PlatformDistribution)),
		cal)
}
