package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/visual"
)

var visualConceptCmd = &cobra.Command{
	Use:   "visual-concept",
	Short: "Derive a visual concept for one day's post",
	RunE:  runVisualConcept,
}

var (
	visualConceptDir     string
	visualConceptDay     int
	visualConceptVerbose bool
)

func init() {
	visualConceptCmd.Flags().StringVarP(&visualConceptDir, "dir", "d", ".", "Run directory holding the day post artifact")
	visualConceptCmd.Flags().IntVar(&visualConceptDay, "day", 0, "Day of the week (1-7, required)")
	visualConceptCmd.Flags().BoolVarP(&visualConceptVerbose, "verbose", "v", false, "Print the visual concept")

	if err := visualConceptCmd.MarkFlagRequired("day"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(visualConceptCmd)
}

func runVisualConcept(_ *cobra.Command, _ []string) error {
	if err := requireDay(visualConceptDay); err != nil {
		return err
	}

	s, err := loadInputProfiles(visualConceptDir)
	if err != nil {
		return err
	}
	if _, err := loadDayPost(visualConceptDir, s, visualConceptDay); err != nil {
		return err
	}

	concept, err := visual.RecommendConcept(s, visualConceptDay)
	if err != nil {
		return fmt.Errorf("visual concept for day %d failed: %w", visualConceptDay, err)
	}

	if err := writeArtifactFile(visualConceptDir, store.VisualKey(visualConceptDay), "visual_concept", concept); err != nil {
		return err
	}

	if visualConceptVerbose {
		observability.NewPrinter(os.Stdout).PrintVisualConcept(concept)
	}
	return printResult(fmt.Sprintf("Derived visual concept for day %d on %s", concept.Day, concept.Platform), concept)
}
