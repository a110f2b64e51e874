package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/strategy"
)

var buildStrategyCmd = &cobra.Command{
	Use:   "build-strategy",
	Short: "Derive the strategy framework from the collected input profiles",
	RunE:  runBuildStrategy,
}

var (
	buildStrategyDir     string
	buildStrategyVerbose bool
)

func init() {
	buildStrategyCmd.Flags().StringVarP(&buildStrategyDir, "dir", "d", ".", "Run directory holding the intake artifacts")
	buildStrategyCmd.Flags().BoolVarP(&buildStrategyVerbose, "verbose", "v", false, "Print the derived framework")

	rootCmd.AddCommand(buildStrategyCmd)
}

func runBuildStrategy(_ *cobra.Command, _ []string) error {
	s, err := loadInputProfiles(buildStrategyDir)
	if err != nil {
		return err
	}

	framework, err := strategy.BuildFramework(s)
	if err != nil {
		return fmt.Errorf("building strategy framework failed: %w", err)
	}

	if err := writeArtifactFile(buildStrategyDir, store.KeyStrategyFramework, "strategy_framework", framework); err != nil {
		return err
	}

	if buildStrategyVerbose {
		observability.NewPrinter(os.Stdout).PrintStrategyFramework(framework)
	}
	return printResult(fmt.Sprintf("Derived strategy framework with %d themes", len(framework.Themes)), framework)
}
