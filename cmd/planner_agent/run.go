package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/config"
	"github.com/jonathan/content-planner/internal/pipeline"
	"github.com/jonathan/content-planner/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full weekly planning pipeline end-to-end",
	Long: `Orchestrates the entire planning process: intake -> strategy -> content types -> daily posts -> calendar -> hashtags -> visual concepts -> summary.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runBusinessFile string
	runBrandFile    string
	runPlatforms    []string
	runPriorities   string
	runBranded      []string
	runSeed         int64
	runOut          string
	runVerbose      bool
	runDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runBusinessFile, "business", "b", "", "Path to business profile JSON")
	runCommand.Flags().StringVar(&runBrandFile, "brand", "", "Path to brand profile JSON")
	runCommand.Flags().StringSliceVarP(&runPlatforms, "platforms", "p", nil, "Target platforms")
	runCommand.Flags().StringVar(&runPriorities, "priorities", "", "Platform priority notes")
	runCommand.Flags().StringSliceVar(&runBranded, "branded", nil, "Branded hashtags to include (e.g. #acme)")
	runCommand.Flags().Int64Var(&runSeed, "seed", 0, "Template picker seed for reproducible runs (0 picks first templates)")
	runCommand.Flags().StringVarP(&runOut, "out", "o", "", "Path to write the plan JSON to")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for the run archive
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	// Note: --business, --brand, and --platforms are validated after merging config

	rootCmd.AddCommand(runCommand)
}

// weeklyPlan is the aggregate plan document the run command writes to --out.
type weeklyPlan struct {
	Framework *types.StrategyFramework       `json:"strategy_framework"`
	Calendar  *types.ContentCalendar         `json:"content_calendar"`
	Hashtags  []*types.HashtagRecommendation `json:"hashtag_recommendations"`
	Visuals   []*types.VisualConcept         `json:"visual_concepts"`
	Summary   *types.StrategySummary         `json:"strategy_summary"`
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("business") {
		cfg.Business = runBusinessFile
	}
	if cmd.Flags().Changed("brand") {
		cfg.Brand = runBrandFile
	}
	if cmd.Flags().Changed("platforms") {
		cfg.Platforms = runPlatforms
	}
	if cmd.Flags().Changed("priorities") {
		cfg.Priorities = runPriorities
	}
	if cmd.Flags().Changed("branded") {
		cfg.BrandedHashtags = runBranded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = runSeed
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = runOut
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Out: "content_plan.json",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Business == "" {
		return fmt.Errorf("--business is required (via flag or config)")
	}
	if cfg.Brand == "" {
		return fmt.Errorf("--brand is required (via flag or config)")
	}
	if len(cfg.Platforms) == 0 {
		return fmt.Errorf("--platforms is required (via flag or config)")
	}

	// Step 5: Database URL handling (optional, archive is a write-only sink)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	var business types.BusinessProfile
	if err := readProfileFile(cfg.Business, &business); err != nil {
		return err
	}
	var brand types.BrandProfile
	if err := readProfileFile(cfg.Brand, &brand); err != nil {
		return err
	}

	result, err := pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Business:        business,
		Brand:           brand,
		Platforms:       cfg.Platforms,
		Priorities:      cfg.Priorities,
		Seed:            cfg.Seed,
		BrandedHashtags: cfg.BrandedHashtags,
		Verbose:         cfg.Verbose,
		DatabaseURL:     cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	plan := weeklyPlan{
		Framework: result.Framework,
		Calendar:  result.Calendar,
		Hashtags:  result.Hashtags,
		Visuals:   result.Visuals,
		Summary:   result.Summary,
	}
	jsonBytes, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(cfg.Out, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write plan to %s: %w", cfg.Out, err)
	}

	return printResult(fmt.Sprintf("Wrote weekly plan to %s", cfg.Out), plan.Summary)
}
