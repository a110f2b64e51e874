// Package pipeline provides the high-level orchestration for the weekly
// content planning process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/content-planner/internal/archive"
	"github.com/jonathan/content-planner/internal/calendar"
	"github.com/jonathan/content-planner/internal/contenttype"
	"github.com/jonathan/content-planner/internal/hashtag"
	"github.com/jonathan/content-planner/internal/intake"
	"github.com/jonathan/content-planner/internal/observability"
	"github.com/jonathan/content-planner/internal/post"
	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/strategy"
	"github.com/jonathan/content-planner/internal/summary"
	"github.com/jonathan/content-planner/internal/types"
	"github.com/jonathan/content-planner/internal/visual"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Business        types.BusinessProfile
	Brand           types.BrandProfile
	Platforms       []string
	Priorities      string
	Seed            int64
	BrandedHashtags []string
	Verbose         bool
	DatabaseURL     string
	OnProgress      ProgressCallback
}

// RunResult holds every artifact the pipeline produced, keyed the same way
// the run store keys them.
type RunResult struct {
	Store     *store.ContextStore
	Framework *types.StrategyFramework
	Calendar  *types.ContentCalendar
	Hashtags  []*types.HashtagRecommendation
	Visuals   []*types.VisualConcept
	Summary   *types.StrategySummary
}

// dayAssignment is the per-day plan derived from the framework before the
// post assemblers fan out.
type dayAssignment struct {
	day      int
	theme    string
	postType string
	platform string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, key, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Key:      key,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full weekly planning pipeline
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Initialize run archive if configured
	var db *archive.Archive
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		db, err = archive.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			db = nil
		} else {
			defer db.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	s := store.New()

	// Step 1: Collect and validate the three input profiles
	fmt.Printf("Step 1/7: Collecting input profiles...\n")
	business, err := intake.CollectBusinessProfile(s, opts.Business)
	if err != nil {
		return nil, fmt.Errorf("business intake failed: %w", err)
	}
	brand, err := intake.CollectBrandProfile(s, opts.Brand)
	if err != nil {
		return nil, fmt.Errorf("brand intake failed: %w", err)
	}
	selection, err := intake.SelectPlatforms(s, types.PlatformSelection{
		Platforms:  opts.Platforms,
		Priorities: opts.Priorities,
	})
	if err != nil {
		return nil, fmt.Errorf("platform selection failed: %w", err)
	}
	emitProgress(&opts, store.KeyPlatformSelection, archive.CategoryIntake,
		fmt.Sprintf("Collected inputs for %s targeting %v", business.Industry, selection.Platforms), nil)

	if db != nil {
		runID, err = db.CreateRun(ctx, business.Industry, business.TargetAudience)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = db.SaveArtifact(ctx, runID, store.KeyBusinessProfile, archive.CategoryIntake, business)
			_ = db.SaveArtifact(ctx, runID, store.KeyBrandProfile, archive.CategoryIntake, brand)
			_ = db.SaveArtifact(ctx, runID, store.KeyPlatformSelection, archive.CategoryIntake, selection)
		}
	}

	// Step 2: Derive the strategy framework
	fmt.Printf("Step 2/7: Building strategy framework...\n")
	framework, err := strategy.BuildFramework(s)
	if err != nil {
		return nil, fmt.Errorf("building strategy framework failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintStrategyFramework(framework)
	}
	emitProgress(&opts, store.KeyStrategyFramework, archive.CategoryStrategy,
		fmt.Sprintf("Derived %d themes across %d platforms", len(framework.Themes), len(selection.Platforms)), framework)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.KeyStrategyFramework, archive.CategoryStrategy, framework)
	}

	// Step 3: Content type recommendations for the primary platform
	fmt.Printf("Step 3/7: Recommending content types...\n")
	recs, err := contenttype.Recommend(s, business.Industry, business.TargetAudience, selection.Platforms[0], 1)
	if err != nil {
		return nil, fmt.Errorf("content type recommendation failed: %w", err)
	}
	emitProgress(&opts, store.KeyContentTypeRecs, archive.CategoryContent,
		fmt.Sprintf("Recommended %d content types for %s", len(recs.Recommended), recs.Platform), recs)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.KeyContentTypeRecs, archive.CategoryContent, recs)
	}

	// Step 4: Assemble the seven daily posts in parallel. Each day gets its
	// own seeded picker so the output is independent of goroutine scheduling.
	fmt.Printf("Step 4/7: Assembling 7 daily posts in parallel...\n")
	assignments := dailyAssignments(selection, framework)
	posts := make([]*types.DailyPost, 7)

	g, gCtx := errgroup.WithContext(ctx)
	for _, a := range assignments {
		a := a
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			built, err := post.AssembleDailyPost(s, dayPicker(opts.Seed, a.day), post.Request{
				Day:          a.day,
				ContentTheme: a.theme,
				PostType:     a.postType,
				Platform:     a.platform,
			})
			if err != nil {
				return fmt.Errorf("assembling day %d post failed: %w", a.day, err)
			}
			posts[a.day-1] = built
			if db != nil && runID != uuid.Nil {
				_ = db.SaveArtifact(ctx, runID, store.DayPostKey(a.day), archive.CategoryContent, built)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		for _, p := range posts {
			printer.PrintDailyPost(p)
		}
	}

	// Step 5: Calendar barrier. All seven posts are in the store now.
	fmt.Printf("Step 5/7: Assembling content calendar...\n")
	cal, err := calendar.AssembleCalendar(s)
	if err != nil {
		return nil, fmt.Errorf("assembling calendar failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintCalendar(cal)
	}
	emitProgress(&opts, store.KeyContentCalendar, archive.CategoryContent,
		fmt.Sprintf("Assembled calendar with %d posts", cal.Statistics.TotalPosts), cal)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.KeyContentCalendar, archive.CategoryContent, cal)
	}

	// Step 6: Per-post hashtags and visual concepts, fanned out per day
	fmt.Printf("Step 6/7: Recommending hashtags and visual concepts...\n")
	hashtags := make([]*types.HashtagRecommendation, 7)
	visuals := make([]*types.VisualConcept, 7)

	g, gCtx = errgroup.WithContext(ctx)
	for day := 1; day <= 7; day++ {
		day := day
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p := posts[day-1]

			rec, err := hashtag.Recommend(s, p, opts.BrandedHashtags)
			if err != nil {
				return fmt.Errorf("hashtag recommendation for day %d failed: %w", day, err)
			}
			optimized, err := hashtag.Optimize(s, rec, p.PostType)
			if err != nil {
				return fmt.Errorf("hashtag optimization for day %d failed: %w", day, err)
			}
			hashtags[day-1] = optimized

			concept, err := visual.RecommendConcept(s, day)
			if err != nil {
				return fmt.Errorf("visual concept for day %d failed: %w", day, err)
			}
			visuals[day-1] = concept

			if db != nil && runID != uuid.Nil {
				_ = db.SaveArtifact(ctx, runID, store.HashtagKey(day), archive.CategoryHashtags, optimized)
				_ = db.SaveArtifact(ctx, runID, store.VisualKey(day), archive.CategoryVisual, concept)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		for _, h := range hashtags {
			printer.PrintHashtagRecommendation(h)
		}
	}

	// Step 7: Executive summary rollup
	fmt.Printf("Step 7/7: Assembling strategy summary...\n")
	rollup, err := summary.AssembleSummary(s)
	if err != nil {
		return nil, fmt.Errorf("assembling summary failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintStrategySummary(rollup)
	}
	emitProgress(&opts, store.KeyStrategySummary, archive.CategorySummary, "Assembled strategy summary", rollup)
	if db != nil && runID != uuid.Nil {
		_ = db.SaveArtifact(ctx, runID, store.KeyStrategySummary, archive.CategorySummary, rollup)
		_ = db.CompleteRun(ctx, runID, archive.StatusCompleted)
	}

	fmt.Printf("Done! Weekly content plan assembled.\n")

	return &RunResult{
		Store:     s,
		Framework: framework,
		Calendar:  cal,
		Hashtags:  hashtags,
		Visuals:   visuals,
		Summary:   rollup,
	}, nil
}

// dayPicker builds the template picker for one day. A zero seed means the
// caller wants the deterministic first-template behavior.
func dayPicker(seed int64, day int) post.Picker {
	if seed == 0 {
		return nil
	}
	return post.NewSeededPicker(seed + int64(day))
}

// dailyAssignments derives each day's theme, platform, and post type from
// the framework. Platforms rotate through the selection in day order; post
// types rotate through the platform's recommended list.
func dailyAssignments(selection *types.PlatformSelection, framework *types.StrategyFramework) []dayAssignment {
	assignments := make([]dayAssignment, 0, 7)
	for day := 1; day <= 7; day++ {
		platform := selection.Platforms[(day-1)%len(selection.Platforms)]

		postType := "Image Post"
		if postTypes := framework.PlatformPostTypes[platform]; len(postTypes) > 0 {
			postType = postTypes[(day-1)%len(postTypes)]
		}

		theme := ""
		if plan, ok := framework.WeeklyStructure[types.DayName(day)]; ok {
			theme = plan.PrimaryTheme
		}

		assignments = append(assignments, dayAssignment{
			day:      day,
			theme:    theme,
			postType: postType,
			platform: platform,
		})
	}
	return assignments
}
