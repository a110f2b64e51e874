// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStrategyFramework outputs a human-readable summary of the derived
// strategy framework.
func (p *Printer) PrintStrategyFramework(framework *types.StrategyFramework) {
	if framework == nil {
		return
	}

	var sb strings.Builder

	if len(framework.Themes) > 0 {
		sb.WriteString("Themes:\n")
		for _, theme := range framework.Themes {
			sb.WriteString(fmt.Sprintf("  • %s\n", theme.Name))
		}
		sb.WriteString("\n")
	}

	if len(framework.GoalsAnalysis.ContentPriorities) > 0 {
		sb.WriteString(fmt.Sprintf("Priorities: %s\n", strings.Join(framework.GoalsAnalysis.ContentPriorities, ", ")))
	}

	if len(framework.ContentMix) > 0 {
		sb.WriteString("\nContent mix:\n")
		categories := make([]string, 0, len(framework.ContentMix))
		for category := range framework.ContentMix {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			sb.WriteString(fmt.Sprintf("  %s: %d%%\n", category, framework.ContentMix[category]))
		}
	}

	p.printBox("STRATEGY FRAMEWORK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDailyPost outputs one assembled post.
func (p *Printer) PrintDailyPost(post *types.DailyPost) {
	if post == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Day %d (%s) on %s\n", post.Day, post.DayName, post.Platform))
	sb.WriteString(fmt.Sprintf("Type:  %s\n", post.PostType))
	sb.WriteString(fmt.Sprintf("Theme: %s\n", post.ContentTheme))
	sb.WriteString(fmt.Sprintf("Title: %s\n", post.Title))
	sb.WriteString(fmt.Sprintf("Goal:  %s", post.Goal))

	p.printBox("DAILY POST", sb.String())
}

// PrintCalendar outputs the calendar table plus headline statistics.
func (p *Printer) PrintCalendar(cal *types.ContentCalendar) {
	if cal == nil || len(cal.DailyPosts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total posts: %d\n", cal.Statistics.TotalPosts))
	sb.WriteString(fmt.Sprintf("Platforms:   %d unique\n", cal.Statistics.UniquePlatforms))
	sb.WriteString(fmt.Sprintf("Themes:      %d unique\n\n", cal.Statistics.UniqueThemes))

	count := min(len(cal.Table), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := cal.Table[i]
		sb.WriteString(fmt.Sprintf("%-9s %s: %s\n", row.Day, row.Platform, row.Title))
	}
	if len(cal.Table) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more days", len(cal.Table)-maxItemsToShow))
	}

	p.printBox("CONTENT CALENDAR", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHashtagRecommendation outputs the final hashtag set for one post.
func (p *Printer) PrintHashtagRecommendation(rec *types.HashtagRecommendation) {
	if rec == nil || len(rec.FinalSet) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Day %d on %s (window %d-%d)\n\n", rec.Day, rec.Platform, rec.Window.Min, rec.Window.Max))

	tags := rec.Tags()
	joined := strings.Join(tags, " ")
	if len(joined) > boxWidth-8 {
		joined = joined[:boxWidth-11] + "..."
	}
	sb.WriteString(joined)

	if rec.Compliance != nil {
		sb.WriteString("\n\n")
		if rec.Compliance.OverallCompliance {
			sb.WriteString("Compliance: passed")
		} else {
			sb.WriteString("Compliance: issues found")
		}
	}
	if rec.Underfilled {
		sb.WriteString("\nNote: fewer tags than the platform minimum")
	}

	p.printBox("HASHTAG RECOMMENDATION", sb.String())
}

// PrintVisualConcept outputs the design concept for one post.
func (p *Printer) PrintVisualConcept(concept *types.VisualConcept) {
	if concept == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Day %d on %s (%s)\n", concept.Day, concept.Platform, concept.ContentType))
	sb.WriteString(fmt.Sprintf("Dimensions:  %s\n", concept.PlatformSpec.Dimensions))
	sb.WriteString(fmt.Sprintf("Personality: %s\n", concept.VisualPersonality))
	sb.WriteString(fmt.Sprintf("Mood:        %s\n", concept.Mood))
	sb.WriteString(fmt.Sprintf("Approach:    %s", concept.DesignApproach))

	p.printBox("VISUAL CONCEPT", sb.String())
}

// PrintStrategySummary outputs the executive rollup headline.
func (p *Printer) PrintStrategySummary(summary *types.StrategySummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", summary.ExecutiveSummary.BusinessOverview.Industry))
	sb.WriteString(fmt.Sprintf("Platforms: %s\n", strings.Join(summary.ExecutiveSummary.PlatformStrategy.SelectedPlatforms, ", ")))
	sb.WriteString(fmt.Sprintf("Themes:    %s\n", strings.Join(summary.StrategyOverview.PrimaryThemes, ", ")))
	sb.WriteString(fmt.Sprintf("Posts:     %d", summary.CalendarSummary.TotalPosts))

	p.printBox("STRATEGY SUMMARY", sb.String())
}
