// Package main provides the entry point for the content planner CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/content-planner/internal/types"
)

var rootCmd = &cobra.Command{
	Use:   "planner_agent",
	Short: "Weekly content calendar planner",
	Long:  "Content Planner derives a one-week multi-platform content calendar from three input profiles: per-day posts, platform-tuned hashtag sets, visual concepts, and an executive summary.",
}

// jsonOutput switches command output to tagged result envelopes, for callers
// that drive the planner programmatically.
var jsonOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON envelopes instead of plain text")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		if jsonOutput {
			envelope, _ := json.Marshal(types.ErrorResult(err))
			fmt.Fprintln(os.Stderr, string(envelope))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
