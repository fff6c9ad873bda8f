package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gitflow/gitflow-go/internal/changelog"
	"github.com/spf13/cobra"
)

var (
	changelogSince  string
	changelogOutput string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Generate a changelog from commit subjects",
	Long: `Group commit subjects by conventional-commit type and render them as
a markdown changelog.

Examples:
  gitflow changelog
  gitflow changelog --since 7.days
  gitflow changelog --since 2024-01-01 --output CHANGELOG.md`,
	RunE: runChangelog,
}

func init() {
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "start date (e.g. 7.days, 2024-01-01)")
	changelogCmd.Flags().StringVar(&changelogOutput, "output", "", "output file (default: stdout)")
}

func runChangelog(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	fmt.Println("⏳ Generating changelog...")

	since := ""
	if changelogSince != "" {
		since = changelog.ResolveSince(changelogSince, time.Now())
	}

	text := changelog.NewGenerator(gitClient).Generate(since)

	if changelogOutput != "" {
		if err := os.WriteFile(changelogOutput, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write changelog: %w", err)
		}
		fmt.Printf("✅ Changelog saved to: %s\n", changelogOutput)
		return nil
	}

	fmt.Println(text)
	return nil
}
