package main

import (
	"fmt"
	"os"

	"github.com/gitflow/gitflow-go/internal/output"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show repository statistics",
	Long:  `Show commit counts, tracked files, contributors and recent activity.`,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	fmt.Println("⏳ Analyzing repository...")
	output.NewPrinter(os.Stdout).Stats(gitClient.Stats())
	return nil
}
