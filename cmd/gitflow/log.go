package main

import (
	"fmt"
	"os"

	"github.com/gitflow/gitflow-go/internal/output"
	"github.com/spf13/cobra"
)

var logCount int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent commits",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVar(&logCount, "count", 10, "number of commits")
}

func runLog(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	count := logCount
	if !cmd.Flags().Changed("count") {
		count = cfg.LogCount
	}

	commits := gitClient.Commits(count)
	if len(commits) == 0 {
		fmt.Println("💡 No commits found")
		return nil
	}

	output.NewPrinter(os.Stdout).Commits(commits)
	return nil
}
