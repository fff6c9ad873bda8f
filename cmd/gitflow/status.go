package main

import (
	"os"
	"strings"

	"github.com/gitflow/gitflow-go/internal/git"
	"github.com/gitflow/gitflow-go/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Enhanced git status",
	Long:  `Show the current branch, short-form working tree changes and the most recent commit.`,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	branch, _ := gitClient.CurrentBranch()

	var changes []string
	if res := gitClient.StatusShort(); res.OK && res.Output != "" {
		for _, line := range strings.Split(res.Output, "\n") {
			if line != "" {
				changes = append(changes, line)
			}
		}
	}

	var last *git.Commit
	if commits := gitClient.Commits(1); len(commits) > 0 {
		last = &commits[0]
	}

	output.NewPrinter(os.Stdout).Status(branch, changes, last)
	return nil
}
