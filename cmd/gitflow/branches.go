package main

import (
	"fmt"
	"os"

	"github.com/gitflow/gitflow-go/internal/output"
	"github.com/spf13/cobra"
)

var branchesRemote bool

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List branches",
	RunE:  runBranches,
}

func init() {
	branchesCmd.Flags().BoolVar(&branchesRemote, "remote", false, "show remote branches")
}

func runBranches(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	current, _ := gitClient.CurrentBranch()
	branches := gitClient.Branches(branchesRemote)

	if len(branches) == 0 {
		fmt.Println("💡 No branches found")
		return nil
	}

	title := "Local Branches"
	if branchesRemote {
		title = "Remote Branches"
	}
	output.NewPrinter(os.Stdout).Branches(title, branches, current)
	return nil
}
