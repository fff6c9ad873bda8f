package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cleanupDryRun bool
	cleanupForce  bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clean up merged branches",
	Long: `List branches already merged into the current branch, excluding the
protected ones (main, master, develop by default). Branches are only
deleted when --force is given without --dry-run; deletion uses the safe
"git branch -d".

Examples:
  gitflow cleanup --dry-run
  gitflow cleanup --force`,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false, "preview without deleting")
	cleanupCmd.Flags().BoolVar(&cleanupForce, "force", false, "actually delete branches")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	if cleanupDryRun || !cleanupForce {
		fmt.Println("⏳ Finding merged branches...")
		branches := gitClient.CleanupBranches(true)

		if len(branches) == 0 {
			fmt.Println("✅ No branches to clean up")
			return nil
		}

		fmt.Println("\nBranches that can be deleted:")
		fmt.Println()
		for _, branch := range branches {
			fmt.Printf("  - %s\n", branch)
		}
		fmt.Printf("\nTotal: %d branch(es)\n", len(branches))

		if cleanupDryRun {
			fmt.Println("\n💡 Run with --force to actually delete")
		}
		return nil
	}

	branches := gitClient.CleanupBranches(false)
	if len(branches) == 0 {
		fmt.Println("✅ No branches to clean up")
		return nil
	}
	fmt.Printf("✅ Deleted %d branch(es)\n", len(branches))
	return nil
}
