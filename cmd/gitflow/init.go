package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a git repository in the current directory",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	res := gitClient.Init()
	if !res.OK {
		fmt.Printf("❌ Failed: %s\n", res.Output)
		return nil
	}
	fmt.Println("✅ Initialized git repository")
	return nil
}
