package main

import "github.com/spf13/cobra"

var stashCmd = &cobra.Command{
	Use:   "stash",
	Short: "Manage a user's yarn stash",
}

func init() {
	stashCmd.AddCommand(stashAddCmd)
	stashCmd.AddCommand(stashListCmd)
	stashCmd.AddCommand(stashRemoveCmd)
}
