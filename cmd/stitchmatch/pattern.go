package main

import "github.com/spf13/cobra"

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Manage the pattern catalog",
}

func init() {
	patternCmd.AddCommand(patternAddCmd)
	patternCmd.AddCommand(patternListCmd)
	patternCmd.AddCommand(patternShowCmd)
	patternCmd.AddCommand(patternRemoveCmd)
}
