// Stash add command records a lot of yarn for a user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

var (
	stashAddUser    string
	stashAddWeight  string
	stashAddYardage float64
)

var stashAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add yarn to a user's stash",
	Long: `Add records a lot of yarn in a user's stash. The weight label is
stored as given; normalization happens at match time.

Example:
  stitchmatch stash add --user holly --weight "Worsted (9 wpi)" --yardage 150
  stitchmatch stash add --user holly --weight dk --yardage 200 --json`,
	RunE: runStashAdd,
}

func init() {
	stashAddCmd.Flags().StringVar(&stashAddUser, "user", "", "user ID (required)")
	stashAddCmd.Flags().StringVar(&stashAddWeight, "weight", "", "yarn weight label (required)")
	stashAddCmd.Flags().Float64Var(&stashAddYardage, "yardage", 0, "yardage owned (required)")
	_ = stashAddCmd.MarkFlagRequired("user")
	_ = stashAddCmd.MarkFlagRequired("weight")
	_ = stashAddCmd.MarkFlagRequired("yardage")
}

func runStashAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	id, err := backend.AddStashEntry(stashAddUser, types.StashEntry{
		WeightLabel: stashAddWeight,
		Yardage:     stashAddYardage,
	})
	if err != nil {
		return fmt.Errorf("add stash entry: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"entry_id": id})
	}
	fmt.Printf("Added stash entry: %s\n", id)
	return nil
}
