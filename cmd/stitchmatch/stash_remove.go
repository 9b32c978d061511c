// Stash remove command deletes a stash entry by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

var stashRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a stash entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runStashRemove,
}

func runStashRemove(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	entryID := args[0]
	if err := backend.DeleteStashEntry(entryID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no stash entry with ID %q", entryID)
		}
		return fmt.Errorf("remove stash entry: %w", err)
	}

	fmt.Printf("Removed stash entry: %s\n", entryID)
	return nil
}
