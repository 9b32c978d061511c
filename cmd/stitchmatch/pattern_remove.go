// Pattern remove command deletes a catalog pattern by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

var patternRemoveCmd = &cobra.Command{
	Use:   "remove <pattern-id>",
	Short: "Remove a pattern from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternRemove,
}

func runPatternRemove(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	patternID := args[0]
	if err := backend.DeletePattern(patternID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no pattern with ID %q", patternID)
		}
		return fmt.Errorf("remove pattern: %w", err)
	}

	fmt.Printf("Removed pattern: %s\n", patternID)
	return nil
}
