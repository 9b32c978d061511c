// Pattern show command prints one catalog pattern by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

var patternShowCmd = &cobra.Command{
	Use:   "show <pattern-id>",
	Short: "Show a catalog pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatternShow,
}

func runPatternShow(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	patternID := args[0]
	p, err := backend.GetPattern(patternID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no pattern with ID %q", patternID)
		}
		return fmt.Errorf("show pattern: %w", err)
	}

	if flagJSON {
		return printJSON(p)
	}

	fmt.Printf("ID:           %s\n", p.PatternID)
	fmt.Printf("Name:         %s\n", p.Name)
	if p.Designer != "" {
		fmt.Printf("Designer:     %s\n", p.Designer)
	}
	if p.WeightLabel != "" {
		fmt.Printf("Weight:       %s\n", p.WeightLabel)
	}
	if p.YardageMin != nil {
		fmt.Printf("Yardage min:  %.0f\n", *p.YardageMin)
	}
	if p.YardageMax != nil {
		fmt.Printf("Yardage max:  %.0f\n", *p.YardageMax)
	}
	if p.ProjectType != "" {
		fmt.Printf("Project type: %s\n", p.ProjectType)
	}
	if p.CraftType != "" {
		fmt.Printf("Craft type:   %s\n", p.CraftType)
	}
	if p.URL != "" {
		fmt.Printf("URL:          %s\n", p.URL)
	}
	if p.Price != "" {
		fmt.Printf("Price:        %s\n", p.Price)
	}
	return nil
}
