// Pattern list command shows catalog patterns with optional filters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/internal/match"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

var (
	patternListProjectType string
	patternListCraftType   string
	patternListDesigner    string
)

var patternListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog patterns",
	Long: `List shows catalog patterns, optionally narrowed by project type,
craft type, or designer substring.

Example:
  stitchmatch pattern list
  stitchmatch pattern list --project-type shawl-wrap --designer jane`,
	RunE: runPatternList,
}

func init() {
	patternListCmd.Flags().StringVar(&patternListProjectType, "project-type", "", "filter by project type")
	patternListCmd.Flags().StringVar(&patternListCraftType, "craft-type", "", "filter by craft type")
	patternListCmd.Flags().StringVar(&patternListDesigner, "designer", "", "filter by designer substring")
}

func runPatternList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	patterns, err := backend.FetchPatternCatalog(types.CatalogFilter{
		ProjectType: match.MapProjectType(patternListProjectType),
		CraftType:   patternListCraftType,
		Designer:    patternListDesigner,
	})
	if err != nil {
		return fmt.Errorf("fetch pattern catalog: %w", err)
	}

	if flagJSON {
		return printJSON(patterns)
	}
	for _, p := range patterns {
		fmt.Printf("%s  %-30s %-20s %s\n", p.PatternID, p.Name, p.Designer, p.WeightLabel)
	}
	return nil
}
