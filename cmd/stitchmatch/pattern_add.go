// Pattern add command records a catalog pattern with its primary yarn
// requirement.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/pkg/types"
)

var (
	patternAddName        string
	patternAddDesigner    string
	patternAddWeight      string
	patternAddYardageMin  float64
	patternAddYardageMax  float64
	patternAddProjectType string
	patternAddCraftType   string
	patternAddURL         string
	patternAddPrice       string
)

var patternAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a pattern to the catalog",
	Long: `Add records a catalog pattern. Yardage bounds are optional, but a
pattern without any yardage bound can never match a stash.

Example:
  stitchmatch pattern add --name "Chunky Hat" --weight "Bulky (7 wpi)" --yardage-max 300
  stitchmatch pattern add --name "House Socks" --weight dk --yardage-min 200 --price free`,
	RunE: runPatternAdd,
}

func init() {
	patternAddCmd.Flags().StringVar(&patternAddName, "name", "", "pattern name (required)")
	patternAddCmd.Flags().StringVar(&patternAddDesigner, "designer", "", "designer name")
	patternAddCmd.Flags().StringVar(&patternAddWeight, "weight", "", "required yarn weight label")
	patternAddCmd.Flags().Float64Var(&patternAddYardageMin, "yardage-min", 0, "minimum yardage")
	patternAddCmd.Flags().Float64Var(&patternAddYardageMax, "yardage-max", 0, "maximum yardage")
	patternAddCmd.Flags().StringVar(&patternAddProjectType, "project-type", "", "project type (e.g. Hat, Shawl/Wrap)")
	patternAddCmd.Flags().StringVar(&patternAddCraftType, "craft-type", "", "craft type (e.g. Knitting, Crochet)")
	patternAddCmd.Flags().StringVar(&patternAddURL, "url", "", "external pattern link")
	patternAddCmd.Flags().StringVar(&patternAddPrice, "price", "", "price (e.g. free, $5.00)")
	_ = patternAddCmd.MarkFlagRequired("name")
}

func runPatternAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	p := types.Pattern{
		Name:        patternAddName,
		Designer:    patternAddDesigner,
		WeightLabel: patternAddWeight,
		ProjectType: patternAddProjectType,
		CraftType:   patternAddCraftType,
		URL:         patternAddURL,
		Price:       patternAddPrice,
	}
	if cmd.Flags().Changed("yardage-min") {
		p.YardageMin = &patternAddYardageMin
	}
	if cmd.Flags().Changed("yardage-max") {
		p.YardageMax = &patternAddYardageMax
	}

	id, err := backend.AddPattern(p)
	if err != nil {
		return fmt.Errorf("add pattern: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"pattern_id": id})
	}
	fmt.Printf("Added pattern: %s\n", id)
	return nil
}
