// Match command runs the stash-matching engine for one user.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/internal/match"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

var (
	matchUser        string
	matchPage        int
	matchPageSize    int
	matchProjectType string
	matchCraftType   string
	matchWeight      string
	matchDesigner    string
	matchFreeOnly    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find patterns craftable from a user's stash",
	Long: `Match evaluates every catalog pattern against the user's aggregated
stash, accounting for weight-class substitution and held-together yarn
derivations, and prints one page of the matched set.

Example:
  stitchmatch match --user holly
  stitchmatch match --user holly --project-type hat --free-only
  stitchmatch match --user holly --page 2 --page-size 10 --json`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchUser, "user", "", "user ID (required)")
	matchCmd.Flags().IntVar(&matchPage, "page", 1, "page number")
	matchCmd.Flags().IntVar(&matchPageSize, "page-size", match.DefaultPageSize, "patterns per page")
	matchCmd.Flags().StringVar(&matchProjectType, "project-type", "", "filter by project type")
	matchCmd.Flags().StringVar(&matchCraftType, "craft-type", "", "filter by craft type")
	matchCmd.Flags().StringVar(&matchWeight, "weight", "", "restrict matching to one stash weight class")
	matchCmd.Flags().StringVar(&matchDesigner, "designer", "", "filter by designer substring")
	matchCmd.Flags().BoolVar(&matchFreeOnly, "free-only", false, "only free patterns")
	_ = matchCmd.MarkFlagRequired("user")
}

func runMatch(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	engine := match.NewEngine(backend, backend, slog.Default())
	resp, err := engine.MatchPatterns(matchUser, types.MatchFilters{
		ProjectType: matchProjectType,
		CraftType:   matchCraftType,
		Weight:      matchWeight,
		Designer:    matchDesigner,
		FreeOnly:    matchFreeOnly,
	}, matchPage, matchPageSize)
	if err != nil {
		return fmt.Errorf("match patterns: %w", err)
	}

	if flagJSON {
		return printJSON(resp)
	}

	pg := resp.Pagination
	fmt.Printf("%d matching patterns (page %d of %d)\n", pg.Total, pg.Page, pg.Pages)
	for _, p := range resp.Patterns {
		line := fmt.Sprintf("  %-30s %-20s %s", p.Name, p.Designer, p.WeightLabel)
		if p.HeldYarnDescription != "" {
			line += "  [" + p.HeldYarnDescription + "]"
		}
		fmt.Println(line)
	}
	return nil
}
