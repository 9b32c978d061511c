// Stash list command shows a user's stash, optionally aggregated by
// canonical weight class.
package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/internal/match"
	"github.com/hollyschr/StitchMatch/internal/weights"
	"github.com/hollyschr/StitchMatch/pkg/types"
)

var (
	stashListUser   string
	stashListTotals bool
)

var stashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's stash entries",
	Long: `List shows every stash entry for a user. With --totals, entries are
aggregated into total yardage per canonical weight class instead.

Example:
  stitchmatch stash list --user holly
  stitchmatch stash list --user holly --totals`,
	RunE: runStashList,
}

func init() {
	stashListCmd.Flags().StringVar(&stashListUser, "user", "", "user ID (required)")
	stashListCmd.Flags().BoolVar(&stashListTotals, "totals", false, "aggregate by weight class")
	_ = stashListCmd.MarkFlagRequired("user")
}

func runStashList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if stashListTotals {
		entries, err := backend.FetchStash(stashListUser)
		if err != nil {
			return fmt.Errorf("fetch stash: %w", err)
		}
		totals := match.Aggregate(weights.NewNormalizer(slog.Default()), entries)

		if flagJSON {
			out := make(map[string]float64, len(totals))
			for class, yardage := range totals {
				out[string(class)] = yardage
			}
			return printJSON(out)
		}
		for _, class := range types.WeightClasses {
			if yardage, ok := totals[class]; ok {
				fmt.Printf("%-22s %.0f yd\n", class.Display(), yardage)
			}
		}
		return nil
	}

	records, err := backend.ListStashEntries(stashListUser)
	if err != nil {
		return fmt.Errorf("list stash: %w", err)
	}

	if flagJSON {
		return printJSON(records)
	}
	for _, r := range records {
		fmt.Printf("%s  %-24s %.0f yd\n", r.EntryID, r.Entry.WeightLabel, r.Entry.Yardage)
	}
	return nil
}
