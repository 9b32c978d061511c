// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the SQLite database in the data directory.

Example:
  stitchmatch init
  stitchmatch init --data-dir ./my-stash`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml are ensured by PersistentPreRunE.
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized stitchmatch\n  config: %s\n  data:   %s\n", configDir, dataDir)
	return nil
}
