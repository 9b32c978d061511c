// Root command for the stitchmatch CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hollyschr/StitchMatch/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:   "stitchmatch",
	Short: "Match craft patterns against your yarn stash",
	Long: `Stitchmatch keeps a yarn stash and a pattern catalog, and answers
which patterns are craftable from the stash alone, accounting for
weight-class substitution and held-together yarn derivations.`,
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stitchmatch-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(stashCmd)
	rootCmd.AddCommand(patternCmd)
	rootCmd.AddCommand(matchCmd)
}

// resolveDataDir returns the data directory path following the precedence
// chain: --data-dir flag > config.yaml data_dir > STITCHMATCH_DATA_DIR env >
// default $(CWD)/.stitchmatch-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > STITCHMATCH_CONFIG_DIR env >
// DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
