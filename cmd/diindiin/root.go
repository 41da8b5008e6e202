// Root command for the diindiin CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/diindiin/internal/paths"
)

const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

// conf holds the settings loaded by PersistentPreRunE so all subcommands
// can use them.
var conf settings

var rootCmd = &cobra.Command{
	Use:     "diindiin",
	Short:   "diindiin tracks money, investments, OKRs and habits by chat",
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		conf, err = readSettings(v)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(sayCmd)
}

// resolveDataDir applies --data-dir > config.yaml data_dir > DIINDIIN_DATA_DIR
// > $(CWD)/.diindiin-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, conf.DataDir)
}

// resolveConfigDir applies --config-dir > DIINDIIN_CONFIG_DIR > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
