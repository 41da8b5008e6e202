package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/diindiin/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize diindiin configuration and storage",
	Long:  "Create the configuration and data directories, write a default config.yaml, then create the database schema.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := backend.Detach(); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "diindiin initialized successfully")
		fmt.Fprintln(out, "  config:", paths.ConfigFile(configDir))
		fmt.Fprintln(out, "  data:  ", dataDir)
		return nil
	},
}
