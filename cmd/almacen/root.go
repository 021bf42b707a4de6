// Root command for the almacen CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/internal/paths"
	"github.com/despensa-labs/almacen/pkg/almacen"
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
	flagAdapter   string
	flagNamespace string
	flagBaseURL   string
	flagAuthToken string
	flagJSON      bool
)

// loadedConfig holds the values read from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var loadedConfig fileConfig

var rootCmd = &cobra.Command{
	Use:     "almacen",
	Short:   "Almacen is a record store for small-business bookkeeping",
	Version: almacen.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.almacen)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.almacen-db)")
	rootCmd.PersistentFlags().StringVar(&flagAdapter, "adapter", "", "storage adapter: local, redis, or remote (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagNamespace, "namespace", "", "tenant namespace for stored collections")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "remote API base URL")
	rootCmd.PersistentFlags().StringVar(&flagAuthToken, "auth-token", "", "bearer token for the remote API")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(upsertCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(lotAddCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(overdueCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > ALMACEN_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, loadedConfig.DataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > ALMACEN_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
