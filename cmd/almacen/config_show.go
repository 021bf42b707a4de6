// Config command prints the effective configuration after flag, file, and
// environment precedence is applied.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	adapter := firstNonEmpty(flagAdapter, loadedConfig.Adapter)
	baseURL := firstNonEmpty(flagBaseURL, loadedConfig.BaseURL)
	if adapter == "" {
		switch {
		case baseURL != "":
			adapter = types.AdapterRemote
		case loadedConfig.RedisAddr != "":
			adapter = types.AdapterRedis
		default:
			adapter = types.AdapterLocal
		}
	}

	effective := map[string]any{
		"config_dir":              configDir,
		"data_dir":                dataDir,
		"adapter":                 adapter,
		"namespace":               firstNonEmpty(flagNamespace, loadedConfig.Namespace),
		"base_url":                baseURL,
		"redis_addr":              loadedConfig.RedisAddr,
		"redis_db":                loadedConfig.RedisDB,
		"report_partial_failures": loadedConfig.ReportPartials,
	}
	if flagJSON {
		return printJSON(effective)
	}

	fmt.Printf("config dir:  %s\n", configDir)
	fmt.Printf("data dir:    %s\n", dataDir)
	fmt.Printf("adapter:     %s\n", adapter)
	fmt.Printf("namespace:   %s\n", effective["namespace"])
	fmt.Printf("base url:    %s\n", baseURL)
	fmt.Printf("redis addr:  %s (db %d)\n", loadedConfig.RedisAddr, loadedConfig.RedisDB)
	fmt.Printf("report partial failures: %v\n", loadedConfig.ReportPartials)
	return nil
}
