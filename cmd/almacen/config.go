// Config loading for the almacen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyAdapter        = "adapter"
	cfgKeyNamespace      = "namespace"
	cfgKeyDataDir        = "data_dir"
	cfgKeyBaseURL        = "base_url"
	cfgKeyAuthToken      = "auth_token"
	cfgKeyRedisAddr      = "redis_addr"
	cfgKeyRedisPassword  = "redis_password"
	cfgKeyRedisDB        = "redis_db"
	cfgKeyReportPartials = "report_partial_failures"
)

// fileConfig is the subset of settings read from config.yaml. Flags and
// environment variables layer on top of these in buildConfig.
type fileConfig struct {
	Adapter        string
	Namespace      string
	DataDir        string
	BaseURL        string
	AuthToken      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ReportPartials bool
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Almacen CLI configuration

# Storage adapter: local, redis, or remote.
# Left empty, the adapter is picked from whichever connection setting is
# present (base_url > redis_addr > data_dir).
adapter:

# Tenant namespace for stored collections (optional)
# namespace:

# Local adapter: data directory (optional; overridable by --data-dir flag)
# data_dir:

# Remote adapter
# base_url:
# auth_token:

# Redis adapter
# redis_addr:
# redis_password:
# redis_db: 0

# Report per-item failures of remote bulk saves instead of masking them
report_partial_failures: false
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (fileConfig, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return fileConfig{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fileConfig{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	return fileConfig{
		Adapter:        v.GetString(cfgKeyAdapter),
		Namespace:      v.GetString(cfgKeyNamespace),
		DataDir:        v.GetString(cfgKeyDataDir),
		BaseURL:        v.GetString(cfgKeyBaseURL),
		AuthToken:      v.GetString(cfgKeyAuthToken),
		RedisAddr:      v.GetString(cfgKeyRedisAddr),
		RedisPassword:  v.GetString(cfgKeyRedisPassword),
		RedisDB:        v.GetInt(cfgKeyRedisDB),
		ReportPartials: v.GetBool(cfgKeyReportPartials),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
