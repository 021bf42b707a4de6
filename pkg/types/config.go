package types

import "errors"

// Config selects and parameterizes the backing store. The tenant namespace
// is an explicit value handed to adapter constructors; nothing in this
// layer reads it from ambient process state.
type Config struct {
	// Adapter names the backing store explicitly. Empty means auto-detect:
	// remote when BaseURL is set, else redis when RedisAddr is set, else
	// local when DataDir is set.
	Adapter string `json:"adapter" yaml:"adapter"`

	// Namespace isolates tenants inside a shared store. Empty is a valid
	// namespace (single-tenant installs).
	Namespace string `json:"namespace" yaml:"namespace"`

	// DataDir holds the local adapter's SQLite database and JSONL exports.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// BaseURL is the remote service root, e.g. "https://pos.example.com".
	BaseURL string `json:"base_url" yaml:"base_url"`
	// AuthToken, when set, is sent as an opaque bearer token.
	AuthToken string `json:"auth_token" yaml:"auth_token"`

	RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `json:"redis_password" yaml:"redis_password"`
	RedisDB       int    `json:"redis_db" yaml:"redis_db"`

	// ReportPartialFailures makes the remote adapter's per-item bulk saves
	// return the joined per-item errors instead of silently substituting
	// the unsaved input items. The batch still runs to completion either way.
	ReportPartialFailures bool `json:"report_partial_failures" yaml:"report_partial_failures"`
}

// Supported adapter names.
const (
	AdapterLocal  = "local"
	AdapterRedis  = "redis"
	AdapterRemote = "remote"
)

// Config validation errors.
var (
	ErrAdapterUnknown    = errors.New("unknown adapter")
	ErrDataDirRequired   = errors.New("local adapter requires a data directory")
	ErrBaseURLRequired   = errors.New("remote adapter requires a base URL")
	ErrRedisAddrRequired = errors.New("redis adapter requires an address")
)

// knownAdapters lists the adapter names Validate accepts.
var knownAdapters = map[string]bool{
	AdapterLocal:  true,
	AdapterRedis:  true,
	AdapterRemote: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. An empty Adapter is valid; resolution
// then falls to auto-detection.
func (c Config) Validate() error {
	if c.Adapter != "" && !knownAdapters[c.Adapter] {
		return ErrAdapterUnknown
	}
	switch c.Adapter {
	case AdapterLocal:
		if c.DataDir == "" {
			return ErrDataDirRequired
		}
	case AdapterRemote:
		if c.BaseURL == "" {
			return ErrBaseURLRequired
		}
	case AdapterRedis:
		if c.RedisAddr == "" {
			return ErrRedisAddrRequired
		}
	}
	return nil
}
