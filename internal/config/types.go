// Package config handles configuration loading and defaults.
package config

import "github.com/SurajChaurasia84/TaskManager/internal/datadir"

// Store backend names.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Default values.
const (
	DefaultDataDir          = "~/" + datadir.Dir
	DefaultStore            = StoreSQLite
	DefaultOpTimeoutSeconds = 5
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// Config holds the full configuration for taskman.
type Config struct {
	// Paths
	DataDir string `toml:"data_dir"`

	// Persistence backend: sqlite, file, or memory.
	Store string `toml:"store"`

	// Host notifier command; empty disables reminder delivery.
	NotifyCommand string `toml:"notify_command"`

	// Bound on any single persistence operation.
	OpTimeoutSeconds int `toml:"op_timeout_seconds"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// setDefaults initializes cfg with the default values.
func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.Store = DefaultStore
	cfg.OpTimeoutSeconds = DefaultOpTimeoutSeconds
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
