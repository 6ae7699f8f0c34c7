package config

import (
	"os"
	"strconv"
	"strings"
)

// loadFromEnv overrides config from TASKMAN_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKMAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKMAN_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("TASKMAN_NOTIFY_COMMAND"); v != "" {
		cfg.NotifyCommand = v
	}
	if v := os.Getenv("TASKMAN_OP_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.OpTimeoutSeconds = n
		}
	}
	if v := os.Getenv("TASKMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKMAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKMAN_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("TASKMAN_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
