// Package datadir defines the on-disk layout of the taskman data
// directory.
package datadir

import "path/filepath"

const (
	// Dir is the name of the taskman data directory under $HOME.
	Dir = ".taskman"

	// DBFile is the sqlite database file name (inside the data dir).
	DBFile = "taskman.db"

	// KVFile is the JSON store file name (inside the data dir).
	KVFile = "kv.json"

	// ConfigFile is the config file name (inside the data dir, and as
	// a project-level file in the working directory).
	ConfigFile = "taskman.toml"

	// HiddenConfigFile is the dotted project-level config file name.
	HiddenConfigFile = ".taskman.toml"
)

// DBPath returns the full path to the sqlite database within a data
// directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFile)
}

// KVPath returns the full path to the JSON store file within a data
// directory.
func KVPath(dataDir string) string {
	return filepath.Join(dataDir, KVFile)
}

// ConfigPath returns the full path to the config file within a data
// directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFile)
}
