package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME, the user config dir, and the working directory
// at empty temp dirs so no real config files leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })
	for _, key := range []string{
		"TASKMAN_DATA_DIR", "TASKMAN_STORE", "TASKMAN_NOTIFY_COMMAND",
		"TASKMAN_OP_TIMEOUT", "TASKMAN_LOG_LEVEL", "TASKMAN_LOG_FORMAT",
		"TASKMAN_LOG_TIMESTAMPS", "TASKMAN_LOG_CALLER",
	} {
		t.Setenv(key, "")
	}
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.DataDir != filepath.Join(home, ".taskman") {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.OpTimeoutSeconds != DefaultOpTimeoutSeconds {
		t.Errorf("OpTimeoutSeconds = %d", cfg.OpTimeoutSeconds)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadUserConfigFile(t *testing.T) {
	isolate(t)
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".taskman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "store = \"file\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, "taskman.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Errorf("Store = %q, want file", cfg.Store)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	isolate(t)
	home, _ := os.UserHomeDir()
	dir := filepath.Join(home, ".taskman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "taskman.toml"), []byte("store = \"sqlite\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("taskman.toml", []byte("store = \"memory\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("Store = %q, want memory (project file wins)", cfg.Store)
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("taskman.toml", []byte("store = \"file\"\nop_timeout_seconds = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKMAN_STORE", "memory")
	t.Setenv("TASKMAN_OP_TIMEOUT", "9")
	t.Setenv("TASKMAN_LOG_TIMESTAMPS", "yes")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("Store = %q, want memory (env wins over files)", cfg.Store)
	}
	if cfg.OpTimeoutSeconds != 9 {
		t.Errorf("OpTimeoutSeconds = %d, want 9", cfg.OpTimeoutSeconds)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps should parse truthy env value")
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("TASKMAN_STORE", "file")

	dataDir := t.TempDir()
	cfg, err := Load(newFlagSet(), []string{"-store", "memory", "-data-dir", dataDir, "-notify-command", "/usr/bin/notifier"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("Store = %q, want memory (flags win)", cfg.Store)
	}
	if cfg.DataDir != dataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dataDir)
	}
	if cfg.NotifyCommand != "/usr/bin/notifier" {
		t.Errorf("NotifyCommand = %q", cfg.NotifyCommand)
	}
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	isolate(t)
	if _, err := Load(newFlagSet(), []string{"-store", "redis"}); err == nil {
		t.Fatal("expected an error for an unknown store backend")
	}
}

func TestNonPositiveTimeoutFallsBack(t *testing.T) {
	isolate(t)
	cfg, err := Load(newFlagSet(), []string{"-op-timeout", "0"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpTimeoutSeconds != DefaultOpTimeoutSeconds {
		t.Errorf("OpTimeoutSeconds = %d, want default", cfg.OpTimeoutSeconds)
	}
}

func TestDataDirPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.SQLitePath(); got != filepath.Join("/data", "taskman.db") {
		t.Errorf("SQLitePath = %q", got)
	}
	if got := cfg.FilePath(); got != filepath.Join("/data", "kv.json") {
		t.Errorf("FilePath = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/notes", filepath.Join(home, "notes")},
		{"/abs/path", "/abs/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
