package config

import "flag"

// parseFlags defines and parses the global CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("taskman", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Store backend (sqlite|file|memory)")
	fs.StringVar(&cfg.NotifyCommand, "notify-command", cfg.NotifyCommand, "Host notifier command")
	fs.IntVar(&cfg.OpTimeoutSeconds, "op-timeout", cfg.OpTimeoutSeconds, "Persistence operation timeout (seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller in logs")

	return fs.Parse(args)
}
