package config

import "time"

// LogConfig configures logging.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)." default:"info" enum:"trace,debug,info,warn,error" env:"SCM_LOG_LEVEL"`
	File  string `help:"Write logs to this file." type:"path" env:"SCM_LOG_FILE"`
}

// Globals are the flags shared by every command.
type Globals struct {
	Config string    `help:"Configuration file (YAML or TOML)." type:"path" env:"SCM_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log-"`
	Debug  bool      `help:"Trace shortcut dispatch decisions." env:"SCM_DEBUG"`
	Env    []string  `help:"Extra .env files to load before the defaults." type:"path" sep:","`
}

// RunConfig configures the interactive host.
type RunConfig struct {
	Bindings []string      `help:"Binding files to load." type:"existingfile" env:"SCM_BINDINGS" sep:","`
	Script   []string      `help:"Lua scripts registering additional handlers." type:"existingfile" env:"SCM_SCRIPTS" sep:","`
	Watch    bool          `help:"Reload binding files when they change." env:"SCM_WATCH"`
	Debounce time.Duration `help:"Delay before a changed file is reloaded." default:"100ms" env:"SCM_DEBOUNCE"`
	Layer    string        `help:"Layer to activate on start." env:"SCM_LAYER"`
}
