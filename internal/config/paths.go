package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName names the configuration directory and files.
const AppName = "scm"

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "SCM_CONFIG"

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, AppName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// CandidatePaths returns the configuration files to try, per format, in
// priority order. A user supplied path comes first and is routed by its
// extension; unknown extensions are treated as TOML.
func CandidatePaths(userPath string) (yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		default:
			add(&tomlPaths, userPath)
		}
	}

	dirs := make([]string, 0, 3)
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if runtime.GOOS != "windows" {
		dirs = append(dirs, filepath.Join("/etc", AppName))
	}

	for _, dir := range dirs {
		add(&yamlPaths, filepath.Join(dir, AppName+".yaml"))
		add(&yamlPaths, filepath.Join(dir, AppName+".yml"))
		add(&tomlPaths, filepath.Join(dir, AppName+".toml"))
	}
	return yamlPaths, tomlPaths
}

// FindUserConfig returns the value of --config from args, falling back to
// the SCM_CONFIG environment variable.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv(EnvConfig)
}
