package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are loaded by LoadEnvFiles when no files are given.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads environment variables from .env style files.
// Variables already set in the environment are left untouched and missing
// files are skipped. It returns the files that were loaded.
func LoadEnvFiles(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}

	var loaded []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, NewParseError("env", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}

// FindEnvFiles returns the files named by --env flags in args. The flag may
// repeat and takes a comma separated list.
func FindEnvFiles(args []string) []string {
	var files []string
	add := func(v string) {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
	}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--env="); ok {
			add(v)
			continue
		}
		if a == "--env" && i+1 < len(args) {
			i++
			add(args[i])
		}
	}
	return files
}

// PreloadEnv loads the --env files found in args followed by
// DefaultEnvFiles. It runs before flag parsing so the files feed the
// environment defaults of every flag. Earlier files win.
func PreloadEnv(args []string) ([]string, error) {
	files := append(FindEnvFiles(args), DefaultEnvFiles...)
	return LoadEnvFiles(files...)
}
