// Package main is the entry point for the scm shortcut manager.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/dshills/scm/internal/cmd"
	"github.com/dshills/scm/internal/config"
	"github.com/dshills/scm/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// CLI is the scm command line.
type CLI struct {
	config.Globals `embed:""`

	Version kong.VersionFlag `help:"Print version information and exit."`

	Normalize cmd.Normalize `cmd:"" help:"Print the canonical form of shortcuts."`
	Check     cmd.Check     `cmd:"" help:"Validate binding files."`
	List      cmd.List      `cmd:"" help:"List the shortcuts of binding files."`
	Run       cmd.Run       `cmd:"" help:"Dispatch key presses in an interactive terminal."`
}

func main() {
	// Values from .env files act as environment defaults for the flags.
	if _, err := config.PreloadEnv(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString("failed to load env files: " + err.Error() + "\n")
		os.Exit(2)
	}

	userCfg := config.FindUserConfig(os.Args[1:])
	yamlPaths, tomlPaths := config.CandidatePaths(userCfg)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(config.AppName),
		kong.Description("Scoped, layered keyboard shortcut manager"),
		kong.UsageOnError(),
		kong.Vars{"version": version + " (" + commit + ")"},
		// Flags and env override config file values.
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	// The interactive hosts own the terminal; log only to a file there.
	if strings.HasPrefix(ctx.Command(), "run") && cli.Log.File == "" {
		logger = log.Discard()
	}

	ctx.Bind(logger)
	ctx.Bind(&cli.Globals)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
