package main

import (
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/Alia5/inputmux/backend"
	"github.com/Alia5/inputmux/internal/config"
	"github.com/Alia5/inputmux/internal/configpaths"
	"github.com/Alia5/inputmux/internal/log"
)

var loaders = map[configpaths.Format]kong.ConfigurationLoader{
	configpaths.JSON: kong.JSON,
	configpaths.YAML: kongyaml.Loader,
	configpaths.TOML: kongtoml.Loader,
}

func main() {
	var cli config.CLI
	ctx := kong.Parse(&cli, append([]kong.Option{
		kong.Name("inputmux"),
		kong.Description("Capture and inject keyboard and mouse input on macOS, Linux and Windows"),
		kong.UsageOnError(),
	}, configOptions(os.Args[1:])...)...)

	logger, closers, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { closeAll(closers) }()

	// stdout belongs to command output such as listen --format json.
	rawLogger, rawFile, err := cli.Log.RawLogger(os.Stderr)
	if err != nil {
		logger.Error("Raw event trace disabled", "file", cli.Log.RawFile, "error", err)
	}
	if rawFile != nil {
		closers = append(closers, rawFile)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))
	ctx.Bind(cli.Backend.Options(logger, rawLogger))

	err = ctx.Run()
	if errors.Is(err, backend.ErrUnsupported) {
		logger.Error("No input backend for this build; on macOS build with CGO_ENABLED=1")
	}
	if err != nil {
		// FatalIfErrorf exits without running deferred calls.
		closeAll(closers)
	}
	ctx.FatalIfErrorf(err)
}

// configOptions loads config files in priority order; flags and env override
// their values.
func configOptions(args []string) []kong.Option {
	candidates := configpaths.Candidates(configpaths.UserConfigPath(args, config.ConfigEnv(), os.LookupEnv))
	opts := make([]kong.Option, 0, len(configpaths.Formats))
	for _, f := range configpaths.Formats {
		opts = append(opts, kong.Configuration(loaders[f], candidates[f]...))
	}
	return opts
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
