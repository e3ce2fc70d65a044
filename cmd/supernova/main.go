package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/supernova/internal/application"
	"github.com/eugenenazirov/supernova/internal/config"
	"github.com/eugenenazirov/supernova/internal/logging"
)

var newLogger = logging.New

func main() {
	kingpin.FatalIfError(run(os.Args[1:], os.Stdout), "")
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("supernova", "Supernova config files - create, inspect and locate per-subsystem configs")
	configFile := kingpinApp.Flag("config", "Path to YAML settings file").String()
	configRoot := kingpinApp.Flag("config-root", "Directory holding the config files (defaults to $SUPERNOVA_CONFIG_PATH or .)").String()
	codec := kingpinApp.Flag("codec", "Storage format of config files (json or yaml)").String()
	format := kingpinApp.Flag("format", "Output format for show (json or yaml)").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	logEncoding := kingpinApp.Flag("log-encoding", "Log encoding (json or console)").String()

	initCmd := kingpinApp.Command("init", "Write default config files that do not exist yet")
	showCmd := kingpinApp.Command("show", "Print a config, falling back to its defaults")
	showName := showCmd.Arg("name", "Config name").Required().String()
	listCmd := kingpinApp.Command("list", "List registered configs and their files")
	pathCmd := kingpinApp.Command("path", "Print the file path of a config")
	pathName := pathCmd.Arg("name", "Config name").Required().String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(&config.CLIOverrides{
		ConfigFile:  *configFile,
		ConfigRoot:  configRoot,
		Codec:       codec,
		Format:      format,
		LogLevel:    logLevel,
		LogEncoding: logEncoding,
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	switch command {
	case initCmd.FullCommand():
		err = app.Init()
	case showCmd.FullCommand():
		err = app.Show(stdout, *showName)
	case listCmd.FullCommand():
		err = app.List(stdout)
	case pathCmd.FullCommand():
		var path string
		if path, err = app.Path(*pathName); err == nil {
			_, err = fmt.Fprintln(stdout, path)
		}
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	return err
}
