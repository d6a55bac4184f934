package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	"github.com/jmagar/jupiter-dl/internal/api"
	"github.com/jmagar/jupiter-dl/internal/config"
	"github.com/jmagar/jupiter-dl/internal/download"
	"github.com/jmagar/jupiter-dl/internal/model"
	"github.com/jmagar/jupiter-dl/internal/ui"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ui.InitColorPalette(int(os.Stderr.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	args, p, err := config.ParseArgs(argv)
	switch {
	case err == nil:
	case p == nil:
		ui.PrintError(stderr, err.Error())
		return exitError
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return exitOK
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, args.Version())
		return exitOK
	default:
		p.WriteUsage(stderr)
		ui.PrintError(stderr, err.Error())
		return exitUsage
	}

	cfg, err := config.ParseCfg(args)
	if err != nil {
		if errors.Is(err, model.ErrUsage) {
			p.WriteUsage(stderr)
			ui.PrintError(stderr, err.Error())
			return exitUsage
		}
		ui.PrintError(stderr, "Failed to parse config/args.\n"+err.Error())
		return exitError
	}

	logger := ui.NewLogger(stderr, cfg.LogLevel)
	if config.LoadedConfigPath != "" {
		logger.Debug("Loaded config.", "path", config.LoadedConfigPath)
	}
	if cfg.APILogPath != "" {
		if err := api.InitAPILogger(cfg.APILogPath); err != nil {
			logger.Warn("API log disabled.", "error", err)
		} else {
			defer api.CloseAPILogger()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := download.Content(ctx, cfg, download.NewDeps(logger)); err != nil {
		ui.PrintError(stderr, err.Error())
		return exitError
	}
	return exitOK
}
