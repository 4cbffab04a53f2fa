// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-stego/internal/adapter"
	"github.com/MKhiriev/go-stego/internal/config"
	"github.com/MKhiriev/go-stego/internal/logger"
	"github.com/MKhiriev/go-stego/internal/service"
	"github.com/MKhiriev/go-stego/models"
	"github.com/atotto/clipboard"
)

const appName = "stego"

// App dispatches command-line arguments to subcommands.
type App struct {
	cfg       config.StructuredConfig
	buildInfo models.AppBuildInfo

	printer *Printer
	stderr  io.Writer
	logger  *logger.Logger

	newLocal  func(cfg config.StructuredConfig, logger *logger.Logger) (service.StegoService, error)
	newRemote func(cfg config.Adapter, logger *logger.Logger) (adapter.StegoAdapter, error)
	copyText  func(text string) error
}

// NewApp builds an App writing command output to stdout and usage text to
// stderr. The logger is created on Run once -verbose is known.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	return &App{
		cfg:       *cfg,
		buildInfo: buildInfo,
		printer:   NewPrinter(stdout),
		stderr:    stderr,
		newLocal:  newLocalStegoService,
		newRemote: adapter.NewHTTPStegoAdapter,
		copyText:  clipboard.WriteAll,
	}
}

func newLocalStegoService(cfg config.StructuredConfig, logger *logger.Logger) (service.StegoService, error) {
	services, err := service.NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}
	return services.StegoService, nil
}

// Printer returns the printer used for command output.
func (a *App) Printer() *Printer {
	return a.printer
}

// Run parses global flags, then runs the named subcommand with the rest of
// args. A -h on any level yields flag.ErrHelp.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	verbose := fs.Bool("verbose", false, "log diagnostics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: %s [-verbose] <hide|reveal|capacity|version> [flags]\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if a.logger == nil {
		a.logger = logger.NewCLILogger(appName, *verbose)
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return ErrMissingCommand
	}

	command, rest := fs.Arg(0), fs.Args()[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "hide":
		return a.hide(ctx, rest)
	case "reveal":
		return a.reveal(ctx, rest)
	case "capacity":
		return a.capacity(ctx, rest)
	case "version":
		return a.version(ctx, rest)
	default:
		fs.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// backend returns the remote adapter when an address is configured and the
// local stego service otherwise.
func (a *App) backend(remote string, bytesPerBit int) (service.StegoService, error) {
	if remote != "" {
		adapterCfg := a.cfg.Adapter
		adapterCfg.HTTPAddress = remote
		a.logger.Debug().Str("remote", remote).Msg("using remote server")
		return a.newRemote(adapterCfg, a.logger)
	}

	cfg := a.cfg
	if bytesPerBit != 0 {
		cfg.Stego.BytesPerBit = bytesPerBit
	}
	return a.newLocal(cfg, a.logger)
}

// IsUsageError reports whether err came from bad arguments rather than from
// the work itself.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingCommand) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, flag.ErrHelp)
}
