package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/footy-tipping/internal/adapter"
	"github.com/MKhiriev/footy-tipping/internal/client"
	"github.com/MKhiriev/footy-tipping/internal/config"
	"github.com/MKhiriev/footy-tipping/internal/logger"
	"github.com/MKhiriev/footy-tipping/internal/service"
	"github.com/MKhiriev/footy-tipping/internal/store"
	"github.com/MKhiriev/footy-tipping/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("footy-tipping-client", filepath.Join(filepath.Dir(cfg.Session.File), "client.log"))

	sessions, err := store.NewFileSessionStorage(cfg.Session.File)
	if err != nil {
		log.Error().Err(err).Msg("create session storage")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	app, err := client.NewApp(
		service.NewClientServices(sessions, serverAdapter),
		client.NewTerminalPrompter(os.Stdin, os.Stderr),
		os.Stdout,
		newBuildInfo(),
		log,
	)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Err(err).Strs("args", cfg.Args).Msg("command failed")
		fmt.Fprintln(os.Stderr, client.HumanizeError(err))
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}

	return 0
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
