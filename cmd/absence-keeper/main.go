package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-absence-keeper/internal/adapter"
	"github.com/MKhiriev/go-absence-keeper/internal/client"
	"github.com/MKhiriev/go-absence-keeper/internal/config"
	"github.com/MKhiriev/go-absence-keeper/internal/crypto"
	"github.com/MKhiriev/go-absence-keeper/internal/logger"
	"github.com/MKhiriev/go-absence-keeper/internal/service"
	"github.com/MKhiriev/go-absence-keeper/internal/store"
	"github.com/MKhiriev/go-absence-keeper/internal/utils"
	"github.com/MKhiriev/go-absence-keeper/internal/workers"
	"github.com/MKhiriev/go-absence-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	if len(os.Args) > 1 && os.Args[1] == "version" {
		printBuildInfo(buildInfo)
		return
	}

	log := logger.NewClientLogger("absence-keeper")
	log.Info().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).Msg("starting")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	identity, err := utils.IdentityFromToken(cfg.Session.Token, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please sign in first (SESSION_TOKEN or -token).")
		log.Fatal().Err(err).Msg("no usable identity token")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, identity, log); err != nil {
		log.Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, identity models.Identity, log *logger.Logger) error {
	keyChain, err := crypto.NewKeyChain(cfg.App.KDFIterations)
	if err != nil {
		return fmt.Errorf("create key chain: %w", err)
	}

	textCipher, err := crypto.NewTextCipher(cfg.App.MasterKey, cfg.App.KDFIterations)
	switch {
	case errors.Is(err, crypto.ErrNoMasterKey):
		log.Warn().Msg("no master key configured, device cache entries are stored unwrapped")
	case err != nil:
		return fmt.Errorf("create text cipher: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, textCipher, log)
	if err != nil {
		return fmt.Errorf("create storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close storages")
		}
	}()

	if cfg.Adapter.BaseURL != "" {
		records, err := adapter.NewRESTUserRecords(cfg.Adapter, log)
		if err != nil {
			return fmt.Errorf("create REST adapter: %w", err)
		}
		records.SetToken(cfg.Session.Token)
		storages.UserRecords = records
	}

	services := service.NewServices(storages, keyChain, cfg.Security, log)
	jobs := workers.NewWorkers(workers.NewCacheGCJob(storages.DeviceCache, cfg.Workers.CacheGCInterval, log))

	app, err := client.NewApp(services, identity, cfg.Session, client.NewTerminalPrompter(os.Stdin, os.Stdout), jobs, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx, cfg.Args)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
