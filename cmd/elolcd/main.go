package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/elolcd/internal/cli"
	"github.com/KirkDiggler/elolcd/internal/common/clock"
	"github.com/KirkDiggler/elolcd/internal/common/uuid"
	"github.com/KirkDiggler/elolcd/internal/config"
	"github.com/KirkDiggler/elolcd/internal/logging"
	"github.com/KirkDiggler/elolcd/internal/models"
	"github.com/KirkDiggler/elolcd/internal/repositories/fireteam"
	"github.com/KirkDiggler/elolcd/internal/repositories/identity"
	"github.com/KirkDiggler/elolcd/internal/services/tracker"
)

func main() {
	opts, err := cli.Parse(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, logCloser, err := logging.Setup(opts.LogLevel, opts.LogFile)
	if err != nil {
		logrus.Fatal(err)
	}
	defer logCloser.Close()

	if opts.ListModes {
		for _, mode := range models.Modes() {
			fmt.Println(mode.Name)
		}
		return
	}

	logger.Info("Starting up...")

	loaded, err := config.LoadEnvFile(opts.EnvFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load env file")
	}
	if loaded {
		logger.WithField("path", opts.EnvFile).Debug("Loaded env file")
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load config")
	}

	mode := models.ModeByName(opts.Mode)
	if !mode.Known() {
		logger.WithField("mode", opts.Mode).Warn("Unknown mode, using mode code 0")
	}

	disp, err := openDisplay(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open display")
	}

	// No timeout: requests end with the interrupt context or the transport defaults
	httpClient := &http.Client{}

	identityRepo, err := identity.NewHTTP(&identity.Config{
		HTTPClient: httpClient,
		BaseURL:    cfg.Endpoints.DirectoryURL,
		APIKey:     cfg.APIKey,
		Platform:   cfg.Endpoints.Platform,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create identity repository")
	}

	fireteamRepo, err := fireteam.NewHTTP(&fireteam.Config{
		HTTPClient: httpClient,
		BaseURL:    cfg.Endpoints.FireteamURL,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create fireteam repository")
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		Handle:        opts.Handle,
		Mode:          mode,
		UpdatePause:   cfg.Timing.UpdatePause,
		BlinkStep:     cfg.Timing.BlinkStep,
		PollInterval:  cfg.Timing.PollInterval,
		IdentityRepo:  identityRepo,
		FireteamRepo:  fireteamRepo,
		Display:       disp,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create tracker service")
	}

	// Wait for interrupt signal to gracefully shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := trackerSvc.Run(ctx)

	if err := disp.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close display")
	}

	if runErr != nil {
		logger.WithError(runErr).Fatal("Tracker stopped")
	}

	logger.Info("Tracker has been shut down")
}
