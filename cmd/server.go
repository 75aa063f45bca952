package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/appclacks/dashboard/config"
	"github.com/appclacks/dashboard/internal/http"
	"github.com/appclacks/dashboard/internal/http/handlers"
	"github.com/appclacks/dashboard/internal/nezha"
	"github.com/appclacks/dashboard/pkg/poller"
	"github.com/appclacks/dashboard/pkg/server"
	"github.com/appclacks/dashboard/pkg/tracker"
	"github.com/facebookgo/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func buildServerCmd(logger *slog.Logger) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Runs the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			err := runServer(logger)
			if err != nil {
				logger.Error(err.Error())
				os.Exit(2)
			}

		},
	}
	return serverCmd
}

func loadConfiguration(path string) (*config.Configuration, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read configuration file: %w", err)
	}
	var config config.Configuration
	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("fail to parse yaml configuration file: %w", err)
	}
	return &config, nil
}

func runServer(logger *slog.Logger) error {
	config, err := loadConfiguration(configFile)
	if err != nil {
		return err
	}
	shutdownTracing, err := setupTracing(context.Background(), config.Tracing)
	if err != nil {
		return err
	}
	registry := prometheus.DefaultRegisterer.(*prometheus.Registry)
	upstream, err := nezha.New(logger, config.Upstream)
	if err != nil {
		return err
	}
	systemClock := clock.New()
	telemetryPoller, err := poller.New(logger, config.Poller, upstream, systemClock, registry)
	if err != nil {
		return err
	}
	trackerService := tracker.New(logger, telemetryPoller, systemClock)
	serverService := server.New(logger, telemetryPoller, systemClock)
	handlersBuilder := handlers.NewBuilder(trackerService, serverService, telemetryPoller)
	httpServer, err := http.NewServer(logger, config.HTTP, registry, handlersBuilder)
	if err != nil {
		return err
	}
	signals := make(chan os.Signal, 1)
	errChan := make(chan error)

	signal.Notify(
		signals,
		syscall.SIGINT,
		syscall.SIGTERM)

	telemetryPoller.Start()
	httpServer.Start()
	go func() {
		for sig := range signals {
			switch sig {
			case syscall.SIGINT, syscall.SIGTERM:
				logger.Info(fmt.Sprintf("received signal %s, starting shutdown", sig))
				signal.Stop(signals)
				telemetryPoller.Stop()
				err := httpServer.Stop()
				if tracingErr := shutdownTracing(context.Background()); tracingErr != nil {
					logger.Error(fmt.Sprintf("fail to stop tracing: %s", tracingErr.Error()))
				}
				errChan <- err
			}

		}
	}()
	exitErr := <-errChan
	return exitErr
}
