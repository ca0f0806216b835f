package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/botranges/botranges/internal/aggregate"
	"github.com/botranges/botranges/internal/api"
	"github.com/botranges/botranges/internal/httpclient"
	"github.com/botranges/botranges/internal/registry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve aggregated crawler ranges over HTTP",
	Long: `Start an HTTP server exposing the aggregation pipeline.

Every /v1/ranges request runs a fresh aggregation against the upstream
sources; nothing is cached between requests. The same filter and format
parameters accepted by the CLI are available as query parameters.`,
	RunE: runServe,
}

const (
	gracefulTimeout   = 30 * time.Second
	serverReadTimeout = 10 * time.Second
	// A /v1/ranges request fans out to the upstream sources, so the write
	// timeout must cover a full aggregation pass.
	serverWriteTimeout = 120 * time.Second
	serverIdleTimeout  = 60 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().Duration("timeout", aggregate.DefaultFetchTimeout, "Per-source fetch timeout")
	serveCmd.Flags().Int("concurrency", aggregate.DefaultConcurrency, "Maximum parallel source fetches")
}

func runServe(cmd *cobra.Command, _ []string) error {
	address, _ := cmd.Flags().GetString("address")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	catalog := registry.NewDefaultCatalog()
	client := httpclient.NewDefaultClient(timeout)
	aggregator := aggregate.NewAggregator(client, concurrency, timeout)

	router := api.NewServer(catalog, aggregator, api.WithMiddlewares(api.LoggingMiddleware))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting botranges server", "address", address, "sources", catalog.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}
