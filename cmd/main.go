package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"support-desk/auth"
	"support-desk/infrastructure/nats"
	"support-desk/infrastructure/storage"
	"support-desk/internal"
	"support-desk/runtime"
	"support-desk/runtime/workers"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	natsio "github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns instead of exiting, so deferred cleanup always runs.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. NATS
	conn, err := natsio.Connect(config.NatsURL,
		natsio.Name(config.NatsName),
		natsio.MaxReconnects(-1),
		natsio.ReconnectWait(2*time.Second),
		natsio.DisconnectErrHandler(func(_ *natsio.Conn, err error) {
			log.Warn("NATS disconnected", "error", err)
		}),
		natsio.ReconnectHandler(func(nc *natsio.Conn) {
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return fmt.Errorf("nats connection failed: %w", err)
	}
	defer conn.Close()
	log.Info("Connected to NATS", "url", conn.ConnectedUrl())

	// 4. Dialog lifecycle
	registry := runtime.NewRegistry()
	locks := runtime.NewDialogLocks()
	router := runtime.NewRouter(log, nats.NewPublisher(log, conn))
	coordinator := runtime.NewCoordinator(
		log,
		storage.NewDialogRepository(db, log),
		storage.NewMessageRepository(db, log, config.HistoryPageSize),
		storage.NewProfileRepository(db),
		registry, locks, router,
		config.InactivityPolicy(),
	)
	tokens := auth.NewTokenManager(config.JwtSecret, config.JwtIssuer, config.AuthTokenDuration)

	// 5. Supervision
	// Subscriptions fail while NATS is away, so the server backs off instead of hammering it.
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.AddWithPolicy(
		workers.ExponentialRestart(config.RestartInterval, config.NatsRestartMaxBackoff, 0),
		nats.NewServer(log, conn, config.NatsQueueGroup, coordinator, tokens),
	)
	sup.Add(
		workers.NewInactivityReaper(log, coordinator, config.ReaperInterval, config.ReaperDialogTimeout),
		workers.NewHealthMonitoringWorker(log, registry, locks, config.MetricInterval),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/inspect", internal.NewInspectHandler(log, db, storage.DescribeRecord, func() map[string]any {
		return map[string]any{
			"present_sessions": registry.TotalPresent(),
			"locked_dialogs":   locks.Len(),
			"time":             time.Now().UTC().Format(time.RFC822),
		}
	}, 500))
	metricsServer := &http.Server{Addr: config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	// 7. Run until a signal or a fatal error
	var eg errgroup.Group
	eg.Go(func() error {
		sup.Run(ctx)
		return nil
	})
	eg.Go(func() error {
		log.Info("Starting metrics server", "address", config.MetricsAddr, "at", time.Now().UTC())
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			stop()
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	err = eg.Wait()
	log.Info("Program stopped cleanly")
	return err
}
