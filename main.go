package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/config"
	"github.com/mauv0809/swiss-ladder/internal/database"
	server "github.com/mauv0809/swiss-ladder/internal/http"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
	"github.com/mauv0809/swiss-ladder/internal/notifier/slack"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/pubsub"
	"github.com/mauv0809/swiss-ladder/internal/roster"
	"github.com/mauv0809/swiss-ladder/internal/scheduler"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %s", err)
	}
	defer closeLog()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, dbTeardown, err := database.InitDB(ctx, database.Options{
		Path:          cfg.DBName,
		PrimaryURL:    cfg.Turso.PrimaryURL,
		AuthToken:     cfg.Turso.AuthToken,
		RetryInterval: cfg.DB.RetryInterval,
		MaxRetries:    cfg.DB.MaxRetries,
		OnConnectError: func(attempt uint64, err error) {
			metricsSvc.IncDBConnectErrors()
		},
	})
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	var events pubsub.PubSubClient
	if cfg.ProjectID != "" {
		events, err = pubsub.New(ctx, cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	} else {
		log.Warn("GCP_PROJECT not set, events will only be logged")
		events = pubsub.NewLocal()
	}
	defer events.Close()

	players := roster.New(gw, metricsSvc)
	matches := match.New(gw, metricsSvc)
	standingsSvc := standings.New(gw)
	pairings := pairing.New(gw, metricsSvc)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	if cfg.StandingsPostInterval > 0 {
		sched, err := scheduler.New(cfg.StandingsPostInterval, standingsSvc, notifier)
		if err != nil {
			log.Fatalf("Failed to initialize scheduler: %s", err)
		}
		sched.Start()
		defer func() {
			if err := sched.Shutdown(); err != nil {
				log.Error("Scheduler shutdown failed", "error", err)
			}
		}()
	}

	s := server.NewServer(
		gw,
		players,
		matches,
		standingsSvc,
		pairings,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
		events,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")

		// Create a context with a timeout for the shutdown.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
