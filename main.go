package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/config"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/database"
	server "github.com/Createman8/HogBalls-Upgrade-2.0/internal/http"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/metrics"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/notifier/slack"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/processor"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/pubsub"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/roundstore"
	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/scorekeeper"
	"github.com/charmbracelet/log"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	courses := course.NewLibrary()
	if cfg.CoursesDir != "" {
		n, err := courses.LoadDir(cfg.CoursesDir)
		if err != nil {
			log.Fatalf("Failed to load courses: %s", err)
		}
		log.Info("Courses loaded", "dir", cfg.CoursesDir, "count", n)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var n notifier.Notifier = notifier.Nop{}
	if cfg.Slack.Enabled() {
		n = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Warn("Slack is not configured, notifications are disabled")
	}

	var events pubsub.PubSubClient = pubsub.Nop{}
	if cfg.ProjectID != "" {
		if events, err = pubsub.New(cfg.ProjectID); err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	}
	defer events.Close()

	store := roundstore.New(db)
	counters := metrics.New(db)
	keeper := scorekeeper.New(store, courses, n, metricsSvc, counters, events, cfg.DefaultStake)
	proc := processor.New(store, courses, counters)
	s := server.NewServer(keeper, proc, events, metricsHandler, cfg, n)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
