package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"edgefinder/internal/advisor"
	"edgefinder/internal/alerts"
	"edgefinder/internal/catalog"
	"edgefinder/internal/config"
	"edgefinder/internal/logger"
	"edgefinder/internal/metrics"
	"edgefinder/internal/scheduler"
	"edgefinder/internal/server"
	"edgefinder/internal/session"
)

func main() {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("edgefinder stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openCatalog(cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer store.Close()

	m := metrics.New()
	notifier := alerts.NewNotifier(cfg.AlertCooldown, log.Named("alerts"), m)

	opts := []advisor.Option{
		advisor.WithTimeout(cfg.AdvisorTimeout),
		advisor.WithLogger(log.Named("advisor")),
		advisor.WithMetrics(m),
		advisor.WithNotifier(notifier),
	}
	if cfg.AdvisorConfigured() {
		opts = append(opts, advisor.WithCompleter(advisor.NewAzureCompleter(advisor.AzureConfig{
			Endpoint:   cfg.AzureEndpoint,
			APIKey:     cfg.AzureKey,
			APIVersion: cfg.AzureAPIVersion,
			Deployment: cfg.AzureDeployment,
		})))
	}
	responder := advisor.NewResponder(opts...)

	sessions := session.NewManager(
		session.Deps{Catalog: store, Advisor: responder, Alerts: notifier, Metrics: m},
		session.Config{
			StartingBalance: cfg.StartingBalance,
			TTL:             cfg.SessionTTL,
			ChatRatePerMin:  cfg.ChatRatePerMin,
			Logger:          log.Named("sessions"),
		},
	)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	cron := scheduler.New(log.Named("cron"), ctx, loc)
	if err := scheduler.Register(cron, sessions, notifier, scheduler.Schedules{
		Sweep:      cfg.SweepSchedule,
		DailyReset: cfg.DailyResetSchedule,
	}); err != nil {
		return err
	}
	cron.Start()
	defer cron.Stop()

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: server.New(server.Options{
			Sessions:    sessions,
			Catalog:     store,
			Metrics:     m,
			Logger:      log.Named("http"),
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AdvisorTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("edgefinder started",
			zap.String("addr", srv.Addr),
			zap.String("starting_balance", cfg.StartingBalance.StringFixed(2)),
			zap.Bool("live_chat", responder.Remote()),
			zap.String("catalog", catalogName(cfg.CatalogDB)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("edgefinder stopped")
	return nil
}

func openCatalog(path string) (catalog.Store, error) {
	if path == "" {
		return catalog.NewMemoryStore(), nil
	}
	s, err := catalog.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func catalogName(path string) string {
	if path == "" {
		return "memory"
	}
	return path
}
