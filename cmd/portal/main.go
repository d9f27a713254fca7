package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hospital-portal/internal/api"
	"hospital-portal/internal/config"
	"hospital-portal/internal/directory"
	"hospital-portal/internal/handler"
	"hospital-portal/internal/lifecycle"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/observability/metrics"
	"hospital-portal/internal/session"
	"hospital-portal/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	client := api.NewClient(cfg.StoreURL, logger)

	sessions := session.NewStore(client, cfg.StateDir, logger)
	sessions.Restore()
	if u := sessions.Current(); u != nil {
		logger.Info("session restored", "user", u.ID, "role", u.Role)
	}

	dir := directory.NewService(client)
	lc := lifecycle.NewService(client)
	m := metrics.NewPortalMetrics(nil)

	h := handler.New(sessions, dir, lc, m, logger)
	rl := middleware.NewRateLimiter(cfg.AuthRPS, cfg.AuthBurst)

	mux := http.NewServeMux()
	mux.Handle(cfg.MetricsPath, promhttp.Handler())
	mux.Handle("/", h.Routes(rl))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("portal listening", "port", cfg.Port, "store", cfg.StoreURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")
	srv.Close()
}
