package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"hospital-portal/internal/mockstore"
	"hospital-portal/internal/model"
	"hospital-portal/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logger := logging.New(env("LOG_LEVEL", "info"))
	port := env("STORE_PORT", "9090")

	store := mockstore.New(logger)

	// An admin account has no self-service signup path; seed one so a fresh
	// store is usable.
	admin := store.Seed(model.User{
		Name:     env("ADMIN_NAME", "Administrator"),
		Email:    env("ADMIN_EMAIL", "admin@hospital.local"),
		Password: env("ADMIN_PASSWORD", "admin"),
		Role:     model.RoleAdmin,
	})
	logger.Info("seeded admin", "id", admin.ID, "email", admin.Email)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: store.Router(),
	}

	go func() {
		logger.Info("mockstore listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", "err", err)
			os.Exit(1)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")
	srv.Close()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
