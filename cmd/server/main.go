package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jiayee/contact-api/internal/config"
	"github.com/jiayee/contact-api/internal/handler"
	"github.com/jiayee/contact-api/internal/logging"
	"github.com/jiayee/contact-api/internal/metrics"
	"github.com/jiayee/contact-api/internal/repository"
	"github.com/jiayee/contact-api/internal/service"
	"github.com/jiayee/contact-api/pkg/mailer"
)

func main() {
	cfg := config.Load()
	logging.Setup()

	repo, err := repository.NewFileContactRepository(cfg.Store.DataDir)
	if err != nil {
		logging.Fatal("failed to initialize contact store", "error", err)
	}

	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Enabled:   cfg.Email.Enabled,
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	notificationService := service.NewNotificationService(smtpMailer, cfg.Email.AdminEmail)
	contactService := service.NewContactService(repo, notificationService)

	h := handler.New(cfg.App.AllowedOrigin)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(repo, cfg.App.Name, cfg.App.Version, repo.Path())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("POST /api/submit", contactHandler.Submit)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.Handle("GET /metrics", metrics.Handler())

	count, _ := repo.Count(context.Background())
	slog.Info("contact store ready", "data_file", repo.Path(), "records", count)
	slog.Info("email notifications", "enabled", cfg.Email.Enabled, "admin", cfg.Email.AdminEmail)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Notification goroutines are not joined; anything in flight when the
	// process exits is lost.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
