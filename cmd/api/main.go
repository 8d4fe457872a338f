package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-contact-backend/config"
	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/usecase"
	"go-contact-backend/pkg/captcha"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup outbound collaborators, constructed once and shared by all
	// in-flight requests
	verifier := captcha.NewVerifier(cfg)
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(verifier, emailService, validate, cfg.RecaptchaMinScore, cfg.RecaptchaAction)

	// 5. Upload scratch dir, when configured
	if cfg.UploadDir != "" {
		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			logger.Log.Error("Failed to create upload dir", "dir", cfg.UploadDir, "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
