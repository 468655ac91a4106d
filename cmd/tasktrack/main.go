package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	adapthttp "tasktrack/internal/adapter/http"
	"tasktrack/internal/adapter/postgres"
	"tasktrack/internal/app"
	"tasktrack/internal/config"
	"tasktrack/internal/token"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Error("db open", "err", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	issuer := token.NewIssuer([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	authSvc := app.NewAuthService(db, issuer)
	taskSvc := app.NewTaskService(db)
	userSvc := app.NewUserService(db)

	h := adapthttp.New(authSvc, taskSvc, userSvc, issuer, logger).Handler()
	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server", "err", err)
		os.Exit(1)
	}
}
