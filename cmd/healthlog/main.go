package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	adapthttp "healthlog/internal/adapter/http"
	"healthlog/internal/adapter/postgres"
	"healthlog/internal/app"
	"healthlog/internal/config"
	"healthlog/internal/repository"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("db open", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	repo := repository.New(db, log)
	sessionRepo := postgres.NewSessionRepo(db)

	svcs := adapthttp.Services{
		Records:  app.NewRecordService(repo, repo),
		Evals:    app.NewEvaluationService(repo, repo),
		Trends:   app.NewTrendService(repo, repo),
		Settings: app.NewSettingsService(repo),
		Export:   app.NewExportService(repo),
		Auth:     app.NewAuthService(db, sessionRepo),
	}

	oidcCfg := adapthttp.OIDCConfig{}
	if cfg.SSOEnabled() {
		provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuer)
		if err != nil {
			log.Error("oidc provider", "error", err)
			os.Exit(1)
		}
		oidcCfg = adapthttp.OIDCConfig{
			Enabled:  true,
			Provider: provider,
			OAuth2Config: oauth2.Config{
				ClientID:     cfg.OIDCClientID,
				ClientSecret: cfg.OIDCClientSecret,
				RedirectURL:  cfg.OIDCRedirectURL,
				Endpoint:     provider.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "email"},
			},
		}
	}

	h := adapthttp.New(svcs, oidcCfg, cfg.WebDir, log).Handler()
	log.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server", "error", err)
		os.Exit(1)
	}
}
