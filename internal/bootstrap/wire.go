package bootstrap

import (
	"context"
	"database/sql"
	"net/http"

	usersvc "userservice/internal/application/user"
	"userservice/internal/config"
	"userservice/internal/infrastructure/db/postgres"
	"userservice/internal/infrastructure/memory"
	"userservice/internal/infrastructure/security"
	"userservice/internal/logger"
	"userservice/internal/transport/http/handlers"
	"userservice/internal/transport/http/router"
)

// App is the wired application: the HTTP server plus the resources it
// owns. Close releases them in reverse construction order.
type App struct {
	Server *http.Server

	db *sql.DB
}

func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("closing database")
		}
	}
}

// NewServer loads configuration, wires the application, and hands back
// the HTTP server plus a cleanup function for the resources behind it.
func NewServer() (*http.Server, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	app, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.Server, app.Close, nil
}

// New builds the whole dependency graph from configuration. An empty
// DB_ADDR in dev selects the in-memory repository; config.Load has
// already rejected that combination elsewhere.
func New(cfg *config.Config) (*App, error) {
	app := &App{}

	var repo usersvc.UserRepo
	var pinger handlers.Pinger

	if cfg.DBAddr == "" {
		logger.Logger.Warn().Msg("no DB_ADDR set, using in-memory store")
		repo = memory.NewUserRepo()
	} else {
		db, err := config.NewDB(cfg.DBAddr)
		if err != nil {
			return nil, err
		}
		app.db = db
		if err := postgres.Migrate(context.Background(), db); err != nil {
			app.Close()
			return nil, err
		}
		repo = postgres.NewUserRepo(db)
		pinger = db
		logger.Logger.Info().Msg("postgres connection pool established")
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	svc := usersvc.NewService(repo, hasher, signer, usersvc.Config{
		AccessTTL: cfg.AccessTokenTTL,
	}).WithAudit(func(action string, fields map[string]string) {
		ev := logger.Logger.Info().Str("action", action)
		for k, v := range fields {
			ev = ev.Str(k, v)
		}
		ev.Msg("audit")
	})

	if cfg.Env == "dev" {
		seedDevUser(context.Background(), repo, hasher)
	}

	mux := router.New(router.Deps{
		Users:    handlers.NewUserHandler(svc),
		Health:   handlers.NewHealthHandler(pinger),
		Verifier: signer,
		Loader:   repo,
	})

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}
