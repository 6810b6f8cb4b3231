package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/makerclub/toolroom/internal/adapter/postgres"
	historyrepo "github.com/makerclub/toolroom/internal/adapter/postgres/history"
	toolrepo "github.com/makerclub/toolroom/internal/adapter/postgres/tool"
	userrepo "github.com/makerclub/toolroom/internal/adapter/postgres/user"
	"github.com/makerclub/toolroom/internal/auth"
	"github.com/makerclub/toolroom/internal/config"
	authsvc "github.com/makerclub/toolroom/internal/service/auth"
	historysvc "github.com/makerclub/toolroom/internal/service/history"
	"github.com/makerclub/toolroom/internal/service/lifecycle"
	toolsvc "github.com/makerclub/toolroom/internal/service/tool"
	usersvc "github.com/makerclub/toolroom/internal/service/user"
	"github.com/makerclub/toolroom/internal/transport/middleware"
	"github.com/makerclub/toolroom/internal/transport/rest"
	"github.com/makerclub/toolroom/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and the HTTP transport, and blocks until
// the context is canceled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	toolRepo := toolrepo.New(pool)
	userRepo := userrepo.New(pool)
	historyRepo := historyrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	toolService := toolsvc.NewService(logger, toolRepo)
	lifecycleService := lifecycle.NewService(logger, toolRepo, historyRepo, txManager)
	historyService := historysvc.NewService(logger, historyRepo)
	userService := usersvc.NewService(logger, userRepo, toolRepo, cfg.Auth)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Tools:   rest.NewToolHandler(toolService, lifecycleService, logger),
		History: rest.NewHistoryHandler(historyService, logger),
		Users:   rest.NewUserHandler(userService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	// Auth runs before Logger so the resolved caller identity is on the
	// context when the request is logged.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
	)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("application stopped")
	return nil
}

// migrate applies pending schema migrations. goose requires *sql.DB, so a
// short-lived database/sql connection is opened next to the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
