package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/gravity"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/learn"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/match"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/quiz"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/starred"
	"github.com/heartmarshall/studyset-backend/internal/adapter/postgres/term"
	"github.com/heartmarshall/studyset-backend/internal/adapter/redis"
	"github.com/heartmarshall/studyset-backend/internal/auth"
	"github.com/heartmarshall/studyset-backend/internal/config"
	"github.com/heartmarshall/studyset-backend/internal/service/modes"
	"github.com/heartmarshall/studyset-backend/internal/service/study"
	"github.com/heartmarshall/studyset-backend/internal/service/study/srs"
	"github.com/heartmarshall/studyset-backend/internal/transport/middleware"
	"github.com/heartmarshall/studyset-backend/internal/transport/rest"
	"github.com/heartmarshall/studyset-backend/internal/transport/termloader"
	"github.com/heartmarshall/studyset-backend/pkg/clock"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires the services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("srs_unit", cfg.SRS.Unit),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	// Redis is optional: without it mastery notifications are skipped.
	var (
		rdb      *goredis.Client
		notifier *redis.Notifier
	)
	if cfg.Redis.Enabled() {
		rdb, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		notifier = redis.NewNotifier(rdb, logger, cfg.Redis)
	} else {
		logger.Warn("redis not configured, mastery notifications disabled")
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	termRepo := term.New(pool)
	progressRepo := progress.New(pool)
	sessionRepo := session.New(pool)

	// Services.
	studySvc := study.NewService(
		logger,
		progressRepo,
		termRepo,
		sessionRepo,
		notifier,
		txm,
		srs.NewPolicy(cfg.SRS.Unit),
		clock.Real{},
	)
	modesSvc := modes.NewService(
		logger,
		studySvc,
		modes.Repos{
			Terms:   termRepo,
			Quizzes: quiz.New(pool),
			Matches: match.New(pool),
			Gravity: gravity.New(pool),
			Learn:   learn.New(pool),
			Starred: starred.New(pool),
		},
		txm,
		modes.Limits{
			DefaultTestQuestions: cfg.Modes.DefaultTestQuestions,
			MaxTestQuestions:     cfg.Modes.MaxTestQuestions,
			DefaultMatchPairs:    cfg.Modes.DefaultMatchPairs,
			MaxMatchPairs:        cfg.Modes.MaxMatchPairs,
		},
		clock.Real{},
		nil,
	)

	// Transport.
	health := rest.NewHealthHandler(pool, Version)
	if rdb != nil {
		health.WithComponent("redis", redisPinger{rdb})
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 0)
	api := middleware.Chain(
		middleware.Auth(jwtMgr),
		termloader.Middleware(termRepo),
	)

	router := rest.NewRouter(rest.Handlers{
		Health: health,
		Study:  rest.NewStudyHandler(studySvc, logger),
		Modes:  rest.NewModesHandler(modesSvc, logger),
	}, api)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Edge(logger, cfg.CORS, limiter)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

type redisPinger struct {
	rdb *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}
