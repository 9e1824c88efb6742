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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	answerrepo "github.com/heartmarshall/qa-moderation/internal/adapter/postgres/answer"
	requestrepo "github.com/heartmarshall/qa-moderation/internal/adapter/postgres/request"
	reviewerapprepo "github.com/heartmarshall/qa-moderation/internal/adapter/postgres/reviewerapp"
	trustrepo "github.com/heartmarshall/qa-moderation/internal/adapter/postgres/trust"
	"github.com/heartmarshall/qa-moderation/internal/adapter/trustcache"
	"github.com/heartmarshall/qa-moderation/internal/auth"
	"github.com/heartmarshall/qa-moderation/internal/config"
	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/internal/service/ledger"
	"github.com/heartmarshall/qa-moderation/internal/service/reviewer"
	"github.com/heartmarshall/qa-moderation/internal/service/thread"
	"github.com/heartmarshall/qa-moderation/internal/service/trust"
	"github.com/heartmarshall/qa-moderation/internal/transport/dataloader"
	"github.com/heartmarshall/qa-moderation/internal/transport/middleware"
	"github.com/heartmarshall/qa-moderation/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// trustGraph is satisfied by both the trust repository and its Redis cache.
type trustGraph interface {
	MarkTrusted(ctx context.Context, student, reviewer string) error
	IsTrusted(ctx context.Context, student, reviewer string) (bool, error)
	TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error)
	ListByStudent(ctx context.Context, student string) ([]domain.TrustEdge, error)
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the services and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
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
		return err
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Cache.Enabled() {
		rdb, err = trustcache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler, err := newHandler(cfg, logger, pool, rdb, limiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// newHandler builds repositories, services and the HTTP router. rdb may be
// nil, in which case trust lookups go straight to PostgreSQL.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	limiter *middleware.RateLimiter,
) (http.Handler, error) {
	ids, err := postgres.NewIDGenerator(cfg.IDs.NodeID)
	if err != nil {
		return nil, err
	}
	txm := postgres.NewTxManager(pool)

	// Repositories.
	requests := requestrepo.New(pool, ids)
	answers := answerrepo.New(pool, ids)
	apps := reviewerapprepo.New(pool)

	var trustStore trustGraph = trustrepo.New(pool)
	if rdb != nil {
		trustStore = trustcache.New(trustStore, rdb, cfg.Cache.TrustTTL, logger)
	}

	// Services.
	ledgerSvc := ledger.NewService(logger, requests)
	trustSvc := trust.NewService(logger, trustStore)
	evaluator := thread.NewEvaluator(cfg.Moderation.MinAnswerLength, cfg.Moderation.MaxAnswerLength, cfg.Moderation.BannedWords)
	threadSvc := thread.NewService(logger, answers, trustSvc, txm, evaluator, cfg.Moderation)
	reviewerSvc := reviewer.NewService(logger, apps)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	roles := rest.Roles{
		Reporter: cfg.Moderation.ReporterRoles,
		Arbiter:  cfg.Moderation.ArbiterRoles,
		Reviewer: cfg.Moderation.ReviewerRoles,
		Admin:    cfg.Moderation.AdminRoles,
	}

	checks := []rest.HealthCheck{{Name: "database", Pinger: pool}}
	if rdb != nil {
		checks = append(checks, rest.HealthCheck{Name: "cache", Pinger: rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})})
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Auth(tokens),
		middleware.Logger(logger),
		limiter.Limit(cfg.Server.WriteRateLimit),
		middleware.Middleware(dataloader.Middleware(&dataloader.Sources{Ratings: threadSvc})),
	)

	return rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(BuildVersion(), checks...),
		Requests:  rest.NewRequestHandler(ledgerSvc, roles, logger),
		Trust:     rest.NewTrustHandler(trustSvc, logger),
		Answers:   rest.NewAnswerHandler(threadSvc, reviewerSvc, roles, logger),
		Reviewers: rest.NewReviewerHandler(reviewerSvc, roles, logger),
	}, chain), nil
}
