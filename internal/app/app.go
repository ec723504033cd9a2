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

	"github.com/heartmarshall/incident-desk/internal/adapter/postgres"
	reportrepo "github.com/heartmarshall/incident-desk/internal/adapter/postgres/report"
	userrepo "github.com/heartmarshall/incident-desk/internal/adapter/postgres/user"
	"github.com/heartmarshall/incident-desk/internal/adapter/provider/googlemaps"
	"github.com/heartmarshall/incident-desk/internal/adapter/provider/vision"
	redisadapter "github.com/heartmarshall/incident-desk/internal/adapter/redis"
	"github.com/heartmarshall/incident-desk/internal/adapter/storage"
	"github.com/heartmarshall/incident-desk/internal/auth"
	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
	authsvc "github.com/heartmarshall/incident-desk/internal/service/auth"
	"github.com/heartmarshall/incident-desk/internal/service/classify"
	"github.com/heartmarshall/incident-desk/internal/service/geo"
	"github.com/heartmarshall/incident-desk/internal/service/report"
	"github.com/heartmarshall/incident-desk/internal/transport/middleware"
	"github.com/heartmarshall/incident-desk/internal/transport/rest"
	"github.com/heartmarshall/incident-desk/pkg/reportid"
)

// geoProvider and visionModel are the optional collaborators. They stay nil
// interfaces when not configured so that the services report themselves
// disabled.
type (
	geoProvider interface {
		Geocode(ctx context.Context, address string) (*domain.GeoLocation, error)
		ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeoLocation, error)
	}
	visionModel interface {
		Describe(ctx context.Context, img domain.ImageBlob, prompt string) (string, error)
	}
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional backends, builds the services and serves HTTP
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
		slog.String("storage", cfg.Storage.Driver),
		slog.String("rate_limit", cfg.RateLimit.Backend),
		slog.Bool("classifier", cfg.Classifier.Enabled()),
		slog.Bool("geo", cfg.Geo.Enabled()),
	)

	// Database
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	probes := []rest.Probe{{Name: "database", Check: pool.Ping}}

	// Blob storage
	blobs, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Rate limiting
	var limiter middleware.Limiter
	switch cfg.RateLimit.Backend {
	case config.RateLimitRedis:
		client, err := redisadapter.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = redisadapter.NewLimiter(client, "incident-desk:ratelimit:")
		// The limiter fails open, so an unreachable redis only degrades.
		probes = append(probes, rest.Probe{
			Name:     "redis",
			Check:    func(ctx context.Context) error { return client.Ping(ctx).Err() },
			Optional: true,
		})
	default:
		memLimiter := middleware.NewRateLimiter(time.Minute)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	// Optional collaborators
	var vm visionModel
	if cfg.Classifier.Enabled() {
		vm = vision.NewClient(cfg.Classifier, logger)
	}

	var gp geoProvider
	if cfg.Geo.Enabled() {
		gp, err = googlemaps.NewClient(cfg.Geo, logger)
		if err != nil {
			return err
		}
	}

	// Repositories
	txManager := postgres.NewTxManager(pool)
	reports := reportrepo.New(pool)
	users := userrepo.New(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	classifyService := classify.NewService(logger, vm, cfg.Storage.MaxImageBytes)
	geoService := geo.NewService(logger, gp)
	reportService := report.NewService(
		logger,
		reports,
		txManager,
		blobs,
		reportid.New(),
		classifyService,
		geoService,
		cfg.Intake,
		cfg.Storage.MaxImageBytes,
	)

	// HTTP
	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
		Tokens:    authService,
		Health: rest.NewHealthHandler(BuildVersion(), probes, map[string]bool{
			"classifier": classifyService.Enabled(),
			"geo":        geoService.Enabled(),
		}),
		Auth:      rest.NewAuthHandler(authService, logger),
		Reports:   rest.NewReportHandler(reportService, logger, cfg.Server.MaxBodyBytes),
		Classify:  rest.NewClassifyHandler(classifyService, logger, cfg.Server.MaxBodyBytes),
		Locations: rest.NewLocationHandler(geoService, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
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
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
