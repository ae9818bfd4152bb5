// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/carterperez-dev/portfolio-cms/internal/admin"
	"github.com/carterperez-dev/portfolio-cms/internal/auth"
	"github.com/carterperez-dev/portfolio-cms/internal/business"
	"github.com/carterperez-dev/portfolio-cms/internal/cache"
	"github.com/carterperez-dev/portfolio-cms/internal/config"
	"github.com/carterperez-dev/portfolio-cms/internal/core"
	"github.com/carterperez-dev/portfolio-cms/internal/gallery"
	"github.com/carterperez-dev/portfolio-cms/internal/health"
	"github.com/carterperez-dev/portfolio-cms/internal/media"
	"github.com/carterperez-dev/portfolio-cms/internal/middleware"
	"github.com/carterperez-dev/portfolio-cms/internal/project"
	"github.com/carterperez-dev/portfolio-cms/internal/server"
	"github.com/carterperez-dev/portfolio-cms/internal/settings"
	"github.com/carterperez-dev/portfolio-cms/internal/testimonial"
	"github.com/carterperez-dev/portfolio-cms/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	var (
		settingsCache cache.Cache = cache.Noop{}
		cacheStats    func() cache.Stats
	)
	if cfg.Cache.Enabled {
		rc := cache.NewRedis(redis.Client, cfg.Cache.Prefix, cfg.Cache.TTL)
		settingsCache = rc
		cacheStats = rc.Stats
	}

	var mediaStore media.Store = media.Unconfigured{}
	if cfg.Media.HasCloudinary() {
		cld, cldErr := media.NewCloudinary(cfg.Media)
		if cldErr != nil {
			return cldErr
		}
		mediaStore = cld
	} else {
		logger.Warn("cloudinary credentials missing, uploads are disabled")
	}
	releaser := media.NewReleaser(mediaStore, logger)

	tokens, err := auth.NewTokenManager(cfg.JWT, cfg.IsProduction())
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"ttl", tokens.TTL().String(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(tokens, userSvc, logger)
	authHandler := auth.NewHandler(authSvc, tokens)

	created, err := userSvc.Bootstrap(ctx, cfg.Bootstrap)
	if err != nil {
		return err
	}
	if created != nil {
		logger.Info("bootstrap admin created", "user_id", created.UserID)
	}

	businessRepo := business.NewRepository(db.DB)
	projectRepo := project.NewRepository(db.DB)
	testimonialRepo := testimonial.NewRepository(db.DB)
	galleryRepo := gallery.NewRepository(db.DB)

	projectSvc := project.NewService(projectRepo,
		core.LookupOf(businessRepo.GetBySlug),
	)
	testimonialSvc := testimonial.NewService(testimonialRepo,
		core.LookupOf(projectRepo.GetBySlug),
		core.LookupOf(businessRepo.GetBySlug),
	)
	businessSvc := business.NewService(businessRepo,
		core.LookupOf(projectSvc.GetByID),
		core.LookupOf(testimonialSvc.GetByID),
	)
	gallerySvc := gallery.NewService(galleryRepo)

	settingsSvc, err := settings.NewService(
		settings.NewRepository(db.DB),
		settings.Options{
			Cache:        settingsCache,
			CacheTTL:     cfg.Cache.TTL,
			Releaser:     releaser,
			Projects:     settings.FinderFunc(core.LookupOf(projectSvc.GetByID)),
			Testimonials: settings.FinderFunc(core.LookupOf(testimonialSvc.GetByID)),
			Logger:       logger,
		},
	)
	if err != nil {
		return err
	}

	healthHandler := health.NewHandler(
		health.Dependency{Name: "database", Checker: health.CheckerFunc(db.Ping)},
		health.Dependency{Name: "redis", Checker: health.CheckerFunc(redis.Ping)},
		health.Dependency{Name: "media", Checker: mediaStore, Optional: true},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Collections: map[string]admin.Counter{
			"users":        userRepo,
			"businesses":   businessSvc,
			"projects":     projectSvc,
			"testimonials": testimonialSvc,
			"gallery":      gallerySvc,
		},
		Settings:   settingsSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		CacheStats: cacheStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
		Logger:     logger,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokens, authSvc, tokens.CookieName())
	adminOnly := middleware.RequireAdmin

	router.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator, adminOnly)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)

		settings.NewHandler(settingsSvc).RegisterRoutes(r, authenticator, adminOnly)
		business.NewHandler(businessSvc).RegisterRoutes(r, authenticator, adminOnly)
		project.NewHandler(projectSvc).RegisterRoutes(r, authenticator, adminOnly)
		testimonial.NewHandler(testimonialSvc).RegisterRoutes(r, authenticator, adminOnly)
		gallery.NewHandler(gallerySvc).RegisterRoutes(r, authenticator, adminOnly)
		media.NewHandler(mediaStore, cfg.Media).RegisterRoutes(r, authenticator, adminOnly)

		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
