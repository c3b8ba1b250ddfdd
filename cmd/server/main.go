package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/riandyrn/otelchi"
	otelchimetric "github.com/riandyrn/otelchi/metric"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/cravebuster/cravebuster/internal/api"
	"github.com/cravebuster/cravebuster/internal/cache"
	"github.com/cravebuster/cravebuster/internal/config"
	"github.com/cravebuster/cravebuster/internal/logger"
	"github.com/cravebuster/cravebuster/internal/metrics"
	"github.com/cravebuster/cravebuster/internal/sentry"
	"github.com/cravebuster/cravebuster/internal/services/completion"
	"github.com/cravebuster/cravebuster/internal/services/recipe"
	"github.com/cravebuster/cravebuster/internal/state"
	"github.com/cravebuster/cravebuster/internal/telemetry"
	"github.com/cravebuster/cravebuster/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer sentry.Recover()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	slog.SetDefault(logger.New(cfg.Env))

	shutdownTelemetry, err := telemetry.InitTelemetry(ctx, cfg.ServiceName, cfg.ServiceVersion, cfg.Env,
		cfg.OtelExporterOTLPEndpoint, telemetry.ParseHeaders(cfg.OtelExporterOTLPHeaders))
	if err != nil {
		slog.Warn("Failed to init telemetry", "error", err)
	} else {
		defer shutdownTelemetry(context.Background())
	}

	if err := sentry.Init(cfg.SentryDSN, cfg.Env, cfg.ServiceName, cfg.ServiceVersion); err != nil {
		slog.Warn("Failed to init Sentry", "error", err)
	} else if cfg.SentryDSN != "" {
		defer sentry.Flush(2 * time.Second)
	}

	if err := metrics.Init(); err != nil {
		slog.Warn("Failed to init business metrics", "error", err)
	}

	client := completion.NewProvider(cfg.Generation, cfg.Keys)

	var (
		recipeOpts []recipe.GeneratorOption
		queue      api.Enqueuer
		checks     = map[string]api.HealthChecker{}
	)
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()

		recipeCache := cache.NewRecipeCache(rdb)
		recipeOpts = append(recipeOpts, recipe.WithCache(recipeCache, cfg.Generation.CacheTTL))
		checks["redis"] = recipeCache

		asynqClient, err := worker.NewClient(cfg.RedisURL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		defer asynqClient.Close()
		queue = asynqClient
	} else {
		slog.Warn("REDIS_URL not set, recipe cache and warm-up queue disabled")
	}

	holderOpts := []state.Option{state.WithSurfaceDegraded(cfg.Generation.SurfaceDegraded)}
	recipes := state.NewHolder[recipe.RecipeRequest, recipe.GeneratedRecipe](
		recipe.NewGenerator(recipe.IngredientVariant(), client, recipeOpts...), holderOpts...)
	popular := state.NewHolder[recipe.PopularRecipeRequest, recipe.PopularRecipe](
		recipe.NewGenerator(recipe.PopularVariant(), client, recipeOpts...), holderOpts...)

	apiServer := api.NewServer(recipes, popular, queue)
	for name, c := range checks {
		apiServer.WithHealthCheck(name, c)
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(sentry.HTTPMiddleware)
	r.Use(otelchi.Middleware(cfg.ServiceName,
		otelchi.WithChiRoutes(r),
		otelchi.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	))

	metricCfg := otelchimetric.NewBaseConfig(cfg.ServiceName, otelchimetric.WithMeterProvider(otel.GetMeterProvider()))
	r.Use(otelchimetric.NewRequestDurationMillis(metricCfg))
	r.Use(otelchimetric.NewRequestInFlight(metricCfg))
	r.Use(otelchimetric.NewResponseSizeBytes(metricCfg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Last-Event-ID"},
		MaxAge:         300,
	}))

	apiServer.Routes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(apiServer.Close)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting server",
			"port", cfg.Port,
			"provider", cfg.Generation.Provider,
			"fallback_enabled", cfg.Generation.FallbackEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		recipes.Wait()
		popular.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
