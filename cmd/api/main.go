// Bedtime Estimator API
//
// REST API that recommends a bedtime from a wake-up time, a desired amount of sleep and coffee intake.
//
//	@title			Bedtime Estimator API
//	@version		1.0
//	@description	Recommends a bedtime from a wake-up time, a desired amount of sleep and daily coffee intake.
//
//	@BasePath	/v1
//
//	@tag.name			estimate
//	@tag.description	Bedtime estimation endpoints
//
//	@tag.name			models
//	@tag.description	Model artifact registry
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/bedtime-estimator/internal/api"
	"github.com/blaisecz/bedtime-estimator/internal/api/handler"
	"github.com/blaisecz/bedtime-estimator/internal/config"
	"github.com/blaisecz/bedtime-estimator/internal/domain"
	"github.com/blaisecz/bedtime-estimator/internal/langfuse"
	"github.com/blaisecz/bedtime-estimator/internal/logger"
	"github.com/blaisecz/bedtime-estimator/internal/regression"
	"github.com/blaisecz/bedtime-estimator/internal/repository"
	"github.com/blaisecz/bedtime-estimator/internal/seed"
	"github.com/blaisecz/bedtime-estimator/internal/service"
	"github.com/blaisecz/bedtime-estimator/internal/telemetry"
	"go.uber.org/zap"
)

const serviceName = "bedtime-estimator"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	tracer := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      log,
	})

	// The registry is optional; without DATABASE_URL the model comes from a file or the built-in artifact.
	var artifactRepo repository.ModelArtifactRepository
	db, err := config.NewDatabase(cfg, log)
	switch {
	case errors.Is(err, config.ErrNoDatabase):
		log.Info("model registry disabled: DATABASE_URL is empty")
	case err != nil:
		log.Fatal("failed to connect to database", zap.Error(err))
	default:
		if err := seed.Migrate(db); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		if cfg.Seed {
			log.Info("seeding model registry (SEED=true)")
			if err := seed.Run(ctx, db, log); err != nil {
				log.Fatal("failed to seed database", zap.Error(err))
			}
		}
		artifactRepo = repository.NewModelArtifactRepository(db)
	}

	var store regression.ArtifactStore
	if artifactRepo != nil {
		store = repository.NewArtifactStore(artifactRepo)
	}

	model := regression.NewLazy(modelLoader(cfg, store, tracer, log)).WithRetryAfter(cfg.ModelRetryInterval)
	if err := model.Preload(ctx); err != nil {
		// Keep serving: every estimate reports the generic failure until a load succeeds.
		if cfg.ModelRetryInterval > 0 {
			log.Error("model failed to load, will retry on a later estimate",
				zap.String("backend", cfg.ModelBackend),
				zap.Duration("retry_after", cfg.ModelRetryInterval),
				zap.Error(err))
		} else {
			log.Error("model failed to load, restart required",
				zap.String("backend", cfg.ModelBackend),
				zap.Error(err))
		}
	}
	predictor := regression.NewCached(model, cfg.ModelCacheSize)

	// Initialize services
	estimatorService := service.NewEstimatorService(predictor, domain.ClockStyle(cfg.ClockStyle), log)
	modelService := service.NewModelService(artifactRepo)

	// Initialize handlers
	estimateHandler := handler.NewEstimateHandler(estimatorService)
	modelHandler := handler.NewModelHandler(modelService)
	mcpHandler := handler.NewMCPHandler(estimatorService, log)

	// Setup router
	router := api.NewRouter(estimateHandler, modelHandler, mcpHandler, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	if err := tracer.Close(shutdownCtx); err != nil {
		log.Warn("langfuse flush", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
}
