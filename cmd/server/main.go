package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/sacvietnam/storefront/internal/apiclient"
	"github.com/sacvietnam/storefront/internal/cache"
	"github.com/sacvietnam/storefront/internal/config"
	"github.com/sacvietnam/storefront/internal/database"
	"github.com/sacvietnam/storefront/internal/handler"
	"github.com/sacvietnam/storefront/internal/logger"
	"github.com/sacvietnam/storefront/internal/metrics"
	"github.com/sacvietnam/storefront/internal/middleware"
	"github.com/sacvietnam/storefront/internal/repository"
	"github.com/sacvietnam/storefront/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Env())
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = cache.NewRedisClient(ctx, cache.RedisConfig{URL: cfg.RedisURL, DialTimeout: 3 * time.Second})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, product cache disabled")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}
	productCache := cache.NewProductCache(rdb, cfg.ProductCacheTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewServerMetrics(reg)

	// the one product API client for the whole process
	provider := apiclient.NewProvider(apiclient.Config{BaseURL: cfg.APIBaseURL(), Timeout: cfg.APITimeout})
	client := provider.Client()

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool, nil)
	if productCache != nil {
		healthHandler = handler.NewHealthHandler(pool, productCache)
	}
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	handler.SetupSwagger(router)
	setupAPIRoutes(router, cfg, pool, client, productCache, m)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", string(cfg.Env())).Str("api", cfg.APIBaseURL()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, cfg *config.Config, pool *pgxpool.Pool, client *apiclient.Client,
	productCache *cache.ProductCache, m *metrics.ServerMetrics) {
	lang := cfg.Lang()

	submissionRepo := repository.NewSubmissionRepository(pool)
	releaseRepo := repository.NewReleaseRepository(pool)

	pricingService := service.NewPricingService()
	catalogService := service.NewCatalogService(client, productCache, pricingService, m)
	editorService := service.NewEditorService(client, submissionRepo, productCache, m)
	uploadService := service.NewUploadService(client, m)
	releaseService := service.NewReleaseService(releaseRepo)

	pricingHandler := handler.NewPricingHandler(pricingService, lang)
	productHandler := handler.NewProductHandler(catalogService, editorService, lang)
	uploadHandler := handler.NewUploadHandler(uploadService)
	releaseHandler := handler.NewReleaseHandler(releaseService, lang)

	api := router.Group("/api/v1")
	{
		api.POST("/pricing/preview", pricingHandler.Preview)
		api.POST("/products", productHandler.Create)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.GET("/products/:id/editor", productHandler.Editor)
		api.GET("/products/:id/submissions", productHandler.Submissions)
		api.POST("/uploads", uploadHandler.Upload)
		api.GET("/app/download", releaseHandler.Download)
	}
}
