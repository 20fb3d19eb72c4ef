package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"msaRecommender/app/echo-server/router"
	"msaRecommender/business/reco"
	"msaRecommender/internal/middleware"
	"msaRecommender/internal/model"
	mysqlRepo "msaRecommender/internal/repository/mysql"
	"msaRecommender/internal/rest"
	"msaRecommender/pkg/config"
	"msaRecommender/pkg/database"
	"msaRecommender/pkg/logger"
	"msaRecommender/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting recommendation API", "version", cfg.App.Version)

	metrics.Init()

	// Load model artifact; the server still starts degraded without it.
	store := model.NewStore(cfg.Model.Path)
	if err := store.Load(); err != nil {
		logger.Warn("Could not load model - API will run degraded", "error", err)
	}

	if cfg.Database.UseDBCatalog && store.IsLoaded() {
		if err := overlayFromDB(cfg, store); err != nil {
			logger.Warn("Could not overlay catalog from database, keeping artifact tables", "error", err)
		} else {
			logger.Info("Catalog and reviews overlaid from database")
		}
	}

	// One response cache per process, shared by every request.
	cache := reco.NewCache(cfg.Cache.TTL, cfg.Cache.MaxSize)

	var recoService rest.RecoService
	if store.IsLoaded() {
		users, items := store.Mappings()
		recoService = reco.NewService(
			users,
			items,
			store.Predictor(),
			store.Features(),
			store.MineIndices(),
			store,
			store,
			cache,
		)
	}

	// Init handlers
	recoHandler := rest.NewRecoHandler(recoService, store, cfg.Reco.DefaultCount, cfg.Reco.MaxCount)
	statusHandler := rest.NewStatusHandler(cfg.App.Name, cfg.App.Version, store, cache)
	catalogHandler := rest.NewCatalogHandler(store)
	adminHandler := rest.NewAdminHandler(cache)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.TraceID())

	// Setup routes
	api := e.Group("/api")
	router.SetupStatusRoutes(e, api, statusHandler)
	router.SetupRecoRoutes(api, recoHandler)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupAdminRoutes(api, adminHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// overlayFromDB replaces the artifact's embedded catalog and review log
// with the courses_data tables.
func overlayFromDB(cfg *config.Config, store *model.Store) error {
	db, err := database.InitMySQL(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	courses, err := mysqlRepo.NewCourseRepository(db).FindAll(ctx)
	if err != nil {
		return err
	}
	reviews, err := mysqlRepo.NewReviewRepository(db).FindAll(ctx)
	if err != nil {
		return err
	}

	store.OverlayCatalog(courses)
	store.OverlayReviews(reviews)

	return nil
}
