// @title           Frames Studio API
// @version         1.0.0
// @description     Portfolio gallery and admin asset management for the 35 Frames Photography site. Images are stored in Supabase Storage, records in the portfolio_images table.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by login.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"frames-studio/docs"
	"frames-studio/internal/admin"
	"frames-studio/internal/auth"
	"frames-studio/internal/config"
	"frames-studio/internal/database"
	"frames-studio/internal/gallery"
	"frames-studio/internal/logger"
	"frames-studio/internal/metrics"
	"frames-studio/internal/server"
	"frames-studio/internal/services"
	"frames-studio/internal/supabase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New("frames-studio", cfg.LogLevel, cfg.IsProduction())

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize Supabase client")
	}
	storageClient := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)

	// Records go through Postgres directly when DATABASE_URL is set, otherwise PostgREST.
	var repo services.ImageRepository = supabase.NewRecordClient(supabaseClient)
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set, using PostgREST for records and skipping migrations")
	} else {
		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize database client, falling back to PostgREST")
		} else {
			defer dbClient.Close()
			repo = dbClient
			runMigrations(cfg.DatabaseURL, logger.Component(log, "migrator"))
		}
	}

	sessions := auth.NewManager(cfg.SessionSecret, cfg.IsProduction())
	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set, admin sessions will not survive a restart")
	}
	gate := auth.NewGate(cfg.AdminPassword)
	if !gate.Configured() {
		log.Warn("ADMIN_PASSWORD not set, admin access is disabled")
	}

	router, err := server.NewRouter(server.Deps{
		Log:      log,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
		Gallery:  gallery.NewAdapter(repo, logger.Component(log, "gallery"), m),
		Portfolio: services.NewPortfolioService(
			storageClient, repo, logger.Component(log, "portfolio"), m, cfg.MaxImageDimension,
		),
		Gate:       gate,
		Sessions:   sessions,
		Tokens:     auth.NewTokenIssuer(sessions.SigningKey()),
		Selections: admin.NewSelectionStore(),
		IntervalMs: cfg.CarouselIntervalMs,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	log.Info("Server stopped")
}

func runMigrations(dbURL string, log *logrus.Entry) {
	migrator, err := database.NewMigrator(dbURL, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize migrator")
		return
	}
	defer migrator.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	applied, err := migrator.Run(ctx)
	if err != nil {
		log.WithError(err).Warn("Migration failed")
		return
	}
	log.WithField("applied", applied).Info("Migrations completed")
}
