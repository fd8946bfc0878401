// Package server assembles the gin engine.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"frames-studio/internal/admin"
	"frames-studio/internal/auth"
	"frames-studio/internal/gallery"
	"frames-studio/internal/handlers"
	"frames-studio/internal/logger"
	"frames-studio/internal/metrics"
	"frames-studio/internal/middleware"
	"frames-studio/internal/models"
	"frames-studio/internal/services"
	"frames-studio/internal/web"
)

type Deps struct {
	Log        *logrus.Entry
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	Gallery    *gallery.Adapter
	Portfolio  *services.PortfolioService
	Gate       *auth.Gate
	Sessions   *auth.Manager
	Tokens     *auth.TokenIssuer
	Selections *admin.SelectionStore
	IntervalMs int
}

func NewRouter(d Deps) (*gin.Engine, error) {
	models.RegisterValidations()

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	galleryHandler := handlers.NewGalleryHandler(d.Gallery)
	adminHandler := handlers.NewAdminHandler(
		d.Portfolio, d.Gate, d.Sessions, d.Tokens, d.Selections,
		logger.Component(d.Log, "admin"),
	)
	pagesHandler := handlers.NewPagesHandler(
		d.Gallery, d.Portfolio, d.Gate, d.Sessions, d.Selections, d.IntervalMs,
		logger.Component(d.Log, "pages"),
	)

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(logger.Component(d.Log, "http")))
	if d.Metrics != nil {
		router.Use(d.Metrics.GinMiddleware())
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthHandler)
	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// Pages
	router.GET("/", pagesHandler.Home)
	router.GET("/portfolio", pagesHandler.Portfolio)
	router.GET("/portfolio/view/:index", pagesHandler.View)
	router.GET("/about", pagesHandler.About)
	router.GET("/contact", pagesHandler.Contact)
	router.POST("/contact", pagesHandler.SubmitContact)
	router.GET("/services/:slug", pagesHandler.Service)
	router.GET("/admin", pagesHandler.Admin)
	router.POST("/admin/login", pagesHandler.AdminLogin)
	router.POST("/admin/logout", pagesHandler.AdminLogout)
	router.NoRoute(pagesHandler.NotFound)

	// Public API
	api := router.Group("/api/v1")
	api.GET("/categories", galleryHandler.ListCategories)
	api.GET("/portfolio", galleryHandler.ListPortfolio)
	api.POST("/admin/login", adminHandler.Login)

	// Admin API
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.AdminAuth(d.Sessions, d.Tokens))

	adminAPI.POST("/logout", adminHandler.Logout)
	adminAPI.GET("/images", adminHandler.ListImages)
	adminAPI.POST("/images", adminHandler.UploadImage)
	adminAPI.POST("/images/bulk", adminHandler.BulkUpload)
	adminAPI.POST("/images/bulk-delete", adminHandler.BulkDelete)
	adminAPI.PATCH("/images/:id", adminHandler.UpdateImage)
	adminAPI.DELETE("/images/:id", adminHandler.DeleteImage)

	adminAPI.GET("/selection", adminHandler.GetSelection)
	adminAPI.DELETE("/selection", adminHandler.ClearSelection)
	adminAPI.POST("/selection/mode", adminHandler.SetSelectionMode)
	adminAPI.POST("/selection/toggle/:id", adminHandler.ToggleSelection)
	adminAPI.POST("/selection/all", adminHandler.ToggleAllSelection)

	return router, nil
}
