package main

import (
	"context"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "marketing-hub/internal/controller/http"
	"marketing-hub/internal/provider"
	"marketing-hub/internal/repo/persistent"
	"marketing-hub/internal/usecase"
	"marketing-hub/pkg/cache"
	"marketing-hub/pkg/config"
	"marketing-hub/pkg/database"
	"marketing-hub/pkg/logger"
	"marketing-hub/pkg/middleware"
	"marketing-hub/pkg/queue"
	"marketing-hub/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "marketing-hub/docs" // Swagger docs
)

// @title           Marketing Hub API
// @version         1.0
// @description     Internal marketing operations dashboard: content calendar, blog schedule, email campaigns, weekly tracker, and analytics.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs the analytics cache and rate limiting; the
		// dashboard works without it.
		log.Warn("Redis unavailable, running without cache: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, comment notifications disabled: %v", err)
		queueClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Initialize repositories
	contentRepo := persistent.NewContentRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	blogRepo := persistent.NewBlogPostRepository(db)
	campaignRepo := persistent.NewCampaignRepository(db)

	// Analytics providers fall back to a deterministic local double for any
	// vendor without credentials, so the dashboard renders in every
	// environment.
	providerTimeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second
	httpClient := &stdhttp.Client{Timeout: providerTimeout}
	static := provider.NewStaticProvider()

	var pages provider.PageAnalytics = static
	if cfg.GA4AccessToken != "" && cfg.GA4MainPropertyID != "" {
		pages = provider.NewGA4Provider(httpClient, cfg.GA4AccessToken, map[string]string{
			"main":     cfg.GA4MainPropertyID,
			"funnel":   cfg.GA4FunnelPropertyID,
			"checkout": cfg.GA4CheckoutPropertyID,
		})
	} else {
		log.Warn("GA4 credentials missing, page analytics served from local data")
	}

	var instagram provider.SocialAnalytics = static
	var facebook provider.SocialAnalytics = static
	if cfg.MetaAccessToken != "" && cfg.FacebookPageID != "" {
		instagram = provider.NewInstagramProvider(httpClient, cfg.MetaAccessToken, cfg.FacebookPageID)
		facebook = provider.NewFacebookProvider(httpClient, cfg.MetaAccessToken, cfg.FacebookPageID)
	} else {
		log.Warn("Meta credentials missing, social analytics served from local data")
	}

	var crm provider.CRMAnalytics = static
	if cfg.GHLAPIKey != "" && cfg.GHLLocationID != "" {
		crm = provider.NewGHLProvider(httpClient, cfg.GHLAPIKey, cfg.GHLLocationID)
	} else {
		log.Warn("GoHighLevel credentials missing, CRM analytics served from local data")
	}

	var search provider.SearchAnalytics = static
	if cfg.SearchConsoleToken != "" && cfg.SearchConsoleSiteURL != "" {
		search = provider.NewSearchConsoleProvider(httpClient, cfg.SearchConsoleToken, cfg.SearchConsoleSiteURL)
	} else {
		log.Warn("Search Console credentials missing, search analytics served from local data")
	}

	// Initialize use cases
	contentUseCase := usecase.NewContentUseCase(contentRepo, s3Client, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, contentRepo, queueClient, log)
	blogUseCase := usecase.NewBlogUseCase(blogRepo, log)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, log)
	trackerUseCase := usecase.NewTrackerUseCase(contentRepo, blogRepo, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(
		pages,
		instagram,
		facebook,
		crm,
		search,
		campaignRepo,
		redisClient,
		time.Duration(cfg.AnalyticsCacheTTLSeconds)*time.Second,
		providerTimeout,
		log,
	)

	// Initialize HTTP handlers
	contentHandler := controller.NewContentHandler(contentUseCase, log)
	commentHandler := controller.NewCommentHandler(commentUseCase, log)
	blogHandler := controller.NewBlogHandler(blogUseCase, log)
	campaignHandler := controller.NewCampaignHandler(campaignUseCase, log)
	trackerHandler := controller.NewTrackerHandler(trackerUseCase, log)
	analyticsHandler := controller.NewAnalyticsHandler(analyticsUseCase, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.ActorHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))
	r.Use(middleware.RequestIDMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.ActorMiddleware(true))
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute)) // 100 requests per minute
	}

	{
		api.POST("/content", contentHandler.CreateContent)
		api.GET("/content", contentHandler.ListContent)
		api.GET("/content/:id", contentHandler.GetContent)
		api.PUT("/content/:id", contentHandler.UpdateContent)
		api.DELETE("/content/:id", contentHandler.DeleteContent)
		api.POST("/admin/fix-weeks", contentHandler.RepairWeeks)
		api.POST("/assets", contentHandler.UploadAsset)
		api.DELETE("/assets/:key", contentHandler.DeleteAsset)

		api.POST("/content/:id/comments", commentHandler.CreateComment)
		api.GET("/content/:id/comments", commentHandler.ListComments)
		api.PUT("/comments/:id", commentHandler.UpdateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)

		api.POST("/blog-posts", blogHandler.CreateBlogPost)
		api.GET("/blog-posts", blogHandler.ListBlogPosts)
		api.GET("/blog-posts/:id", blogHandler.GetBlogPost)
		api.PUT("/blog-posts/:id", blogHandler.UpdateBlogPost)
		api.DELETE("/blog-posts/:id", blogHandler.DeleteBlogPost)

		api.POST("/campaigns", campaignHandler.CreateCampaign)
		api.GET("/campaigns", campaignHandler.ListCampaigns)
		api.GET("/campaigns/duplicates", campaignHandler.ListDuplicates)
		api.POST("/campaigns/duplicates/cleanup", campaignHandler.CleanupDuplicates)
		api.GET("/campaigns/:id", campaignHandler.GetCampaign)
		api.PUT("/campaigns/:id", campaignHandler.UpdateCampaign)
		api.DELETE("/campaigns/:id", campaignHandler.DeleteCampaign)

		api.GET("/content-tracker", trackerHandler.GetTracker)

		api.GET("/analytics", analyticsHandler.GetOverview)
		api.GET("/analytics/pages", analyticsHandler.GetPages)
		api.GET("/analytics/instagram", analyticsHandler.GetInstagram)
		api.GET("/analytics/facebook", analyticsHandler.GetFacebook)
		api.GET("/analytics/crm", analyticsHandler.GetCRM)
		api.GET("/analytics/search", analyticsHandler.GetSearch)
	}

	// Create HTTP server
	srv := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Marketing hub starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down marketing hub...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests before the backends they depend on go away.
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	log.Info("Marketing hub exited")
}
