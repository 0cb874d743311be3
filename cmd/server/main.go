package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xarchit/github-profile-analyzer/internal/handlers"
	"github.com/0xarchit/github-profile-analyzer/internal/middleware"
	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/internal/repositories"
	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/0xarchit/github-profile-analyzer/pkg/database"
	"github.com/0xarchit/github-profile-analyzer/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Credential pools are immutable for the process lifetime
	githubTokens, err := models.NewCredentialPool(config.AppConfig.GitHub.Tokens)
	if err != nil {
		logger.Fatalf("GITHUB_TOKENS must contain at least one token: %v", err)
	}
	llmKeys, err := models.NewCredentialPool(config.AppConfig.LLM.Keys)
	if err != nil {
		logger.Fatalf("LLM_API_KEYS must contain at least one key: %v", err)
	}
	logger.Infof("Loaded %d GitHub tokens and %d LLM keys", githubTokens.Size(), llmKeys.Size())
	if config.AppConfig.TrustedOrigin == "" {
		logger.Warnf("FRONTEND_ORIGIN is not set, all /api and /contributions requests will be rejected")
	}

	// Initialize dependencies
	svgCacheRepo := repositories.NewSVGCacheRepository(database.DB)
	githubService := services.NewGitHubService(githubTokens)
	gateService := services.NewGateService(githubService)
	profileService := services.NewProfileService(githubService)
	achievementService := services.NewAchievementService()
	contributionService := services.NewContributionService(githubTokens, svgCacheRepo)
	analysisService := services.NewAnalysisService(llmKeys)

	// Initialize router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Internal error: %v", recovered)})
	}))
	router.Use(middleware.RequestID())

	setupRoutes(router, githubService, gateService, profileService, achievementService, contributionService, analysisService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	githubService *services.GitHubService,
	gateService *services.GateService,
	profileService *services.ProfileService,
	achievementService *services.AchievementService,
	contributionService *services.ContributionService,
	analysisService *services.AnalysisService,
) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	rateLimitHandler := handlers.NewRateLimitHandler(githubService)
	contributionsHandler := handlers.NewContributionsHandler(contributionService)
	analyzeHandler := handlers.NewAnalyzeHandler(gateService, profileService, achievementService, analysisService, githubService)
	notFoundHandler := handlers.NewNotFoundHandler()

	// Static dashboard and assets
	router.GET("/", homeHandler.Index)
	router.Static("/static", "./web/static")

	// Ungated endpoints
	router.GET("/rate_limit", rateLimitHandler.RateLimit)

	// Origin-gated endpoints
	gated := router.Group("/")
	gated.Use(middleware.OriginRequired())
	{
		gated.GET("/contributions", contributionsHandler.Contributions)
		gated.GET("/api", analyzeHandler.Analyze)
	}

	router.NoRoute(notFoundHandler.NotFound)
}
