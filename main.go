package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"careercompass/config"
	"careercompass/handlers"
	"careercompass/middleware"
	"careercompass/parsers"
	"careercompass/services"
	"careercompass/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.GetAppConfig()

	if err := services.ValidBaseURL(cfg.BackendURL); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTLifetime)
	backend := services.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout)
	jobCache := services.NewJobCache(cfg.JobCacheTTL)
	sessions := services.NewUserSessionCache(cfg.SessionTTL)

	extractor := parsers.NewProfileExtractor()
	documents := parsers.NewDocumentExtractor()

	archive, err := services.NewS3Service(cfg.AWS)
	if err != nil {
		utils.LogWarn("Resume archival disabled", map[string]string{"reason": err.Error()})
		archive = nil
	}

	limiters := middleware.CreateRateLimiters()
	responseCache := middleware.NewResponseCache(cfg.ResponseTTL)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadBytes))
	r.Use(middleware.SanitizeInput())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	auth.Use(limiters["auth"].Limit())
	{
		auth.POST("/token", handlers.IssueToken(jwtService, cfg.AuthAPIKey))
		auth.GET("/me", middleware.RequireAuth(jwtService), handlers.Me())
	}

	resume := r.Group("/api/resume")
	resume.Use(limiters["extract"].Limit())
	resume.Use(middleware.ValidateContentType("application/json", "multipart/form-data"))
	{
		resume.POST("/extract", handlers.ExtractProfile(extractor, documents, archive))
	}

	jobs := r.Group("/api/jobs")
	jobs.Use(middleware.RequireAuth(jwtService))
	jobs.Use(limiters["general"].Limit())
	{
		jobs.POST("/recommendations", handlers.JobRecommendations(backend, jobCache, sessions))
		jobs.POST("/cache/invalidate", handlers.InvalidateJobCache(jobCache, sessions))
		jobs.GET("/cache/stats", handlers.JobCacheStats(jobCache, sessions))
	}

	ai := r.Group("/api/ai")
	ai.Use(middleware.RequireAuth(jwtService))
	ai.Use(limiters["proxy"].Limit())
	ai.Use(responseCache.Cache())
	{
		ai.POST("/career-path", handlers.ForwardToBackend(backend, "/career-path"))
		ai.POST("/skill-gap", handlers.ForwardToBackend(backend, "/skill-gap"))
		ai.POST("/resume-optimization", handlers.ForwardToBackend(backend, "/resume-optimization"))
	}

	utils.LogInfo("Starting server", map[string]string{
		"port":    cfg.Port,
		"backend": backend.BaseURL(),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
