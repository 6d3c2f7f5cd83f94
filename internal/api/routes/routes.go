package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gitforum/app-trending-api/internal/ai"
	"github.com/gitforum/app-trending-api/internal/api/handlers"
	"github.com/gitforum/app-trending-api/internal/forum"
	middlewares "github.com/gitforum/app-trending-api/internal/middleware"
	"github.com/gitforum/app-trending-api/internal/services"
	"github.com/gitforum/app-trending-api/internal/store"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(service *services.TrendingService, assistant *ai.Assistant, client *forum.Client, st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	trendingHandler := handlers.NewTrendingHandler(service)
	postHandler := handlers.NewPostHandler(service)
	aiHandler := handlers.NewAIHandler(assistant)
	healthHandler := handlers.NewHealthHandler(client, st)

	api := r.Group("/api/v1")
	{
		api.GET("/trending", trendingHandler.Trending)
		api.GET("/explore", trendingHandler.Explore)
		api.GET("/posts/:id", postHandler.GetPost)
		api.POST("/ai/generate-commit", aiHandler.GenerateCommit)
		api.POST("/ai/code-review", aiHandler.ReviewCode)
	}

	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
