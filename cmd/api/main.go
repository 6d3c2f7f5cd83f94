package main

import (
	"context"
	"log"
	"time"

	_ "github.com/gitforum/app-trending-api/docs"
	"github.com/gitforum/app-trending-api/internal/ai"
	"github.com/gitforum/app-trending-api/internal/api/routes"
	"github.com/gitforum/app-trending-api/internal/config"
	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/observability"
	"github.com/gitforum/app-trending-api/internal/ranking"
	"github.com/gitforum/app-trending-api/internal/services"
	"github.com/gitforum/app-trending-api/internal/store"
)

// @title           GitForum Trending API
// @version         1.0
// @description     Trending and exploration API for GitForum posts, with snapshot fallback and AI-assisted code review
// @termsOfService  http://swagger.io/terms/

// @contact.name   GitForum
// @contact.url    https://github.com/gitforum

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	ranking.SetDefaults(scoreConfig(cfg))

	st, err := store.NewStore(cfg.SnapshotDBPath)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer st.Close()

	client := forum.NewClient(cfg.ForumBaseURL, time.Duration(cfg.ForumTimeoutSeconds)*time.Second)

	cache := services.NewResultCache(
		time.Duration(cfg.Trending.CacheTTLSeconds)*time.Second,
		cfg.Trending.CacheMaxSize,
	)

	engine := ranking.NewEngine(ranking.DefaultScoreConfig())
	service := services.NewTrendingService(client, st, engine, cache)

	scorer := ranking.NewScorer(ranking.DefaultScoreConfig())
	refresher := services.NewRefresher(client, st, scorer, cache)
	if err := refresher.Start(cfg.Trending.RefreshMinutes); err != nil {
		log.Fatalf("Failed to start score refresher: %v", err)
	}
	defer refresher.Stop()

	assistant, err := ai.NewAssistant(context.Background(), cfg.GeminiAPIKey, cfg.GeminiChatModel)
	if err != nil {
		log.Fatalf("Failed to create AI assistant: %v", err)
	}

	r := routes.SetupRouter(service, assistant, client, st)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func scoreConfig(cfg *config.Config) ranking.ScoreConfig {
	return ranking.ScoreConfig{
		LikeWeight:    cfg.Trending.LikeWeight,
		CommentWeight: cfg.Trending.CommentWeight,
		ForkWeight:    cfg.Trending.ForkWeight,
		DecayExponent: cfg.Trending.DecayExponent,
		MinAgeHours:   cfg.Trending.MinAgeHours,
		HotThreshold:  cfg.Trending.HotThreshold,
	}
}
