package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/gitforum/app-trending-api/internal/config"
	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/ranking"
	"github.com/gitforum/app-trending-api/internal/services"
	"github.com/gitforum/app-trending-api/internal/store"
)

// One-shot trending score refresh. Syncs posts from the forum backend into
// the local snapshot and recomputes every score, the same pass the API
// server runs on its cron schedule.
func main() {
	dbPath := flag.String("db", "", "Snapshot database path (overrides SNAPSHOT_DB_PATH)")
	dryRun := flag.Bool("dry-run", false, "Compute scores without writing the snapshot")
	top := flag.Int("top", 10, "Posts to print in dry-run mode")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall timeout")

	flag.Parse()

	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if *dbPath != "" {
		cfg.SnapshotDBPath = *dbPath
	}

	scoreCfg := ranking.ScoreConfig{
		LikeWeight:    cfg.Trending.LikeWeight,
		CommentWeight: cfg.Trending.CommentWeight,
		ForkWeight:    cfg.Trending.ForkWeight,
		DecayExponent: cfg.Trending.DecayExponent,
		MinAgeHours:   cfg.Trending.MinAgeHours,
		HotThreshold:  cfg.Trending.HotThreshold,
	}
	scorer := ranking.NewScorer(scoreCfg)

	client := forum.NewClient(cfg.ForumBaseURL, time.Duration(cfg.ForumTimeoutSeconds)*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *dryRun {
		if err := printScores(ctx, client, scorer, *top); err != nil {
			log.Fatalf("Dry run failed: %v", err)
		}
		return
	}

	st, err := store.NewStore(cfg.SnapshotDBPath)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer st.Close()

	refresher := services.NewRefresher(client, st, scorer, nil)

	start := time.Now()
	stats, err := refresher.RunOnce(ctx)
	if err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}

	log.Printf("Refresh complete in %s: %d synced, %d updated, %d errors",
		time.Since(start).Round(time.Millisecond), stats.Synced, stats.Updated, stats.Errors)
}

func printScores(ctx context.Context, client *forum.Client, scorer *ranking.Scorer, top int) error {
	posts, err := client.ListPosts(ctx, forum.ListQuery{})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	type scored struct {
		id    int64
		title string
		score float64
	}
	results := make([]scored, 0, len(posts))
	for i := range posts {
		results = append(results, scored{
			id:    posts[i].ID,
			title: posts[i].Title,
			score: scorer.Compute(&posts[i], now),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].score > results[j].score })

	if top > len(results) {
		top = len(results)
	}
	fmt.Printf("Computed scores for %d posts, top %d:\n", len(results), top)
	for _, r := range results[:top] {
		fmt.Printf("  %8.2f  #%d  %s\n", r.score, r.id, r.title)
	}
	return nil
}
