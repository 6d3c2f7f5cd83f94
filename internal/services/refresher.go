package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/ranking"
	"github.com/robfig/cron/v3"
)

// SnapshotWriter is the store surface the refresher needs.
type SnapshotWriter interface {
	UpsertPosts(ctx context.Context, posts []models.Post) error
	ListPosts(ctx context.Context) ([]models.Post, error)
	UpdateTrendingScore(ctx context.Context, id int64, score float64) error
}

// RefreshStats summarizes one refresh run.
type RefreshStats struct {
	Synced  int
	Updated int
	Errors  int
}

// Refresher periodically syncs posts from the backend into the snapshot and
// recomputes their trending scores. This mirrors the backend's own periodic
// recompute contract (every 15 minutes), so snapshot-served rankings decay
// the same way upstream ones do.
type Refresher struct {
	fetcher PostFetcher
	store   SnapshotWriter
	scorer  *ranking.Scorer
	cache   *ResultCache
	cron    *cron.Cron
	now     func() time.Time
}

// NewRefresher wires a refresher. cache may be nil; when set it is cleared
// after every run so cached ranks never outlive a recompute.
func NewRefresher(fetcher PostFetcher, store SnapshotWriter, scorer *ranking.Scorer, cache *ResultCache) *Refresher {
	return &Refresher{
		fetcher: fetcher,
		store:   store,
		scorer:  scorer,
		cache:   cache,
		cron:    cron.New(),
		now:     time.Now,
	}
}

// Start schedules the refresh every intervalMinutes and runs one refresh
// immediately in the background.
func (r *Refresher) Start(intervalMinutes int) error {
	if intervalMinutes <= 0 {
		intervalMinutes = 15
	}

	spec := fmt.Sprintf("@every %dm", intervalMinutes)
	if _, err := r.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		stats, err := r.RunOnce(ctx)
		if err != nil {
			log.Printf("trending refresh failed: %v", err)
			return
		}
		log.Printf("trending refresh: synced=%d updated=%d errors=%d", stats.Synced, stats.Updated, stats.Errors)
	}); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	r.cron.Start()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if stats, err := r.RunOnce(ctx); err != nil {
			log.Printf("initial trending refresh failed: %v", err)
		} else {
			log.Printf("initial trending refresh: synced=%d updated=%d", stats.Synced, stats.Updated)
		}
	}()

	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RunOnce performs a single sync-and-recompute pass.
func (r *Refresher) RunOnce(ctx context.Context) (RefreshStats, error) {
	var stats RefreshStats

	// Sync the snapshot first; a failed sync still allows recomputing over
	// what the snapshot already holds.
	posts, err := r.fetcher.ListPosts(ctx, forum.ListQuery{Ordering: forum.OrderingTrending})
	if err != nil {
		log.Printf("refresh: upstream sync skipped: %v", err)
	} else if err := r.store.UpsertPosts(ctx, posts); err != nil {
		return stats, fmt.Errorf("sync snapshot: %w", err)
	} else {
		stats.Synced = len(posts)
	}

	snapshotted, err := r.store.ListPosts(ctx)
	if err != nil {
		return stats, fmt.Errorf("list snapshot: %w", err)
	}

	now := r.now()
	for i := range snapshotted {
		post := &snapshotted[i]

		// Recompute from counters, ignoring any stored score. Rounded to
		// two decimals the way the backend stores it.
		score := roundScore(r.scorer.Compute(post, now))
		if post.TrendingScore != nil && *post.TrendingScore == score {
			continue
		}

		if err := r.store.UpdateTrendingScore(ctx, post.ID, score); err != nil {
			log.Printf("refresh: update score for post %d: %v", post.ID, err)
			stats.Errors++
			continue
		}
		stats.Updated++
	}

	if r.cache != nil {
		r.cache.Clear()
	}

	return stats, nil
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
