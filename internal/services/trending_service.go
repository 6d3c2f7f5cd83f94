package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/ranking"
)

// PostFetcher is the upstream forum API surface the service needs.
type PostFetcher interface {
	ListPosts(ctx context.Context, query forum.ListQuery) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
}

// Snapshot is the local post snapshot surface the service needs.
type Snapshot interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
}

// Source labels for TrendingResponse.Source.
const (
	SourceUpstream = "upstream"
	SourceSnapshot = "snapshot"
)

// TrendingService orchestrates a ranked listing: resolve posts (upstream
// first, snapshot fallback), run the ranking engine with an explicit "now",
// paginate, and cache the result.
type TrendingService struct {
	fetcher  PostFetcher
	snapshot Snapshot
	engine   *ranking.Engine
	cache    *ResultCache

	// now is the clock boundary; everything below it is deterministic.
	now func() time.Time
}

// NewTrendingService wires the service. snapshot may be nil when running
// without a local store (cmd/refresh --dry-run).
func NewTrendingService(fetcher PostFetcher, snapshot Snapshot, engine *ranking.Engine, cache *ResultCache) *TrendingService {
	return &TrendingService{
		fetcher:  fetcher,
		snapshot: snapshot,
		engine:   engine,
		cache:    cache,
		now:      time.Now,
	}
}

// Query runs the full pipeline for a trending/explore request. endpoint
// names the caller for cache keying; defaultWindow is the page default
// applied when the request leaves the window unset.
func (s *TrendingService) Query(ctx context.Context, endpoint string, req *models.TrendingRequest, defaultWindow models.TimeWindow) (*models.TrendingResponse, error) {
	startTime := time.Now()

	if err := req.Validate(defaultWindow); err != nil {
		return nil, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.GenerateKey(endpoint, req)
		if cached := s.cache.Get(cacheKey); cached != nil {
			return cached, nil
		}
	}

	fetchStart := time.Now()
	posts, source, err := s.resolvePosts(ctx, req)
	if err != nil {
		return nil, err
	}
	fetchMs := float64(time.Since(fetchStart).Microseconds()) / 1000

	now := s.now()

	rankStart := time.Now()
	ranked, err := s.engine.FilterAndRank(posts, req.Criteria(), now)
	if err != nil {
		return nil, err
	}
	rankMs := float64(time.Since(rankStart).Microseconds()) / 1000

	response := &models.TrendingResponse{
		Results:    paginate(ranked, req.Page, req.PerPage),
		Pagination: models.NewPagination(req.Page, req.PerPage, len(ranked)),
		Stats:      windowStats(ranked, now),
		Timing: models.TimingMeta{
			TotalMs:   float64(time.Since(startTime).Microseconds()) / 1000,
			FetchMs:   fetchMs,
			RankingMs: rankMs,
		},
		Source: source,
	}

	if cacheKey != "" {
		s.cache.Set(cacheKey, response)
	}

	return response, nil
}

// GetPost returns a single post, upstream first with snapshot fallback.
func (s *TrendingService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.fetcher.GetPost(ctx, id)
	if err == nil {
		return post, nil
	}
	if errors.Is(err, models.ErrPostNotFound) || s.snapshot == nil {
		return nil, err
	}

	log.Printf("upstream post lookup failed, trying snapshot: %v", err)
	return s.snapshot.GetPost(ctx, id)
}

// resolvePosts fetches from the backend, falling back to the snapshot when
// the backend is down. The upstream call passes the filters through so the
// server can pre-filter; the engine re-validates regardless.
func (s *TrendingService) resolvePosts(ctx context.Context, req *models.TrendingRequest) ([]models.Post, string, error) {
	posts, err := s.fetcher.ListPosts(ctx, forum.ListQuery{
		Search:   req.Query,
		Language: req.Language,
		Tags:     req.ParsedTags,
		Ordering: forum.OrderingTrending,
	})
	if err == nil {
		return posts, SourceUpstream, nil
	}

	if s.snapshot == nil {
		return nil, "", err
	}

	log.Printf("upstream fetch failed, serving from snapshot: %v", err)
	posts, snapErr := s.snapshot.ListPosts(ctx)
	if snapErr != nil {
		return nil, "", fmt.Errorf("%w: upstream: %v, snapshot: %v", models.ErrNoPostSource, err, snapErr)
	}
	return posts, SourceSnapshot, nil
}

// paginate slices the ranked set for one page. Ranks stay global: page 2
// starts at rank perPage+1.
func paginate(ranked []models.RankedPost, page, perPage int) []models.RankedPost {
	start := (page - 1) * perPage
	if start >= len(ranked) {
		return []models.RankedPost{}
	}
	end := start + perPage
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end]
}

// windowStats counts recency buckets over the filtered set, as rendered
// above the explore results.
func windowStats(ranked []models.RankedPost, now time.Time) models.WindowStats {
	stats := models.WindowStats{TotalResults: len(ranked)}

	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	for i := range ranked {
		created, ok := ranked[i].CreatedTime()
		if !ok {
			continue
		}
		if created.After(dayAgo) {
			stats.PostsToday++
		}
		if created.After(weekAgo) {
			stats.PostsThisWeek++
		}
	}

	return stats
}
