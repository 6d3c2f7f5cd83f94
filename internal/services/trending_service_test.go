package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gitforum/app-trending-api/internal/forum"
	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/ranking"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	posts []models.Post
	err   error
	calls int
}

func (f *fakeFetcher) ListPosts(ctx context.Context, query forum.ListQuery) ([]models.Post, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeFetcher) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, models.ErrPostNotFound
}

type fakeSnapshot struct {
	posts []models.Post
	err   error
}

func (f *fakeSnapshot) ListPosts(ctx context.Context) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeSnapshot) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, models.ErrPostNotFound
}

func testPosts() []models.Post {
	return []models.Post{
		{
			ID:         1,
			Title:      "Debouncing search input in React",
			Language:   "TypeScript",
			LikesCount: 40,
			CreatedAt:  testNow.Add(-2 * time.Hour).Format(time.RFC3339),
			Tags:       []string{"react", "hooks"},
		},
		{
			ID:         2,
			Title:      "Goroutine leak in worker pool",
			Language:   "Go",
			LikesCount: 10,
			CreatedAt:  testNow.Add(-5 * time.Hour).Format(time.RFC3339),
			Tags:       []string{"concurrency"},
		},
		{
			ID:         3,
			Title:      "Parsing large CSV files",
			Language:   "Python",
			LikesCount: 5,
			CreatedAt:  testNow.Add(-3 * 24 * time.Hour).Format(time.RFC3339),
			Tags:       []string{"pandas"},
		},
	}
}

func newTestService(fetcher PostFetcher, snapshot Snapshot, cache *ResultCache) *TrendingService {
	engine := ranking.NewEngine(ranking.DefaultScoreConfig())
	service := NewTrendingService(fetcher, snapshot, engine, cache)
	service.now = func() time.Time { return testNow }
	return service
}

func TestQueryServesFromUpstream(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	service := newTestService(fetcher, &fakeSnapshot{}, nil)

	resp, err := service.Query(context.Background(), "trending", &models.TrendingRequest{}, models.WindowToday)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if resp.Source != SourceUpstream {
		t.Errorf("Source = %q; expected %q", resp.Source, SourceUpstream)
	}
	// Default window "today" drops the three-day-old post.
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results; expected 2", len(resp.Results))
	}
	if resp.Results[0].Rank != 1 || !resp.Results[0].IsHot {
		t.Errorf("first result rank=%d hot=%v; expected rank 1, hot", resp.Results[0].Rank, resp.Results[0].IsHot)
	}
}

func TestQueryFallsBackToSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{err: models.ErrUpstreamFailed}
	snapshot := &fakeSnapshot{posts: testPosts()}
	service := newTestService(fetcher, snapshot, nil)

	resp, err := service.Query(context.Background(), "trending", &models.TrendingRequest{Window: models.WindowAllTime}, models.WindowToday)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if resp.Source != SourceSnapshot {
		t.Errorf("Source = %q; expected %q", resp.Source, SourceSnapshot)
	}
	if len(resp.Results) != 3 {
		t.Errorf("got %d results; expected 3", len(resp.Results))
	}
}

func TestQueryFailsWhenBothSourcesDown(t *testing.T) {
	fetcher := &fakeFetcher{err: models.ErrUpstreamFailed}
	snapshot := &fakeSnapshot{err: errors.New("database is locked")}
	service := newTestService(fetcher, snapshot, nil)

	_, err := service.Query(context.Background(), "trending", &models.TrendingRequest{}, models.WindowToday)
	if !errors.Is(err, models.ErrNoPostSource) {
		t.Errorf("Query error = %v; expected ErrNoPostSource", err)
	}
}

func TestQueryRejectsInvalidRequest(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	service := newTestService(fetcher, nil, nil)

	_, err := service.Query(context.Background(), "trending", &models.TrendingRequest{Window: "fortnight"}, models.WindowToday)
	if !errors.Is(err, models.ErrInvalidTimeWindow) {
		t.Errorf("Query error = %v; expected ErrInvalidTimeWindow", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher called %d times for an invalid request; expected 0", fetcher.calls)
	}
}

func TestQueryCachesResponses(t *testing.T) {
	fetcher := &fakeFetcher{posts: testPosts()}
	cache := NewResultCache(time.Minute, 10)
	service := newTestService(fetcher, nil, cache)

	for i := 0; i < 3; i++ {
		if _, err := service.Query(context.Background(), "trending", &models.TrendingRequest{}, models.WindowToday); err != nil {
			t.Fatalf("Query returned error: %v", err)
		}
	}

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times; expected 1 with warm cache", fetcher.calls)
	}
}

func TestQueryPaginationKeepsGlobalRanks(t *testing.T) {
	posts := make([]models.Post, 0, 25)
	for i := 1; i <= 25; i++ {
		posts = append(posts, models.Post{
			ID:         int64(i),
			Title:      "post",
			LikesCount: 100 - i,
			CreatedAt:  testNow.Add(-time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
	}
	service := newTestService(&fakeFetcher{posts: posts}, nil, nil)

	req := &models.TrendingRequest{Page: 2, PerPage: 10}
	resp, err := service.Query(context.Background(), "trending", req, models.WindowToday)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if len(resp.Results) != 10 {
		t.Fatalf("got %d results on page 2; expected 10", len(resp.Results))
	}
	if resp.Results[0].Rank != 11 {
		t.Errorf("first rank on page 2 = %d; expected 11", resp.Results[0].Rank)
	}
	if resp.Results[0].IsHot {
		t.Error("page 2 results should not carry the hot badge")
	}
	if resp.Pagination.Total != 25 || resp.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v; expected total 25, 3 pages", resp.Pagination)
	}
}

func TestQueryPageBeyondEnd(t *testing.T) {
	service := newTestService(&fakeFetcher{posts: testPosts()}, nil, nil)

	req := &models.TrendingRequest{Page: 50}
	resp, err := service.Query(context.Background(), "trending", req, models.WindowAllTime)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("got %d results beyond the last page; expected 0", len(resp.Results))
	}
}

func TestQueryWindowStats(t *testing.T) {
	service := newTestService(&fakeFetcher{posts: testPosts()}, nil, nil)

	resp, err := service.Query(context.Background(), "explore", &models.TrendingRequest{Window: models.WindowAllTime}, models.WindowThisWeek)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}

	if resp.Stats.TotalResults != 3 {
		t.Errorf("TotalResults = %d; expected 3", resp.Stats.TotalResults)
	}
	if resp.Stats.PostsToday != 2 {
		t.Errorf("PostsToday = %d; expected 2", resp.Stats.PostsToday)
	}
	if resp.Stats.PostsThisWeek != 3 {
		t.Errorf("PostsThisWeek = %d; expected 3", resp.Stats.PostsThisWeek)
	}
}

func TestGetPostFallsBackToSnapshot(t *testing.T) {
	snapshot := &fakeSnapshot{posts: testPosts()}
	service := newTestService(&fakeFetcher{err: models.ErrUpstreamFailed}, snapshot, nil)

	post, err := service.GetPost(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if post.ID != 2 {
		t.Errorf("GetPost returned post %d; expected 2", post.ID)
	}
}

func TestGetPostNotFoundDoesNotFallBack(t *testing.T) {
	snapshot := &fakeSnapshot{posts: []models.Post{{ID: 99, Title: "stale ghost"}}}
	service := newTestService(&fakeFetcher{posts: nil}, snapshot, nil)

	// The upstream responded; a 404 there is authoritative even when the
	// snapshot still holds a stale copy.
	_, err := service.GetPost(context.Background(), 99)
	if !errors.Is(err, models.ErrPostNotFound) {
		t.Errorf("GetPost error = %v; expected ErrPostNotFound", err)
	}
}
