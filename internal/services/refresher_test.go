package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/ranking"
)

type fakeWriter struct {
	posts     []models.Post
	upserted  []models.Post
	scores    map[int64]float64
	listErr   error
	upsertErr error
}

func newFakeWriter(posts []models.Post) *fakeWriter {
	return &fakeWriter{posts: posts, scores: make(map[int64]float64)}
}

func (f *fakeWriter) UpsertPosts(ctx context.Context, posts []models.Post) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = posts
	f.posts = posts
	return nil
}

func (f *fakeWriter) ListPosts(ctx context.Context) ([]models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.posts, nil
}

func (f *fakeWriter) UpdateTrendingScore(ctx context.Context, id int64, score float64) error {
	f.scores[id] = score
	return nil
}

func newTestRefresher(fetcher PostFetcher, writer SnapshotWriter, cache *ResultCache) *Refresher {
	r := NewRefresher(fetcher, writer, ranking.NewScorer(ranking.DefaultScoreConfig()), cache)
	r.now = func() time.Time { return testNow }
	return r
}

func TestRunOnceSyncsAndRecomputes(t *testing.T) {
	upstream := testPosts()
	writer := newFakeWriter(nil)
	refresher := newTestRefresher(&fakeFetcher{posts: upstream}, writer, nil)

	stats, err := refresher.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if stats.Synced != 3 {
		t.Errorf("Synced = %d; expected 3", stats.Synced)
	}
	if stats.Updated != 3 {
		t.Errorf("Updated = %d; expected 3", stats.Updated)
	}
	if len(writer.upserted) != 3 {
		t.Errorf("upserted %d posts; expected 3", len(writer.upserted))
	}

	// Post 1: 40 likes, 2 hours old. 40 / 2^1.5 rounded to two decimals.
	got, ok := writer.scores[1]
	if !ok {
		t.Fatal("no score written for post 1")
	}
	if got != 14.14 {
		t.Errorf("score for post 1 = %v; expected 14.14", got)
	}
}

func TestRunOnceRecomputesFromSnapshotWhenUpstreamDown(t *testing.T) {
	writer := newFakeWriter(testPosts())
	refresher := newTestRefresher(&fakeFetcher{err: models.ErrUpstreamFailed}, writer, nil)

	stats, err := refresher.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if stats.Synced != 0 {
		t.Errorf("Synced = %d; expected 0 with upstream down", stats.Synced)
	}
	if stats.Updated != 3 {
		t.Errorf("Updated = %d; expected 3 recomputed from the snapshot", stats.Updated)
	}
}

func TestRunOnceSkipsUnchangedScores(t *testing.T) {
	posts := testPosts()
	score := 14.14
	posts[0].TrendingScore = &score
	writer := newFakeWriter(posts)
	refresher := newTestRefresher(&fakeFetcher{err: models.ErrUpstreamFailed}, writer, nil)

	stats, err := refresher.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if stats.Updated != 2 {
		t.Errorf("Updated = %d; expected 2 with one score already current", stats.Updated)
	}
	if _, ok := writer.scores[1]; ok {
		t.Error("post 1 rewritten despite an unchanged score")
	}
}

func TestRunOnceClearsCache(t *testing.T) {
	cache := NewResultCache(time.Minute, 10)
	cache.Set("stale", &models.TrendingResponse{})
	writer := newFakeWriter(testPosts())
	refresher := newTestRefresher(&fakeFetcher{err: models.ErrUpstreamFailed}, writer, cache)

	if _, err := refresher.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if cache.Get("stale") != nil {
		t.Error("cache entry survived a refresh")
	}
}

func TestRunOnceFailsWhenSnapshotUnreadable(t *testing.T) {
	writer := newFakeWriter(nil)
	writer.listErr = errors.New("database is locked")
	refresher := newTestRefresher(&fakeFetcher{err: models.ErrUpstreamFailed}, writer, nil)

	if _, err := refresher.RunOnce(context.Background()); err == nil {
		t.Fatal("RunOnce succeeded with no readable source")
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{14.142135, 14.14},
		{0.005, 0.01},
		{0, 0},
		{2400, 2400},
	}
	for _, test := range tests {
		if got := roundScore(test.input); got != test.expected {
			t.Errorf("roundScore(%v) = %v; expected %v", test.input, got, test.expected)
		}
	}
}
