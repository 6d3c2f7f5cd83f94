package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gitforum/app-trending-api/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func samplePosts() []models.Post {
	lowScore := 0.89
	highScore := 14.14
	return []models.Post{
		{
			ID:             1,
			Title:          "Debouncing search input in React",
			Description:    "A **custom** hook",
			Language:       "TypeScript",
			AuthorUsername: "ada",
			Views:          120,
			LikesCount:     40,
			CommentsCount:  6,
			ForksCount:     2,
			IsSolved:       true,
			CreatedAt:      "2026-03-15T10:00:00Z",
			Tags:           []string{"react", "hooks"},
			TrendingScore:  &highScore,
		},
		{
			ID:             2,
			Title:          "Goroutine leak in worker pool",
			Language:       "Go",
			AuthorUsername: "rob",
			LikesCount:     10,
			CreatedAt:      "2026-03-15T07:00:00Z",
			Tags:           []string{"concurrency"},
			TrendingScore:  &lowScore,
		},
	}
}

func TestUpsertAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.UpsertPosts(ctx, samplePosts()); err != nil {
		t.Fatalf("UpsertPosts returned error: %v", err)
	}

	post, err := st.GetPost(ctx, 1)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}

	if post.Title != "Debouncing search input in React" {
		t.Errorf("Title = %q", post.Title)
	}
	if !post.IsSolved {
		t.Error("IsSolved lost in the round trip")
	}
	if len(post.Tags) != 2 || post.Tags[0] != "react" {
		t.Errorf("Tags = %v", post.Tags)
	}
	if post.TrendingScore == nil || *post.TrendingScore != 14.14 {
		t.Errorf("TrendingScore = %v; expected 14.14", post.TrendingScore)
	}
}

func TestGetPostNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetPost(context.Background(), 42)
	if !errors.Is(err, models.ErrPostNotFound) {
		t.Errorf("GetPost(42) error = %v; expected ErrPostNotFound", err)
	}
}

func TestUpsertReplacesExisting(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	posts := samplePosts()
	if err := st.UpsertPosts(ctx, posts); err != nil {
		t.Fatalf("UpsertPosts returned error: %v", err)
	}

	posts[0].Title = "Debouncing, revisited"
	posts[0].LikesCount = 55
	if err := st.UpsertPosts(ctx, posts[:1]); err != nil {
		t.Fatalf("second UpsertPosts returned error: %v", err)
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d; expected 2 after re-upsert", count)
	}

	post, err := st.GetPost(ctx, 1)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if post.Title != "Debouncing, revisited" || post.LikesCount != 55 {
		t.Errorf("post not replaced: %+v", post)
	}
}

func TestListPostsOrderedByScore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.UpsertPosts(ctx, samplePosts()); err != nil {
		t.Fatalf("UpsertPosts returned error: %v", err)
	}

	posts, err := st.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts; expected 2", len(posts))
	}
	if posts[0].ID != 1 {
		t.Errorf("first post ID = %d; expected the higher-scored post 1", posts[0].ID)
	}
}

func TestUpdateTrendingScore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.UpsertPosts(ctx, samplePosts()); err != nil {
		t.Fatalf("UpsertPosts returned error: %v", err)
	}

	if err := st.UpdateTrendingScore(ctx, 2, 99.5); err != nil {
		t.Fatalf("UpdateTrendingScore returned error: %v", err)
	}

	post, err := st.GetPost(ctx, 2)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if post.TrendingScore == nil || *post.TrendingScore != 99.5 {
		t.Errorf("TrendingScore = %v; expected 99.5", post.TrendingScore)
	}
}

func TestNilScoreSurvivesRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	posts := []models.Post{{ID: 7, Title: "fresh post", CreatedAt: "2026-03-15T11:59:00Z"}}
	if err := st.UpsertPosts(ctx, posts); err != nil {
		t.Fatalf("UpsertPosts returned error: %v", err)
	}

	post, err := st.GetPost(ctx, 7)
	if err != nil {
		t.Fatalf("GetPost returned error: %v", err)
	}
	if post.TrendingScore != nil {
		t.Errorf("TrendingScore = %v; expected nil for an unscored post", *post.TrendingScore)
	}
	if post.Tags != nil {
		t.Errorf("Tags = %v; expected nil", post.Tags)
	}
}

func TestUpsertEmptyBatch(t *testing.T) {
	st := newTestStore(t)
	if err := st.UpsertPosts(context.Background(), nil); err != nil {
		t.Errorf("UpsertPosts(nil) returned error: %v", err)
	}
}
