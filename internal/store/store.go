// Package store keeps a local SQLite snapshot of forum posts. The snapshot
// serves trending queries when the backend is unreachable and gives the
// score refresher a stable set to recompute over.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	id              INTEGER PRIMARY KEY,
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	code_snippet    TEXT NOT NULL DEFAULT '',
	language        TEXT NOT NULL DEFAULT 'text',
	author_username TEXT NOT NULL DEFAULT '',
	views           INTEGER NOT NULL DEFAULT 0,
	likes_count     INTEGER NOT NULL DEFAULT 0,
	comments_count  INTEGER NOT NULL DEFAULT 0,
	forks_count     INTEGER NOT NULL DEFAULT 0,
	is_solved       INTEGER NOT NULL DEFAULT 0,
	created_at      TEXT NOT NULL DEFAULT '',
	updated_at      TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '[]',
	trending_score  REAL,
	synced_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_posts_trending_score ON posts(trending_score DESC);
CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at DESC);
`

// Store is the SQLite-backed post snapshot.
type Store struct {
	db *sql.DB
}

// NewStore opens (and if needed bootstraps) the snapshot database at path.
// The caller should Close it when done.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	// SQLite handles one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertPosts inserts or replaces a batch of posts in one transaction.
func (s *Store) UpsertPosts(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (
			id, title, description, code_snippet, language, author_username,
			views, likes_count, comments_count, forks_count, is_solved,
			created_at, updated_at, tags, trending_score, synced_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			code_snippet = excluded.code_snippet,
			language = excluded.language,
			author_username = excluded.author_username,
			views = excluded.views,
			likes_count = excluded.likes_count,
			comments_count = excluded.comments_count,
			forks_count = excluded.forks_count,
			is_solved = excluded.is_solved,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			tags = excluded.tags,
			trending_score = excluded.trending_score,
			synced_at = excluded.synced_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	syncedAt := time.Now().UTC().Format(time.RFC3339)
	for i := range posts {
		p := &posts[i]

		tags, err := json.Marshal(p.Tags)
		if err != nil {
			tags = []byte("[]")
		}

		var score sql.NullFloat64
		if p.TrendingScore != nil {
			score = sql.NullFloat64{Float64: *p.TrendingScore, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Title, p.Description, p.CodeSnippet, p.Language, p.AuthorUsername,
			p.Views, p.LikesCount, p.CommentsCount, p.ForksCount, boolToInt(p.IsSolved),
			p.CreatedAt, p.UpdatedAt, string(tags), score, syncedAt,
		); err != nil {
			return fmt.Errorf("upsert post %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// ListPosts returns every snapshotted post, highest trending score first.
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, code_snippet, language, author_username,
		       views, likes_count, comments_count, forks_count, is_solved,
		       created_at, updated_at, tags, trending_score
		FROM posts
		ORDER BY trending_score DESC`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPost returns a single snapshotted post, or models.ErrPostNotFound.
func (s *Store) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, code_snippet, language, author_username,
		       views, likes_count, comments_count, forks_count, is_solved,
		       created_at, updated_at, tags, trending_score
		FROM posts
		WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("query post: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, models.ErrPostNotFound
	}

	post, err := scanPost(rows)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdateTrendingScore persists a recomputed score for one post.
func (s *Store) UpdateTrendingScore(ctx context.Context, id int64, score float64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE posts SET trending_score = ? WHERE id = ?`, score, id)
	return err
}

// Count returns the number of snapshotted posts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

// Ping checks the database for the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func scanPost(rows *sql.Rows) (models.Post, error) {
	var (
		post     models.Post
		isSolved int
		tagsJSON string
		score    sql.NullFloat64
	)

	err := rows.Scan(
		&post.ID, &post.Title, &post.Description, &post.CodeSnippet,
		&post.Language, &post.AuthorUsername,
		&post.Views, &post.LikesCount, &post.CommentsCount, &post.ForksCount,
		&isSolved, &post.CreatedAt, &post.UpdatedAt, &tagsJSON, &score,
	)
	if err != nil {
		return models.Post{}, fmt.Errorf("scan post: %w", err)
	}

	post.IsSolved = isSolved != 0
	if err := json.Unmarshal([]byte(tagsJSON), &post.Tags); err != nil {
		post.Tags = nil
	}
	if score.Valid {
		post.TrendingScore = &score.Float64
	}

	return post, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
