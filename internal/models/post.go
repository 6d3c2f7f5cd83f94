package models

import "time"

// Post is a forum post as serialized by the GitForum backend API.
type Post struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CodeSnippet    string   `json:"code_snippet,omitempty"`
	Language       string   `json:"language"`
	AuthorUsername string   `json:"author_username"`
	Views          int      `json:"views"`
	LikesCount     int      `json:"likes_count"`
	CommentsCount  int      `json:"comments_count"`
	ForksCount     int      `json:"forks_count"`
	IsSolved       bool     `json:"is_solved"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
	Tags           []string `json:"tags,omitempty"`

	// TrendingScore is the engagement velocity score precomputed by the
	// backend. Nil when the backend has not computed one; the ranking
	// engine then derives an equivalent locally.
	TrendingScore *float64 `json:"trending_score,omitempty"`
}

// timestampLayouts covers the formats the backend emits for created_at.
// DRF serializes with microseconds and either "Z" or a numeric offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// CreatedTime parses the post's creation timestamp. The second return is
// false when the timestamp is absent or malformed; callers treat such posts
// as never matching a bounded time window.
func (p *Post) CreatedTime() (time.Time, bool) {
	return ParseTimestamp(p.CreatedAt)
}

// ParseTimestamp parses an ISO-8601 timestamp in any of the backend's
// observed layouts.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RankedPost is a Post augmented with its dense rank in a result set.
type RankedPost struct {
	Post

	// Score is the resolved trending score used for the Growth sort,
	// regardless of which sort produced the final order.
	Score float64 `json:"score"`

	// Rank is the 1-based position in the filtered, sorted result set.
	Rank int `json:"rank"`

	// IsHot marks the top three ranked posts.
	IsHot bool `json:"is_hot"`
}
