// Package forum is the REST client for the GitForum backend, the system of
// record for posts. The trending service treats it as read-only.
package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
)

// Ordering values accepted by the backend's posts endpoint.
const (
	OrderingTrending = "-trending_score"
	OrderingRecent   = "-created_at"
	OrderingViews    = "-views"
	OrderingForks    = "-forks_count"
)

// Client talks to the forum backend posts API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://backend:8000/api/forum".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListQuery carries the optional server-side pre-filters. The backend
// pre-filters for efficiency; the ranking engine re-validates everything
// client-side and never trusts the upstream to have filtered.
type ListQuery struct {
	Search   string
	Language string
	Tags     []string
	Ordering string
	Page     int
	PageSize int
}

// ListPosts fetches posts from the backend. Both response shapes the backend
// emits are handled: a bare JSON array and a DRF-paginated
// {"results": [...]} envelope.
func (c *Client) ListPosts(ctx context.Context, query ListQuery) ([]models.Post, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Language != "" && query.Language != "All" {
		params.Set("language", query.Language)
	}
	if len(query.Tags) > 0 {
		params.Set("tags", strings.Join(query.Tags, ","))
	}
	if query.Ordering != "" {
		params.Set("ordering", query.Ordering)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}

	endpoint := c.baseURL + "/posts/"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return decodePosts(body)
}

// GetPost fetches a single post by ID.
func (c *Client) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/posts/%d/", c.baseURL, id))
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &post, nil
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts/?page_size=1", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", models.ErrUpstreamFailed, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrPostNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", models.ErrUpstreamFailed, resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// decodePosts accepts either a bare array or a paginated envelope.
func decodePosts(body []byte) ([]models.Post, error) {
	var posts []models.Post
	if err := json.Unmarshal(body, &posts); err == nil {
		return posts, nil
	}

	var envelope struct {
		Results []models.Post `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return envelope.Results, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
