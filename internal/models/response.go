package models

// TrendingResponse is the response body for the trending and explore
// endpoints. Results carry the full ranked set's ordering; pagination slices
// it for the page requested.
type TrendingResponse struct {
	Results    []RankedPost `json:"results"`
	Pagination Pagination   `json:"pagination"`
	Stats      WindowStats  `json:"stats"`
	Timing     TimingMeta   `json:"timing"`

	// Source reports where the posts came from: "upstream" or "snapshot".
	Source string `json:"source"`
}

// Pagination describes the page slice of a result set.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// WindowStats are the recency counters the explore page renders above the
// result list. Counted over the filtered set, before pagination.
type WindowStats struct {
	PostsToday    int `json:"posts_today"`
	PostsThisWeek int `json:"posts_this_week"`
	TotalResults  int `json:"total_results"`
}

// TimingMeta breaks down where a request spent its time.
type TimingMeta struct {
	TotalMs   float64 `json:"total_ms"`
	FetchMs   float64 `json:"fetch_ms,omitempty"`
	RankingMs float64 `json:"ranking_ms,omitempty"`
}

// NewPagination computes page counts for a total result size.
func NewPagination(page, perPage, total int) Pagination {
	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
