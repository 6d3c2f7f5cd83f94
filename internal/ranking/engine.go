// Package ranking implements the filter, score and rank pipeline behind the
// trending and explore pages. The engine is a pure function of its inputs:
// it performs no I/O, reads no clocks, and is safe to call concurrently.
package ranking

import (
	"sort"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
)

// Engine applies filters, resolves trending scores and assigns dense ranks.
type Engine struct {
	scorer *Scorer
	config ScoreConfig
}

// NewEngine creates an engine with the given score constants.
func NewEngine(config ScoreConfig) *Engine {
	return &Engine{
		scorer: NewScorer(config),
		config: config,
	}
}

// candidate pairs a surviving post with state computed once per query.
type candidate struct {
	post      models.Post
	score     float64
	createdAt time.Time
	hasTime   bool
}

// FilterAndRank runs the full pipeline: search, language, tag and time
// window filters, score resolution, the criteria's sort, then 1-based dense
// rank assignment with the hot badge for the top of the list.
//
// now is threaded explicitly so results are deterministic and replayable;
// the engine never reads the wall clock itself. Ties keep input order.
func (e *Engine) FilterAndRank(posts []models.Post, criteria models.FilterCriteria, now time.Time) ([]models.RankedPost, error) {
	if !criteria.Window.IsValid() {
		return nil, models.ErrInvalidTimeWindow
	}
	if !criteria.Sort.IsValid() {
		return nil, models.ErrInvalidSortKey
	}

	candidates := make([]candidate, 0, len(posts))
	for i := range posts {
		post := posts[i]
		createdAt, hasTime := post.CreatedTime()

		if !matchesSearch(&post, criteria.SearchQuery) {
			continue
		}
		if !matchesLanguage(&post, criteria.Language) {
			continue
		}
		if !matchesTags(&post, criteria.Tags) {
			continue
		}
		if !matchesWindow(createdAt, hasTime, criteria.Window, now) {
			continue
		}

		candidates = append(candidates, candidate{
			post:      post,
			score:     e.scorer.Resolve(&post, now),
			createdAt: createdAt,
			hasTime:   hasTime,
		})
	}

	sortCandidates(candidates, criteria.Sort)

	ranked := make([]models.RankedPost, len(candidates))
	for i, c := range candidates {
		rank := i + 1
		ranked[i] = models.RankedPost{
			Post:  c.post,
			Score: c.score,
			Rank:  rank,
			IsHot: rank <= e.config.HotThreshold,
		}
	}

	return ranked, nil
}

// sortCandidates orders candidates descending by the sort key. The sort is
// stable; no secondary key is applied, so equal values keep input order.
func sortCandidates(candidates []candidate, key models.SortKey) {
	var less func(a, b *candidate) bool

	switch key {
	case models.SortMostStars:
		less = func(a, b *candidate) bool { return a.post.LikesCount > b.post.LikesCount }
	case models.SortMostForks:
		less = func(a, b *candidate) bool { return a.post.ForksCount > b.post.ForksCount }
	case models.SortMostComments:
		less = func(a, b *candidate) bool { return a.post.CommentsCount > b.post.CommentsCount }
	case models.SortRecent:
		// Posts without a parseable timestamp sort last.
		less = func(a, b *candidate) bool {
			if a.hasTime != b.hasTime {
				return a.hasTime
			}
			return a.createdAt.After(b.createdAt)
		}
	default: // models.SortGrowth
		less = func(a, b *candidate) bool { return a.score > b.score }
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return less(&candidates[i], &candidates[j])
	})
}
