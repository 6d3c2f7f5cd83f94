package ranking

import (
	"math"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
)

// Scorer resolves trending scores for posts.
type Scorer struct {
	config ScoreConfig
}

// NewScorer creates a scorer with the given constants.
func NewScorer(config ScoreConfig) *Scorer {
	return &Scorer{config: config}
}

// Resolve returns the trending score for a post at the given instant. A
// precomputed backend score wins; otherwise the score is derived locally.
func (s *Scorer) Resolve(post *models.Post, now time.Time) float64 {
	if post.TrendingScore != nil {
		return *post.TrendingScore
	}
	return s.Compute(post, now)
}

// Compute derives the engagement velocity score from the post's counters:
//
//	score = (likes + comments*W_c + forks*W_f) / ageHours^exp
//
// Age is floored at MinAgeHours. Posts with an unparseable creation
// timestamp score zero.
func (s *Scorer) Compute(post *models.Post, now time.Time) float64 {
	created, ok := post.CreatedTime()
	if !ok {
		return 0
	}

	ageHours := now.Sub(created).Hours()
	if ageHours < s.config.MinAgeHours {
		ageHours = s.config.MinAgeHours
	}

	engagement := s.config.LikeWeight*float64(post.LikesCount) +
		s.config.CommentWeight*float64(post.CommentsCount) +
		s.config.ForkWeight*float64(post.ForksCount)

	return engagement / math.Pow(ageHours, s.config.DecayExponent)
}
