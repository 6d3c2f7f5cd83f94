package ranking

import (
	"strings"
	"time"

	"github.com/gitforum/app-trending-api/internal/models"
	"github.com/gitforum/app-trending-api/internal/utils"
)

// matchesSearch reports whether the normalized query appears in the post's
// title, description or any tag. Descriptions are markdown; matching runs
// against the stripped text so formatting never affects a match. An empty
// query matches everything.
func matchesSearch(post *models.Post, query string) bool {
	if query == "" {
		return true
	}

	q := utils.NormalizeText(query)

	if strings.Contains(utils.NormalizeText(post.Title), q) {
		return true
	}
	if strings.Contains(utils.NormalizeText(utils.StripMarkdown(post.Description)), q) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(utils.NormalizeText(tag), q) {
			return true
		}
	}
	return false
}

// matchesLanguage applies the exact categorical language filter. "All" (or
// empty) disables it; the UI supplies the canonical casing.
func matchesLanguage(post *models.Post, language string) bool {
	if language == "" || language == "All" {
		return true
	}
	return post.Language == language
}

// matchesTags applies OR semantics: the post passes when its tag set
// intersects the criteria's, compared lowercased. An empty criteria set
// matches everything.
func matchesTags(post *models.Post, tags []string) bool {
	if len(tags) == 0 {
		return true
	}

	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[utils.NormalizeText(t)] = struct{}{}
	}

	for _, t := range post.Tags {
		if _, ok := wanted[utils.NormalizeText(t)]; ok {
			return true
		}
	}
	return false
}

// matchesWindow checks the time window cutoff with strict "created after"
// semantics: a post created exactly at the boundary is excluded. Posts with
// a malformed timestamp never match a bounded window.
func matchesWindow(createdAt time.Time, hasCreatedAt bool, window models.TimeWindow, now time.Time) bool {
	cutoff, bounded := window.Cutoff(now)
	if !bounded {
		return true
	}
	if !hasCreatedAt {
		return false
	}
	return createdAt.After(cutoff)
}
