package models

import "time"

// TimeWindow restricts results to posts created after a relative cutoff.
type TimeWindow string

const (
	WindowToday     TimeWindow = "today"
	WindowThisWeek  TimeWindow = "week"
	WindowThisMonth TimeWindow = "month"
	WindowAllTime   TimeWindow = "all"
)

// SortKey selects the comparator applied after filtering.
type SortKey string

const (
	SortGrowth       SortKey = "growth"
	SortMostStars    SortKey = "stars"
	SortMostForks    SortKey = "forks"
	SortMostComments SortKey = "comments"
	SortRecent       SortKey = "recent"
)

// IsValid reports whether the window is one of the closed enum values.
func (w TimeWindow) IsValid() bool {
	switch w {
	case WindowToday, WindowThisWeek, WindowThisMonth, WindowAllTime:
		return true
	}
	return false
}

// Cutoff returns the window's cutoff instant relative to now. The second
// return is false for the all-time window, which has no cutoff.
func (w TimeWindow) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowToday:
		return now.Add(-24 * time.Hour), true
	case WindowThisWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowThisMonth:
		return now.Add(-30 * 24 * time.Hour), true
	}
	return time.Time{}, false
}

// IsValid reports whether the sort key is one of the closed enum values.
func (k SortKey) IsValid() bool {
	switch k {
	case SortGrowth, SortMostStars, SortMostForks, SortMostComments, SortRecent:
		return true
	}
	return false
}

// FilterCriteria is the per-query filter and sort state supplied by the
// caller. A zero value means "match everything, sort by growth".
type FilterCriteria struct {
	// SearchQuery is matched case-insensitively against title, description
	// and tags. Empty matches everything.
	SearchQuery string

	// Language restricts to an exact categorical value. "All" or empty
	// means no restriction.
	Language string

	// Tags uses OR semantics: a post matches when it carries at least one
	// of these tags (compared lowercased).
	Tags []string

	Window TimeWindow
	Sort   SortKey
}
