package models

import "errors"

var (
	ErrInvalidTimeWindow = errors.New("invalid time window (use: today, week, month, all)")
	ErrInvalidSortKey    = errors.New("invalid sort key (use: growth, stars, forks, comments, recent)")
	ErrPostNotFound      = errors.New("post not found")
	ErrUpstreamFailed    = errors.New("forum backend request failed")
	ErrNoPostSource      = errors.New("no post source available")
)
