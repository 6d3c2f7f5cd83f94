package models

import "strings"

// TrendingRequest carries the query parameters for the trending and explore
// endpoints.
// @Description Filter and sort parameters for ranked post listings.
type TrendingRequest struct {
	// Free-text search, matched against title, description and tags.
	Query string `form:"q" example:"react hooks"`
	// Language filter. "All" (or empty) means no restriction.
	Language string `form:"language" example:"TypeScript"`
	// Tag filter (comma-separated). A post matches when it has at least one.
	Tags string `form:"tags" example:"react,hooks"`
	// Time window: today, week, month or all. Default depends on the page.
	Window TimeWindow `form:"window" example:"today" enums:"today,week,month,all"`
	// Sort key (default: growth)
	Sort SortKey `form:"sort" example:"growth" enums:"growth,stars,forks,comments,recent"`

	// Page of results (default: 1, minimum: 1)
	Page int `form:"page" example:"1" minimum:"1"`
	// Results per page (default: 20, maximum: 100)
	PerPage int `form:"per_page" example:"20" minimum:"1" maximum:"100"`

	// Internal, filled by Validate
	ParsedTags []string `form:"-" json:"-" swaggerignore:"true"`
}

// Validate applies defaults and rejects values outside the closed enum sets.
// defaultWindow is the page-specific window used when none is supplied
// (today for trending, week for explore).
func (r *TrendingRequest) Validate(defaultWindow TimeWindow) error {
	if r.Window == "" {
		r.Window = defaultWindow
	}
	if !r.Window.IsValid() {
		return ErrInvalidTimeWindow
	}

	if r.Sort == "" {
		r.Sort = SortGrowth
	}
	if !r.Sort.IsValid() {
		return ErrInvalidSortKey
	}

	if r.Page < 1 {
		r.Page = 1
	}
	if r.PerPage < 1 {
		r.PerPage = 20
	}
	if r.PerPage > 100 {
		r.PerPage = 100
	}

	r.ParsedTags = splitCSV(r.Tags)

	return nil
}

// Criteria converts the request into engine filter criteria.
func (r *TrendingRequest) Criteria() FilterCriteria {
	return FilterCriteria{
		SearchQuery: r.Query,
		Language:    r.Language,
		Tags:        r.ParsedTags,
		Window:      r.Window,
		Sort:        r.Sort,
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
