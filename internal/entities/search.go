package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultLocation is the sentinel location a request falls back to when the
// caller supplies none. It switches the upstream call to provider-side
// country filtering instead of embedding the location in the query text.
const DefaultLocation = "India"

const (
	StrategySpecific      = "specific"
	StrategyMultipleTerms = "multiple_terms"
)

// AccessibilityFilters are the caller-requested filter flags. They are
// distinct from AccessibilityFlags: filters narrow the result set, flags
// describe a posting.
type AccessibilityFilters struct {
	WheelchairAccessible bool
	RemoteFriendly       bool
	InclusiveHiring      bool
	SignLanguageSupport  bool
	ColorblindFriendlyUI bool
}

// SearchRequest carries one caller search. Immutable for the duration of a
// request.
type SearchRequest struct {
	Query    string
	Location string
	Page     int
	NumPages int
	Filters  AccessibilityFilters
}

// HasQuery reports whether the caller supplied an explicit search term.
func (r SearchRequest) HasQuery() bool {
	return strings.TrimSpace(r.Query) != ""
}

// CacheKey renders the request as a canonical fixed-order string, so two
// logically identical requests always map to the same cache entry.
func (r SearchRequest) CacheKey() string {
	return fmt.Sprintf("q=%s|loc=%s|page=%d|pages=%d|wa=%t|rf=%t|ih=%t|sl=%t|cb=%t",
		strings.ToLower(strings.TrimSpace(r.Query)),
		strings.ToLower(strings.TrimSpace(r.Location)),
		r.Page, r.NumPages,
		r.Filters.WheelchairAccessible,
		r.Filters.RemoteFriendly,
		r.Filters.InclusiveHiring,
		r.Filters.SignLanguageSupport,
		r.Filters.ColorblindFriendlyUI)
}

// FilterPair is one applied filter, marshalled as a [key, value] tuple.
type FilterPair struct {
	Key   string
	Value bool
}

func (p FilterPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Key, p.Value})
}

// SearchResponse is the payload served to the caller and stored in the
// result cache. Degraded modes keep Success true and explain themselves via
// Note; SearchStrategy and FiltersApplied are omitted when falling back.
type SearchResponse struct {
	Success        bool         `json:"success"`
	Count          int          `json:"count"`
	Jobs           []Job        `json:"jobs"`
	Location       string       `json:"location"`
	SearchStrategy string       `json:"searchStrategy,omitempty"`
	Note           string       `json:"note,omitempty"`
	FiltersApplied []FilterPair `json:"filtersApplied,omitempty"`
	Error          string       `json:"error,omitempty"`
}
