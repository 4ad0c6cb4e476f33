package events

var SearchCompletedTopic = "SearchCompletedEvent"

type SearchCompleted struct {
	Query       string
	Location    string
	Strategy    string
	ResultCount int
	CacheHit    bool
	Fallback    bool
}
