package services

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
	"github.com/ablehire/jobs-api/internal/events"
	"github.com/ablehire/jobs-api/internal/metrics"
)

type retriever interface {
	Retrieve(ctx context.Context, request entities.SearchRequest) ([]jsearch.Job, string)
}

// JobSearchService runs the aggregation pipeline behind a TTL result cache
// and a tiered fallback chain. It never returns a hard failure: every
// degraded mode answers with the curated sample payload instead.
type JobSearchService struct {
	retriever retriever
	bus       EventBus.Bus
	cache     *gocache.Cache
	cacheTTL  time.Duration
	apiKey    string
}

func NewJobSearchService(bus EventBus.Bus, retriever retriever, apiKey string, cacheTTL time.Duration) *JobSearchService {
	return &JobSearchService{
		retriever: retriever,
		bus:       bus,
		cache:     gocache.New(cacheTTL, 2*cacheTTL),
		cacheTTL:  cacheTTL,
		apiKey:    apiKey,
	}
}

func (s *JobSearchService) Search(ctx context.Context, request entities.SearchRequest) *entities.SearchResponse {

	key := request.CacheKey()
	if cached, found := s.cache.Get(key); found {
		metrics.CacheHitsCounter.Inc()
		response := cached.(*entities.SearchResponse)
		s.publishCompleted(request, response, true)
		return response
	}

	if s.apiKey == "" {
		metrics.FallbacksCounter.WithLabelValues("missing_key").Inc()
		log.Warn("no upstream API key configured, serving fallback payload")
		response := fallbackResponse(request, noteMissingKey, "")
		s.publishCompleted(request, response, false)
		return response
	}

	response, err := s.runPipeline(ctx, request)
	if err != nil {
		metrics.FallbacksCounter.WithLabelValues("unexpected_error").Inc()
		log.Errorf("pipeline failed, serving fallback payload: %v", err)
		response = fallbackResponse(request, noteUnexpectedError, err.Error())
		s.publishCompleted(request, response, false)
		return response
	}

	// Only live results are cached: a fallback payload (empty strategy)
	// should not suppress retries for the TTL window.
	if response.SearchStrategy != "" {
		s.cache.Set(key, response, s.cacheTTL)
	}

	s.publishCompleted(request, response, false)
	return response
}

func (s *JobSearchService) runPipeline(ctx context.Context, request entities.SearchRequest) (response *entities.SearchResponse, err error) {

	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	raw, strategy := s.retriever.Retrieve(ctx, request)
	metrics.SearchesCounter.WithLabelValues(strategy).Inc()

	unique := capJobs(dedupeJobs(raw))
	if len(unique) == 0 {
		metrics.FallbacksCounter.WithLabelValues("empty_upstream").Inc()
		log.Warnf("upstream produced no usable postings for %q", request.Query)
		return fallbackResponse(request, noteEmptyUpstream, ""), nil
	}

	jobs := make([]entities.Job, 0, len(unique))
	for i, rawJob := range unique {
		jobs = append(jobs, normalizeJob(rawJob, i))
	}

	sortByScore(jobs)
	filtered, applied := applyFilters(jobs, request.Filters)

	return &entities.SearchResponse{
		Success:        true,
		Count:          len(filtered),
		Jobs:           filtered,
		Location:       request.Location,
		SearchStrategy: strategy,
		FiltersApplied: applied,
	}, nil
}

func (s *JobSearchService) publishCompleted(request entities.SearchRequest, response *entities.SearchResponse, cacheHit bool) {
	s.bus.Publish(events.SearchCompletedTopic, events.SearchCompleted{
		Query:       request.Query,
		Location:    request.Location,
		Strategy:    response.SearchStrategy,
		ResultCount: response.Count,
		CacheHit:    cacheHit,
		Fallback:    response.Note != "",
	})
}
