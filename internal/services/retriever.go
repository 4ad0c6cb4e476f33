package services

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
	"github.com/ablehire/jobs-api/internal/logger"
	"github.com/ablehire/jobs-api/internal/metrics"
)

type upstreamClient interface {
	Search(ctx context.Context, parameters jsearch.SearchParameters) ([]jsearch.Job, error)
}

// JobsRetriever fans a search request out to the upstream provider. An
// explicit query dispatches a single targeted call; without one it runs a
// fixed-size prefix of the inclusive search term list concurrently.
type JobsRetriever struct {
	client upstreamClient
}

func NewJobsRetriever(client upstreamClient) *JobsRetriever {
	return &JobsRetriever{client: client}
}

// Retrieve returns the concatenation of all branch results in dispatch
// order, plus the strategy label. A failed branch contributes an empty list;
// it never fails the others.
func (r *JobsRetriever) Retrieve(ctx context.Context, request entities.SearchRequest) ([]jsearch.Job, string) {

	if request.HasQuery() {
		jobs := r.fetchBranch(ctx, request.Query, request)
		return jobs, entities.StrategySpecific
	}

	terms := inclusiveSearchTerms[:searchTermFanOut]
	branches := make([][]jsearch.Job, len(terms))

	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			branches[i] = r.fetchBranch(ctx, term, request)
		}(i, term)
	}
	wg.Wait()

	var jobs []jsearch.Job
	for _, branch := range branches {
		jobs = append(jobs, branch...)
	}

	return jobs, entities.StrategyMultipleTerms
}

func (r *JobsRetriever) fetchBranch(ctx context.Context, query string, request entities.SearchRequest) []jsearch.Job {

	params := jsearch.SearchParameters{
		Query:    query,
		Page:     request.Page,
		NumPages: request.NumPages,
	}

	// The default location maps to provider-side country filtering; any
	// other location is embedded into the query text instead.
	if request.Location == entities.DefaultLocation {
		params.Country = "in"
	} else if request.Location != "" {
		params.Query = query + " in " + request.Location
	}

	start := time.Now()
	jobs, err := r.client.Search(ctx, params)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeUpstream).
			Errorf("search branch %q failed: %v", query, err)
		return nil
	}

	log.Infof("search branch %q returned %d postings", query, len(jobs))
	return jobs
}
