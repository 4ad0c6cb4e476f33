package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
)

func Test_DedupeJobs_DropsLaterDuplicates(t *testing.T) {

	jobs := []jsearch.Job{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
		{ID: "a", Title: "Duplicate of first"},
		{Title: "Engineer", Employer: "Acme"},
		{Title: "ENGINEER", Employer: "acme"},
	}

	unique := dedupeJobs(jobs)

	assert.Len(t, unique, 3)
	assert.Equal(t, "First", unique[0].Title)
	assert.Equal(t, "Second", unique[1].Title)
	assert.Equal(t, "Engineer", unique[2].Title)
}

func Test_DedupeJobs_IsIdempotent(t *testing.T) {

	jobs := []jsearch.Job{
		{ID: "a"}, {ID: "b"}, {ID: "a"}, {Title: "x", Employer: "y"},
	}

	once := dedupeJobs(jobs)
	twice := dedupeJobs(once)

	assert.Equal(t, once, twice)
}

func Test_DedupeJobs_OutputKeysAreUnique(t *testing.T) {

	var jobs []jsearch.Job
	for i := 0; i < 20; i++ {
		jobs = append(jobs, jsearch.Job{ID: fmt.Sprintf("id-%d", i%7)})
		jobs = append(jobs, jsearch.Job{Title: fmt.Sprintf("title-%d", i%5), Employer: "acme"})
	}

	seen := map[string]bool{}
	for _, job := range dedupeJobs(jobs) {
		key := identityKey(job)
		assert.False(t, seen[key], "duplicate identity key %q", key)
		seen[key] = true
	}
}

func Test_CapJobs_TruncatesLargeBatches(t *testing.T) {

	var jobs []jsearch.Job
	for i := 0; i < 60; i++ {
		jobs = append(jobs, jsearch.Job{ID: fmt.Sprintf("id-%d", i)})
	}

	capped := capJobs(jobs)

	assert.Len(t, capped, 50)
	assert.Equal(t, "id-0", capped[0].ID)
	assert.Equal(t, "id-49", capped[49].ID)
}

func Test_SortByScore_IsStableForEqualScores(t *testing.T) {

	jobs := []entities.Job{
		{ID: "low", InclusivityScore: 1},
		{ID: "tie-1", InclusivityScore: 5},
		{ID: "tie-2", InclusivityScore: 5},
		{ID: "high", InclusivityScore: 9},
	}

	sortByScore(jobs)

	assert.Equal(t, "high", jobs[0].ID)
	assert.Equal(t, "tie-1", jobs[1].ID)
	assert.Equal(t, "tie-2", jobs[2].ID)
	assert.Equal(t, "low", jobs[3].ID)
}

func Test_ApplyFilters_AndsRequestedFlags(t *testing.T) {

	jobs := []entities.Job{
		{ID: "both", AccessibilityFlags: entities.AccessibilityFlags{WheelchairAccessible: true, RemoteFriendly: true}},
		{ID: "remote-only", AccessibilityFlags: entities.AccessibilityFlags{RemoteFriendly: true}},
		{ID: "neither"},
	}

	filtered, applied := applyFilters(jobs, entities.AccessibilityFilters{
		WheelchairAccessible: true,
		RemoteFriendly:       true,
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "both", filtered[0].ID)
	assert.Equal(t, []entities.FilterPair{
		{Key: "wheelchair_accessible", Value: true},
		{Key: "remote_friendly", Value: true},
	}, applied)
}

func Test_ApplyFilters_NoFiltersReturnsInputUnchanged(t *testing.T) {

	jobs := []entities.Job{{ID: "a"}, {ID: "b"}}

	filtered, applied := applyFilters(jobs, entities.AccessibilityFilters{})

	assert.Equal(t, jobs, filtered)
	assert.Nil(t, applied)
}

func Test_ApplyFilters_GracefulWhenFilterEmptiesSet(t *testing.T) {

	jobs := []entities.Job{
		{ID: "a", AccessibilityFlags: entities.AccessibilityFlags{RemoteFriendly: true}},
		{ID: "b"},
	}

	filtered, applied := applyFilters(jobs, entities.AccessibilityFilters{SignLanguageSupport: true})

	assert.Equal(t, jobs, filtered)
	assert.NotEmpty(t, applied)
}

func Test_ApplyFilters_EmptyInputStaysEmpty(t *testing.T) {

	filtered, _ := applyFilters(nil, entities.AccessibilityFilters{RemoteFriendly: true})

	assert.Empty(t, filtered)
}

func Test_ApplyFilters_DoesNotMutateFlags(t *testing.T) {

	jobs := []entities.Job{
		{ID: "a", AccessibilityFlags: entities.AccessibilityFlags{RemoteFriendly: true}},
	}

	before := jobs[0].AccessibilityFlags
	_, _ = applyFilters(jobs, entities.AccessibilityFilters{WheelchairAccessible: true})

	assert.Equal(t, before, jobs[0].AccessibilityFlags)
}
