package services

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
)

// maxResults caps the batch right after deduplication so scoring never runs
// over an unbounded upstream set.
const maxResults = 50

// identityKey detects duplicates across merged branch results: provider id
// when present, otherwise case-normalized title+employer.
func identityKey(job jsearch.Job) string {
	if job.ID != "" {
		return job.ID
	}
	return strings.ToLower(job.Title) + "|" + strings.ToLower(job.Employer)
}

// dedupeJobs drops later duplicates, preserving first-seen order.
func dedupeJobs(jobs []jsearch.Job) []jsearch.Job {
	return lo.UniqBy(jobs, identityKey)
}

func capJobs(jobs []jsearch.Job) []jsearch.Job {
	if len(jobs) > maxResults {
		return jobs[:maxResults]
	}
	return jobs
}

// sortByScore orders postings by final score descending. The sort is stable:
// equally scored postings keep their deduplicated input order.
func sortByScore(jobs []entities.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].InclusivityScore > jobs[j].InclusivityScore
	})
}

// applyFilters retains postings matching every requested flag. When the
// filters would empty a non-empty set, the unfiltered sorted set is returned
// instead, so a search never degrades into "no results".
func applyFilters(jobs []entities.Job, filters entities.AccessibilityFilters) ([]entities.Job, []entities.FilterPair) {

	var applied []entities.FilterPair
	if filters.WheelchairAccessible {
		applied = append(applied, entities.FilterPair{Key: "wheelchair_accessible", Value: true})
	}
	if filters.RemoteFriendly {
		applied = append(applied, entities.FilterPair{Key: "remote_friendly", Value: true})
	}
	if filters.InclusiveHiring {
		applied = append(applied, entities.FilterPair{Key: "inclusive_hiring", Value: true})
	}
	if filters.SignLanguageSupport {
		applied = append(applied, entities.FilterPair{Key: "sign_language_support", Value: true})
	}
	if filters.ColorblindFriendlyUI {
		applied = append(applied, entities.FilterPair{Key: "colorblind_friendly_ui", Value: true})
	}

	if len(applied) == 0 {
		return jobs, nil
	}

	filtered := lo.Filter(jobs, func(job entities.Job, _ int) bool {
		flags := job.AccessibilityFlags
		if filters.WheelchairAccessible && !flags.WheelchairAccessible {
			return false
		}
		if filters.RemoteFriendly && !flags.RemoteFriendly {
			return false
		}
		if filters.InclusiveHiring && !flags.InclusiveHiring {
			return false
		}
		if filters.SignLanguageSupport && !flags.SignLanguageSupport {
			return false
		}
		if filters.ColorblindFriendlyUI && !flags.ColorblindFriendlyUI {
			return false
		}
		return true
	})

	if len(filtered) == 0 && len(jobs) > 0 {
		return jobs, applied
	}

	return filtered, applied
}
