package services

import (
	"strings"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
)

// inclusivityScore ranks one raw posting by keyword evidence and structural
// signals. Pure function: identical input always yields the identical score.
func inclusivityScore(job jsearch.Job) int {

	description := strings.ToLower(job.Description)
	title := strings.ToLower(job.Title)
	employer := strings.ToLower(job.Employer)

	score := 0
	for _, keyword := range inclusiveKeywords {
		if strings.Contains(description, keyword) {
			score += 3
		}
		if strings.Contains(title, keyword) {
			score += 2
		}
		if strings.Contains(employer, keyword) {
			score += 1
		}
	}

	if job.IsRemote {
		score += 5
	}

	if strings.Contains(strings.ToUpper(job.EmploymentType), "PART") {
		score += 2
	}

	return score
}

// detectFlags derives the five accessibility flags from keyword evidence,
// corroborating tags/features, and the upstream remote flag. All five are
// independent.
func detectFlags(job jsearch.Job, tags, features []string) entities.AccessibilityFlags {

	text := strings.ToLower(job.Description + " " + job.Title + " " + job.Employer)
	description := strings.ToLower(job.Description)

	return entities.AccessibilityFlags{
		WheelchairAccessible: containsAny(text, wheelchairKeywords) ||
			hasEvidence(tags, features, "Wheelchair"),
		SignLanguageSupport: containsAny(text, signLanguageKeywords) ||
			hasEvidence(tags, features, "Sign Language"),
		ColorblindFriendlyUI: containsAny(text, colorblindKeywords) ||
			hasEvidence(tags, features, "Colorblind"),
		InclusiveHiring: containsAny(text, inclusiveHiringKeywords) ||
			hasEvidence(tags, features, "Inclusive"),
		RemoteFriendly: job.IsRemote ||
			strings.Contains(description, "remote") ||
			strings.Contains(description, "work from home"),
	}
}

// flagBonus is the fixed score contribution of the detected flags.
func flagBonus(flags entities.AccessibilityFlags) int {
	bonus := 0
	if flags.RemoteFriendly {
		bonus += remoteBonus
	}
	if flags.WheelchairAccessible {
		bonus += wheelchairBonus
	}
	if flags.SignLanguageSupport {
		bonus += signLanguageBonus
	}
	if flags.ColorblindFriendlyUI {
		bonus += colorblindBonus
	}
	if flags.InclusiveHiring {
		bonus += inclusiveHiringBonus
	}
	return bonus
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func hasEvidence(tags, features []string, marker string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, marker) {
			return true
		}
	}
	for _, feature := range features {
		if strings.Contains(feature, marker) {
			return true
		}
	}
	return false
}
