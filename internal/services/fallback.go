package services

import "github.com/ablehire/jobs-api/internal/entities"

// fallbackNote fragments surfaced to the caller when the live pipeline
// cannot produce usable results.
const (
	noteMissingKey      = "live search is unavailable without an API key, serving mock data"
	noteEmptyUpstream   = "no results from upstream, serving mock data"
	noteUnexpectedError = "an unexpected error occurred, serving mock data"
)

// fallbackResponse wraps the curated sample postings in the standard payload
// shape. It always reports success; degradation is visible only through the
// note (and error, for the catch-all tier).
func fallbackResponse(request entities.SearchRequest, note string, errMsg string) *entities.SearchResponse {
	jobs := fallbackJobs()
	return &entities.SearchResponse{
		Success:  true,
		Count:    len(jobs),
		Jobs:     jobs,
		Location: request.Location,
		Note:     note,
		Error:    errMsg,
	}
}

// fallbackJobs returns the hand-curated substitute postings. Scores and
// flags are precomputed; the set deliberately spreads across all five
// accessibility facets.
func fallbackJobs() []entities.Job {
	return []entities.Job{
		{
			ID:          "fallback-1",
			Title:       "Customer Support Specialist",
			Company:     "Sarthak Enterprises",
			Location:    "Mumbai, India",
			Salary:      "₹3,50,000 - ₹5,00,000",
			Type:        "Full-time",
			Description: "Wheelchair accessible office with dedicated support for employees with mobility needs. We are an equal opportunity employer.",
			ApplyURL:    "https://careers.sarthak.example/support-specialist",
			PostedDate:  "2024-03-01",
			Remote:      false,
			Tags:        []string{"Wheelchair Accessible", "Equal Opportunity"},
			AccessibilityFeatures: []string{
				"Wheelchair accessible workplace",
				"Equal opportunity employer",
			},
			AccessibilityFlags: entities.AccessibilityFlags{
				WheelchairAccessible: true,
				InclusiveHiring:      true,
			},
			InclusivityScore: 14,
		},
		{
			ID:          "fallback-2",
			Title:       "Software Engineer",
			Company:     "Enable Tech Solutions",
			Location:    "Remote, India",
			Salary:      "₹8,00,000 - ₹12,00,000",
			Type:        "Full-time",
			Description: "Fully remote role with screen reader compatible tooling and a colorblind friendly interface across our products.",
			ApplyURL:    "https://enabletech.example/jobs/engineer",
			PostedDate:  "2024-03-05",
			Remote:      true,
			Tags:        []string{"Remote", "Assistive Technology"},
			AccessibilityFeatures: []string{
				"Remote work available",
				"Screen reader compatible tools",
			},
			AccessibilityFlags: entities.AccessibilityFlags{
				ColorblindFriendlyUI: true,
				RemoteFriendly:       true,
			},
			InclusivityScore: 13,
		},
		{
			ID:          "fallback-3",
			Title:       "Content Writer",
			Company:     "Inclusive Media House",
			Location:    "Delhi, India",
			Salary:      "₹4,00,000 - ₹6,00,000",
			Type:        "Part-time",
			Description: "Part-time writing role; sign language interpreters available for all team meetings and trainings.",
			ApplyURL:    "https://inclusivemedia.example/careers/writer",
			PostedDate:  "2024-02-26",
			Remote:      false,
			Tags:        []string{"Sign Language Support", "Inclusive Workplace"},
			AccessibilityFeatures: []string{
				"Sign language interpretation",
				"Inclusive team culture",
			},
			AccessibilityFlags: entities.AccessibilityFlags{
				SignLanguageSupport: true,
				InclusiveHiring:     true,
			},
			InclusivityScore: 12,
		},
		{
			ID:          "fallback-4",
			Title:       "Data Entry Operator",
			Company:     "Samarth Services",
			Location:    "Bengaluru, India",
			Salary:      "₹2,50,000 - ₹3,50,000",
			Type:        "Full-time",
			Description: "Work from home opportunity with assistive technology provided and flexible working hours.",
			ApplyURL:    "https://samarth.example/jobs/data-entry",
			PostedDate:  "2024-03-08",
			Remote:      true,
			Tags:        []string{"Remote", "Flexible Hours", "Assistive Technology"},
			AccessibilityFeatures: []string{
				"Remote work available",
				"Assistive technology provided",
				"Flexible working hours",
			},
			AccessibilityFlags: entities.AccessibilityFlags{
				RemoteFriendly: true,
			},
			InclusivityScore: 11,
		},
		{
			ID:          "fallback-5",
			Title:       "HR Coordinator",
			Company:     "Udaan Foundation",
			Location:    "Pune, India",
			Salary:      "Salary Not Specified",
			Type:        "Full-time",
			Description: "Join our disability inclusion team. Wheelchair accessible campus, high contrast UI on all internal tools.",
			ApplyURL:    "https://udaan.example/careers/hr-coordinator",
			PostedDate:  "2024-03-03",
			Remote:      false,
			Tags:        []string{"Wheelchair Accessible", "Diversity Focused"},
			AccessibilityFeatures: []string{
				"Wheelchair accessible workplace",
				"Diversity and inclusion program",
				"High contrast internal tools",
			},
			AccessibilityFlags: entities.AccessibilityFlags{
				WheelchairAccessible: true,
				ColorblindFriendlyUI: true,
				InclusiveHiring:      true,
			},
			InclusivityScore: 15,
		},
	}
}
