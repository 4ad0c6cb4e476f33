package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
)

const (
	titlePlaceholder       = "Job Title Not Available"
	companyPlaceholder     = "Company Not Specified"
	descriptionPlaceholder = "No description available."
	salaryPlaceholder      = "Salary Not Specified"
	postedDatePlaceholder  = "Recently"

	maxTags      = 4
	usdToInrRate = 83.0
)

var (
	salaryNumberPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	inrPrinter          = message.NewPrinter(language.MustParse("en-IN"))
)

// normalizeJob maps one raw posting into the stable output record. index is
// the posting's position in the deduplicated batch and scopes generated ids.
func normalizeJob(job jsearch.Job, index int) entities.Job {

	tags, features := deriveTags(job)
	flags := detectFlags(job, tags, features)
	if len(tags) == 0 {
		tags = append(tags, defaultTags...)
	}

	id := job.ID
	if id == "" {
		id = fmt.Sprintf("job-%d-%s", index, uuid.NewString()[:8])
	}

	title := job.Title
	if title == "" {
		title = titlePlaceholder
	}

	company := job.Employer
	if company == "" {
		company = companyPlaceholder
	}

	description := job.Description
	if description == "" {
		description = descriptionPlaceholder
	}

	return entities.Job{
		ID:                    id,
		Title:                 title,
		Company:               company,
		Location:              formatLocation(job),
		Salary:                formatSalary(job.Salary),
		Type:                  formatEmploymentType(job.EmploymentType),
		Description:           description,
		ApplyURL:              job.ApplyLink,
		PostedDate:            formatPostedDate(job.PostedAt),
		Remote:                job.IsRemote,
		CompanyLogo:           job.EmployerLogo,
		Tags:                  tags,
		AccessibilityFeatures: features,
		AccessibilityFlags:    flags,
		InclusivityScore:      inclusivityScore(job) + flagBonus(flags),
	}
}

// deriveTags runs the declarative keyword rule table once over the posting
// text. A rule fires at most a single tag and feature; the tag list is
// capped, the feature list is not.
func deriveTags(job jsearch.Job) (tags []string, features []string) {

	text := strings.ToLower(job.Description + " " + job.Title + " " + job.Employer)

	seenTags := map[string]bool{}
	seenFeatures := map[string]bool{}

	for _, rule := range tagRules {
		if !strings.Contains(text, rule.keyword) {
			continue
		}
		if !seenTags[rule.tag] && len(tags) < maxTags {
			seenTags[rule.tag] = true
			tags = append(tags, rule.tag)
		}
		if !seenFeatures[rule.feature] {
			seenFeatures[rule.feature] = true
			features = append(features, rule.feature)
		}
	}

	return tags, features
}

func formatLocation(job jsearch.Job) string {
	switch {
	case job.City != "" && job.Country != "":
		return job.City + ", " + job.Country
	case job.City != "":
		return job.City
	case job.Country != "":
		return job.Country
	default:
		return entities.DefaultLocation
	}
}

// formatSalary converts dollar amounts into rupees at a fixed rate and
// re-renders them with Indian-locale digit grouping. Salary strings without
// a dollar symbol pass through untouched.
func formatSalary(raw string) string {

	if strings.TrimSpace(raw) == "" {
		return salaryPlaceholder
	}

	if !strings.Contains(raw, "$") {
		return raw
	}

	converted := salaryNumberPattern.ReplaceAllStringFunc(raw, func(match string) string {
		value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
		if err != nil {
			return match
		}
		return inrPrinter.Sprintf("%d", int64(math.Round(value*usdToInrRate)))
	})

	return strings.ReplaceAll(converted, "$", "₹")
}

func formatEmploymentType(employmentType string) string {
	switch strings.ToUpper(employmentType) {
	case "FULLTIME":
		return "Full-time"
	case "PARTTIME":
		return "Part-time"
	case "CONTRACTOR":
		return "Contract"
	case "INTERN":
		return "Internship"
	case "":
		return "Not Specified"
	default:
		return employmentType
	}
}

func formatPostedDate(postedAt string) string {
	parsed, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return postedDatePlaceholder
	}
	return parsed.Format("2006-01-02")
}
