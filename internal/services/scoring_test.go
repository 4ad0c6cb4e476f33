package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ablehire/jobs-api/internal/clients/jsearch"
	"github.com/ablehire/jobs-api/internal/entities"
)

func Test_InclusivityScore_WeighsFieldsByPlacement(t *testing.T) {

	job := jsearch.Job{
		Title:       "Inclusive Designer",
		Employer:    "Inclusive Labs",
		Description: "We are an inclusive employer.",
	}

	// one keyword in all three fields: 3 + 2 + 1
	assert.Equal(t, 6, inclusivityScore(job))
}

func Test_InclusivityScore_AddsStructuralBonuses(t *testing.T) {

	job := jsearch.Job{
		IsRemote:       true,
		EmploymentType: "PARTTIME",
	}

	assert.Equal(t, 7, inclusivityScore(job))
}

func Test_InclusivityScore_IsDeterministic(t *testing.T) {

	job := jsearch.Job{
		Title:       "Accessibility Engineer",
		Employer:    "Equal Opportunity Tech",
		Description: "Work from home with assistive technology and flexible hours.",
		IsRemote:    true,
	}

	first := inclusivityScore(job)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, inclusivityScore(job))
	}
}

func Test_DetectFlags_FromDescriptionEvidence(t *testing.T) {

	job := jsearch.Job{Description: "fully remote, ADA compliant office"}

	tags, features := deriveTags(job)
	flags := detectFlags(job, tags, features)

	assert.True(t, flags.WheelchairAccessible)
	assert.True(t, flags.RemoteFriendly)
	assert.False(t, flags.SignLanguageSupport)
	assert.False(t, flags.ColorblindFriendlyUI)
	assert.False(t, flags.InclusiveHiring)

	assert.Contains(t, tags, "Wheelchair Accessible")
	assert.Contains(t, tags, "Remote")
}

func Test_DetectFlags_CorroboratingTagSetsFlag(t *testing.T) {

	job := jsearch.Job{Description: "no relevant text here"}

	flags := detectFlags(job, []string{"Wheelchair Accessible"}, nil)

	assert.True(t, flags.WheelchairAccessible)
}

func Test_DetectFlags_RemoteFromUpstreamFlag(t *testing.T) {

	flags := detectFlags(jsearch.Job{IsRemote: true}, nil, nil)

	assert.True(t, flags.RemoteFriendly)
	assert.False(t, flags.WheelchairAccessible)
}

func Test_DetectFlags_RemoteOnlyFromDescription(t *testing.T) {

	job := jsearch.Job{Title: "Remote Support Agent", Employer: "Remote First Inc"}

	flags := detectFlags(job, nil, nil)

	assert.False(t, flags.RemoteFriendly, "remote mentions outside the description must not set the flag")

	job.Description = "work from home two days a week"
	assert.True(t, detectFlags(job, nil, nil).RemoteFriendly)
}

func Test_FlagBonus_SumsPerFlag(t *testing.T) {

	assert.Equal(t, 0, flagBonus(entities.AccessibilityFlags{}))
	assert.Equal(t, 10, flagBonus(entities.AccessibilityFlags{
		WheelchairAccessible: true,
		SignLanguageSupport:  true,
		ColorblindFriendlyUI: true,
		InclusiveHiring:      true,
		RemoteFriendly:       true,
	}))
}
