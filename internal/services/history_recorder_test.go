package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"

	"github.com/ablehire/jobs-api/internal/entities"
	"github.com/ablehire/jobs-api/internal/events"
)

type mockRecordRepository struct {
	records []entities.SearchRecord
}

func (m *mockRecordRepository) Add(ctx context.Context, record entities.SearchRecord) error {
	m.records = append(m.records, record)
	return nil
}

func Test_HistoryRecorder_PersistsCompletedSearches(t *testing.T) {

	bus := EventBus.New()
	repo := &mockRecordRepository{}

	_, err := NewHistoryRecorder(bus, repo)
	assert.NoError(t, err)

	bus.Publish(events.SearchCompletedTopic, events.SearchCompleted{
		Query:       "data analyst",
		Location:    "India",
		Strategy:    entities.StrategySpecific,
		ResultCount: 11,
		CacheHit:    false,
	})
	bus.WaitAsync()

	assert.Len(t, repo.records, 1)
	assert.Equal(t, "data analyst", repo.records[0].Query)
	assert.Equal(t, 11, repo.records[0].ResultCount)
	assert.False(t, repo.records[0].CacheHit)
}
