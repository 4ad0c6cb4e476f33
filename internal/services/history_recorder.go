package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/entities"
	"github.com/ablehire/jobs-api/internal/events"
	"github.com/ablehire/jobs-api/internal/logger"
)

type searchRecordRepository interface {
	Add(ctx context.Context, record entities.SearchRecord) error
}

// HistoryRecorder persists one SearchRecord per completed search, off the
// request path.
type HistoryRecorder struct {
	records searchRecordRepository
}

func NewHistoryRecorder(bus EventBus.Bus, records searchRecordRepository) (*HistoryRecorder, error) {

	recorder := &HistoryRecorder{records: records}

	if err := bus.SubscribeAsync(events.SearchCompletedTopic, recorder.onSearchCompleted, false); err != nil {
		return nil, err
	}

	return recorder, nil
}

func (h *HistoryRecorder) onSearchCompleted(event events.SearchCompleted) {

	record := entities.SearchRecord{
		Query:       event.Query,
		Location:    event.Location,
		Strategy:    event.Strategy,
		ResultCount: event.ResultCount,
		CacheHit:    event.CacheHit,
		Fallback:    event.Fallback,
	}

	if err := h.records.Add(context.Background(), record); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to record search: %v", err)
	}
}
