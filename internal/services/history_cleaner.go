package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/ablehire/jobs-api/internal/logger"
)

type recordCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// HistoryCleaner trims the search log to the configured retention window
// once a day.
type HistoryCleaner struct {
	records         recordCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewHistoryCleaner(records recordCleanupRepository, retentionInDays int) (*HistoryCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	hc := &HistoryCleaner{
		records:         records,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := hc.cron.AddFunc("0 0 * * *", hc.cleanOldRecords)
	if err != nil {
		return nil, err
	}

	hc.cron.Start()
	log.Infof("search history cleaner started, retention in days: %d", hc.retentionInDays)
	return hc, nil
}

func (hc *HistoryCleaner) Stop() {
	hc.cron.Stop()
}

func (hc *HistoryCleaner) cleanOldRecords() {
	cutoff := time.Now().Add(-time.Duration(hc.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := hc.records.RemoveOlderThan(context.Background(), cutoff)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to clean old search records: %v", err)
	} else {
		log.Infof("old search records cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
