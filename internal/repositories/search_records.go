package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ablehire/jobs-api/internal/entities"
)

type SearchRecords struct {
	db *gorm.DB
}

func NewSearchRecordsRepository(db *gorm.DB) *SearchRecords {
	return &SearchRecords{db: db}
}

func (repo *SearchRecords) Add(ctx context.Context, record entities.SearchRecord) error {
	return repo.db.WithContext(ctx).Create(&record).Error
}

func (repo *SearchRecords) GetRecent(ctx context.Context, limit int) ([]entities.SearchRecord, error) {

	var records []entities.SearchRecord
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SearchRecords) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {

	result := repo.db.WithContext(ctx).Where("created_at < ?", cutoff).
		Delete(&entities.SearchRecord{})
	return result.RowsAffected, result.Error
}
