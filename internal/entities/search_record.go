package entities

import "time"

// SearchRecord is one row of the operational search log.
type SearchRecord struct {
	ID          uint `gorm:"primaryKey"`
	Query       string
	Location    string
	Strategy    string
	ResultCount int
	CacheHit    bool
	Fallback    bool
	CreatedAt   time.Time
}
