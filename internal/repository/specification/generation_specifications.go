package specification

import (
	"ai-productivity-be/internal/repository/scope"

	"gorm.io/gorm"
)

// BySummaryID filters questions attached to one stored summary.
type BySummaryID struct {
	SummaryID uint
}

func (s BySummaryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("summary_id = ?", s.SummaryID)
}

// NewestFirst orders by creation time with id as the tie breaker.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.NewestFirst)
}

// OldestIDFirst lists rows in insertion order.
type OldestIDFirst struct{}

func (s OldestIDFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Scopes(scope.OrderByIDAsc)
}
