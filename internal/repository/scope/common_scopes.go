package scope

import "gorm.io/gorm"

// NewestFirst orders by creation time; id breaks ties between rows created in the same instant.
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func OrderByIDAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
