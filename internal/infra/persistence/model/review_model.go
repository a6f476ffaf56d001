package model

import "time"

// ReviewModel mirrors the 'reviews' table. Rows are never updated.
type ReviewModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	PropertyID int64  `gorm:"not null;index"`
	UserID     int64  `gorm:"not null;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
