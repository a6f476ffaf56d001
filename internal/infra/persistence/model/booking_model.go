package model

import "time"

// BookingModel mirrors the 'bookings' table. Property and user references are weak,
// so there are no foreign keys.
type BookingModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PropertyID int64     `gorm:"not null;index:idx_bookings_property_range,priority:1"`
	UserID     int64     `gorm:"not null;index"`
	StartDate  time.Time `gorm:"not null;index:idx_bookings_property_range,priority:2"`
	EndDate    time.Time `gorm:"not null"`
	Guests     int       `gorm:"not null"`
	TotalPrice int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
