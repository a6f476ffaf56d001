package model

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyModel mirrors the 'properties' table. Images and amenities are stored as JSON arrays.
type PropertyModel struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Description  string         `gorm:"type:text"`
	Price        int            `gorm:"not null"`
	Location     string         `gorm:"type:varchar(255)"`
	City         string         `gorm:"type:varchar(100)"`
	State        string         `gorm:"type:varchar(100)"`
	Country      string         `gorm:"type:varchar(100)"`
	Bedrooms     int            `gorm:"not null;default:0"`
	Bathrooms    int            `gorm:"not null;default:0"`
	Guests       int            `gorm:"not null;default:1"`
	Images       datatypes.JSON `gorm:"type:jsonb"`
	Amenities    datatypes.JSON `gorm:"type:jsonb"`
	HostID       int64          `gorm:"not null;index"`
	Rating       *int
	ReviewCount  int      `gorm:"not null;default:0"`
	Latitude     *float64 `gorm:"type:double precision"`
	Longitude    *float64 `gorm:"type:double precision"`
	PropertyType string   `gorm:"type:varchar(50);index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
