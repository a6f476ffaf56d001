package model

import "time"

// FavoriteModel mirrors the 'favorites' table. A user can favorite a property once.
type FavoriteModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	UserID     int64 `gorm:"not null;uniqueIndex:idx_favorites_user_property,priority:1"`
	PropertyID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_property,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
