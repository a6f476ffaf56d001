// Package model holds the GORM persistence models. They mirror the tables and are
// mapped to and from domain entities by the postgres repositories.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"type:varchar(100);uniqueIndex:idx_users_username_lower,expression:lower(username);not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Name         string  `gorm:"type:varchar(100)"`
	Email        string  `gorm:"type:varchar(255)"`
	Avatar       *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
