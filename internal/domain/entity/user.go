// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can act as a guest, a host, or both.
type User struct {
	ID           int64     `json:"id"`         // Monotonic identifier assigned by the store.
	Username     string    `json:"username"`   // Unique login name.
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized.
	Name         string    `json:"name"`       // Display name.
	Email        string    `json:"email"`      // Contact email.
	Avatar       *string   `json:"avatar"`     // Optional avatar URL.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of registration.
}
