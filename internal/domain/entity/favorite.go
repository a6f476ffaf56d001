package entity

import "time"

// Favorite marks a property as saved by a user. A (UserID, PropertyID) pair is unique.
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteProperty bundles a favorite with the listing it points to.
type FavoriteProperty struct {
	Favorite *Favorite `json:"favorite"`
	Property *Property `json:"property"`
}
