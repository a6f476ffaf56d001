package model

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&PropertyModel{},
		&BookingModel{},
		&ReviewModel{},
		&FavoriteModel{},
	}
}
