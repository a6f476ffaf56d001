package service

import "time"

// Claims is the identity carried by a validated access token.
type Claims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateAccessToken issues a signed token for the user.
	GenerateAccessToken(userID int64, username string) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
