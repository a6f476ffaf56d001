package auth

import (
	"testing"
	"time"

	"stayscape/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(42, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testJWTConfig(""))

	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(testJWTConfig("secret-two"))
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken(1, "bob")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	impl, err := NewJWTService(testJWTConfig("secret"))
	require.NoError(t, err)
	svc := impl.(*jwtService)

	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateAccessToken(1, "alice")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsWrongTokenTypeAndSubject(t *testing.T) {
	secret := "secret"
	svc, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	_, err = svc.ValidateToken(sign(jwt.MapClaims{"sub": "1", "type": "refresh", "exp": exp}))
	assert.Error(t, err)

	_, err = svc.ValidateToken(sign(jwt.MapClaims{"sub": "abc", "type": "access", "exp": exp}))
	assert.Error(t, err)

	_, err = svc.ValidateToken(sign(jwt.MapClaims{"sub": "1", "type": "access"}))
	assert.Error(t, err)
}
