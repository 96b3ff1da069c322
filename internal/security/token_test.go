package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret-test-secret-test-secret!")
	userID := uuid.New()

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(userID, "jane@acme.com", time.Hour)
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "jane@acme.com", claims.Email)

		parsed, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret-another-secret-ok!!!!")
		token, err := other.GenerateAccessToken(userID, "jane@acme.com", time.Hour)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(userID, "jane@acme.com", -time.Minute)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NonUUIDSubject", func(t *testing.T) {
		claims := &UserClaims{}
		claims.Subject = "not-a-uuid"
		_, err := claims.UserID()
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
