package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokens_Issue(t *testing.T) {
	secret := "test-secret"
	tokens := NewSessionTokens(secret)

	token, err := tokens.Issue("session-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*sessionClaims)
	require.True(t, ok)
	assert.Equal(t, "session-123", claims.Subject)
	assert.Equal(t, "session", claims.Type)
}

func TestSessionTokens_Verify(t *testing.T) {
	tokens := NewSessionTokens("test-secret")
	valid, err := tokens.Issue("session-123", time.Hour)
	require.NoError(t, err)

	expired, err := tokens.Issue("session-123", -time.Minute)
	require.NoError(t, err)

	otherKey, err := NewSessionTokens("other-secret").Issue("session-123", time.Hour)
	require.NoError(t, err)

	wrongType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "session-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Type: "refresh",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantID  string
		wantErr bool
	}{
		{name: "valid", token: valid, wantID: "session-123"},
		{name: "expired", token: expired, wantErr: true},
		{name: "signed with another secret", token: otherKey, wantErr: true},
		{name: "wrong token type", token: wrongType, wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := tokens.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSessionTokens_ExpiryFollowsClock(t *testing.T) {
	issuedAt := time.Date(2025, time.October, 6, 12, 0, 0, 0, time.UTC)
	tokens := NewSessionTokens("test-secret")
	tokens.now = func() time.Time { return issuedAt }

	token, err := tokens.Issue("session-123", 24*time.Hour)
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(23 * time.Hour) }
	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", id)

	tokens.now = func() time.Time { return issuedAt.Add(25 * time.Hour) }
	_, err = tokens.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
