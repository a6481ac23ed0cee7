package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wemetstudio/internal/domain"
)

const sessionTokenType = "session"

type sessionClaims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// SessionTokens signs and verifies anonymous session tokens (HS256).
type SessionTokens struct {
	secret []byte
	now    func() time.Time
}

var (
	_ domain.SessionTokenIssuer   = (*SessionTokens)(nil)
	_ domain.SessionTokenVerifier = (*SessionTokens)(nil)
)

// NewSessionTokens returns a SessionTokens keyed by secret.
func NewSessionTokens(secret string) *SessionTokens {
	return &SessionTokens{secret: []byte(secret), now: time.Now}
}

// Issue returns a token for sessionID that expires after expiry.
func (s *SessionTokens) Issue(sessionID string, expiry time.Duration) (string, error) {
	now := s.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Type: sessionTokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature, expiry and token type and returns the session id.
func (s *SessionTokens) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if claims.Type != sessionTokenType || claims.Subject == "" {
		return "", errors.New("invalid session token: wrong token type")
	}
	return claims.Subject, nil
}
