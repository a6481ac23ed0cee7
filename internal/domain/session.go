package domain

import "time"

// SessionTokenIssuer issues a signed token carrying a session id.
type SessionTokenIssuer interface {
	Issue(sessionID string, expiry time.Duration) (string, error)
}

// SessionTokenVerifier verifies a token and returns the session id it carries.
type SessionTokenVerifier interface {
	Verify(token string) (sessionID string, err error)
}

// SessionInfo describes a browser session.
// swagger:model SessionInfo
type SessionInfo struct {
	ID        string    `json:"id"`
	Lang      string    `json:"lang"`
	Locale    string    `json:"locale"`
	Dir       string    `json:"dir"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
}

// Translator resolves a localized string for a language and key.
type Translator interface {
	T(lang, key string, args ...any) string
}
