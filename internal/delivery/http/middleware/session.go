package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "wemetstudio/internal/delivery/http/helpers"
	"wemetstudio/internal/domain"
	"wemetstudio/internal/services"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionLookup resolves a session id to the live session.
type SessionLookup interface {
	Get(id string) (*services.Session, error)
}

// SetSession returns a context carrying s. Used by RequireSession.
func SetSession(ctx context.Context, s *services.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session attached by RequireSession, if present.
func SessionFromContext(ctx context.Context) (*services.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*services.Session)
	return s, ok && s != nil
}

// RequireSession returns a wrapper that validates the Bearer session token,
// loads the session and puts it in the request context. Browsers cannot set
// headers on websocket handshakes, so the token is also accepted from the
// "token" query parameter. Missing, invalid or expired sessions get 401.
func RequireSession(verifier domain.SessionTokenVerifier, sessions SessionLookup, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, msg)
				return
			}
			sessionID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			s, err := sessions.Get(sessionID)
			if err != nil {
				logger.DebugContext(r.Context(), "session lookup failed", "session_id", sessionID, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "session expired")
				return
			}
			next(w, r.WithContext(SetSession(r.Context(), s)))
		}
	}
}

func bearerToken(r *http.Request) (token, problem string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		if t := strings.TrimSpace(r.URL.Query().Get("token")); t != "" {
			return t, ""
		}
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}
