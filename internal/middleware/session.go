package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

// SessionName is the cookie name for the store session
const SessionName = "kids_store_session"

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware assigns every visitor an opaque session ID. The
// cookie carries only the ID; cart state lives server-side in the cart
// store keyed by it.
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// EnsureSession loads the session, generating a new session ID on first
// contact, and puts the ID on the request context.
func (m *SessionMiddleware) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// A bad or stale cookie yields a fresh session; keep going.
			log.Warn().Err(err).Msg("invalid session cookie, issuing new session")
		}

		sessionID, ok := session.Values["session_id"].(string)
		if !ok || sessionID == "" {
			sessionID = uuid.New().String()
			session.Values["session_id"] = sessionID
			if err := session.Save(r, w); err != nil {
				http.Error(w, "Failed to save session", http.StatusInternalServerError)
				return
			}
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSessionID returns a context carrying the given session ID
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID returns the session ID from the request context, or the
// empty string if the session middleware did not run
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
