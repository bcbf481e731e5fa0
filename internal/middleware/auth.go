package middleware

import (
	"context"
	"net/http"

	"eastern-store/internal/domain"
	"eastern-store/internal/observability"
	"eastern-store/internal/session"
)

type contextKey string

// SessionKey carries the session snapshot attached by RequireSession.
const SessionKey contextKey = "session"

// RequireSession rejects requests while the store is still initializing or
// when no customer is signed in, and attaches a session snapshot to the
// request context otherwise.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.Loading() {
				http.Error(w, `{"error":"Session store initializing"}`, http.StatusServiceUnavailable)
				return
			}

			sess, ok := store.Current()
			if !ok {
				http.Error(w, `{"error":"Not authenticated"}`, http.StatusUnauthorized)
				return
			}

			ctx := WithSession(r.Context(), &sess)
			ctx = observability.WithCustomerID(ctx, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session snapshot attached by RequireSession.
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*domain.Session)
	return sess, ok
}

// WithSession attaches a session snapshot to the context.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}
