package httpapi

import (
	"errors"
	"net/http"

	"st29.ru/authcore/internal/auth"
	"st29.ru/authcore/internal/obs"
)

const sessionCookie = "session"

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// withPermission gates a handler on one permission check. The service
// segment is always the gateway's own service name; entity and action vary
// per route. On success the caller's identity lands in the request context.
func (a *API) withPermission(entity, action string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := a.gateway.Authorize(r.Context(), sessionToken(r), a.gateway.ServiceName(), entity, action)
		if d.Err != nil {
			obs.ObserveDecision("http", decisionOutcome(d.Err))
			writeAuthError(w, r, d.Err)
			return
		}
		obs.ObserveDecision("http", "allow")
		ctx := auth.ContextWithSession(r.Context(), auth.Session{UserID: d.UserID})
		next(w, r.WithContext(ctx))
	}
}

// withSession requires a valid session but no particular permission. Used by
// the self-service routes.
func (a *API) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			obs.ObserveDecision("http", "unauthenticated")
			writeAuthError(w, r, auth.ErrMissingCredential)
			return
		}
		session, err := a.sessions.Validate(r.Context(), token)
		if err != nil {
			obs.ObserveDecision("http", decisionOutcome(err))
			writeAuthError(w, r, err)
			return
		}
		obs.ObserveDecision("http", "allow")
		ctx := auth.ContextWithSession(r.Context(), session)
		next(w, r.WithContext(ctx))
	}
}

func decisionOutcome(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredential), errors.Is(err, auth.ErrInvalidSession):
		return "unauthenticated"
	case errors.Is(err, auth.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

// writeAuthError maps the taxonomy onto HTTP statuses. Store faults never
// leak detail; the log carries it instead.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		writeError(w, r, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, auth.ErrInvalidSession):
		writeError(w, r, http.StatusUnauthorized, "invalid or expired session")
	case errors.Is(err, auth.ErrForbidden):
		writeError(w, r, http.StatusForbidden, "permission denied")
	default:
		obs.Error("authorization failed", err, map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
			"path":       r.URL.Path,
		})
		writeError(w, r, http.StatusInternalServerError, "authorization unavailable")
	}
}
