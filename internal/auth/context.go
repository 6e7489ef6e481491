package auth

import "context"

type sessionContextKey struct{}

// ContextWithSession attaches the validated session to the context so
// downstream handlers can read the caller's identity without re-deriving it.
func ContextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, &session)
}

// SessionFromContext extracts the validated session from the context.
func SessionFromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	v, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || v == nil {
		return Session{}, false
	}
	return *v, true
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := SessionFromContext(ctx)
	if !ok || session.UserID == "" {
		return "", false
	}
	return session.UserID, true
}
