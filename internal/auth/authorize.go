package auth

import "context"

// Decision is the single outcome type both protocol adapters consume. When
// OK is false, Err holds exactly one of the taxonomy errors.
type Decision struct {
	OK     bool
	UserID string
	Err    error
}

// Gateway composes the session manager and permission resolver into the one
// authorization entry point shared by the HTTP and gRPC surfaces. Both must
// produce identical decisions for identical inputs.
type Gateway struct {
	sessions *SessionManager
	resolver *Resolver
	service  string
}

// NewGateway constructs a Gateway. service is the code segment the HTTP
// middleware uses for its own routes.
func NewGateway(sessions *SessionManager, resolver *Resolver, service string) *Gateway {
	return &Gateway{sessions: sessions, resolver: resolver, service: service}
}

// ServiceName returns the service segment this gateway enforces for its own
// HTTP routes.
func (g *Gateway) ServiceName() string { return g.service }

// Authorize decides whether the bearer of token may perform (service,
// entity, action). An empty token is rejected before any store access.
// Ambiguity of any kind resolves to deny.
func (g *Gateway) Authorize(ctx context.Context, token, service, entity, action string) Decision {
	if token == "" {
		return Decision{Err: ErrMissingCredential}
	}
	session, err := g.sessions.Validate(ctx, token)
	if err != nil {
		return Decision{Err: err}
	}
	allowed, err := g.resolver.Allowed(ctx, session.UserID, service, entity, action)
	if err != nil {
		return Decision{Err: err}
	}
	if !allowed {
		return Decision{UserID: session.UserID, Err: ErrForbidden}
	}
	return Decision{OK: true, UserID: session.UserID}
}
