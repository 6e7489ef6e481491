package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthorizeMissingCredentialShortCircuits(t *testing.T) {
	store := newFakeSessionStore()
	graph := &fakeGraph{}
	resolver, _ := NewResolver(graph, nil)
	gw := NewGateway(NewSessionManager(store), resolver, "perm")

	decision := gw.Authorize(context.Background(), "", "api", "users", "read")
	if decision.OK {
		t.Fatalf("expected deny")
	}
	if !errors.Is(decision.Err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", decision.Err)
	}
	if store.getCalls != 0 {
		t.Fatalf("session store must not be touched for an empty token, saw %d lookups", store.getCalls)
	}
	if graph.calls != 0 {
		t.Fatalf("permission graph must not be touched for an empty token")
	}
}

func TestAuthorizeInvalidSession(t *testing.T) {
	resolver, _ := NewResolver(&fakeGraph{}, nil)
	gw := NewGateway(NewSessionManager(newFakeSessionStore()), resolver, "perm")

	decision := gw.Authorize(context.Background(), "no-such-token", "api", "users", "read")
	if decision.OK || !errors.Is(decision.Err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %+v", decision)
	}
}

func TestAuthorizeForbiddenCarriesUserID(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store)
	token, _, err := mgr.Create(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resolver, _ := NewResolver(&fakeGraph{codes: map[string][]string{}}, nil)
	gw := NewGateway(mgr, resolver, "perm")

	decision := gw.Authorize(context.Background(), token, "api", "users", "read")
	if decision.OK || !errors.Is(decision.Err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %+v", decision)
	}
	if decision.UserID != "user-9" {
		t.Fatalf("forbidden decision should still identify the caller, got %q", decision.UserID)
	}
}

func TestAuthorizeStoreFaultFailsClosed(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store)
	token, _, err := mgr.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resolver, _ := NewResolver(&fakeGraph{fail: errors.New("db down")}, nil)
	gw := NewGateway(mgr, resolver, "perm")

	decision := gw.Authorize(context.Background(), token, "api", "users", "read")
	if decision.OK {
		t.Fatalf("store fault must deny")
	}
	if !errors.Is(decision.Err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", decision.Err)
	}
}

func TestAuthorizeIdempotent(t *testing.T) {
	store := newFakeSessionStore()
	mgr := NewSessionManager(store)
	token, _, err := mgr.Create(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resolver, _ := NewResolver(&fakeGraph{codes: map[string][]string{
		"user-1": {"api:users:read"},
	}}, nil)
	gw := NewGateway(mgr, resolver, "perm")

	first := gw.Authorize(context.Background(), token, "api", "users", "read")
	second := gw.Authorize(context.Background(), token, "api", "users", "read")
	if !first.OK || !second.OK {
		t.Fatalf("expected both calls allowed: %+v %+v", first, second)
	}
	if first.UserID != second.UserID {
		t.Fatalf("decisions differ: %+v %+v", first, second)
	}
}

// End to end over fakes: user with role holding api:users:read through the
// whole gateway, then expiry flips the decision to unauthenticated.
func TestAuthorizeEndToEnd(t *testing.T) {
	store := newFakeSessionStore()
	now := time.Now()
	mgr := NewSessionManager(store, WithClock(func() time.Time { return now }))
	resolver, _ := NewResolver(&fakeGraph{codes: map[string][]string{
		"user-U": {"api:users:read"},
	}}, nil)
	gw := NewGateway(mgr, resolver, "perm")

	token, _, err := mgr.Create(context.Background(), "user-U")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if d := gw.Authorize(context.Background(), token, "api", "users", "read"); !d.OK {
		t.Fatalf("expected allow, got %+v", d)
	}
	if d := gw.Authorize(context.Background(), token, "api", "users", "delete"); d.OK || !errors.Is(d.Err, ErrForbidden) {
		t.Fatalf("expected forbidden for delete, got %+v", d)
	}

	now = now.Add(4 * time.Hour)
	d := gw.Authorize(context.Background(), token, "api", "users", "read")
	if d.OK || !errors.Is(d.Err, ErrInvalidSession) {
		t.Fatalf("expected invalid session after expiry, got %+v", d)
	}
}
